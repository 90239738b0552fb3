package commands

import (
	"context"

	"droncakes/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler is UpdateOrderStatusCommandHandler with the
// target fixed to delivered.
type CompleteOrderCommandHandler struct {
	update UpdateOrderStatusCommandHandler
}

func NewCompleteOrderCommandHandler(update UpdateOrderStatusCommandHandler) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{update: update}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	update, err := newUpdateOrderStatusCommand(cmd.OrderID(), order.Delivered)
	if err != nil {
		return nil, err
	}

	return h.update.Handle(ctx, update)
}
