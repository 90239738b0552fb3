package commands

import (
	"errors"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand is issued by the status scheduler when a planned
// transition is due.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(orderID kernel.ID, target order.Status) (AdvanceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}
