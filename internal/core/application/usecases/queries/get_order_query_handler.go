package queries

import (
	"context"

	"droncakes/internal/core/ports"
)

type GetOrderQueryHandler struct {
	readModel ports.ReadModel
}

func NewGetOrderQueryHandler(readModel ports.ReadModel) GetOrderQueryHandler {
	return GetOrderQueryHandler{readModel: readModel}
}

// Handle returns the order or an error matching errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.readModel.Order(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(o), nil
}
