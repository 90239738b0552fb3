package queries

import (
	"context"

	"droncakes/internal/core/ports"
)

type GetAllOrdersQueryHandler struct {
	readModel ports.ReadModel
}

func NewGetAllOrdersQueryHandler(readModel ports.ReadModel) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{readModel: readModel}
}

// Handle returns every order, oldest first. The slice is never nil.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readModel.Orders(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, NewOrderResponse(o))
	}

	return result, nil
}
