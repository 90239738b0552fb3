package queries

import (
	"errors"
	"time"

	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists every order, delivered ones included.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse is the read model of one order. DeliveredAt is nil until the
// order is delivered.
type OrderResponse struct {
	ID                  int64
	CustomerName        string
	Flavor              string
	DroneID             int64
	DroneName           string
	Status              string
	CreatedAt           time.Time
	EstimatedDeliveryAt time.Time
	DeliveredAt         *time.Time
}

// NewOrderResponse flattens an order aggregate.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:                  o.ID().Int64(),
		CustomerName:        o.CustomerName(),
		Flavor:              o.Flavor(),
		DroneID:             o.DroneID().Int64(),
		DroneName:           o.DroneName(),
		Status:              o.Status().String(),
		CreatedAt:           o.CreatedAt(),
		EstimatedDeliveryAt: o.EstimatedDeliveryAt(),
		DeliveredAt:         o.DeliveredAt(),
	}
}
