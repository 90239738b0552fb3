package ports

import (
	"context"

	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
)

// ReadModel serves the query side. Each call sees a committed state.
type ReadModel interface {
	Drones(ctx context.Context) ([]*drone.Drone, error)
	Orders(ctx context.Context) ([]*order.Order, error)
	Order(ctx context.Context, id kernel.ID) (*order.Order, error)
}
