package ports

import (
	"context"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// NextID allocates the next order identifier. Identifiers are strictly
	// increasing; an allocation is only kept if the unit of work commits.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add stores a new order. The identifier must not be in use.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns one order, or errs.ObjectNotFoundError with ParamName "order".
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns every order, oldest first.
	List(ctx context.Context) ([]*order.Order, error)
}
