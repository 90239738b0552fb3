package commands

import (
	"context"

	"droncakes/internal/core/domain/model/order"
)

// releaseDrone frees the drone bound to a delivered order.
//
// The drone stays busy when another open order is bound to it, which can only
// happen after an operator flipped its availability by hand. Every open order
// keeps an unavailable drone that way.
func releaseDrone(ctx context.Context, uow UoW, delivered *order.Order) error {
	orders, err := uow.OrderRepository().List(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.ID() == delivered.ID() || o.IsDelivered() {
			continue
		}
		if o.DroneID() == delivered.DroneID() {
			return nil
		}
	}

	droneRepo := uow.DroneRepository()

	d, err := droneRepo.Get(ctx, delivered.DroneID())
	if err != nil {
		return err
	}

	d.Release()

	return droneRepo.Update(ctx, d)
}
