// Package ports defines the contracts between the application core and its adapters.
package ports

import (
	"context"

	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/domain/model/kernel"
)

// DroneRepository is the resource registry: the fleet and its availability flags.
type DroneRepository interface {
	// List returns every drone in registry order (ascending id).
	List(ctx context.Context) ([]*drone.Drone, error)

	// Get returns one drone, or errs.ObjectNotFoundError with ParamName "drone".
	Get(ctx context.Context, id kernel.ID) (*drone.Drone, error)

	// Update stores the drone's availability. The drone must exist.
	Update(ctx context.Context, d *drone.Drone) error
}
