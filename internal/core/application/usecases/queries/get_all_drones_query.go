// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return flat read models built from committed state.
package queries

import (
	"errors"

	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/pkg/guard"
)

var ErrGetAllDronesQueryIsNotConstructed = errors.New(
	"GetAllDronesQuery must be created via NewGetAllDronesQuery constructor",
)

// GetAllDronesQuery lists the fleet with current availability.
//
// Example:
//
//	drones, err := handler.Handle(ctx, NewGetAllDronesQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list drones: %w", err)
//	}
//
//	for _, d := range drones {
//	    fmt.Printf("drone %d %s available=%t\n", d.ID, d.Name, d.Available)
//	}
type GetAllDronesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllDronesQuery() GetAllDronesQuery {
	return GetAllDronesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDronesQueryIsNotConstructed)
}

// DroneResponse is the read model of one drone.
type DroneResponse struct {
	ID        int64
	Name      string
	Available bool
}

// NewDroneResponse flattens a drone aggregate.
func NewDroneResponse(d *drone.Drone) DroneResponse {
	return DroneResponse{
		ID:        d.ID().Int64(),
		Name:      d.Name(),
		Available: d.IsAvailable(),
	}
}
