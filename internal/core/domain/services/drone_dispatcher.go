package services

import (
	"errors"

	"droncakes/internal/core/domain/model/drone"
)

// ErrNoFreeDrones is returned when every drone of the fleet is bound to an open order.
var ErrNoFreeDrones = errors.New("no delivery units available")

// DroneDispatcher picks the drone that a new order is bound to.
//
// Selection rule: the available drone with the lowest identifier. The rule does
// not depend on the order of the slice it is given, so assignment is
// deterministic for a fixed sequence of operations.
//
// Example usage:
//
//	drones, _ := droneRepo.List(ctx)
//	d, err := services.NewDroneDispatcher().Dispatch(drones)
//	if errors.Is(err, services.ErrNoFreeDrones) {
//	    // reject the order, nothing was reserved
//	}
type DroneDispatcher struct{}

func NewDroneDispatcher() DroneDispatcher {
	return DroneDispatcher{}
}

// Dispatch reserves and returns the selected drone. The caller must persist the
// returned drone in the same unit of work that stores the new order.
func (DroneDispatcher) Dispatch(drones []*drone.Drone) (*drone.Drone, error) {
	selected, err := FindAvailable(drones)
	if err != nil {
		return nil, err
	}

	if err = selected.Reserve(); err != nil {
		return nil, err
	}

	return selected, nil
}

// FindAvailable returns the available drone with the lowest identifier without
// reserving it, or ErrNoFreeDrones.
func FindAvailable(drones []*drone.Drone) (*drone.Drone, error) {
	var best *drone.Drone

	for _, d := range drones {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		if !d.IsAvailable() {
			continue
		}

		if best == nil || d.ID() < best.ID() {
			best = d
		}
	}

	if best == nil {
		return nil, ErrNoFreeDrones
	}

	return best, nil
}
