package drone

import (
	"errors"
	"fmt"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/pkg/errs"
)

// MaxFleetSize bounds the seed fleet.
const MaxFleetSize = 1000

// NewFleet creates the seed fleet from display names. Drones are numbered
// from 1 in the order the names are given, which is also the registry order.
func NewFleet(names ...string) ([]*Drone, error) {
	if len(names) == 0 || len(names) > MaxFleetSize {
		return nil, errs.NewValueIsOutOfRangeError("fleet size", len(names), 1, MaxFleetSize)
	}

	fleet := make([]*Drone, 0, len(names))
	var errList []error
	for i, name := range names {
		d, err := NewDrone(kernel.ID(i+1), name)
		if err != nil {
			errList = append(errList, fmt.Errorf("drone #%d: %w", i+1, err))
			continue
		}
		fleet = append(fleet, d)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return fleet, nil
}
