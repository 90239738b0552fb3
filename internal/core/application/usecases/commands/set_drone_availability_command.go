package commands

import (
	"errors"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/pkg/guard"
)

var ErrSetDroneAvailabilityCommandIsNotConstructed = errors.New(
	"SetDroneAvailabilityCommand must be created via NewSetDroneAvailabilityCommand constructor",
)

// SetDroneAvailabilityCommand flips a drone's availability flag by hand.
type SetDroneAvailabilityCommand struct { //nolint:recvcheck //using for validation
	droneID   kernel.ID
	available bool

	guard guard.ConstructorGuard
}

func NewSetDroneAvailabilityCommand(droneID kernel.ID, available bool) (SetDroneAvailabilityCommand, error) {
	if err := droneID.Validate(); err != nil {
		return SetDroneAvailabilityCommand{}, err
	}

	return SetDroneAvailabilityCommand{
		droneID:   droneID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetDroneAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDroneAvailabilityCommandIsNotConstructed)
}

func (c SetDroneAvailabilityCommand) DroneID() kernel.ID {
	return c.droneID
}

func (c SetDroneAvailabilityCommand) Available() bool {
	return c.available
}
