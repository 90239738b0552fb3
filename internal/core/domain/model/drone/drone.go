package drone

import (
	"errors"
	"fmt"
	"strings"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/pkg/errs"
	"droncakes/internal/pkg/guard"
)

// Domain errors for drone operations.
var (
	// ErrNameIsRequired is returned when a drone is created without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDroneIsBusy is returned when reserving a drone that is already bound to an order.
	ErrDroneIsBusy = errors.New("drone is busy")
	// ErrDroneIsNotConstructed is returned when using an improperly initialized Drone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
)

// Drone represents one delivery unit of the fleet.
//
// Business rules:
//   - Drone must have a valid ID and a non-empty name
//   - A new drone is available
//   - Reserve fails on a busy drone; Release and SetAvailability are idempotent
type Drone struct {
	// id is stable for the lifetime of the process
	id kernel.ID
	// name is shown to customers next to their order
	name string
	// available is false while the drone carries a non-delivered order
	available bool
	guard     guard.ConstructorGuard
}

// NewDrone creates an available drone.
//
// Example:
//
//	d, err := drone.NewDrone(1, "Falcon")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.IsAvailable()) // true
func NewDrone(id kernel.ID, name string) (*Drone, error) {
	return RestoreDrone(id, name, true)
}

// RestoreDrone rebuilds a drone from its stored representation.
func RestoreDrone(id kernel.ID, name string, available bool) (*Drone, error) {
	d := &Drone{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the drone was created through its constructor.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares drones by identifier.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drone identifier.
func (d *Drone) ID() kernel.ID {
	return d.id
}

// Name returns the display name.
func (d *Drone) Name() string {
	return d.name
}

// IsAvailable reports whether the drone can take a new order.
func (d *Drone) IsAvailable() bool {
	return d.available
}

// Reserve binds the drone to an order by marking it unavailable.
// It returns ErrDroneIsBusy if the drone is already reserved.
func (d *Drone) Reserve() error {
	if !d.available {
		return fmt.Errorf("%w: drone %d", ErrDroneIsBusy, d.id)
	}
	d.available = false
	return nil
}

// Release frees the drone. Releasing an available drone is a no-op.
func (d *Drone) Release() {
	d.available = true
}

// SetAvailability overrides the availability flag.
func (d *Drone) SetAvailability(available bool) {
	d.available = available
}

func (d *Drone) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
