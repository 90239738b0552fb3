package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/pkg/errs"
	"droncakes/internal/pkg/guard"
)

var (
	// ErrCustomerNameIsRequired is returned when the customer name is blank.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrFlavorIsRequired is returned when the flavor is blank.
	ErrFlavorIsRequired = errs.NewValueIsRequiredError("flavor")
	// ErrDroneIsNotReserved is returned when an order is bound to a drone that was not reserved for it.
	ErrDroneIsNotReserved = errors.New("drone must be reserved before it is bound to an order")
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a cake delivery order. It is the aggregate root of the
// delivery lifecycle.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-empty customer name and flavor
//   - Is bound to exactly one drone for its entire life
//   - Status only moves forward; delivered is terminal
//   - DeliveredAt is set if and only if the status is delivered
type Order struct {
	id           kernel.ID
	customerName string
	flavor       string

	// droneID and droneName are a snapshot of the drone at creation time
	droneID   kernel.ID
	droneName string

	status              Status
	createdAt           time.Time
	estimatedDeliveryAt time.Time
	deliveredAt         *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Preparing status bound to d.
//
// The drone must already be reserved (unavailable): selection and reservation
// happen before the order exists, inside the same unit of work.
//
// Example:
//
//	d := fleet[0]
//	if err := d.Reserve(); err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(1, "Ana", "chocolate", d, now, 15*time.Minute)
func NewOrder(
	id kernel.ID,
	customerName string,
	flavor string,
	d *drone.Drone,
	createdAt time.Time,
	leadTime time.Duration,
) (*Order, error) {
	o := &Order{
		status:              Preparing,
		createdAt:           createdAt,
		estimatedDeliveryAt: createdAt.Add(leadTime),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setFlavor(flavor),
		o.setDrone(d),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from its stored representation.
func RestoreOrder(
	id kernel.ID,
	customerName string,
	flavor string,
	droneID kernel.ID,
	droneName string,
	status Status,
	createdAt time.Time,
	estimatedDeliveryAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		droneName:           droneName,
		createdAt:           createdAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setFlavor(flavor),
		droneID.Validate(),
		o.setStatus(status, deliveredAt),
	); err != nil {
		return nil, err
	}
	o.droneID = droneID

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Flavor() string {
	return o.flavor
}

// DroneID returns the identifier of the drone bound to the order.
func (o *Order) DroneID() kernel.ID {
	return o.droneID
}

// DroneName returns the drone name as it was when the order was created.
func (o *Order) DroneName() string {
	return o.droneName
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) EstimatedDeliveryAt() time.Time {
	return o.estimatedDeliveryAt
}

// DeliveredAt returns the delivery time, or nil while the order is not delivered.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	t := *o.deliveredAt
	return &t
}

// IsDelivered reports whether the order reached its terminal status.
func (o *Order) IsDelivered() bool {
	return o.status.IsTerminal()
}

// ChangeStatus moves the order to next. It reports whether the status actually
// changed; staying in the current non-terminal status is a successful no-op.
// Reaching Delivered stamps DeliveredAt with now. Releasing the drone is the
// caller's job, since the drone is a separate aggregate.
func (o *Order) ChangeStatus(next Status, now time.Time) (bool, error) {
	if err := o.status.CanTransitionTo(next); err != nil {
		return false, err
	}

	if next == o.status {
		return false, nil
	}

	o.status = next
	if next == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}

	return true, nil
}

// Deliver is ChangeStatus(Delivered, now).
func (o *Order) Deliver(now time.Time) error {
	_, err := o.ChangeStatus(Delivered, now)
	return err
}

// Advance is the scheduled form of ChangeStatus: when the order is already at
// or past target it returns false and leaves the order untouched, so a late
// timer can never move an order backward or re-deliver it.
func (o *Order) Advance(target Status, now time.Time) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	if o.status >= target {
		return false, nil
	}

	return o.ChangeStatus(target, now)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setFlavor(flavor string) error {
	if strings.TrimSpace(flavor) == "" {
		return ErrFlavorIsRequired
	}
	o.flavor = flavor
	return nil
}

func (o *Order) setDrone(d *drone.Drone) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.IsAvailable() {
		return fmt.Errorf("%w: drone %d", ErrDroneIsNotReserved, d.ID())
	}
	o.droneID = d.ID()
	o.droneName = d.Name()
	return nil
}

func (o *Order) setStatus(status Status, deliveredAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status.IsTerminal() != (deliveredAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveredAt",
			fmt.Errorf("must be set exactly when status is %s", Delivered),
		)
	}
	o.status = status
	if deliveredAt != nil {
		t := *deliveredAt
		o.deliveredAt = &t
	}
	return nil
}
