package order

import (
	"errors"
	"fmt"

	"droncakes/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyDelivered is returned for any transition requested on a delivered order.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
	// ErrStatusTransitionNotAllowed is returned when a transition would move an order backward.
	ErrStatusTransitionNotAllowed = errors.New("status transition is not allowed")
)

// Status represents the lifecycle state of an order. Values are ordered:
// a transition is forward when the target compares greater than the source.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Preparing is the initial status; the cake is being made and the drone is reserved.
	Preparing

	// InFlight indicates the drone has left with the order.
	InFlight

	// Delivered is the terminal status; the drone has been released.
	Delivered
)

var statusNames = map[Status]string{
	Preparing: "preparing",
	InFlight:  "in-flight",
	Delivered: "delivered",
}

// ParseStatus converts a wire name into a Status.
// Unrecognized names fail with errs.ValueIsInvalidError.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Preparing, InFlight, Delivered}
}

// Validate checks that the status is one of the lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// CanTransitionTo validates a move from s to next.
//
// Valid transitions:
//   - any forward move (preparing -> in-flight, preparing -> delivered, in-flight -> delivered)
//   - staying in the same non-terminal status (no-op)
//
// Invalid transitions:
//   - anything out of delivered (ErrOrderAlreadyDelivered)
//   - backward moves (ErrStatusTransitionNotAllowed)
//   - unknown targets (errs.ValueIsInvalidError)
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return ErrOrderAlreadyDelivered
	}

	if next < s {
		return fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, s, next)
	}

	return nil
}
