package services

import (
	"errors"
	"time"

	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"
)

// Default timings: in flight 3s after creation, delivered 10s after creation,
// and a customer facing estimate of 15 minutes.
const (
	DefaultInFlightAfter  = 3 * time.Second
	DefaultDeliveredAfter = 10 * time.Second
	DefaultLeadTime       = 15 * time.Minute
)

// PlannedTransition is an automatic status change due at a point in time.
type PlannedTransition struct {
	At     time.Time
	Target order.Status
}

// DeliverySchedule is the timing policy of an order's lifecycle. Both delays
// are measured from the order's creation time.
type DeliverySchedule struct {
	InFlightAfter  time.Duration
	DeliveredAfter time.Duration
	LeadTime       time.Duration
}

// DefaultDeliverySchedule returns the production timings.
func DefaultDeliverySchedule() DeliverySchedule {
	return DeliverySchedule{
		InFlightAfter:  DefaultInFlightAfter,
		DeliveredAfter: DefaultDeliveredAfter,
		LeadTime:       DefaultLeadTime,
	}
}

// Validate requires 0 < InFlightAfter < DeliveredAfter and a non-negative lead time.
func (s DeliverySchedule) Validate() error {
	var errList []error

	if s.InFlightAfter <= 0 {
		errList = append(errList,
			errs.NewValueIsOutOfRangeError("in-flight delay", s.InFlightAfter, "0s (exclusive)", s.DeliveredAfter))
	}
	if s.DeliveredAfter <= s.InFlightAfter {
		errList = append(errList,
			errs.NewValueIsOutOfRangeErrorWithCause("delivered delay", s.DeliveredAfter, s.InFlightAfter, "-",
				errors.New("must be greater than the in-flight delay")))
	}
	if s.LeadTime < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("lead time", s.LeadTime, "0s", "-"))
	}

	return errors.Join(errList...)
}

// Plan returns the automatic transitions of an order created at createdAt,
// in firing order.
func (s DeliverySchedule) Plan(createdAt time.Time) []PlannedTransition {
	return []PlannedTransition{
		{At: createdAt.Add(s.InFlightAfter), Target: order.InFlight},
		{At: createdAt.Add(s.DeliveredAfter), Target: order.Delivered},
	}
}
