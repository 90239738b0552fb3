package commands

import (
	"context"

	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// AdvanceOrderCommandHandler moves an order forward on behalf of a timer.
//
// A timer that fires on an order already at or past its target changes
// nothing and reports success. This keeps late timers harmless when an
// operator moved the order ahead of schedule.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewAdvanceOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle reports whether the order changed.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (bool, error) {
	ctx, span := tracer.Start(ctx, "AdvanceOrder")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return false, fail(span, err)
	}

	span.SetAttributes(
		attribute.Int64("order.id", cmd.OrderID().Int64()),
		attribute.String("order.target", cmd.Target().String()),
	)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, fail(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, fail(span, err)
	}

	changed, err := o.Advance(cmd.Target(), h.clock.Now())
	if err != nil {
		return false, fail(span, err)
	}
	if !changed {
		return false, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, fail(span, err)
	}

	if o.Status() == order.Delivered {
		if err = releaseDrone(ctx, uow, o); err != nil {
			return false, fail(span, err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, fail(span, err)
	}

	return true, nil
}
