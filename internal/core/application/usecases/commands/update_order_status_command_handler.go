package commands

import (
	"context"

	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// UpdateOrderStatusCommandHandler applies a manual status change.
//
// Delivering an order stamps DeliveredAt, frees its drone in the same unit of
// work, and drops the order's pending timers once the change is committed.
//
// Example:
//
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, order.ErrOrderAlreadyDelivered):
//	    // terminal status, nothing changed
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	scheduler  StatusScheduler
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	scheduler StatusScheduler,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		scheduler:  scheduler,
	}
}

// Handle returns the order after the change. Setting the current non-terminal
// status again succeeds without touching the store.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	ctx, span := tracer.Start(ctx, "UpdateOrderStatus")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(
		attribute.Int64("order.id", cmd.OrderID().Int64()),
		attribute.String("order.status", cmd.Status().String()),
	)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fail(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, fail(span, err)
	}

	changed, err := o.ChangeStatus(cmd.Status(), h.clock.Now())
	if err != nil {
		return nil, fail(span, err)
	}

	if !changed {
		return o, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, fail(span, err)
	}

	if o.IsDelivered() {
		if err = releaseDrone(ctx, uow, o); err != nil {
			return nil, fail(span, err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fail(span, err)
	}

	if o.IsDelivered() {
		h.scheduler.Cancel(o.ID())
	}

	return o, nil
}
