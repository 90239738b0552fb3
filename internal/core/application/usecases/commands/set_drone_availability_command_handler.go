package commands

import (
	"context"

	"droncakes/internal/core/domain/model/drone"

	"go.opentelemetry.io/otel/attribute"
)

// SetDroneAvailabilityCommandHandler updates one registry entry. Setting the
// value the drone already has is a successful no-op.
type SetDroneAvailabilityCommandHandler struct {
	uowFactory DroneUoWFactory
}

func NewSetDroneAvailabilityCommandHandler(uowFactory DroneUoWFactory) SetDroneAvailabilityCommandHandler {
	return SetDroneAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle returns the drone after the change, or errs.ErrObjectNotFound.
func (h SetDroneAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetDroneAvailabilityCommand,
) (*drone.Drone, error) {
	ctx, span := tracer.Start(ctx, "SetDroneAvailability")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(
		attribute.Int64("drone.id", cmd.DroneID().Int64()),
		attribute.Bool("drone.available", cmd.Available()),
	)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fail(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	d, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return nil, fail(span, err)
	}

	if d.IsAvailable() == cmd.Available() {
		return d, nil
	}

	d.SetAvailability(cmd.Available())

	if err = droneRepo.Update(ctx, d); err != nil {
		return nil, fail(span, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fail(span, err)
	}

	return d, nil
}
