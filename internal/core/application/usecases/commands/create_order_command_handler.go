package commands

import (
	"context"
	"errors"

	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/core/domain/services"
	"droncakes/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// ErrNoCapacity is returned when an order arrives while every drone is busy.
// It is a hard rejection: nothing is stored and nothing is queued.
var ErrNoCapacity = services.ErrNoFreeDrones

// CreateOrderCommandHandler binds a new order to a free drone and plans its
// automatic transitions.
//
// Drone selection, drone reservation, id allocation and order insertion happen
// inside one unit of work, so two concurrent orders can never book the same
// drone. Scheduling happens only after the commit succeeded.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	schedule   services.DeliverySchedule
	scheduler  StatusScheduler
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	schedule services.DeliverySchedule,
	scheduler StatusScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		schedule:   schedule,
		scheduler:  scheduler,
	}
}

// Handle creates the order in preparing status and returns it.
// Returns ErrNoCapacity if no drone is available.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	ctx, span := tracer.Start(ctx, "CreateOrder")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return nil, fail(span, err)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fail(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	orderRepo := uow.OrderRepository()

	drones, err := droneRepo.List(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	selected, err := services.NewDroneDispatcher().Dispatch(drones)
	if errors.Is(err, services.ErrNoFreeDrones) {
		return nil, fail(span, ErrNoCapacity)
	}
	if err != nil {
		return nil, fail(span, err)
	}

	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	created, err := order.NewOrder(id, cmd.CustomerName(), cmd.Flavor(), selected, h.clock.Now(), h.schedule.LeadTime)
	if err != nil {
		return nil, fail(span, err)
	}

	if err = droneRepo.Update(ctx, selected); err != nil {
		return nil, fail(span, err)
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, fail(span, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fail(span, err)
	}

	for _, planned := range h.schedule.Plan(created.CreatedAt()) {
		h.scheduler.Schedule(created.ID(), planned.At, planned.Target)
	}

	span.SetAttributes(
		attribute.Int64("order.id", created.ID().Int64()),
		attribute.Int64("drone.id", created.DroneID().Int64()),
	)

	return created, nil
}
