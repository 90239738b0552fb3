package commands

import (
	"context"
	"errors"

	"droncakes/internal/pkg/guard"
)

var ErrResetCommandIsNotConstructed = errors.New(
	"ResetCommand must be created via NewResetCommand constructor",
)

// ResetCommand returns the service to its seed state. Meant for tests and demos.
type ResetCommand struct {
	guard guard.ConstructorGuard
}

func NewResetCommand() ResetCommand {
	return ResetCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetCommand) Validate() error {
	return c.guard.Validate(ErrResetCommandIsNotConstructed)
}

// ResetCommandHandler cancels every pending timer, then resets the store.
// The store never reuses order ids, so a timer planned by an order that
// commits in between only finds a missing order and is dropped with a log line.
type ResetCommandHandler struct {
	scheduler StatusScheduler
	resetter  FleetResetter
}

func NewResetCommandHandler(scheduler StatusScheduler, resetter FleetResetter) ResetCommandHandler {
	return ResetCommandHandler{
		scheduler: scheduler,
		resetter:  resetter,
	}
}

func (h ResetCommandHandler) Handle(ctx context.Context, cmd ResetCommand) error {
	ctx, span := tracer.Start(ctx, "Reset")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return fail(span, err)
	}

	h.scheduler.CancelAll()

	if err := h.resetter.Reset(ctx); err != nil {
		return fail(span, err)
	}

	return nil
}
