package commands_test

import (
	"context"
	"testing"
	"time"

	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func droneAvailable(t *testing.T, e *engine, id kernel.ID) bool {
	t.Helper()
	drones, err := e.store.Drones(t.Context())
	require.NoError(t, err)
	for _, d := range drones {
		if d.ID() == id {
			return d.IsAvailable()
		}
	}
	t.Fatalf("drone %d not found", id)
	return false
}

func storedOrder(t *testing.T, e *engine, id kernel.ID) *order.Order {
	t.Helper()
	o, err := e.store.Order(t.Context(), id)
	require.NoError(t, err)
	return o
}

func TestLifecycle_SingleDroneTimersDriveOrderToDelivered(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon")
	require.NoError(t, err)

	o, err := e.order(ctx, "Ana", "chocolate")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(1), o.ID())
	assert.False(t, droneAvailable(t, e, 1))

	_, err = e.order(ctx, "Bo", "vanilla")
	require.ErrorIs(t, err, commands.ErrNoCapacity)

	orders, err := e.store.Orders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1, "rejected order is not stored")

	require.NoError(t, e.tick(ctx, 3*time.Second))
	assert.Equal(t, order.InFlight, storedOrder(t, e, 1).Status())
	assert.False(t, droneAvailable(t, e, 1))

	require.NoError(t, e.tick(ctx, 7*time.Second))
	delivered := storedOrder(t, e, 1)
	assert.Equal(t, order.Delivered, delivered.Status())
	require.NotNil(t, delivered.DeliveredAt())
	assert.Equal(t, epoch.Add(10*time.Second), *delivered.DeliveredAt())
	assert.True(t, droneAvailable(t, e, 1))

	next, err := e.order(ctx, "Bo", "vanilla")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(2), next.ID())
	assert.Equal(t, kernel.ID(1), next.DroneID())
}

func TestLifecycle_ManualCompletionBeatsTimers(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon", "Hawk")
	require.NoError(t, err)

	first, err := e.order(ctx, "Ana", "lemon")
	require.NoError(t, err)
	second, err := e.order(ctx, "Bo", "carrot")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(1), first.DroneID())
	assert.Equal(t, kernel.ID(2), second.DroneID())

	require.NoError(t, e.tick(ctx, time.Second))

	cmd, err := commands.NewCompleteOrderCommand(first.ID())
	require.NoError(t, err)
	completed, err := e.complete.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, completed.Status())
	assert.Equal(t, epoch.Add(time.Second), *completed.DeliveredAt())
	assert.True(t, droneAvailable(t, e, 1))
	assert.Empty(t, e.scheduler.pending(first.ID()), "timers of a delivered order are cancelled")

	third, err := e.order(ctx, "Cy", "mint")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(1), third.DroneID(), "freed drone has the lowest id")

	require.NoError(t, e.tick(ctx, 20*time.Second))
	assert.Equal(t, epoch.Add(time.Second), *storedOrder(t, e, first.ID()).DeliveredAt())
	assert.Equal(t, order.Delivered, storedOrder(t, e, second.ID()).Status())
}

func TestLifecycle_LateTimerNeverRegresses(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon")
	require.NoError(t, err)

	o, err := e.order(ctx, "Ana", "lemon")
	require.NoError(t, err)

	cmd, err := commands.NewCompleteOrderCommand(o.ID())
	require.NoError(t, err)
	_, err = e.complete.Handle(ctx, cmd)
	require.NoError(t, err)

	// A timer that raced the cancellation still fires.
	late, err := commands.NewAdvanceOrderCommand(o.ID(), order.InFlight)
	require.NoError(t, err)
	changed, err := e.advance.Handle(ctx, late)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, order.Delivered, storedOrder(t, e, o.ID()).Status())
}

func TestLifecycle_AdvanceUnknownOrder(t *testing.T) {
	e, err := newEngine("Falcon")
	require.NoError(t, err)

	cmd, err := commands.NewAdvanceOrderCommand(99, order.InFlight)
	require.NoError(t, err)
	_, err = e.advance.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLifecycle_UpdateStatusRules(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon")
	require.NoError(t, err)

	o, err := e.order(ctx, "Ana", "lemon")
	require.NoError(t, err)

	update := func(status string) (*order.Order, error) {
		cmd, cmdErr := commands.NewUpdateOrderStatusCommand(o.ID(), status)
		require.NoError(t, cmdErr)
		return e.update.Handle(ctx, cmd)
	}

	same, err := update("preparing")
	require.NoError(t, err, "same non-terminal status is a no-op")
	assert.Equal(t, order.Preparing, same.Status())

	moved, err := update("in-flight")
	require.NoError(t, err)
	assert.Equal(t, order.InFlight, moved.Status())
	assert.False(t, droneAvailable(t, e, 1))

	_, err = update("preparing")
	require.ErrorIs(t, err, order.ErrStatusTransitionNotAllowed)
	assert.Equal(t, order.InFlight, storedOrder(t, e, o.ID()).Status())

	_, err = update("delivered")
	require.NoError(t, err)
	assert.True(t, droneAvailable(t, e, 1))

	_, err = update("delivered")
	require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)

	missing, err := commands.NewUpdateOrderStatusCommand(42, "delivered")
	require.NoError(t, err)
	_, err = e.update.Handle(ctx, missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLifecycle_DeliveringKeepsDroneBusyForAnotherOpenOrder(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon")
	require.NoError(t, err)

	first, err := e.order(ctx, "Ana", "lemon")
	require.NoError(t, err)

	release, err := commands.NewSetDroneAvailabilityCommand(1, true)
	require.NoError(t, err)
	_, err = e.availability.Handle(ctx, release)
	require.NoError(t, err)

	second, err := e.order(ctx, "Bo", "plum")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(1), second.DroneID())

	cmd, err := commands.NewCompleteOrderCommand(first.ID())
	require.NoError(t, err)
	_, err = e.complete.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, droneAvailable(t, e, 1), "drone still carries the second order")
}

func TestSetDroneAvailability(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon", "Hawk")
	require.NoError(t, err)

	off, err := commands.NewSetDroneAvailabilityCommand(1, false)
	require.NoError(t, err)

	d, err := e.availability.Handle(ctx, off)
	require.NoError(t, err)
	assert.False(t, d.IsAvailable())

	d, err = e.availability.Handle(ctx, off)
	require.NoError(t, err, "setting the same value twice succeeds")
	assert.False(t, d.IsAvailable())

	o, err := e.order(ctx, "Ana", "lemon")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(2), o.DroneID())

	missing, err := commands.NewSetDroneAvailabilityCommand(9, true)
	require.NoError(t, err)
	_, err = e.availability.Handle(ctx, missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReset(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon", "Hawk")
	require.NoError(t, err)

	_, err = e.order(ctx, "Ana", "lemon")
	require.NoError(t, err)
	_, err = e.order(ctx, "Bo", "plum")
	require.NoError(t, err)

	require.NoError(t, e.reset.Handle(ctx, commands.NewResetCommand()))

	orders, err := e.store.Orders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.True(t, droneAvailable(t, e, 1))
	assert.True(t, droneAvailable(t, e, 2))
	assert.Empty(t, e.scheduler.due(epoch.Add(time.Hour)))

	o, err := e.order(ctx, "Cy", "mint")
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), o.ID(), "ids are not reused after reset")
}

type resetterFunc func(ctx context.Context) error

func (f resetterFunc) Reset(ctx context.Context) error {
	return f(ctx)
}

func TestReset_OrderCommittedDuringResetCannotTouchNewOrders(t *testing.T) {
	ctx := t.Context()
	e, err := newEngine("Falcon")
	require.NoError(t, err)

	// Given an order that commits after the timers were cancelled but before the store is cleared
	var stale *order.Order
	handler := commands.NewResetCommandHandler(e.scheduler, resetterFunc(func(ctx context.Context) error {
		var createErr error
		stale, createErr = e.order(ctx, "Stale", "plum")
		require.NoError(t, createErr)
		e.clock.Advance(2 * time.Second)
		return e.store.Reset(ctx)
	}))
	require.NoError(t, handler.Handle(ctx, commands.NewResetCommand()))
	require.Len(t, e.scheduler.pending(stale.ID()), 2)

	// When a fresh order is booked and the stale in-flight timer fires
	fresh, err := e.order(ctx, "Fresh", "mint")
	require.NoError(t, err)
	assert.Greater(t, fresh.ID().Int64(), stale.ID().Int64())
	assert.Len(t, e.scheduler.pending(fresh.ID()), 2)

	now := e.clock.Advance(time.Second)
	due := e.scheduler.due(now)
	require.Len(t, due, 1)
	assert.Equal(t, stale.ID(), due[0].orderID)

	cmd, err := commands.NewAdvanceOrderCommand(due[0].orderID, due[0].target)
	require.NoError(t, err)
	_, err = e.advance.Handle(ctx, cmd)

	// Then the stale timer misses and the fresh order keeps its own schedule
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	stored, err := e.store.Order(ctx, fresh.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, stored.Status())
}

func TestResetCommandHandler_CancelsTimersBeforeReset(t *testing.T) {
	ctx := t.Context()
	scheduler := new(MockScheduler)
	resetter := new(MockResetter)

	var cancelled bool
	scheduler.On("CancelAll").Run(func(_ mock.Arguments) { cancelled = true }).Once()
	resetter.On("Reset", mock.Anything).Run(func(_ mock.Arguments) {
		assert.True(t, cancelled)
	}).Return(nil).Once()

	handler := commands.NewResetCommandHandler(scheduler, resetter)
	require.NoError(t, handler.Handle(ctx, commands.NewResetCommand()))

	scheduler.AssertExpectations(t)
	resetter.AssertExpectations(t)
}

// Property: whatever mix of orders, completions and timer ticks happens, open
// orders never outnumber drones, each open order's drone is unavailable, and
// ids keep increasing.
func TestLifecycle_CapacityInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := t.Context()
		names := []string{"Falcon", "Hawk", "Sparrow", "Swift", "Kite"}
		fleetSize := rapid.IntRange(1, len(names)).Draw(rt, "fleetSize")

		e, err := newEngine(names[:fleetSize]...)
		require.NoError(rt, err)

		var lastID kernel.ID
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")

		for range steps {
			switch rapid.IntRange(0, 2).Draw(rt, "action") {
			case 0:
				o, createErr := e.order(ctx, "Ana", "lemon")
				if createErr != nil {
					require.ErrorIs(rt, createErr, commands.ErrNoCapacity)
					break
				}
				require.Greater(rt, o.ID(), lastID)
				lastID = o.ID()
			case 1:
				if lastID == 0 {
					break
				}
				id := kernel.ID(rapid.Int64Range(1, lastID.Int64()).Draw(rt, "orderID"))
				cmd, cmdErr := commands.NewCompleteOrderCommand(id)
				require.NoError(rt, cmdErr)
				if _, completeErr := e.complete.Handle(ctx, cmd); completeErr != nil {
					require.ErrorIs(rt, completeErr, order.ErrOrderAlreadyDelivered)
				}
			case 2:
				seconds := rapid.IntRange(1, 12).Draw(rt, "seconds")
				require.NoError(rt, e.tick(ctx, time.Duration(seconds)*time.Second))
			}

			orders, listErr := e.store.Orders(ctx)
			require.NoError(rt, listErr)
			drones, listErr := e.store.Drones(ctx)
			require.NoError(rt, listErr)

			available := make(map[kernel.ID]bool, len(drones))
			for _, d := range drones {
				available[d.ID()] = d.IsAvailable()
			}

			open := 0
			for _, o := range orders {
				if o.IsDelivered() {
					continue
				}
				open++
				require.False(rt, available[o.DroneID()], "open order %d has an available drone", o.ID())
			}
			require.LessOrEqual(rt, open, len(drones))
		}
	})
}
