package commands_test

import (
	"testing"

	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	for _, name := range []string{"preparing", "in-flight", "delivered"} {
		cmd, err := commands.NewUpdateOrderStatusCommand(3, name)
		require.NoError(t, err, name)
		assert.Equal(t, kernel.ID(3), cmd.OrderID())
		assert.Equal(t, name, cmd.Status().String())
	}
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(3, "lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(0, order.Delivered.String())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCompleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewCompleteOrderCommand(5)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(5), cmd.OrderID())

	_, err = commands.NewCompleteOrderCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAdvanceOrderCommand(t *testing.T) {
	cmd, err := commands.NewAdvanceOrderCommand(5, order.InFlight)
	require.NoError(t, err)
	assert.Equal(t, order.InFlight, cmd.Target())

	_, err = commands.NewAdvanceOrderCommand(5, order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSetDroneAvailabilityCommand(t *testing.T) {
	cmd, err := commands.NewSetDroneAvailabilityCommand(2, false)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(2), cmd.DroneID())
	assert.False(t, cmd.Available())

	_, err = commands.NewSetDroneAvailabilityCommand(0, true)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCommands_ZeroValuesAreNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CompleteOrderCommand{}.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.AdvanceOrderCommand{}.Validate(), commands.ErrAdvanceOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.SetDroneAvailabilityCommand{}.Validate(), commands.ErrSetDroneAvailabilityCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ResetCommand{}.Validate(), commands.ErrResetCommandIsNotConstructed)
}
