package services_test

import (
	"testing"
	"time"

	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/core/domain/services"
	"droncakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverySchedule_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, services.DefaultDeliverySchedule().Validate())
	})

	tests := []struct {
		name     string
		schedule services.DeliverySchedule
	}{
		{name: "zero in-flight delay", schedule: services.DeliverySchedule{InFlightAfter: 0, DeliveredAfter: time.Second}},
		{name: "delivered before in-flight", schedule: services.DeliverySchedule{InFlightAfter: 5 * time.Second, DeliveredAfter: 3 * time.Second}},
		{name: "equal delays", schedule: services.DeliverySchedule{InFlightAfter: time.Second, DeliveredAfter: time.Second}},
		{name: "negative lead time", schedule: services.DeliverySchedule{InFlightAfter: time.Second, DeliveredAfter: 2 * time.Second, LeadTime: -time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.schedule.Validate(), errs.ErrValueIsOutOfRange)
		})
	}
}

func TestDeliverySchedule_Plan(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	plan := services.DefaultDeliverySchedule().Plan(createdAt)

	require.Len(t, plan, 2)
	assert.Equal(t, services.PlannedTransition{At: createdAt.Add(3 * time.Second), Target: order.InFlight}, plan[0])
	assert.Equal(t, services.PlannedTransition{At: createdAt.Add(10 * time.Second), Target: order.Delivered}, plan[1])
}
