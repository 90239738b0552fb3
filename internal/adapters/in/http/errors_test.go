package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{order.ErrCustomerNameIsRequired, http.StatusBadRequest},
		{errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{errs.NewValueIsOutOfRangeError("fleet", 0, 1, 10), http.StatusBadRequest},
		{errs.NewObjectNotFoundError("order", 4), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", commands.ErrNoCapacity), http.StatusConflict},
		{order.ErrOrderAlreadyDelivered, http.StatusConflict},
		{order.ErrStatusTransitionNotAllowed, http.StatusConflict},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
