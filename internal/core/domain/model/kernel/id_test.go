package kernel_test

import (
	"testing"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("accepts positive values", func(t *testing.T) {
		id, err := kernel.NewID(7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Int64())
		assert.Equal(t, "7", id.String())
	})

	t.Run("rejects zero and negative values", func(t *testing.T) {
		for _, raw := range []int64{0, -1, -100} {
			_, err := kernel.NewID(raw)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    kernel.ID
		wantErr bool
	}{
		{name: "decimal", input: "12", want: 12},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kernel.ParseID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestID_IsEqual(t *testing.T) {
	assert.True(t, kernel.ID(3).IsEqual(kernel.ID(3)))
	assert.False(t, kernel.ID(3).IsEqual(kernel.ID(4)))
}
