package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"droncakes/internal/core/application/usecases/queries"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) *CompositionRoot {
	t.Helper()

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)

	root, err := NewCompositionRoot(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return root
}

func Test_CompositionRootSeedsFleet(t *testing.T) {
	root := newTestRoot(t)

	drones, err := root.CreateGetAllDronesQueryHandler().Handle(context.Background(), queries.NewGetAllDronesQuery())
	require.NoError(t, err)

	require.Len(t, drones, 3)
	assert.Equal(t, "Falcon", drones[0].Name)
	assert.True(t, drones[0].Available)
}

func Test_CompositionRootServesHealth(t *testing.T) {
	root := newTestRoot(t)

	e, err := newRouter(root)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
