package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Wire types of openapi.json.
type (
	Drone struct {
		Id        int64  `json:"id"`
		Name      string `json:"name"`
		Available bool   `json:"available"`
	}

	Order struct {
		Id                  int64      `json:"id"`
		CustomerName        string     `json:"customerName"`
		Flavor              string     `json:"flavor"`
		DroneId             int64      `json:"droneId"`
		DroneName           string     `json:"droneName"`
		Status              string     `json:"status"`
		CreatedAt           time.Time  `json:"createdAt"`
		EstimatedDeliveryAt time.Time  `json:"estimatedDeliveryAt"`
		DeliveredAt         *time.Time `json:"deliveredAt,omitempty"`
	}

	NewOrder struct {
		CustomerName string `json:"customerName"`
		Flavor       string `json:"flavor"`
	}

	StatusUpdate struct {
		Status string `json:"status"`
	}

	AvailabilityUpdate struct {
		Available bool `json:"available"`
	}

	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

// CreateOrderParams carries the optional headers of POST /api/v1/orders.
type CreateOrderParams struct {
	IdempotencyKey *string
}

// ServerInterface lists one method per operation of openapi.json.
type ServerInterface interface {
	// GET /health
	GetHealth(ctx echo.Context) error
	// GET /api/v1/drones
	GetDrones(ctx echo.Context) error
	// PATCH /api/v1/drones/{id}
	SetDroneAvailability(ctx echo.Context, id int64) error
	// GET /api/v1/orders
	GetOrders(ctx echo.Context) error
	// POST /api/v1/orders
	CreateOrder(ctx echo.Context, params CreateOrderParams) error
	// GET /api/v1/orders/{id}
	GetOrder(ctx echo.Context, id int64) error
	// PATCH /api/v1/orders/{id}/status
	UpdateOrderStatus(ctx echo.Context, id int64) error
	// POST /api/v1/orders/{id}/complete
	CompleteOrder(ctx echo.Context, id int64) error
	// POST /api/v1/reset
	Reset(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) GetDrones(ctx echo.Context) error {
	return w.Handler.GetDrones(ctx)
}

func (w *ServerInterfaceWrapper) SetDroneAvailability(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetDroneAvailability(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var params CreateOrderParams

	if values, found := ctx.Request().Header[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		if n := len(values); n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}

		var key string
		err := runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", values[0], &key,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}
		params.IdempotencyKey = &key
	}

	return w.Handler.CreateOrder(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) Reset(ctx echo.Context) error {
	return w.Handler.Reset(ctx)
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation except Reset.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", wrapper.GetHealth)
	router.GET("/api/v1/drones", wrapper.GetDrones)
	router.PATCH("/api/v1/drones/:id", wrapper.SetDroneAvailability)
	router.GET("/api/v1/orders", wrapper.GetOrders)
	router.POST("/api/v1/orders", wrapper.CreateOrder)
	router.GET("/api/v1/orders/:id", wrapper.GetOrder)
	router.PATCH("/api/v1/orders/:id/status", wrapper.UpdateOrderStatus)
	router.POST("/api/v1/orders/:id/complete", wrapper.CompleteOrder)
}

// RegisterResetHandler adds POST /api/v1/reset.
func RegisterResetHandler(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/reset", wrapper.Reset)
}
