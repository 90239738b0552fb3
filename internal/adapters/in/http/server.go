package http

import (
	"log/slog"
	"net/http"

	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/application/usecases/queries"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateStatusHandler    commands.UpdateOrderStatusCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	setAvailabilityHandler commands.SetDroneAvailabilityCommandHandler
	resetHandler           commands.ResetCommandHandler

	// Query handlers
	getAllDronesHandler queries.GetAllDronesQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler

	idempotency *IdempotencyCache
	logger      *slog.Logger
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	UpdateStatus    commands.UpdateOrderStatusCommandHandler
	CompleteOrder   commands.CompleteOrderCommandHandler
	SetAvailability commands.SetDroneAvailabilityCommandHandler
	Reset           commands.ResetCommandHandler

	GetAllDrones queries.GetAllDronesQueryHandler
	GetAllOrders queries.GetAllOrdersQueryHandler
	GetOrder     queries.GetOrderQueryHandler
}

func NewServer(handlers Handlers, idempotency *IdempotencyCache, logger *slog.Logger) *Server {
	return &Server{
		createOrderHandler:     handlers.CreateOrder,
		updateStatusHandler:    handlers.UpdateStatus,
		completeOrderHandler:   handlers.CompleteOrder,
		setAvailabilityHandler: handlers.SetAvailability,
		resetHandler:           handlers.Reset,
		getAllDronesHandler:    handlers.GetAllDrones,
		getAllOrdersHandler:    handlers.GetAllOrders,
		getOrderHandler:        handlers.GetOrder,
		idempotency:            idempotency,
		logger:                 logger.With("component", "http_server"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetDrones handles GET /api/v1/drones - lists the fleet.
func (s *Server) GetDrones(ctx echo.Context) error {
	drones, err := s.getAllDronesHandler.Handle(ctx.Request().Context(), queries.NewGetAllDronesQuery())
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]Drone, len(drones))
	for i, d := range drones {
		response[i] = toDrone(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetDroneAvailability handles PATCH /api/v1/drones/{id}.
func (s *Server) SetDroneAvailability(ctx echo.Context, id int64) error {
	var body AvailabilityUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetDroneAvailabilityCommand(kernel.ID(id), body.Available)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	d, err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toDrone(queries.NewDroneResponse(d)))
}

// GetOrders handles GET /api/v1/orders - lists every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - books a drone for a new order.
// A repeated Idempotency-Key returns the first order, in its current state, with 200.
func (s *Server) CreateOrder(ctx echo.Context, params CreateOrderParams) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerName, body.Flavor)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var created *order.Order
	create := func() (kernel.ID, error) {
		var createErr error
		created, createErr = s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
		if createErr != nil {
			return 0, createErr
		}
		return created.ID(), nil
	}

	if params.IdempotencyKey == nil || *params.IdempotencyKey == "" || s.idempotency == nil {
		if _, err = create(); err != nil {
			return respondError(ctx, s.logger, err)
		}
		return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
	}

	id, replayed, err := s.idempotency.Do(*params.IdempotencyKey, create)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if !replayed {
		return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
	}

	// Replays report the order as it is now, not as it was created.
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	current, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	ctx.Response().Header().Set("Idempotent-Replayed", "true")
	return ctx.JSON(http.StatusOK, toOrder(current))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int64) error {
	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(id), body.Status)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	o, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// CompleteOrder handles POST /api/v1/orders/{id}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCompleteOrderCommand(kernel.ID(id))
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	o, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// Reset handles POST /api/v1/reset. Registered only when enabled in config.
func (s *Server) Reset(ctx echo.Context) error {
	if err := s.resetHandler.Handle(ctx.Request().Context(), commands.NewResetCommand()); err != nil {
		return respondError(ctx, s.logger, err)
	}

	if s.idempotency != nil {
		s.idempotency.Flush()
	}

	s.logger.InfoContext(ctx.Request().Context(), "Service reset to seed state")

	return ctx.NoContent(http.StatusNoContent)
}

func toDrone(d queries.DroneResponse) Drone {
	return Drone{
		Id:        d.ID,
		Name:      d.Name,
		Available: d.Available,
	}
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		Id:                  o.ID,
		CustomerName:        o.CustomerName,
		Flavor:              o.Flavor,
		DroneId:             o.DroneID,
		DroneName:           o.DroneName,
		Status:              o.Status,
		CreatedAt:           o.CreatedAt,
		EstimatedDeliveryAt: o.EstimatedDeliveryAt,
		DeliveredAt:         o.DeliveredAt,
	}
}
