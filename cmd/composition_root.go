package cmd

import (
	"log/slog"

	apihttp "droncakes/internal/adapters/in/http"
	"droncakes/internal/adapters/out/clock"
	"droncakes/internal/adapters/out/memory"
	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/application/usecases/queries"
	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/ports"
	"droncakes/internal/jobs"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	clock      ports.Clock
	scheduler  *jobs.StatusScheduler
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	fleet, err := drone.NewFleet(cfg.DroneFleet...)
	if err != nil {
		return nil, err
	}

	store, err := memory.NewStore(fleet)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		clock:      clock.NewSystem(),
	}
	c.scheduler = jobs.NewStatusScheduler(c.CreateAdvanceOrderCommandHandler(), logger)

	return c, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.clock, c.cfg.Schedule, c.scheduler)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uow(), c.clock, c.scheduler)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.CreateUpdateOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateSetDroneAvailabilityCommandHandler() commands.SetDroneAvailabilityCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDroneAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateResetCommandHandler() commands.ResetCommandHandler {
	return commands.NewResetCommandHandler(c.scheduler, c.store)
}

func (c *CompositionRoot) CreateGetAllDronesQueryHandler() queries.GetAllDronesQueryHandler {
	return queries.NewGetAllDronesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	report := jobs.NewFleetReportJob(
		c.CreateGetAllDronesQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.cfg.FleetReportSchedule,
		c.logger,
	)
	return jobs.NewJobManager(c.scheduler, report)
}

func (c *CompositionRoot) CreateHTTPServer() *apihttp.Server {
	return apihttp.NewServer(apihttp.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		UpdateStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		CompleteOrder:   c.CreateCompleteOrderCommandHandler(),
		SetAvailability: c.CreateSetDroneAvailabilityCommandHandler(),
		Reset:           c.CreateResetCommandHandler(),
		GetAllDrones:    c.CreateGetAllDronesQueryHandler(),
		GetAllOrders:    c.CreateGetAllOrdersQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
	}, apihttp.NewIdempotencyCache(c.cfg.IdempotencyTTL), c.logger)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
