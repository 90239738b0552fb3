package jobs

import (
	"context"
	"log/slog"

	"droncakes/internal/core/application/usecases/queries"
	"droncakes/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultFleetReportSpec logs the fleet summary once a minute.
const DefaultFleetReportSpec = "@every 1m"

// FleetReportJob periodically logs how many drones are free and how many
// orders are still open.
type FleetReportJob struct {
	drones queries.GetAllDronesQueryHandler
	orders queries.GetAllOrdersQueryHandler
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

func NewFleetReportJob(
	drones queries.GetAllDronesQueryHandler,
	orders queries.GetAllOrdersQueryHandler,
	spec string,
	logger *slog.Logger,
) *FleetReportJob {
	if spec == "" {
		spec = DefaultFleetReportSpec
	}

	logger = logger.With("component", "fleet_report_job")

	return &FleetReportJob{
		drones: drones,
		orders: orders,
		spec:   spec,
		cron:   cron.New(cron.WithLogger(newCronLogger(logger))),
		logger: logger,
	}
}

// Start registers the report under the configured cron spec.
func (j *FleetReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Report); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Fleet report job started", "spec", j.spec)
	return nil
}

func (j *FleetReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Fleet report job stopped")
}

// Report logs one summary line.
func (j *FleetReportJob) Report() {
	ctx := context.Background()

	drones, err := j.drones.Handle(ctx, queries.NewGetAllDronesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet report failed", "error", err)
		return
	}

	orders, err := j.orders.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet report failed", "error", err)
		return
	}

	available := 0
	for _, d := range drones {
		if d.Available {
			available++
		}
	}

	open := 0
	for _, o := range orders {
		if o.Status != order.Delivered.String() {
			open++
		}
	}

	j.logger.InfoContext(ctx, "Fleet report",
		"drones", len(drones),
		"drones_available", available,
		"orders", len(orders),
		"orders_open", open,
	)
}
