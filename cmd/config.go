package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"droncakes/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys. Each is read from the environment under the same name.
const (
	keyHTTPPort            = "HTTP_PORT"
	keyDroneFleet          = "DRONE_FLEET"
	keyInFlightAfter       = "ORDER_IN_FLIGHT_AFTER"
	keyDeliveredAfter      = "ORDER_DELIVERED_AFTER"
	keyLeadTime            = "ORDER_LEAD_TIME"
	keyIdempotencyTTL      = "IDEMPOTENCY_TTL"
	keyEnableReset         = "ENABLE_RESET"
	keyTracingEnabled      = "TRACING_ENABLED"
	keyTracingExporter     = "TRACING_EXPORTER"
	keyLogLevel            = "LOG_LEVEL"
	keyFleetReportSchedule = "FLEET_REPORT_SCHEDULE"
)

type Config struct {
	HTTPPort            string
	DroneFleet          []string
	Schedule            services.DeliverySchedule
	IdempotencyTTL      time.Duration
	EnableReset         bool
	TracingEnabled      bool
	TracingExporter     string
	LogLevel            slog.Level
	FleetReportSchedule string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyHTTPPort, "8080")
	v.SetDefault(keyDroneFleet, "Falcon,Hawk,Sparrow")
	v.SetDefault(keyInFlightAfter, services.DefaultInFlightAfter)
	v.SetDefault(keyDeliveredAfter, services.DefaultDeliveredAfter)
	v.SetDefault(keyLeadTime, services.DefaultLeadTime)
	v.SetDefault(keyIdempotencyTTL, 10*time.Minute)
	v.SetDefault(keyEnableReset, false)
	v.SetDefault(keyTracingEnabled, false)
	v.SetDefault(keyTracingExporter, "stdout")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyFleetReportSchedule, "@every 1m")
}

// loadDotEnv copies .env into the process environment when the file exists.
// Variables that are already set win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadConfig reads configuration from v, which must have AutomaticEnv enabled
// or values set explicitly.
func LoadConfig(v *viper.Viper) (Config, error) {
	setDefaults(v)

	cfg := Config{
		HTTPPort:   v.GetString(keyHTTPPort),
		DroneFleet: splitFleet(v.GetString(keyDroneFleet)),
		Schedule: services.DeliverySchedule{
			InFlightAfter:  v.GetDuration(keyInFlightAfter),
			DeliveredAfter: v.GetDuration(keyDeliveredAfter),
			LeadTime:       v.GetDuration(keyLeadTime),
		},
		IdempotencyTTL:      v.GetDuration(keyIdempotencyTTL),
		EnableReset:         v.GetBool(keyEnableReset),
		TracingEnabled:      v.GetBool(keyTracingEnabled),
		TracingExporter:     v.GetString(keyTracingExporter),
		FleetReportSchedule: v.GetString(keyFleetReportSchedule),
	}

	var errList []error

	if cfg.HTTPPort == "" {
		errList = append(errList, fmt.Errorf("%s must not be empty", keyHTTPPort))
	}

	if len(cfg.DroneFleet) == 0 {
		errList = append(errList, fmt.Errorf("%s must name at least one drone", keyDroneFleet))
	}

	if err := cfg.Schedule.Validate(); err != nil {
		errList = append(errList, err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		errList = append(errList, fmt.Errorf("%s: %w", keyLogLevel, err))
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func splitFleet(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
