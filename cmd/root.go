package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "droncakes/internal/adapters/in/http"
	"droncakes/internal/pkg/tracing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:   "droncakes",
	Short: "Cake orders delivered by a fixed drone fleet",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadDotEnv(envFile)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the delivery scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded when present")

	serveCmd.Flags().String("port", "", "HTTP port (overrides "+keyHTTPPort+")")
	serveCmd.Flags().Bool("enable-reset", false, "register POST /api/v1/reset (overrides "+keyEnableReset+")")

	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newViper(command *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()

	if err := v.BindPFlag(keyHTTPPort, command.Flags().Lookup("port")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag(keyEnableReset, command.Flags().Lookup("enable-reset")); err != nil {
		return nil, err
	}

	return v, nil
}

func runServe(command *cobra.Command, _ []string) error {
	v, err := newViper(command)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	tracingCfg := tracing.DefaultConfig()
	tracingCfg.Enabled = cfg.TracingEnabled
	tracingCfg.Exporter = cfg.TracingExporter

	provider, err := tracing.NewProvider(tracingCfg)
	if err != nil {
		return err
	}

	app, err := NewCompositionRoot(cfg, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	e, err := newRouter(app)
	if err != nil {
		jobManager.StopAll()
		return err
	}

	ctx, stop := signal.NotifyContext(command.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr, "drones", len(cfg.DroneFleet))
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = e.Shutdown(shutdownCtx)
	jobManager.StopAll()

	return errors.Join(err, provider.Shutdown(shutdownCtx))
}

func newRouter(app *CompositionRoot) (*echo.Echo, error) {
	return apihttp.NewRouter(app.CreateHTTPServer(), apihttp.RouterConfig{EnableReset: app.cfg.EnableReset}, app.logger)
}
