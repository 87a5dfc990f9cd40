package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	appcanvas "github.com/turtacn/opportunity-canvas/internal/application/canvas"
	"github.com/turtacn/opportunity-canvas/internal/domain/chart"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/logging"
	appprom "github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/storage/csvfile"
	httpiface "github.com/turtacn/opportunity-canvas/internal/interfaces/http"
)

// NewServeCmd creates the serve subcommand: load the CSV, start the
// dashboard server, and optionally watch the file for changes.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the Opportunity Canvas dashboard",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg := cliCtx.Config
	logger := cliCtx.Logger

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector, err := appprom.NewCollector(appprom.CollectorConfig{
		Namespace:            "canvas",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	})
	if err != nil {
		return err
	}
	metrics := appprom.NewAppMetrics(collector)

	reader := csvfile.NewReader(cfg.Dataset.Path)
	service := appcanvas.NewService(reader, chart.Options{}, logger, metrics)
	// With the watcher on, a failed initial load is not fatal: the server
	// comes up not-ready and a corrected file triggers a reload.  Without
	// it the dataset could never recover, so fail fast instead.
	if err := service.Load(ctx); err != nil {
		if !cfg.Dataset.Watch {
			return err
		}
		logger.Error("initial dataset load failed", logging.Err(err))
	}

	if cfg.Dataset.Watch {
		watcher, err := csvfile.NewWatcher(cfg.Dataset.Path, cfg.Dataset.WatchDebounce, func() {
			if reloadErr := service.Reload(context.Background()); reloadErr != nil {
				logger.Error("dataset reload failed", logging.Err(reloadErr))
			}
		}, logger)
		if err != nil {
			return err
		}
		go watcher.Start(ctx)
	}

	engine, err := httpiface.NewRouter(httpiface.RouterDeps{
		Config:    cfg,
		Service:   service,
		Logger:    logger,
		Collector: collector,
		Metrics:   metrics,
		Version:   Version,
	})
	if err != nil {
		return err
	}

	server := httpiface.NewServer(cfg.Server, engine, logger)
	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return server.Shutdown(context.Background())
	}
}
