// Package agent implements the workshop sync agent runtime.
//
// It wires the local durable store, the remote adapter, the connectivity
// monitor, the sync services, and the local HTTP API into a single process
// lifecycle.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/universal-workshop/syncagent/internal/adapter"
	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/connectivity"
	handlerhttp "github.com/universal-workshop/syncagent/internal/handler/http"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/server"
	"github.com/universal-workshop/syncagent/internal/service"
	"github.com/universal-workshop/syncagent/internal/store"
	"github.com/universal-workshop/syncagent/internal/workers"
)

type App struct {
	cfg      *config.AgentConfig
	storages *store.Storages
	monitor  *connectivity.Monitor
	services *service.Services
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(cfg *config.AgentConfig, log *logger.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storages: %w", err)
	}

	monitor := connectivity.NewMonitor(remote, cfg.Sync.ProbeInterval, log.GetChildLogger())
	services := service.NewServices(storages, remote, monitor, cfg, log)

	handler := handlerhttp.NewHandler(services, monitor, log.GetChildLogger())
	srv, err := server.NewServer(handler, cfg.Server, log.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("create local http server: %w", err)
	}

	app := &App{
		cfg:      cfg,
		storages: storages,
		monitor:  monitor,
		services: services,
		server:   srv,
		workers: workers.NewWorkers(
			&monitorWorker{monitor: monitor},
			&drainWorker{job: services.DrainJob, interval: cfg.Sync.DrainInterval},
			&purgeWorker{job: services.PurgeJob},
		),
		logger: log,
	}

	// a transition to online is the moment to replay what piled up offline
	monitor.Subscribe(func(online bool) {
		if online {
			go app.opportunisticDrain()
		}
	})

	return app, nil
}

// Run blocks until the process receives a stop signal. Startup order matters:
// stranded in_flight records are recovered before anything can drain.
func (a *App) Run() error {
	ctx := context.Background()

	if _, err := a.services.Processor.Recover(ctx); err != nil {
		return fmt.Errorf("recover stranded records: %w", err)
	}

	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("start background workers: %w", err)
	}

	a.server.RunServer()

	a.workers.Stop()

	if err := a.storages.Close(); err != nil {
		a.logger.Error().Err(err).Msg("closing local storages")
	}

	a.logger.Info().Msg("agent stopped")

	return nil
}

func (a *App) opportunisticDrain() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, err := a.services.Processor.Drain(ctx)
	if err != nil && !errors.Is(err, service.ErrDrainInProgress) && !errors.Is(err, service.ErrOffline) {
		a.logger.Warn().Err(err).Str("func", "opportunisticDrain").Msg("drain after reconnect failed")
	}
}
