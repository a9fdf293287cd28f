package agent

import (
	"context"
	"time"

	"github.com/universal-workshop/syncagent/internal/connectivity"
	"github.com/universal-workshop/syncagent/internal/service"
)

// monitorWorker runs the connectivity monitor's probe loop.
type monitorWorker struct {
	monitor *connectivity.Monitor
}

func (w *monitorWorker) Run(ctx context.Context) error {
	w.monitor.Start(ctx)
	return nil
}

func (w *monitorWorker) Stop() {
	w.monitor.Stop()
}

// drainWorker runs the periodic queue drain.
type drainWorker struct {
	job      service.DrainJob
	interval time.Duration
}

func (w *drainWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	return nil
}

func (w *drainWorker) Stop() {
	w.job.Stop()
}

// purgeWorker runs the cron-scheduled retention purge.
type purgeWorker struct {
	job service.PurgeJob
}

func (w *purgeWorker) Run(_ context.Context) error {
	return w.job.Start()
}

func (w *purgeWorker) Stop() {
	w.job.Stop()
}
