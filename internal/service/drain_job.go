package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/universal-workshop/syncagent/internal/logger"
)

type drainJob struct {
	processor QueueProcessor
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDrainJob creates a drainJob that calls processor.Drain on a ticker. The
// job is idle until Start is called.
func NewDrainJob(processor QueueProcessor, log *logger.Logger) DrainJob {
	return &drainJob{processor: processor, logger: log}
}

// Start implements [DrainJob]. It stops any previously running job, then
// launches a background goroutine that drains every interval. If interval is
// zero or negative it defaults to 1 minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *drainJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.drain(jobCtx)
			}
		}
	}()
}

// drain runs one scheduled pass. Offline and already-draining are the normal
// idle outcomes of a periodic tick, not failures worth logging loudly.
func (j *drainJob) drain(ctx context.Context) {
	_, err := j.processor.Drain(ctx)
	if err != nil && !errors.Is(err, ErrOffline) && !errors.Is(err, ErrDrainInProgress) && ctx.Err() == nil {
		j.logger.Warn().Err(err).Str("func", "drainJob.drain").Msg("scheduled drain failed")
	}
}

// Stop implements [DrainJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *drainJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
