package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/store"
)

type purgeJob struct {
	records   store.RecordRepository
	schedule  string
	retention time.Duration

	cron   *cron.Cron
	logger *logger.Logger
}

// NewPurgeJob creates a cron-scheduled job that deletes synced records older
// than the retention window. Pending, failed, and dead-lettered records are
// never purged: unsynced work is kept until it syncs or an operator acts.
func NewPurgeJob(records store.RecordRepository, syncCfg config.Sync, storageCfg config.Storage, log *logger.Logger) PurgeJob {
	return &purgeJob{
		records:   records,
		schedule:  syncCfg.PurgeSchedule,
		retention: storageCfg.RetentionWindow,
		cron:      cron.New(),
		logger:    log,
	}
}

// Start implements [PurgeJob].
func (j *purgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.purge); err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Dur("retention", j.retention).Str("func", "purgeJob.Start").Msg("retention purge job scheduled")

	return nil
}

func (j *purgeJob) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-j.retention)
	n, err := j.records.PurgeSynced(ctx, cutoff)
	if err != nil {
		j.logger.Error().Err(err).Str("func", "purgeJob.purge").Msg("retention purge failed")
		return
	}

	if n > 0 {
		j.logger.Info().Int64("purged", n).Time("cutoff", cutoff).Str("func", "purgeJob.purge").Msg("synced records purged")
	}
}

// Stop implements [PurgeJob]. It halts the scheduler and waits for a running
// purge to finish.
func (j *purgeJob) Stop() {
	<-j.cron.Stop().Done()
}
