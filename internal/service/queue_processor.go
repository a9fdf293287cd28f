package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/universal-workshop/syncagent/internal/adapter"
	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/store"
	"github.com/universal-workshop/syncagent/models"
)

type queueProcessor struct {
	records store.RecordRepository
	remote  adapter.RemoteAdapter
	gate    ConnectivityGate
	cfg     config.Sync

	// drainMu serialises drain passes. TryLock keeps callers non-blocking:
	// a second drain request is rejected, not queued.
	drainMu sync.Mutex

	logger *logger.Logger
}

func NewQueueProcessor(records store.RecordRepository, remote adapter.RemoteAdapter, gate ConnectivityGate, cfg config.Sync, log *logger.Logger) QueueProcessor {
	return &queueProcessor{
		records: records,
		remote:  remote,
		gate:    gate,
		cfg:     cfg,
		logger:  log,
	}
}

// Recover implements [QueueProcessor].
func (p *queueProcessor) Recover(ctx context.Context) (int64, error) {
	n, err := p.records.ResetInFlight(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset in-flight records: %w", err)
	}
	if n > 0 {
		p.logger.Info().Int64("count", n).Str("func", "Recover").Msg("returned stranded in-flight records to pending")
	}

	return n, nil
}

// Drain implements [QueueProcessor]. Records are replayed oldest first; the
// pass stops early on cancellation, when connectivity drops, or when the
// session is rejected, since every further call would fail the same way.
// The gate is consulted before every record so an offline transition
// mid-pass never starts new remote calls or burns retry budget.
func (p *queueProcessor) Drain(ctx context.Context) (models.DrainResult, error) {
	if !p.drainMu.TryLock() {
		return models.DrainResult{}, ErrDrainInProgress
	}
	defer p.drainMu.Unlock()

	if !p.gate.Online() {
		return models.DrainResult{}, ErrOffline
	}

	eligible, err := p.records.ListEligible(ctx, time.Now())
	if err != nil {
		return models.DrainResult{}, fmt.Errorf("list eligible records: %w", err)
	}

	var result models.DrainResult
	for _, record := range eligible {
		if ctx.Err() != nil {
			return result, p.abortDrain(ctx.Err())
		}
		if !p.gate.Online() {
			p.logger.Info().Str("func", "Drain").Msg("went offline mid-pass, halting drain")
			return result, p.abortDrain(ErrOffline)
		}

		result.Attempted++
		outcome, err := p.processOne(ctx, record)
		result.Synced += outcome.Synced
		result.Failed += outcome.Failed
		result.DeadLettered += outcome.DeadLettered

		switch {
		case err == nil:
		case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrSessionExpired):
			// a rejected session fails every remaining record identically
			p.logger.Warn().Err(err).Str("func", "Drain").Msg("session rejected, halting drain")
			return result, err
		case ctx.Err() != nil:
			return result, p.abortDrain(ctx.Err())
		default:
			p.logger.Error().Err(err).Str("record_id", record.ID).Str("func", "Drain").Msg("record processing failed")
		}
	}

	p.logger.Info().
		Int("attempted", result.Attempted).
		Int("synced", result.Synced).
		Int("failed", result.Failed).
		Int("dead_lettered", result.DeadLettered).
		Str("func", "Drain").
		Msg("drain pass finished")

	return result, nil
}

// processOne advances a single record through one sync attempt. The returned
// DrainResult carries exactly one non-zero counter describing the outcome.
func (p *queueProcessor) processOne(ctx context.Context, record models.Record) (models.DrainResult, error) {
	if err := p.records.MarkInFlight(ctx, record.ID); err != nil {
		return models.DrainResult{}, fmt.Errorf("mark in-flight %s: %w", record.ID, err)
	}

	_, callErr := p.remote.Call(ctx, models.RPCRequest{
		Method:    record.Payload.Method,
		Arguments: record.Payload.Arguments,
	})
	if callErr == nil {
		if err := p.records.MarkSynced(ctx, record.ID, time.Now()); err != nil {
			return models.DrainResult{}, fmt.Errorf("mark synced %s: %w", record.ID, err)
		}
		return models.DrainResult{Synced: 1}, nil
	}

	return p.classifyFailure(ctx, record, callErr)
}

// classifyFailure routes a failed call to the matching state transition.
func (p *queueProcessor) classifyFailure(ctx context.Context, record models.Record, callErr error) (models.DrainResult, error) {
	switch {
	case errors.Is(callErr, adapter.ErrUnauthorized), errors.Is(callErr, adapter.ErrSessionExpired):
		// not the record's fault: put it back without consuming retry budget
		if err := p.records.MarkFailed(ctx, record.ID, record.RetryCount, callErr.Error(), time.Now()); err != nil {
			return models.DrainResult{}, fmt.Errorf("mark failed %s: %w", record.ID, err)
		}
		return models.DrainResult{Failed: 1}, callErr

	case errors.Is(callErr, adapter.ErrPermanent):
		// the endpoint rejected the payload itself, retrying cannot help
		if err := p.records.MarkDeadLetter(ctx, record.ID, callErr.Error()); err != nil {
			return models.DrainResult{}, fmt.Errorf("mark dead-letter %s: %w", record.ID, err)
		}
		p.logger.Warn().Str("record_id", record.ID).Err(callErr).Str("func", "classifyFailure").Msg("record dead-lettered on permanent error")
		return models.DrainResult{DeadLettered: 1}, nil

	case ctx.Err() != nil:
		return models.DrainResult{}, callErr

	default:
		return p.retryOrDeadLetter(ctx, record, callErr)
	}
}

// retryOrDeadLetter handles a transient failure: schedule the next attempt
// with exponential backoff, or dead-letter once the retry bound is hit.
func (p *queueProcessor) retryOrDeadLetter(ctx context.Context, record models.Record, callErr error) (models.DrainResult, error) {
	newCount := record.RetryCount + 1
	if newCount >= p.cfg.MaxRetries {
		msg := fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, newCount, callErr).Error()
		if err := p.records.MarkDeadLetter(ctx, record.ID, msg); err != nil {
			return models.DrainResult{}, fmt.Errorf("mark dead-letter %s: %w", record.ID, err)
		}
		p.logger.Warn().Str("record_id", record.ID).Int("retry_count", newCount).Str("func", "retryOrDeadLetter").Msg("record dead-lettered, retry budget exhausted")
		return models.DrainResult{DeadLettered: 1}, nil
	}

	delay := p.backoffDelay(newCount)
	if err := p.records.MarkFailed(ctx, record.ID, newCount, callErr.Error(), time.Now().Add(delay)); err != nil {
		return models.DrainResult{}, fmt.Errorf("mark failed %s: %w", record.ID, err)
	}

	p.logger.Debug().
		Str("record_id", record.ID).
		Int("retry_count", newCount).
		Dur("backoff", delay).
		Str("func", "retryOrDeadLetter").
		Msg("transient failure, retry scheduled")

	return models.DrainResult{Failed: 1}, nil
}

// backoffDelay computes the jittered exponential delay for the given attempt
// number (1-based). Jitter spreads reconnecting devices over time so a
// workshop coming back online does not stampede the endpoint.
func (p *queueProcessor) backoffDelay(attempt int) time.Duration {
	b := retry.NewExponential(p.cfg.BaseBackoff)
	b = retry.WithJitter(p.cfg.BaseBackoff/2, b)
	b = retry.WithCappedDuration(p.cfg.MaxBackoff, b)

	var delay time.Duration
	for i := 0; i < attempt; i++ {
		next, stop := b.Next()
		if stop {
			break
		}
		delay = next
	}

	return delay
}

// abortDrain is the early-exit path for cancellation and offline drops: the
// interrupted record (and any other stragglers) go back to pending so the
// next pass picks them up. The reset uses a fresh context because the
// drain's own context may already be dead.
func (p *queueProcessor) abortDrain(cause error) error {
	resetCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := p.records.ResetInFlight(resetCtx); err != nil {
		p.logger.Error().Err(err).Str("func", "abortDrain").Msg("failed to reset in-flight records after aborted drain")
	}

	return fmt.Errorf("drain aborted: %w", cause)
}
