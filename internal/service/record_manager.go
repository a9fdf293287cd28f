package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/store"
	"github.com/universal-workshop/syncagent/internal/utils"
	"github.com/universal-workshop/syncagent/models"
)

type recordManager struct {
	records   store.RecordRepository
	processor QueueProcessor
	gate      ConnectivityGate
	ids       utils.UUIDGenerator
	deviceID  string

	logger *logger.Logger
}

func NewRecordManager(records store.RecordRepository, processor QueueProcessor, gate ConnectivityGate, appCfg config.App, log *logger.Logger) RecordManager {
	return &recordManager{
		records:   records,
		processor: processor,
		gate:      gate,
		ids:       utils.UUIDGenerator{},
		deviceID:  appCfg.DeviceID,
		logger:    log,
	}
}

// RecordEvent implements [RecordManager]. The write is local-first: the
// record is durable before RecordEvent returns, whatever the network is
// doing. Sync happens opportunistically afterwards.
func (m *recordManager) RecordEvent(ctx context.Context, method string, arguments json.RawMessage) (models.Record, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return models.Record{}, ErrValidationNoMethodProvided
	}
	if m.deviceID == "" {
		return models.Record{}, ErrValidationNoDeviceID
	}

	now := time.Now()
	record := models.Record{
		ID:       m.ids.Generate(),
		DeviceID: m.deviceID,
		Payload: models.Payload{
			Method:    method,
			Arguments: arguments,
		},
		SyncStatus: models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := m.records.SaveRecord(ctx, record); err != nil {
		return models.Record{}, fmt.Errorf("save record: %w", err)
	}

	m.logger.Info().
		Str("record_id", record.ID).
		Str("method", method).
		Str("func", "RecordEvent").
		Msg("event captured")

	if m.gate.Online() {
		go m.backgroundDrain()
	}

	return record, nil
}

// backgroundDrain runs an opportunistic drain after a capture. Losing the
// race to a concurrent drain is fine, the record is already queued for it.
func (m *recordManager) backgroundDrain() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, err := m.processor.Drain(ctx)
	if err != nil && !errors.Is(err, ErrDrainInProgress) && !errors.Is(err, ErrOffline) {
		m.logger.Warn().Err(err).Str("func", "backgroundDrain").Msg("opportunistic drain failed")
	}
}

// GetStatus implements [RecordManager].
func (m *recordManager) GetStatus(ctx context.Context, id string) (models.Record, error) {
	record, err := m.records.GetRecord(ctx, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}

	return record, nil
}

// ForceSync implements [RecordManager].
func (m *recordManager) ForceSync(ctx context.Context) (models.DrainResult, error) {
	return m.processor.Drain(ctx)
}

// Stats implements [RecordManager].
func (m *recordManager) Stats(ctx context.Context) (models.QueueStats, error) {
	stats, err := m.records.CountByStatus(ctx)
	if err != nil {
		return models.QueueStats{}, fmt.Errorf("count records by status: %w", err)
	}

	return stats, nil
}

// DeadLetters implements [RecordManager].
func (m *recordManager) DeadLetters(ctx context.Context) ([]models.Record, error) {
	records, err := m.records.ListByStatus(ctx, models.StatusDeadLetter)
	if err != nil {
		return nil, fmt.Errorf("list dead-lettered records: %w", err)
	}

	return records, nil
}

// RequeueDeadLetter implements [RecordManager]. The requeued record goes to
// the back of nothing: FIFO order is by created_at, so it replays in its
// original position relative to other pending work.
func (m *recordManager) RequeueDeadLetter(ctx context.Context, id string) error {
	if err := m.records.Requeue(ctx, id); err != nil {
		return fmt.Errorf("requeue record %s: %w", id, err)
	}

	m.logger.Info().Str("record_id", id).Str("func", "RequeueDeadLetter").Msg("dead-lettered record requeued")

	if m.gate.Online() {
		go m.backgroundDrain()
	}

	return nil
}
