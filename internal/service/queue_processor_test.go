package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/universal-workshop/syncagent/internal/adapter"
	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/mock"
	"github.com/universal-workshop/syncagent/models"
)

func testSyncConfig() config.Sync {
	return config.Sync{
		MaxRetries:  3,
		BaseBackoff: 2 * time.Second,
		MaxBackoff:  5 * time.Minute,
	}
}

func newTestProcessor(t *testing.T, ctrl *gomock.Controller) (*queueProcessor, *mock.MockRecordRepository, *mock.MockRemoteAdapter, *mock.MockConnectivityGate) {
	t.Helper()

	mockRepo := mock.NewMockRecordRepository(ctrl)
	mockRemote := mock.NewMockRemoteAdapter(ctrl)
	mockGate := mock.NewMockConnectivityGate(ctrl)

	p := NewQueueProcessor(mockRepo, mockRemote, mockGate, testSyncConfig(), logger.Nop()).(*queueProcessor)

	return p, mockRepo, mockRemote, mockGate
}

func queuedRecord(id, method string, retryCount int) models.Record {
	return models.Record{
		ID:         id,
		DeviceID:   "bay-3-tablet",
		Payload:    models.Payload{Method: method, Arguments: []byte(`{"qty":1}`)},
		SyncStatus: models.StatusPending,
		RetryCount: retryCount,
		CreatedAt:  time.Now().Add(-time.Minute),
		UpdatedAt:  time.Now().Add(-time.Minute),
	}
}

// ── Drain ────────────────────────────────────────────────────────────────────

func TestDrain_Offline_NoQueueAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _, mockGate := newTestProcessor(t, ctrl)
	mockGate.EXPECT().Online().Return(false)

	_, err := p.Drain(context.Background())

	assert.ErrorIs(t, err, ErrOffline)
}

func TestDrain_WentOfflineMidPass_HaltsAndResetsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()

	first := queuedRecord("r1", "stock.receive", 0)
	second := queuedRecord("r2", "stock.issue", 0)

	// online at entry and for the first record, gone before the second
	gomock.InOrder(
		mockGate.EXPECT().Online().Return(true),
		mockGate.EXPECT().Online().Return(true),
		mockGate.EXPECT().Online().Return(false),
	)
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{first, second}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).Return(models.RPCResponse{Success: true}, nil)
	mockRepo.EXPECT().MarkSynced(ctx, "r1", gomock.Any()).Return(nil)
	// r2 is never dialled and keeps its retry budget; stragglers go back to pending
	mockRepo.EXPECT().ResetInFlight(gomock.Any()).Return(int64(0), nil)

	result, err := p.Drain(ctx)

	assert.ErrorIs(t, err, ErrOffline)
	assert.Equal(t, models.DrainResult{Attempted: 1, Synced: 1}, result)
}

func TestDrain_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, _, mockGate := newTestProcessor(t, ctrl)
	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := p.Drain(context.Background())

	require.NoError(t, err)
	assert.Zero(t, result.Attempted)
}

func TestDrain_ReplaysInFIFOOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()

	a := queuedRecord("a", "stock.receive", 0)
	b := queuedRecord("b", "stock.issue", 0)
	c := queuedRecord("c", "job.close", 0)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{a, b, c}, nil)

	var calledMethods []string
	for _, rec := range []models.Record{a, b, c} {
		rec := rec
		gomock.InOrder(
			mockRepo.EXPECT().MarkInFlight(ctx, rec.ID).Return(nil),
			mockRemote.EXPECT().Call(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, req models.RPCRequest) (models.RPCResponse, error) {
					calledMethods = append(calledMethods, req.Method)
					return models.RPCResponse{Success: true}, nil
				}),
			mockRepo.EXPECT().MarkSynced(ctx, rec.ID, gomock.Any()).Return(nil),
		)
	}

	result, err := p.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"stock.receive", "stock.issue", "job.close"}, calledMethods)
	assert.Equal(t, models.DrainResult{Attempted: 3, Synced: 3}, result)
}

func TestDrain_TransientFailure_SchedulesRetryWithBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()
	rec := queuedRecord("r1", "stock.receive", 0)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{rec}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	// an unclassified network error is treated as transient
	mockRemote.EXPECT().Call(ctx, gomock.Any()).
		Return(models.RPCResponse{}, errors.New("dial tcp: connection reset"))

	var gotCount int
	var gotNextAttempt time.Time
	mockRepo.EXPECT().MarkFailed(ctx, "r1", gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, retryCount int, _ string, nextAttemptAt time.Time) error {
			gotCount = retryCount
			gotNextAttempt = nextAttemptAt
			return nil
		})

	result, err := p.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, gotCount)
	assert.True(t, gotNextAttempt.After(time.Now()), "next attempt must be gated into the future")
	assert.Equal(t, models.DrainResult{Attempted: 1, Failed: 1}, result)
}

func TestDrain_RetryBudgetExhausted_DeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()

	// retry_count 2 with MaxRetries 3: this transient failure is the last straw
	rec := queuedRecord("r1", "stock.receive", 2)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{rec}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).Return(models.RPCResponse{}, adapter.ErrTransient)

	var gotLastError string
	mockRepo.EXPECT().MarkDeadLetter(ctx, "r1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, lastError string) error {
			gotLastError = lastError
			return nil
		})

	result, err := p.Drain(ctx)

	require.NoError(t, err)
	assert.Contains(t, gotLastError, ErrRetryExhausted.Error())
	assert.Equal(t, models.DrainResult{Attempted: 1, DeadLettered: 1}, result)
}

func TestDrain_PermanentFailure_DeadLettersImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()
	rec := queuedRecord("r1", "stock.receive", 0)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{rec}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).Return(models.RPCResponse{}, adapter.ErrPermanent)
	// no MarkFailed expectation: a rejected payload never consumes retries
	mockRepo.EXPECT().MarkDeadLetter(ctx, "r1", gomock.Any()).Return(nil)

	result, err := p.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.DrainResult{Attempted: 1, DeadLettered: 1}, result)
}

func TestDrain_Unauthorized_HaltsWithoutConsumingRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()

	first := queuedRecord("r1", "stock.receive", 1)
	second := queuedRecord("r2", "stock.issue", 0)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{first, second}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).Return(models.RPCResponse{}, adapter.ErrUnauthorized)
	// record goes back with its retry count untouched; r2 is never attempted
	mockRepo.EXPECT().MarkFailed(ctx, "r1", first.RetryCount, gomock.Any(), gomock.Any()).Return(nil)

	result, err := p.Drain(ctx)

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, 1, result.Attempted)
}

func TestDrain_SessionExpired_Halts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()
	rec := queuedRecord("r1", "stock.receive", 0)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{rec}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).Return(models.RPCResponse{}, adapter.ErrSessionExpired)
	mockRepo.EXPECT().MarkFailed(ctx, "r1", 0, gomock.Any(), gomock.Any()).Return(nil)

	_, err := p.Drain(ctx)

	assert.ErrorIs(t, err, adapter.ErrSessionExpired)
}

func TestDrain_Cancellation_ResetsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	first := queuedRecord("r1", "stock.receive", 0)
	second := queuedRecord("r2", "stock.issue", 0)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{first, second}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.RPCRequest) (models.RPCResponse, error) {
			cancel()
			return models.RPCResponse{}, context.Canceled
		})
	// stranded in_flight records must come back to pending; r2 is untouched
	mockRepo.EXPECT().ResetInFlight(gomock.Any()).Return(int64(1), nil)

	_, err := p.Drain(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrain_ConcurrentDrainRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()
	rec := queuedRecord("r1", "stock.receive", 0)

	firstEntered := make(chan struct{})
	release := make(chan struct{})

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{rec}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.RPCRequest) (models.RPCResponse, error) {
			close(firstEntered)
			<-release
			return models.RPCResponse{Success: true}, nil
		})
	mockRepo.EXPECT().MarkSynced(ctx, "r1", gomock.Any()).Return(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := p.Drain(ctx)
		assert.NoError(t, err)
	}()

	<-firstEntered
	_, err := p.Drain(ctx)
	close(release)
	wg.Wait()

	assert.ErrorIs(t, err, ErrDrainInProgress)
}

func TestDrain_MarkInFlightFails_ContinuesWithNextRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, mockRemote, mockGate := newTestProcessor(t, ctrl)
	ctx := context.Background()

	first := queuedRecord("r1", "stock.receive", 0)
	second := queuedRecord("r2", "stock.issue", 0)

	mockGate.EXPECT().Online().Return(true).AnyTimes()
	mockRepo.EXPECT().ListEligible(ctx, gomock.Any()).Return([]models.Record{first, second}, nil)
	mockRepo.EXPECT().MarkInFlight(ctx, "r1").Return(errors.New("locked"))
	mockRepo.EXPECT().MarkInFlight(ctx, "r2").Return(nil)
	mockRemote.EXPECT().Call(ctx, gomock.Any()).Return(models.RPCResponse{Success: true}, nil)
	mockRepo.EXPECT().MarkSynced(ctx, "r2", gomock.Any()).Return(nil)

	result, err := p.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Synced)
}

// ── Recover ──────────────────────────────────────────────────────────────────

func TestRecover_ResetsStrandedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mockRepo, _, _ := newTestProcessor(t, ctrl)
	mockRepo.EXPECT().ResetInFlight(gomock.Any()).Return(int64(4), nil)

	n, err := p.Recover(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

// ── backoffDelay ─────────────────────────────────────────────────────────────

func TestBackoffDelay_GrowsAndStaysCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _, _ := newTestProcessor(t, ctrl)

	base := testSyncConfig().BaseBackoff
	maxDelay := testSyncConfig().MaxBackoff

	for attempt := 1; attempt <= 10; attempt++ {
		delay := p.backoffDelay(attempt)

		assert.Greater(t, delay, time.Duration(0), "attempt %d", attempt)
		assert.LessOrEqual(t, delay, maxDelay, "attempt %d must respect the cap", attempt)
	}

	// first attempt is roughly base, within jitter of base/2
	first := p.backoffDelay(1)
	assert.InDelta(t, float64(base), float64(first), float64(base/2))
}
