// Package connectivity maintains the agent's best-effort view of whether the
// remote ERP endpoint is reachable.
//
// Two signals feed the state: passive online/offline notifications pushed by
// the host shell (the platform's network events), and a periodic active probe
// that performs a lightweight round-trip against the endpoint. The active
// probe corrects false positives, e.g. a device associated to workshop Wi-Fi
// whose uplink is down.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/models"
)

// Prober performs the active reachability round-trip. Satisfied by the
// remote adapter.
type Prober interface {
	Ping(ctx context.Context) error
}

// Monitor owns the process-wide connectivity state. Only the monitor writes
// the state; every other component reads it through Online or State.
//
// Subscribers are notified synchronously on every transition, before the
// mutating call returns, so a transition to online reliably triggers a drain
// attempt without a race where the processor misses the signal.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger

	mu    sync.RWMutex
	state models.ConnectivityState
	subs  []func(online bool)

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates a Monitor that starts out offline and is idle until
// Start is called. If interval is zero or negative it defaults to 30 seconds.
func NewMonitor(prober Prober, interval time.Duration, log *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Monitor{
		prober:   prober,
		interval: interval,
		logger:   log,
	}
}

// Subscribe registers fn to be called synchronously on every online/offline
// transition. Subscriptions must be set up before Start.
func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subs = append(m.subs, fn)
}

// Online reports the current connectivity state.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.Online
}

// State returns a copy of the full connectivity snapshot.
func (m *Monitor) State() models.ConnectivityState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// SetOnline applies a passive connectivity signal from the host platform.
// Transitions notify subscribers before SetOnline returns.
func (m *Monitor) SetOnline(online bool) {
	m.apply(online)
}

// Probe runs one active reachability check immediately. A failed probe is
// treated as offline for gating purposes; the monitor itself never fails.
func (m *Monitor) Probe(ctx context.Context) {
	err := m.prober.Ping(ctx)
	if err != nil {
		m.logger.Debug().Err(err).Str("func", "Monitor.Probe").Msg("active probe failed, treating as offline")
	}

	m.apply(err == nil)
}

// apply records the observation and fires subscribers on a transition. The
// subscriber list is copied under the lock but invoked outside it, so a
// subscriber may call back into the monitor without deadlocking.
func (m *Monitor) apply(online bool) {
	m.mu.Lock()
	changed := m.state.Online != online
	m.state.Online = online
	m.state.LastChecked = time.Now()
	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info().
		Bool("online", online).
		Str("func", "Monitor.apply").
		Msg("connectivity transition")

	for _, fn := range subs {
		fn(online)
	}
}

// Start stops any previously running probe loop, runs one immediate probe,
// then launches a background goroutine probing every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.jobMu.Unlock()

	m.Probe(jobCtx)

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				m.Probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until it has fully exited. Safe to
// call when the monitor is not running (no-op in that case).
func (m *Monitor) Stop() {
	m.jobMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
