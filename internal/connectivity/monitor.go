// Package connectivity tracks whether the remote store is reachable.
//
// A [Monitor] probes the remote on a fixed interval and exposes the current
// verdict via [Monitor.Online] plus a transition stream via [Monitor.Changes].
// Queue operations never block on connectivity: the flag only decides whether
// a sync pass is worth attempting.
package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
)

// Prober is the probe target. [adapter.RemoteStore] satisfies it.
type Prober interface {
	Ping(ctx context.Context) error
}

type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger

	online  atomic.Bool
	changes chan bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates a Monitor that probes prober every interval. The monitor
// starts pessimistic (offline) and is idle until Start is called. If interval
// is zero or negative it defaults to 15 seconds.
func NewMonitor(prober Prober, interval time.Duration, logger *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &Monitor{
		prober:   prober,
		interval: interval,
		logger:   logger,
		changes:  make(chan bool, 8),
	}
}

// Online reports the verdict of the most recent probe.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Changes returns a stream of connectivity transitions: one value per flip,
// true on reconnect, false on loss. The channel is buffered; if the consumer
// lags, older transitions are dropped in favour of the newest one.
func (m *Monitor) Changes() <-chan bool {
	return m.changes
}

// Start stops any previously running probe loop, probes once immediately so
// the verdict is fresh, then keeps probing every interval until ctx is
// cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()

		m.probe(probeCtx)

		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				m.probe(probeCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until it has fully exited. Safe to
// call when the monitor is not running (no-op in that case).
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *Monitor) probe(ctx context.Context) {
	err := m.prober.Ping(ctx)
	nowOnline := err == nil

	if m.online.Swap(nowOnline) == nowOnline {
		return // no transition
	}

	if nowOnline {
		m.logger.Info().Str("func", "Monitor.probe").Msg("remote store reachable again")
	} else {
		m.logger.Warn().Err(err).Str("func", "Monitor.probe").Msg("remote store unreachable, entering offline mode")
	}

	m.publish(nowOnline)
}

// publish pushes a transition without ever blocking the probe loop. When the
// buffer is full the oldest queued transition is discarded.
func (m *Monitor) publish(online bool) {
	for {
		select {
		case m.changes <- online:
			return
		default:
			select {
			case <-m.changes:
			default:
			}
		}
	}
}
