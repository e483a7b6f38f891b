package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
)

// stubProber flips between healthy and failing under test control.
type stubProber struct {
	failing atomic.Bool
	pings   atomic.Int64
}

func (s *stubProber) Ping(ctx context.Context) error {
	s.pings.Add(1)
	if s.failing.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func TestMonitor_StartsOffline(t *testing.T) {
	m := NewMonitor(&stubProber{}, time.Minute, logger.Nop())

	assert.False(t, m.Online())
}

// TestProbe_EmitsOneEventPerFlip drives probes by hand so transition
// bookkeeping can be checked without timers.
func TestProbe_EmitsOneEventPerFlip(t *testing.T) {
	prober := &stubProber{}
	m := NewMonitor(prober, time.Minute, logger.Nop())
	ctx := context.Background()

	// offline -> online
	m.probe(ctx)
	assert.True(t, m.Online())
	select {
	case got := <-m.Changes():
		assert.True(t, got)
	default:
		t.Fatal("expected a reconnect event")
	}

	// still online: no event
	m.probe(ctx)
	select {
	case <-m.Changes():
		t.Fatal("unexpected event without a transition")
	default:
	}

	// online -> offline
	prober.failing.Store(true)
	m.probe(ctx)
	assert.False(t, m.Online())
	select {
	case got := <-m.Changes():
		assert.False(t, got)
	default:
		t.Fatal("expected a disconnect event")
	}
}

func TestStartStop(t *testing.T) {
	prober := &stubProber{}
	m := NewMonitor(prober, 10*time.Millisecond, logger.Nop())

	m.Start(context.Background())

	// the immediate probe plus at least one tick
	require.Eventually(t, func() bool {
		return prober.pings.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	assert.True(t, m.Online())

	m.Stop()
	after := prober.pings.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, prober.pings.Load(), "probe loop kept running after Stop")
}

func TestStop_WithoutStartIsNoop(t *testing.T) {
	m := NewMonitor(&stubProber{}, time.Minute, logger.Nop())

	m.Stop() // must not panic or block
}

func TestPublish_KeepsNewestWhenBufferFull(t *testing.T) {
	m := NewMonitor(&stubProber{}, time.Minute, logger.Nop())

	for i := 0; i < 30; i++ {
		m.publish(i%2 == 0)
	}
	m.publish(true)

	var last bool
	for {
		select {
		case last = <-m.Changes():
			continue
		default:
		}
		break
	}
	assert.True(t, last, "newest transition should survive buffer pressure")
}
