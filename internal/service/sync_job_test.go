package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/models"
)

// countingSyncService records Sync invocations; the other methods are inert.
type countingSyncService struct {
	passes atomic.Int64
	err    error
}

func (c *countingSyncService) Sync(ctx context.Context) (*models.SyncResult, error) {
	c.passes.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &models.SyncResult{Success: true}, nil
}

func (c *countingSyncService) Enqueue(ctx context.Context, txn *models.OfflineTransaction) (*models.OfflineTransaction, error) {
	return txn, nil
}
func (c *countingSyncService) Status(ctx context.Context) (*models.SyncStatus, error) { return nil, nil }
func (c *countingSyncService) Export(ctx context.Context) (*models.QueueExport, error) {
	return nil, nil
}
func (c *countingSyncService) Import(ctx context.Context, export *models.QueueExport) error {
	return nil
}
func (c *countingSyncService) Purge(ctx context.Context) (int64, error) { return 0, nil }

func TestSyncJob_TickerDrivesPasses(t *testing.T) {
	svc := &countingSyncService{}
	conn := newStubConnectivity(true)
	job := NewSyncJob(svc, conn, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	require.Eventually(t, func() bool {
		return svc.passes.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

// TestSyncJob_ReconnectTriggersImmediatePass: with a long interval, the only
// way a pass can happen quickly is the connectivity transition.
func TestSyncJob_ReconnectTriggersImmediatePass(t *testing.T) {
	svc := &countingSyncService{}
	conn := newStubConnectivity(true)
	job := NewSyncJob(svc, conn, time.Hour, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	conn.changes <- true

	require.Eventually(t, func() bool {
		return svc.passes.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSyncJob_DisconnectDoesNotTrigger(t *testing.T) {
	svc := &countingSyncService{}
	conn := newStubConnectivity(false)
	job := NewSyncJob(svc, conn, time.Hour, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	conn.changes <- false

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, svc.passes.Load())
}

func TestSyncJob_OfflineErrorIsQuiet(t *testing.T) {
	svc := &countingSyncService{err: ErrOffline}
	conn := newStubConnectivity(false)
	job := NewSyncJob(svc, conn, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	// passes keep being attempted; the sentinel is swallowed
	require.Eventually(t, func() bool {
		return svc.passes.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestSyncJob_StopHaltsPasses(t *testing.T) {
	svc := &countingSyncService{}
	conn := newStubConnectivity(true)
	job := NewSyncJob(svc, conn, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	require.Eventually(t, func() bool {
		return svc.passes.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	after := svc.passes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, svc.passes.Load())
}

func TestSyncJob_StopWithoutStartIsNoop(t *testing.T) {
	job := NewSyncJob(&countingSyncService{}, newStubConnectivity(true), time.Minute, logger.Nop())

	job.Stop() // must not panic or block
}
