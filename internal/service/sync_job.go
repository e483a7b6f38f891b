package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
)

type syncJob struct {
	syncService  SyncService
	connectivity ConnectivitySource
	interval     time.Duration
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that runs a sync pass on a ticker and
// immediately after connectivity returns. The job is idle until Start is
// called. If interval is zero or negative it defaults to 1 minute.
func NewSyncJob(syncService SyncService, conn ConnectivitySource, interval time.Duration, logger *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = time.Minute
	}

	return &syncJob{
		syncService:  syncService,
		connectivity: conn,
		interval:     interval,
		logger:       logger,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that triggers sync passes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runPass(jobCtx)
			case online := <-j.connectivity.Changes():
				if online {
					// drain the backlog as soon as the link is back
					j.runPass(jobCtx)
				}
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) runPass(ctx context.Context) {
	_, err := j.syncService.Sync(ctx)
	if err == nil || errors.Is(err, ErrOffline) || errors.Is(err, ErrSyncInFlight) {
		// both sentinels mean "not now", which is fine for a background job
		return
	}

	j.logger.Err(err).Str("func", "syncJob.runPass").Msg("background sync pass failed")
}
