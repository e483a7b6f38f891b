package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-till-keeper/internal/adapter"
	"github.com/MKhiriev/go-till-keeper/internal/config"
	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/internal/store"
	"github.com/MKhiriev/go-till-keeper/internal/utils"
	"github.com/MKhiriev/go-till-keeper/models"
)

type syncService struct {
	queue        store.TransactionRepository
	connectivity ConnectivitySource
	strategies   map[models.TransactionType]ReconcileStrategy
	ids          *utils.UUIDGenerator

	batchSize  int
	maxRetries int

	// inFlight guards the whole pass: the CAS below is the only way in, so
	// two callers can never interleave even from different goroutines.
	inFlight atomic.Bool

	mu         sync.RWMutex
	lastResult *models.SyncResult
}

func NewSyncService(queue store.TransactionRepository, remote adapter.RemoteStore, conn ConnectivitySource, cfg config.Sync) SyncService {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 5
	}

	return &syncService{
		queue:        queue,
		connectivity: conn,
		strategies:   newStrategyRegistry(remote),
		ids:          utils.NewUUIDGenerator(),
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}
}

func (s *syncService) Enqueue(ctx context.Context, txn *models.OfflineTransaction) (*models.OfflineTransaction, error) {
	log := logger.FromContext(ctx)

	if txn == nil {
		return nil, ErrNilTransaction
	}

	// The transaction id doubles as the business id of the sale, so a
	// caller-supplied sale id wins over a generated one.
	if txn.ID == "" && txn.Sale != nil && txn.Sale.ID != "" {
		txn.ID = txn.Sale.ID
	}
	if txn.ID == "" {
		txn.ID = s.ids.Generate()
	}
	if txn.Sale != nil && txn.Sale.ID == "" {
		txn.Sale.ID = txn.ID
	}

	now := time.Now()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.Status = models.TransactionStatusPending
	txn.RetryCount = 0
	txn.LastError = ""
	txn.LastAttemptAt = nil

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("validate transaction: %w", err)
	}

	if err := s.queue.Enqueue(ctx, *txn); err != nil {
		log.Err(err).
			Str("func", "syncService.Enqueue").
			Str("id", txn.ID).
			Msg("failed to persist transaction locally")
		return nil, fmt.Errorf("enqueue transaction: %w", err)
	}

	log.Debug().
		Str("func", "syncService.Enqueue").
		Str("id", txn.ID).
		Str("type", string(txn.Type)).
		Msg("transaction queued")

	return txn, nil
}

func (s *syncService) Sync(ctx context.Context) (*models.SyncResult, error) {
	log := logger.FromContext(ctx)

	if !s.connectivity.Online() {
		return nil, ErrOffline
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSyncInFlight
	}
	defer s.inFlight.Store(false)

	eligible, err := s.queue.GetEligible(ctx, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("load eligible transactions: %w", err)
	}

	// itemErrs[i] holds the failure message for eligible[i]; empty means
	// the transaction synced. Indexing keeps the report in queue order no
	// matter how the goroutines finish.
	itemErrs := make([]string, len(eligible))

	for batchStart := 0; batchStart < len(eligible); batchStart += s.batchSize {
		batchEnd := min(batchStart+s.batchSize, len(eligible))

		var wg sync.WaitGroup
		for i := batchStart; i < batchEnd; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				txn := eligible[i]
				if reconcileErr := s.reconcileOne(ctx, &txn); reconcileErr != nil {
					itemErrs[i] = fmt.Sprintf("%s: %s", txn.ID, reconcileErr)
				}
			}(i)
		}
		wg.Wait()
	}

	result := &models.SyncResult{}
	for _, msg := range itemErrs {
		if msg == "" {
			result.Synced++
		} else {
			result.Failed++
			result.Errors = append(result.Errors, msg)
		}
	}
	result.Success = result.Failed == 0

	// Recorded even when every item failed: the timestamp answers "when did
	// we last manage to talk through a pass", not "when did everything sync".
	if err := s.queue.SetLastSyncAt(ctx, time.Now()); err != nil {
		log.Err(err).Str("func", "syncService.Sync").Msg("failed to record last sync timestamp")
	}

	s.mu.Lock()
	s.lastResult = result
	s.mu.Unlock()

	log.Info().
		Str("func", "syncService.Sync").
		Int("synced", result.Synced).
		Int("failed", result.Failed).
		Msg("sync pass finished")

	return result, nil
}

// reconcileOne drives one transaction through the status machine around its
// strategy call. Every failure path lands the transaction in failed status
// with the message preserved for the status surface.
func (s *syncService) reconcileOne(ctx context.Context, txn *models.OfflineTransaction) error {
	log := logger.FromContext(ctx)

	if err := s.queue.UpdateStatus(ctx, txn.ID, models.TransactionStatusSyncing, ""); err != nil {
		return fmt.Errorf("mark syncing: %w", err)
	}

	var reconcileErr error
	if strategy, ok := s.strategies[txn.Type]; ok {
		reconcileErr = strategy.Reconcile(ctx, txn)
	} else {
		reconcileErr = fmt.Errorf("%w: %q", ErrNoStrategy, txn.Type)
	}

	if reconcileErr != nil {
		if markErr := s.queue.UpdateStatus(ctx, txn.ID, models.TransactionStatusFailed, reconcileErr.Error()); markErr != nil {
			log.Err(markErr).
				Str("func", "syncService.reconcileOne").
				Str("id", txn.ID).
				Msg("failed to mark transaction as failed")
		}
		return reconcileErr
	}

	if err := s.queue.UpdateStatus(ctx, txn.ID, models.TransactionStatusSynced, ""); err != nil {
		// The remote write landed; the existence check makes the replay of
		// this transaction a no-op on the next pass.
		return fmt.Errorf("mark synced: %w", err)
	}

	return nil
}

func (s *syncService) Status(ctx context.Context) (*models.SyncStatus, error) {
	pending, err := s.queue.PendingCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending transactions: %w", err)
	}

	size, err := s.queue.StorageSize(ctx)
	if err != nil {
		return nil, fmt.Errorf("measure queue storage: %w", err)
	}

	lastSyncAt, err := s.queue.LastSyncAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last sync timestamp: %w", err)
	}

	s.mu.RLock()
	lastResult := s.lastResult
	s.mu.RUnlock()

	return &models.SyncStatus{
		IsOnline:       s.connectivity.Online(),
		PendingCount:   pending,
		StorageBytes:   size,
		LastSyncAt:     lastSyncAt,
		IsSyncing:      s.inFlight.Load(),
		LastSyncResult: lastResult,
	}, nil
}

func (s *syncService) Export(ctx context.Context) (*models.QueueExport, error) {
	return s.queue.ExportData(ctx)
}

func (s *syncService) Import(ctx context.Context, export *models.QueueExport) error {
	return s.queue.ImportData(ctx, export)
}

func (s *syncService) Purge(ctx context.Context) (int64, error) {
	return s.queue.ClearSynced(ctx)
}
