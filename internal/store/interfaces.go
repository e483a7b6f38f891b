package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-till-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TransactionRepository is the durable local queue of offline transactions.
// All reads that feed a sync pass return records in created_at order, oldest
// first, so reconciliation replays work in the order the till produced it.
type TransactionRepository interface {
	// Enqueue persists a new transaction in pending status.
	Enqueue(ctx context.Context, txn models.OfflineTransaction) error

	// GetEligible returns transactions a sync pass may pick up: status
	// pending or failed, retry count below the ceiling, oldest first.
	GetEligible(ctx context.Context, maxRetries int) ([]models.OfflineTransaction, error)

	// GetAll returns every queued transaction regardless of status,
	// oldest first.
	GetAll(ctx context.Context) ([]models.OfflineTransaction, error)

	// UpdateStatus moves a transaction to the given status. Moving to
	// failed records errMsg and increments the retry count; moving to
	// synced clears the last error. Unknown ids yield
	// [ErrTransactionNotFound], moves the state machine forbids yield
	// [ErrIllegalStatusTransition].
	UpdateStatus(ctx context.Context, id string, status models.TransactionStatus, errMsg string) error

	// ClearSynced deletes synced transactions and reports how many were
	// removed. Transactions in any other status are untouched.
	ClearSynced(ctx context.Context) (int64, error)

	// PendingCount reports how many transactions still await successful
	// reconciliation (pending, syncing or failed).
	PendingCount(ctx context.Context) (int, error)

	// StorageSize reports the total payload bytes currently queued.
	StorageSize(ctx context.Context) (int64, error)

	// LastSyncAt returns the completion time of the most recent sync pass,
	// or nil if no pass has run yet.
	LastSyncAt(ctx context.Context) (*time.Time, error)

	// SetLastSyncAt records the completion time of a sync pass.
	SetLastSyncAt(ctx context.Context, t time.Time) error

	// ExportData serialises the whole queue into a versioned blob.
	ExportData(ctx context.Context) (*models.QueueExport, error)

	// ImportData validates an exported blob and replaces the queue with its
	// contents. The swap is all-or-nothing: a corrupt blob leaves the
	// existing queue untouched.
	ImportData(ctx context.Context, export *models.QueueExport) error

	// ReplaceAll atomically swaps the queue contents for the given set.
	ReplaceAll(ctx context.Context, txns []models.OfflineTransaction) error
}
