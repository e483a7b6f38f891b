package service

import (
	"context"

	"github.com/MKhiriev/go-till-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the core of the terminal agent: it owns the offline
// transaction queue and reconciles it against the remote store.
type SyncService interface {
	// Enqueue validates and persists a new transaction in pending status.
	// The id is assigned when the caller did not supply one. Recording never
	// depends on connectivity; a storage failure is surfaced synchronously
	// so the till can alert the operator.
	Enqueue(ctx context.Context, txn *models.OfflineTransaction) (*models.OfflineTransaction, error)

	// Sync runs one full reconciliation pass over all eligible transactions
	// and reports the aggregate outcome. Returns [ErrOffline] without
	// touching the queue when the remote is unreachable, and
	// [ErrSyncInFlight] when another pass is already running.
	Sync(ctx context.Context) (*models.SyncResult, error)

	// Status assembles a point-in-time snapshot of queue health for the UI.
	Status(ctx context.Context) (*models.SyncStatus, error)

	// Export serialises the whole queue into a portable blob.
	Export(ctx context.Context) (*models.QueueExport, error)

	// Import replaces the queue with the contents of an exported blob.
	// All-or-nothing: a corrupt blob leaves the queue untouched.
	Import(ctx context.Context, export *models.QueueExport) error

	// Purge removes synced transactions from the local queue and reports
	// how many were deleted.
	Purge(ctx context.Context) (int64, error)
}

// SyncJob triggers sync passes in the background: on a timer while online and
// immediately after connectivity returns.
type SyncJob interface {
	Start(ctx context.Context)
	Stop()
}

// ReconcileStrategy applies one queued transaction to the remote store.
// Implementations must be idempotent: the engine may replay a transaction
// whose previous attempt was interrupted after the remote write landed.
type ReconcileStrategy interface {
	Reconcile(ctx context.Context, txn *models.OfflineTransaction) error
}

// ConnectivitySource reports whether the remote store is reachable.
// [connectivity.Monitor] satisfies it.
type ConnectivitySource interface {
	Online() bool
	Changes() <-chan bool
}
