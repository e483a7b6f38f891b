package service

import (
	"time"

	"github.com/MKhiriev/go-till-keeper/internal/adapter"
	"github.com/MKhiriev/go-till-keeper/models"
)

// timeWire is the timestamp layout used on the remote wire.
const timeWire = time.RFC3339Nano

// newStrategyRegistry maps each transaction type to its reconciliation
// strategy. The set is closed: adding a transaction type means adding an
// entry here, and the engine fails (never panics) on types it cannot find.
func newStrategyRegistry(remote adapter.RemoteStore) map[models.TransactionType]ReconcileStrategy {
	return map[models.TransactionType]ReconcileStrategy{
		models.TransactionTypeSale:         NewSaleStrategy(remote),
		models.TransactionTypeCartSnapshot: NewCartSnapshotStrategy(),
	}
}
