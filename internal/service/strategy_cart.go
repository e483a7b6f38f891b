package service

import (
	"context"

	"github.com/MKhiriev/go-till-keeper/models"
)

type cartSnapshotStrategy struct{}

func NewCartSnapshotStrategy() ReconcileStrategy {
	return &cartSnapshotStrategy{}
}

// Reconcile performs no remote effect for cart snapshots: the remote store
// has no cart endpoint yet, and a snapshot only matters on the terminal that
// took it. The type keeps a second strategy registered so the dispatch path
// is exercised by more than one transaction kind.
func (c *cartSnapshotStrategy) Reconcile(ctx context.Context, txn *models.OfflineTransaction) error {
	if txn.Cart == nil {
		return models.ErrPayloadTypeMismatch
	}
	return nil
}
