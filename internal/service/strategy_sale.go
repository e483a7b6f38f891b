package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-till-keeper/internal/adapter"
	"github.com/MKhiriev/go-till-keeper/models"
)

const (
	salesTable     = "sales"
	saleItemsTable = "sale_items"
)

// saleRecord is the wire shape of a sale header on the remote side.
type saleRecord struct {
	ID             string  `json:"id"`
	TotalAmount    float64 `json:"total_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	PaymentMethod  string  `json:"payment_method"`
	CustomerID     string  `json:"customer_id,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// saleItemRecord is the wire shape of one sale line. The natural key
// (sale_id, product_id, line_index) makes the remote insert an upsert, so
// replaying a partially synced sale overwrites the same rows instead of
// duplicating them.
type saleItemRecord struct {
	SaleID         string  `json:"sale_id"`
	ProductID      string  `json:"product_id"`
	LineIndex      int     `json:"line_index"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalPrice     float64 `json:"total_price"`
	DiscountAmount float64 `json:"discount_amount"`
}

type saleStrategy struct {
	remote adapter.RemoteStore
}

func NewSaleStrategy(remote adapter.RemoteStore) ReconcileStrategy {
	return &saleStrategy{remote: remote}
}

// Reconcile pushes one sale to the remote store. If the sale header is
// already present remotely the transaction is treated as synced without
// re-sending anything; that covers passes interrupted between the remote
// write and the local status update.
func (s *saleStrategy) Reconcile(ctx context.Context, txn *models.OfflineTransaction) error {
	if txn.Sale == nil {
		return fmt.Errorf("transaction %s: %w", txn.ID, models.ErrPayloadTypeMismatch)
	}
	sale := txn.Sale

	exists, err := s.remote.ExistsByID(ctx, salesTable, sale.ID)
	if err != nil {
		return fmt.Errorf("check sale existence (id=%s): %w", sale.ID, err)
	}
	if exists {
		return nil
	}

	header := saleRecord{
		ID:             sale.ID,
		TotalAmount:    sale.TotalAmount,
		TaxAmount:      sale.TaxAmount,
		DiscountAmount: sale.DiscountAmount,
		PaymentMethod:  sale.PaymentMethod,
		CustomerID:     sale.CustomerID,
		Status:         sale.Status,
		CreatedAt:      sale.CreatedAt.UTC().Format(timeWire),
		UpdatedAt:      sale.UpdatedAt.UTC().Format(timeWire),
	}
	if err := s.remote.Insert(ctx, salesTable, header); err != nil {
		return fmt.Errorf("insert sale (id=%s): %w", sale.ID, err)
	}

	items := make([]saleItemRecord, 0, len(sale.Items))
	for i, item := range sale.Items {
		items = append(items, saleItemRecord{
			SaleID:         sale.ID,
			ProductID:      item.ProductID,
			LineIndex:      i,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			TotalPrice:     item.TotalPrice,
			DiscountAmount: item.DiscountAmount,
		})
	}
	if err := s.remote.InsertBatch(ctx, saleItemsTable, items); err != nil {
		return fmt.Errorf("insert sale items (id=%s): %w", sale.ID, err)
	}

	return nil
}
