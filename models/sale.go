package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptySaleID    = errors.New("sale id is empty")
	ErrNoSaleItems    = errors.New("sale has no items")
	ErrBadItemQty     = errors.New("sale item quantity must be positive")
	ErrEmptyProductID = errors.New("sale item product id is empty")
)

// SaleItem is one line of a locally recorded sale. Line order is significant:
// the index of the item in the enclosing slice is its line_index on the
// remote side, so re-submission upserts the same rows.
type SaleItem struct {
	ProductID      string  `json:"product_id"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalPrice     float64 `json:"total_price"`
	DiscountAmount float64 `json:"discount_amount"`
}

// OfflineSale is the payload of a sale transaction. Aggregate totals are
// validated by the caller before enqueue; the sync layer only forwards them.
type OfflineSale struct {
	ID             string     `json:"id"`
	Items          []SaleItem `json:"items"`
	TotalAmount    float64    `json:"total_amount"`
	TaxAmount      float64    `json:"tax_amount"`
	DiscountAmount float64    `json:"discount_amount"`
	PaymentMethod  string     `json:"payment_method"`
	CustomerID     string     `json:"customer_id,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Validate checks the structural shape of the sale payload.
func (s *OfflineSale) Validate() error {
	if s.ID == "" {
		return ErrEmptySaleID
	}
	if len(s.Items) == 0 {
		return ErrNoSaleItems
	}
	for i, item := range s.Items {
		if item.ProductID == "" {
			return fmt.Errorf("item %d: %w", i, ErrEmptyProductID)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: %w", i, ErrBadItemQty)
		}
	}
	return nil
}

// CartLine is one line of an in-progress cart.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartSnapshot is the payload of a cart-snapshot transaction. The snapshot
// strategy currently performs no remote effect; the type exists as the
// extensibility point for future transaction kinds.
type CartSnapshot struct {
	CartID    string     `json:"cart_id"`
	ActorID   string     `json:"actor_id"`
	Lines     []CartLine `json:"lines"`
	TakenAt   time.Time  `json:"taken_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
