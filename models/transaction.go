package models

import (
	"errors"
	"fmt"
	"time"
)

// TransactionType selects the reconciliation strategy for a queued
// transaction. The set is closed; adding a type requires registering a
// strategy for it in the service layer.
type TransactionType string

const (
	TransactionTypeSale         TransactionType = "sale"
	TransactionTypeCartSnapshot TransactionType = "cart-snapshot"
)

// TransactionStatus is the sync state of a queued transaction, distinct from
// any business status carried inside the payload.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSyncing TransactionStatus = "syncing"
	TransactionStatusSynced  TransactionStatus = "synced"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// CanTransitionTo reports whether moving from s to next is a legal status
// transition:
//
//	pending -> syncing
//	syncing -> synced | failed
//	failed  -> syncing
//
// synced is terminal.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case TransactionStatusPending:
		return next == TransactionStatusSyncing
	case TransactionStatusSyncing:
		return next == TransactionStatusSynced || next == TransactionStatusFailed
	case TransactionStatusFailed:
		return next == TransactionStatusSyncing
	default:
		return false
	}
}

// Valid reports whether s is one of the known statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusSyncing,
		TransactionStatusSynced, TransactionStatusFailed:
		return true
	}
	return false
}

var (
	ErrEmptyTransactionID   = errors.New("transaction id is empty")
	ErrUnknownType          = errors.New("unknown transaction type")
	ErrInvalidStatus        = errors.New("invalid transaction status")
	ErrPayloadTypeMismatch  = errors.New("payload does not match transaction type")
	ErrNegativeRetryCount   = errors.New("retry count is negative")
	ErrZeroCreatedTimestamp = errors.New("created_at timestamp is not set")
)

// OfflineTransaction is one locally recorded unit of work awaiting remote
// reconciliation. The payload is a tagged union: exactly one of Sale or Cart
// is set, matching Type.
type OfflineTransaction struct {
	ID            string            `json:"id"`
	Type          TransactionType   `json:"type"`
	Sale          *OfflineSale      `json:"sale,omitempty"`
	Cart          *CartSnapshot     `json:"cart,omitempty"`
	Status        TransactionStatus `json:"status"`
	RetryCount    int               `json:"retry_count"`
	LastError     string            `json:"last_error,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	LastAttemptAt *time.Time        `json:"last_attempt_at,omitempty"`
}

// Validate checks the structural invariants of a transaction record. It is
// called on enqueue and on every record of an imported queue blob.
func (t *OfflineTransaction) Validate() error {
	if t.ID == "" {
		return ErrEmptyTransactionID
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.RetryCount < 0 {
		return ErrNegativeRetryCount
	}
	if t.CreatedAt.IsZero() {
		return ErrZeroCreatedTimestamp
	}

	switch t.Type {
	case TransactionTypeSale:
		if t.Sale == nil || t.Cart != nil {
			return ErrPayloadTypeMismatch
		}
		return t.Sale.Validate()
	case TransactionTypeCartSnapshot:
		if t.Cart == nil || t.Sale != nil {
			return ErrPayloadTypeMismatch
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, t.Type)
	}
}
