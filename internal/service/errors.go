package service

import "errors"

var (
	// ErrOffline is returned when a sync pass is requested while the remote
	// store is unreachable. The queue is left untouched.
	ErrOffline = errors.New("remote store is offline")

	// ErrSyncInFlight is returned when a sync pass is requested while a
	// previous pass is still running. The running pass is unaffected.
	ErrSyncInFlight = errors.New("sync pass already in progress")

	// ErrNoStrategy is returned (recorded per transaction) when no
	// reconciliation strategy is registered for a transaction's type.
	ErrNoStrategy = errors.New("no reconciliation strategy registered")

	// ErrNilTransaction is returned when Enqueue is called without a
	// transaction.
	ErrNilTransaction = errors.New("transaction is nil")
)
