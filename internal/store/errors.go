package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTransactionNotFound is returned when an operation targets a queued
	// transaction id that does not exist in the local database.
	ErrTransactionNotFound = errors.New("offline transaction was not found")

	// ErrIllegalStatusTransition is returned when a status update would
	// violate the queue state machine (e.g. moving a synced transaction
	// back to syncing). The row is left unchanged.
	ErrIllegalStatusTransition = errors.New("illegal transaction status transition")

	// ErrTransactionNotSaved is returned when an INSERT completes without a
	// driver error but the number of affected rows is zero, indicating that
	// nothing was actually persisted.
	ErrTransactionNotSaved = errors.New("offline transaction was not saved")

	// ErrUnsupportedExportVersion is returned when an imported queue blob
	// declares a version this build does not understand.
	ErrUnsupportedExportVersion = errors.New("unsupported queue export version")

	// ErrCorruptExport is returned when an imported queue blob fails
	// structural validation. Nothing is written in that case.
	ErrCorruptExport = errors.New("corrupt queue export")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
