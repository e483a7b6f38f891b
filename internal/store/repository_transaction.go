package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/models"
)

// metaKeyLastSyncAt is the sync_meta key holding the RFC 3339 completion time
// of the most recent sync pass.
const metaKeyLastSyncAt = "last_sync_at"

// queueColumns is the column list shared by every query that scans full
// transaction rows.
var queueColumns = []string{
	"id",
	"type",
	"payload",
	"status",
	"retry_count",
	"last_error",
	"created_at",
	"last_attempt_at",
}

// builder produces queries with $N placeholders, matching the hand-written
// statements in sql_queries.go.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type transactionRepository struct {
	*DB
	logger *logger.Logger
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *transactionRepository) Enqueue(ctx context.Context, txn models.OfflineTransaction) error {
	log := logger.FromContext(ctx)

	payload, err := encodePayload(&txn)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Enqueue").
			Str("id", txn.ID).
			Msg("failed to encode transaction payload")
		return fmt.Errorf("failed to encode payload (id=%s): %w", txn.ID, err)
	}

	var lastAttemptAt any
	if txn.LastAttemptAt != nil {
		lastAttemptAt = *txn.LastAttemptAt
	}

	result, err := r.DB.ExecContext(ctx, enqueueTransaction,
		txn.ID,
		txn.Type,
		payload,
		txn.Status,
		txn.RetryCount,
		txn.LastError,
		txn.CreatedAt,
		lastAttemptAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Enqueue").
			Str("id", txn.ID).
			Msg("failed to execute insert for offline transaction")
		return fmt.Errorf("failed to enqueue transaction (id=%s): %w", txn.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Enqueue").
			Str("id", txn.ID).
			Msg("failed to get rows affected after insert")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", txn.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w (id=%s)", ErrTransactionNotSaved, txn.ID)
	}

	return nil
}

func (r *transactionRepository) GetEligible(ctx context.Context, maxRetries int) ([]models.OfflineTransaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select(queueColumns...).
		From("offline_transactions").
		Where(sq.Eq{"status": []string{
			string(models.TransactionStatusPending),
			string(models.TransactionStatusFailed),
		}}).
		Where(sq.Lt{"retry_count": maxRetries}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetEligible").
			Msg("failed to build eligible-transactions query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTransactions(ctx, "transactionRepository.GetEligible", query, args...)
}

func (r *transactionRepository) GetAll(ctx context.Context) ([]models.OfflineTransaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select(queueColumns...).
		From("offline_transactions").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetAll").
			Msg("failed to build all-transactions query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTransactions(ctx, "transactionRepository.GetAll", query, args...)
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id string, status models.TransactionStatus, errMsg string) error {
	log := logger.FromContext(ctx)

	var (
		result sql.Result
		err    error
	)

	// Each target status has its own guarded UPDATE; the WHERE clause
	// encodes the legal source statuses, so a forbidden move touches no rows.
	switch status {
	case models.TransactionStatusSyncing:
		result, err = r.DB.ExecContext(ctx, markTransactionSyncing, time.Now(), id)
	case models.TransactionStatusSynced:
		result, err = r.DB.ExecContext(ctx, markTransactionSynced, id)
	case models.TransactionStatusFailed:
		result, err = r.DB.ExecContext(ctx, markTransactionFailed, errMsg, id)
	default:
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.UpdateStatus").
			Str("id", id).
			Str("status", string(status)).
			Msg("failed to execute status update")
		return fmt.Errorf("failed to update status (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.UpdateStatus").
			Str("id", id).
			Msg("failed to get rows affected after status update")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		// Zero rows means either the id is unknown or the current status
		// forbids the move; look the row up to tell the two apart.
		var current string
		scanErr := r.DB.QueryRowContext(ctx, getTransactionStatus, id).Scan(&current)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return fmt.Errorf("%w (id=%s)", ErrTransactionNotFound, id)
		}
		if scanErr != nil {
			return fmt.Errorf("failed to query current status (id=%s): %w", id, scanErr)
		}

		log.Warn().
			Str("func", "transactionRepository.UpdateStatus").
			Str("id", id).
			Str("from", current).
			Str("to", string(status)).
			Msg("status update rejected by state machine")
		return fmt.Errorf("%w: %s -> %s (id=%s)", ErrIllegalStatusTransition, current, status, id)
	}

	return nil
}

func (r *transactionRepository) ClearSynced(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteSyncedTransactions)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.ClearSynced").
			Msg("failed to delete synced transactions")
		return 0, fmt.Errorf("failed to clear synced transactions: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.ClearSynced").
			Msg("failed to get rows affected after purge")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return removed, nil
}

func (r *transactionRepository) PendingCount(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select("COUNT(*)").
		From("offline_transactions").
		Where(sq.Eq{"status": []string{
			string(models.TransactionStatusPending),
			string(models.TransactionStatusSyncing),
			string(models.TransactionStatusFailed),
		}}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.PendingCount").
			Msg("failed to build pending-count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "transactionRepository.PendingCount").
			Msg("failed to query pending count")
		return 0, fmt.Errorf("failed to query pending count: %w", err)
	}

	return count, nil
}

func (r *transactionRepository) StorageSize(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select("COALESCE(SUM(LENGTH(payload)), 0)").
		From("offline_transactions").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.StorageSize").
			Msg("failed to build storage-size query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var size int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&size); err != nil {
		log.Err(err).
			Str("func", "transactionRepository.StorageSize").
			Msg("failed to query storage size")
		return 0, fmt.Errorf("failed to query storage size: %w", err)
	}

	return size, nil
}

func (r *transactionRepository) LastSyncAt(ctx context.Context) (*time.Time, error) {
	log := logger.FromContext(ctx)

	var raw string
	err := r.DB.QueryRowContext(ctx, getMetaValue, metaKeyLastSyncAt).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		// no pass has completed yet
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.LastSyncAt").
			Msg("failed to query last sync timestamp")
		return nil, fmt.Errorf("failed to query last sync timestamp: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.LastSyncAt").
			Str("value", raw).
			Msg("failed to parse stored last sync timestamp")
		return nil, fmt.Errorf("failed to parse last sync timestamp: %w", err)
	}

	return &t, nil
}

func (r *transactionRepository) SetLastSyncAt(ctx context.Context, t time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertMetaValue, metaKeyLastSyncAt, t.Format(time.RFC3339Nano))
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.SetLastSyncAt").
			Msg("failed to store last sync timestamp")
		return fmt.Errorf("failed to store last sync timestamp: %w", err)
	}

	return nil
}

func (r *transactionRepository) ExportData(ctx context.Context) (*models.QueueExport, error) {
	txns, err := r.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export queue: %w", err)
	}

	return &models.QueueExport{
		Version:      models.QueueExportVersion,
		ExportedAt:   time.Now(),
		Transactions: txns,
	}, nil
}

func (r *transactionRepository) ImportData(ctx context.Context, export *models.QueueExport) error {
	if export == nil {
		return ErrCorruptExport
	}
	if export.Version != models.QueueExportVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedExportVersion, export.Version)
	}

	// Validate every record up front; nothing is written on failure.
	for i := range export.Transactions {
		if err := export.Transactions[i].Validate(); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrCorruptExport, i, err)
		}
	}

	return r.ReplaceAll(ctx, export.Transactions)
}

func (r *transactionRepository) ReplaceAll(ctx context.Context, txns []models.OfflineTransaction) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAllTransactions); err != nil {
		log.Err(err).
			Str("func", "transactionRepository.ReplaceAll").
			Msg("failed to clear queue before import")
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	for i := range txns {
		txn := &txns[i]

		payload, err := encodePayload(txn)
		if err != nil {
			return fmt.Errorf("failed to encode payload (id=%s): %w", txn.ID, err)
		}

		var lastAttemptAt any
		if txn.LastAttemptAt != nil {
			lastAttemptAt = *txn.LastAttemptAt
		}

		if _, err := tx.ExecContext(ctx, enqueueTransaction,
			txn.ID,
			txn.Type,
			payload,
			txn.Status,
			txn.RetryCount,
			txn.LastError,
			txn.CreatedAt,
			lastAttemptAt,
		); err != nil {
			log.Err(err).
				Str("func", "transactionRepository.ReplaceAll").
				Str("id", txn.ID).
				Msg("failed to insert imported transaction")
			return fmt.Errorf("failed to insert transaction (id=%s): %w", txn.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "transactionRepository.ReplaceAll").
			Msg("failed to commit queue replacement")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *transactionRepository) queryTransactions(ctx context.Context, caller, query string, args ...any) ([]models.OfflineTransaction, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for offline transactions")
		return nil, fmt.Errorf("failed to query offline transactions: %w", err)
	}
	defer rows.Close()

	var items []models.OfflineTransaction

	for rows.Next() {
		var (
			item          models.OfflineTransaction
			payload       string
			lastAttemptAt sql.NullTime
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.Type,
			&payload,
			&item.Status,
			&item.RetryCount,
			&item.LastError,
			&item.CreatedAt,
			&lastAttemptAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan offline transaction row")
			return nil, fmt.Errorf("failed to scan offline transaction row: %w", scanErr)
		}

		if lastAttemptAt.Valid {
			t := lastAttemptAt.Time
			item.LastAttemptAt = &t
		}

		if err := decodePayload(&item, payload); err != nil {
			log.Err(err).
				Str("func", caller).
				Str("id", item.ID).
				Msg("failed to decode transaction payload")
			return nil, fmt.Errorf("failed to decode payload (id=%s): %w", item.ID, err)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating offline transaction rows: %w", rowsErr)
	}

	return items, nil
}

// encodePayload serialises the typed payload of a transaction into the JSON
// column value.
func encodePayload(txn *models.OfflineTransaction) (string, error) {
	var (
		raw []byte
		err error
	)

	switch txn.Type {
	case models.TransactionTypeSale:
		raw, err = json.Marshal(txn.Sale)
	case models.TransactionTypeCartSnapshot:
		raw, err = json.Marshal(txn.Cart)
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownType, txn.Type)
	}
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// decodePayload fills the typed payload of a transaction from the JSON
// column value, dispatching on the stored type.
func decodePayload(txn *models.OfflineTransaction, raw string) error {
	switch txn.Type {
	case models.TransactionTypeSale:
		txn.Sale = &models.OfflineSale{}
		return json.Unmarshal([]byte(raw), txn.Sale)
	case models.TransactionTypeCartSnapshot:
		txn.Cart = &models.CartSnapshot{}
		return json.Unmarshal([]byte(raw), txn.Cart)
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownType, txn.Type)
	}
}
