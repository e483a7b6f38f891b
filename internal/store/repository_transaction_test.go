package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/models"
)

const selectQueueSQL = `SELECT id, type, payload, status, retry_count, last_error, created_at, last_attempt_at FROM offline_transactions`

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) TransactionRepository {
	t.Helper()
	return NewTransactionRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// saleTxn builds a minimal valid sale transaction for test fixtures.
func saleTxn(id string, createdAt time.Time) models.OfflineTransaction {
	return models.OfflineTransaction{
		ID:   id,
		Type: models.TransactionTypeSale,
		Sale: &models.OfflineSale{
			ID: id,
			Items: []models.SaleItem{
				{ProductID: "sku-1", Quantity: 2, UnitPrice: 5, TotalPrice: 10},
			},
			TotalAmount:   10,
			PaymentMethod: "cash",
			Status:        "completed",
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		},
		Status:    models.TransactionStatusPending,
		CreatedAt: createdAt,
	}
}

// queueRow renders a transaction the way it sits in the database.
func queueRow(t *testing.T, txn models.OfflineTransaction) []driverValue {
	t.Helper()

	payload, err := encodePayload(&txn)
	require.NoError(t, err)

	var lastAttemptAt driverValue
	if txn.LastAttemptAt != nil {
		lastAttemptAt = *txn.LastAttemptAt
	}

	return []driverValue{
		txn.ID, string(txn.Type), payload, string(txn.Status),
		txn.RetryCount, txn.LastError, txn.CreatedAt, lastAttemptAt,
	}
}

// driverValue aliases driver.Value so row fixtures can be spread straight
// into sqlmock's AddRow.
type driverValue = driver.Value

func addRows(rows *sqlmock.Rows, values ...[]driverValue) *sqlmock.Rows {
	for _, v := range values {
		rows.AddRow(v...)
	}
	return rows
}

func TestEnqueue(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	txn := saleTxn("txn-1", now)
	payload, err := encodePayload(&txn)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(enqueueTransaction)).
			WithArgs("txn-1", "sale", payload, "pending", 0, "", now, nil).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Enqueue(testContext(), txn)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(enqueueTransaction)).
			WillReturnError(errors.New("disk full"))

		err := repo.Enqueue(testContext(), txn)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to enqueue transaction")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("zero rows affected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(enqueueTransaction)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Enqueue(testContext(), txn)

		assert.ErrorIs(t, err, ErrTransactionNotSaved)
	})
}

// TestGetEligible_FIFOOrder verifies that eligibility filters on status and
// retry ceiling and that records come back oldest first.
func TestGetEligible_FIFOOrder(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	base := time.Now().Truncate(time.Millisecond)
	oldest := saleTxn("txn-old", base.Add(-2*time.Hour))
	middle := saleTxn("txn-mid", base.Add(-time.Hour))
	middle.Status = models.TransactionStatusFailed
	middle.RetryCount = 2
	newest := saleTxn("txn-new", base)

	rows := addRows(
		sqlmock.NewRows(queueColumns),
		queueRow(t, oldest), queueRow(t, middle), queueRow(t, newest),
	)

	mock.ExpectQuery(regexp.QuoteMeta(selectQueueSQL+` WHERE status IN ($1,$2) AND retry_count < $3 ORDER BY created_at ASC`)).
		WithArgs("pending", "failed", 5).
		WillReturnRows(rows)

	got, err := repo.GetEligible(testContext(), 5)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "txn-old", got[0].ID)
	assert.Equal(t, "txn-mid", got[1].ID)
	assert.Equal(t, "txn-new", got[2].ID)
	assert.Equal(t, 2, got[1].RetryCount)
	require.NotNil(t, got[0].Sale)
	assert.Equal(t, "sku-1", got[0].Sale.Items[0].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	now := time.Now().Truncate(time.Millisecond)
	txn := saleTxn("txn-1", now)
	txn.Status = models.TransactionStatusSynced

	rows := addRows(sqlmock.NewRows(queueColumns), queueRow(t, txn))

	mock.ExpectQuery(regexp.QuoteMeta(selectQueueSQL + ` ORDER BY created_at ASC`)).
		WillReturnRows(rows)

	got, err := repo.GetAll(testContext())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.TransactionStatusSynced, got[0].Status)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("pending to syncing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(markTransactionSyncing)).
			WithArgs(sqlmock.AnyArg(), "txn-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(testContext(), "txn-1", models.TransactionStatusSyncing, "")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("syncing to synced", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(markTransactionSynced)).
			WithArgs("txn-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(testContext(), "txn-1", models.TransactionStatusSynced, "")

		require.NoError(t, err)
	})

	t.Run("syncing to failed records error message", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(markTransactionFailed)).
			WithArgs("remote insert rejected", "txn-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(testContext(), "txn-1", models.TransactionStatusFailed, "remote insert rejected")

		require.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(markTransactionSyncing)).
			WithArgs(sqlmock.AnyArg(), "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(getTransactionStatus)).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		err := repo.UpdateStatus(testContext(), "ghost", models.TransactionStatusSyncing, "")

		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("synced is terminal", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(markTransactionSyncing)).
			WithArgs(sqlmock.AnyArg(), "txn-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(getTransactionStatus)).
			WithArgs("txn-1").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("synced"))

		err := repo.UpdateStatus(testContext(), "txn-1", models.TransactionStatusSyncing, "")

		assert.ErrorIs(t, err, ErrIllegalStatusTransition)
	})

	t.Run("unknown target status", func(t *testing.T) {
		db, _ := newTestDB(t)
		repo := newTestRepo(t, db)

		err := repo.UpdateStatus(testContext(), "txn-1", models.TransactionStatus("sideways"), "")

		assert.ErrorIs(t, err, models.ErrInvalidStatus)
	})
}

// TestClearSynced verifies that purging runs the synced-only DELETE and
// reports the removed row count.
func TestClearSynced(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(deleteSyncedTransactions)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.ClearSynced(testContext())

	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingCount(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM offline_transactions WHERE status IN ($1,$2,$3)`)).
		WithArgs("pending", "syncing", "failed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.PendingCount(testContext())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestStorageSize(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(LENGTH(payload)), 0) FROM offline_transactions`)).
		WillReturnRows(sqlmock.NewRows([]string{"size"}).AddRow(2048))

	size, err := repo.StorageSize(testContext())

	require.NoError(t, err)
	assert.EqualValues(t, 2048, size)
}

func TestLastSyncAt(t *testing.T) {
	t.Run("no pass recorded yet", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(getMetaValue)).
			WithArgs(metaKeyLastSyncAt).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.LastSyncAt(testContext())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("stored timestamp round-trips", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		want := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(getMetaValue)).
			WithArgs(metaKeyLastSyncAt).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(want.Format(time.RFC3339Nano)))

		got, err := repo.LastSyncAt(testContext())

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Equal(want))
	})

	t.Run("garbage value surfaces as error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(getMetaValue)).
			WithArgs(metaKeyLastSyncAt).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("yesterday-ish"))

		got, err := repo.LastSyncAt(testContext())

		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestSetLastSyncAt(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	ts := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(upsertMetaValue)).
		WithArgs(metaKeyLastSyncAt, ts.Format(time.RFC3339Nano)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetLastSyncAt(testContext(), ts)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportData(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	now := time.Now().Truncate(time.Millisecond)
	txn := saleTxn("txn-1", now)

	rows := addRows(sqlmock.NewRows(queueColumns), queueRow(t, txn))
	mock.ExpectQuery(regexp.QuoteMeta(selectQueueSQL + ` ORDER BY created_at ASC`)).
		WillReturnRows(rows)

	export, err := repo.ExportData(testContext())

	require.NoError(t, err)
	require.NotNil(t, export)
	assert.Equal(t, models.QueueExportVersion, export.Version)
	assert.False(t, export.ExportedAt.IsZero())
	require.Len(t, export.Transactions, 1)
	assert.Equal(t, "txn-1", export.Transactions[0].ID)
}

func TestImportData(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("replaces queue atomically", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		first := saleTxn("txn-1", now.Add(-time.Hour))
		second := saleTxn("txn-2", now)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteAllTransactions)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		for _, txn := range []models.OfflineTransaction{first, second} {
			payload, err := encodePayload(&txn)
			require.NoError(t, err)
			mock.ExpectExec(regexp.QuoteMeta(enqueueTransaction)).
				WithArgs(txn.ID, "sale", payload, "pending", 0, "", txn.CreatedAt, nil).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}
		mock.ExpectCommit()

		err := repo.ImportData(testContext(), &models.QueueExport{
			Version:      models.QueueExportVersion,
			ExportedAt:   now,
			Transactions: []models.OfflineTransaction{first, second},
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil blob rejected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		err := repo.ImportData(testContext(), nil)

		assert.ErrorIs(t, err, ErrCorruptExport)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unsupported version rejected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		err := repo.ImportData(testContext(), &models.QueueExport{Version: 99})

		assert.ErrorIs(t, err, ErrUnsupportedExportVersion)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt record rejected before any write", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		bad := saleTxn("", now) // missing id

		err := repo.ImportData(testContext(), &models.QueueExport{
			Version:      models.QueueExportVersion,
			ExportedAt:   now,
			Transactions: []models.OfflineTransaction{bad},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCorruptExport)
		// no Begin/Exec were expected: validation failed before touching the db
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestReplaceAll_RollsBackOnInsertError verifies that a mid-import failure
// leaves no partial state behind.
func TestReplaceAll_RollsBackOnInsertError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	now := time.Now().Truncate(time.Millisecond)
	txn := saleTxn("txn-1", now)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteAllTransactions)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(enqueueTransaction)).
		WillReturnError(fmt.Errorf("constraint violation"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(testContext(), []models.OfflineTransaction{txn})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint violation")
	assert.NoError(t, mock.ExpectationsWereMet())
}
