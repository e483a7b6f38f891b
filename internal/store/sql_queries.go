// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	enqueueTransaction = `
		INSERT INTO offline_transactions (
			id,
			type,
			payload,
			status,
			retry_count,
			last_error,
			created_at,
			last_attempt_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getTransactionStatus = `
		SELECT status
		FROM offline_transactions
		WHERE id = $1;`

	markTransactionSyncing = `
		UPDATE offline_transactions SET
			status          = 'syncing',
			last_attempt_at = $1
		WHERE id = $2
		  AND status IN ('pending', 'failed');`

	markTransactionSynced = `
		UPDATE offline_transactions SET
			status     = 'synced',
			last_error = ''
		WHERE id = $1
		  AND status = 'syncing';`

	markTransactionFailed = `
		UPDATE offline_transactions SET
			status      = 'failed',
			retry_count = retry_count + 1,
			last_error  = $1
		WHERE id = $2
		  AND status = 'syncing';`

	deleteSyncedTransactions = `
		DELETE FROM offline_transactions
		WHERE status = 'synced';`

	deleteAllTransactions = `
		DELETE FROM offline_transactions;`

	getMetaValue = `
		SELECT value
		FROM sync_meta
		WHERE key = $1;`

	upsertMetaValue = `
		INSERT INTO sync_meta (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)
