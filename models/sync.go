package models

import "time"

// SyncResult is the outcome of one sync pass. It is ephemeral: produced by
// the engine, surfaced through the status contract, never persisted.
type SyncResult struct {
	Success bool     `json:"success"`
	Synced  int      `json:"synced"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// SyncStatus is the read-only projection consumed by the UI layer. It always
// reflects the latest committed state of the queue and the engine.
type SyncStatus struct {
	IsOnline       bool        `json:"is_online"`
	PendingCount   int         `json:"pending_count"`
	StorageBytes   int64       `json:"storage_bytes"`
	LastSyncAt     *time.Time  `json:"last_sync_at,omitempty"`
	IsSyncing      bool        `json:"is_syncing"`
	LastSyncResult *SyncResult `json:"last_sync_result,omitempty"`
}

// QueueExportVersion is the current version tag of the export blob format.
const QueueExportVersion = 1

// QueueExport is the serialized form of the entire local queue, used for
// backup and device-to-device transfer. Import is all-or-nothing and must
// round-trip with export.
type QueueExport struct {
	Version      int                  `json:"version"`
	ExportedAt   time.Time            `json:"exported_at"`
	Transactions []OfflineTransaction `json:"transactions"`
}
