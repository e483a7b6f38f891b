package service

import (
	"github.com/MKhiriev/go-till-keeper/internal/adapter"
	"github.com/MKhiriev/go-till-keeper/internal/config"
	"github.com/MKhiriev/go-till-keeper/internal/logger"
	"github.com/MKhiriev/go-till-keeper/internal/store"
)

type Services struct {
	SyncService SyncService
	SyncJob     SyncJob
}

func NewServices(storages *store.Storages, remote adapter.RemoteStore, conn ConnectivitySource, cfg config.Sync, logger *logger.Logger) *Services {
	syncSvc := NewSyncService(storages.TransactionRepository, remote, conn, cfg)

	return &Services{
		SyncService: syncSvc,
		SyncJob:     NewSyncJob(syncSvc, conn, cfg.Interval, logger),
	}
}
