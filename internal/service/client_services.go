package service

import (
	"github.com/MKhiriev/go-grocery-sync/internal/adapter"
	"github.com/MKhiriev/go-grocery-sync/internal/config"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/session"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/internal/utils"
)

type ClientServices struct {
	AuthService     ClientAuthService
	ShoppingService ClientShoppingService
	Tombstones      TombstoneTracker
	SyncService     ClientSyncService
	SyncJob         ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, sess *session.Session, syncAdapter adapter.SyncAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()

	authSvc := NewClientAuthService(sess, syncAdapter, logger)
	tombstones := NewTombstoneTracker(storages.Tombstones, logger)
	syncSvc := NewClientSyncService(storages, syncAdapter, sess, authSvc, tombstones, ids, workersCfg, logger)
	syncJob := NewClientSyncJob(syncSvc, workersCfg, logger)

	return &ClientServices{
		AuthService:     authSvc,
		ShoppingService: NewClientShoppingService(storages, tombstones, ids, syncJob, logger),
		Tombstones:      tombstones,
		SyncService:     syncSvc,
		SyncJob:         syncJob,
	}
}
