package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type storeLocationRepository struct {
	*DB
	logger *logger.Logger
}

// NewStoreLocationRepository returns the SQLite implementation of
// [StoreLocationRepository].
func NewStoreLocationRepository(db *DB, logger *logger.Logger) StoreLocationRepository {
	return &storeLocationRepository{DB: db, logger: logger}
}

func (r *storeLocationRepository) Insert(ctx context.Context, store models.StoreLocation) (int64, error) {
	now := time.Now().UTC()
	if store.CreatedAt.IsZero() {
		store.CreatedAt = now
	}
	if store.UpdatedAt.IsZero() {
		store.UpdatedAt = now
	}
	if store.SyncStatus == "" {
		store.SyncStatus = models.StatusLocalOnly
	}

	id, err := r.insert(ctx, "storeLocationRepository.Insert", psql.Insert(tableStoreLocations).
		Columns(storeLocationColumns[1:]...).
		Values(
			store.Name, store.Address, store.Latitude, store.Longitude, store.GeofenceID,
			store.SyncID, nullableInt64(store.ServerID), store.CreatedAt.UTC(), store.UpdatedAt.UTC(), string(store.SyncStatus),
		))
	if err != nil {
		r.logger.Err(err).Str("func", "storeLocationRepository.Insert").Str("sync_id", store.SyncID).Msg("failed to insert store location")
		return 0, err
	}

	return id, nil
}

func (r *storeLocationRepository) Update(ctx context.Context, store models.StoreLocation) error {
	return r.execAffecting(ctx, "storeLocationRepository.Update", psql.Update(tableStoreLocations).
		SetMap(map[string]any{
			"name":        store.Name,
			"address":     store.Address,
			"latitude":    store.Latitude,
			"longitude":   store.Longitude,
			"geofence_id": store.GeofenceID,
			"sync_id":     store.SyncID,
			"server_id":   nullableInt64(store.ServerID),
			"updated_at":  store.UpdatedAt.UTC(),
			"sync_status": string(store.SyncStatus),
		}).
		Where(sq.Eq{"id": store.ID}))
}

func (r *storeLocationRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, "storeLocationRepository.Delete", buildDeleteByIDQuery(tableStoreLocations, id))
}

func (r *storeLocationRepository) FindByID(ctx context.Context, id int64) (models.StoreLocation, error) {
	return queryOne(ctx, r.DB, "storeLocationRepository.FindByID",
		selectFrom(tableStoreLocations, storeLocationColumns).Where(sq.Eq{"id": id}), scanStoreLocation)
}

func (r *storeLocationRepository) FindBySyncID(ctx context.Context, syncID string) (models.StoreLocation, error) {
	if syncID == "" {
		return models.StoreLocation{}, ErrNotFound
	}
	return queryOne(ctx, r.DB, "storeLocationRepository.FindBySyncID",
		selectFrom(tableStoreLocations, storeLocationColumns).Where(sq.Eq{"sync_id": syncID}), scanStoreLocation)
}

func (r *storeLocationRepository) FindByServerID(ctx context.Context, serverID int64) (models.StoreLocation, error) {
	return queryOne(ctx, r.DB, "storeLocationRepository.FindByServerID",
		selectFrom(tableStoreLocations, storeLocationColumns).Where(sq.Eq{"server_id": serverID}).Limit(1), scanStoreLocation)
}

func (r *storeLocationRepository) FindByGeofenceID(ctx context.Context, geofenceID string) (models.StoreLocation, error) {
	if geofenceID == "" {
		return models.StoreLocation{}, ErrNotFound
	}
	return queryOne(ctx, r.DB, "storeLocationRepository.FindByGeofenceID",
		selectFrom(tableStoreLocations, storeLocationColumns).Where(sq.Eq{"geofence_id": geofenceID}).Limit(1), scanStoreLocation)
}

func (r *storeLocationRepository) ListPendingSync(ctx context.Context) ([]models.StoreLocation, error) {
	return queryAll(ctx, r.DB, "storeLocationRepository.ListPendingSync",
		selectFrom(tableStoreLocations, storeLocationColumns).Where(pendingSync).OrderBy("id ASC"), scanStoreLocation)
}

func (r *storeLocationRepository) ListAll(ctx context.Context) ([]models.StoreLocation, error) {
	return queryAll(ctx, r.DB, "storeLocationRepository.ListAll",
		selectFrom(tableStoreLocations, storeLocationColumns).OrderBy("id ASC"), scanStoreLocation)
}

func (r *storeLocationRepository) SetSyncStatus(ctx context.Context, syncID string, status models.SyncStatus) error {
	return r.execAffecting(ctx, "storeLocationRepository.SetSyncStatus",
		buildSetSyncStatusQuery(tableStoreLocations, syncID, status))
}

func scanStoreLocation(row rowScanner) (models.StoreLocation, error) {
	var (
		store    models.StoreLocation
		serverID sql.NullInt64
		status   string
	)

	err := row.Scan(
		&store.ID, &store.Name, &store.Address, &store.Latitude, &store.Longitude, &store.GeofenceID,
		&store.SyncID, &serverID, &store.CreatedAt, &store.UpdatedAt, &status,
	)
	if err != nil {
		return models.StoreLocation{}, err
	}
	store.ServerID = int64FromNull(serverID)
	store.SyncStatus = models.SyncStatus(status)

	return store, nil
}
