package store

import (
	"context"

	"github.com/MKhiriev/go-grocery-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ShoppingListRepository is the local list collection.
type ShoppingListRepository interface {
	// Insert stores list and returns its new local key.
	Insert(ctx context.Context, list models.ShoppingList) (int64, error)
	// Update overwrites every mutable column of the row with list.ID.
	Update(ctx context.Context, list models.ShoppingList) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (models.ShoppingList, error)
	FindBySyncID(ctx context.Context, syncID string) (models.ShoppingList, error)
	FindByServerID(ctx context.Context, serverID int64) (models.ShoppingList, error)
	// ListPendingSync returns lists whose status is not SYNCED.
	ListPendingSync(ctx context.Context) ([]models.ShoppingList, error)
	ListAll(ctx context.Context) ([]models.ShoppingList, error)
	SetSyncStatus(ctx context.Context, syncID string, status models.SyncStatus) error
}

// ShoppingItemRepository is the local item collection.
type ShoppingItemRepository interface {
	Insert(ctx context.Context, item models.ShoppingItem) (int64, error)
	Update(ctx context.Context, item models.ShoppingItem) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (models.ShoppingItem, error)
	FindBySyncID(ctx context.Context, syncID string) (models.ShoppingItem, error)
	FindByServerID(ctx context.Context, serverID int64) (models.ShoppingItem, error)
	ListPendingSync(ctx context.Context) ([]models.ShoppingItem, error)
	ListAll(ctx context.Context) ([]models.ShoppingItem, error)
	SetSyncStatus(ctx context.Context, syncID string, status models.SyncStatus) error

	// ListByList returns the items of one list ordered by mode.
	ListByList(ctx context.Context, listID int64, mode models.SortMode) ([]models.ShoppingItem, error)
	// DeleteByList removes every item of one list and reports how many went.
	DeleteByList(ctx context.Context, listID int64) (int64, error)
}

// StoreLocationRepository is the local store collection.
type StoreLocationRepository interface {
	Insert(ctx context.Context, store models.StoreLocation) (int64, error)
	Update(ctx context.Context, store models.StoreLocation) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (models.StoreLocation, error)
	FindBySyncID(ctx context.Context, syncID string) (models.StoreLocation, error)
	FindByServerID(ctx context.Context, serverID int64) (models.StoreLocation, error)
	FindByGeofenceID(ctx context.Context, geofenceID string) (models.StoreLocation, error)
	ListPendingSync(ctx context.Context) ([]models.StoreLocation, error)
	ListAll(ctx context.Context) ([]models.StoreLocation, error)
	SetSyncStatus(ctx context.Context, syncID string, status models.SyncStatus) error
}

// TombstoneRepository is the append-only deletion log.
type TombstoneRepository interface {
	Insert(ctx context.Context, tombstone models.Tombstone) (int64, error)
	ListUnacknowledged(ctx context.Context) ([]models.Tombstone, error)
	ListAll(ctx context.Context) ([]models.Tombstone, error)
	// Acknowledge flags the given rows. Already acknowledged rows stay so.
	Acknowledge(ctx context.Context, ids []int64) error
	// PurgeAcknowledged deletes acknowledged rows and reports how many went.
	PurgeAcknowledged(ctx context.Context) (int64, error)
}
