package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
)

// syncMapper turns pending local rows into wire records. Its only write is
// the backfill of a missing sync id.
type syncMapper struct {
	storages *store.ClientStorages
	ids      IDGenerator
	logger   *logger.Logger
}

func newSyncMapper(storages *store.ClientStorages, ids IDGenerator, logger *logger.Logger) *syncMapper {
	return &syncMapper{storages: storages, ids: ids, logger: logger}
}

// itemBatch is the outcome of mapping pending items.
type itemBatch struct {
	wire []models.ShoppingItemSync
	// sent holds the local snapshot of every item in wire.
	sent []models.ShoppingItem
	// deferred holds items whose list has no server id yet.
	deferred []models.ShoppingItem
}

func (m *syncMapper) Lists(ctx context.Context, lists []models.ShoppingList, watermark time.Time) ([]models.ShoppingListSync, []models.ShoppingList, error) {
	wire := make([]models.ShoppingListSync, 0, len(lists))
	sent := make([]models.ShoppingList, 0, len(lists))

	for _, list := range lists {
		if list.SyncID == "" {
			list.SyncID = m.ids.Generate()
			if err := m.storages.Lists.Update(ctx, list); err != nil {
				return nil, nil, fmt.Errorf("backfill sync id of list %d: %w", list.ID, err)
			}
		}
		wire = append(wire, ListToWire(list, watermark))
		sent = append(sent, list)
	}

	return wire, sent, nil
}

func (m *syncMapper) Items(ctx context.Context, items []models.ShoppingItem, watermark time.Time) (itemBatch, error) {
	var batch itemBatch
	listServerIDs := make(map[int64]*int64)

	for _, item := range items {
		serverListID, cached := listServerIDs[item.ListID]
		if !cached {
			list, err := m.storages.Lists.FindByID(ctx, item.ListID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return itemBatch{}, fmt.Errorf("resolve list of item %d: %w", item.ID, err)
			}
			if err == nil {
				serverListID = list.ServerID
			}
			listServerIDs[item.ListID] = serverListID
		}

		if serverListID == nil {
			m.logger.Debug().
				Str("func", "syncMapper.Items").
				Str("sync_id", item.SyncID).
				Int64("list_id", item.ListID).
				Msg("item deferred: list has no server id")
			batch.deferred = append(batch.deferred, item)
			continue
		}

		if item.SyncID == "" {
			item.SyncID = m.ids.Generate()
			if err := m.storages.Items.Update(ctx, item); err != nil {
				return itemBatch{}, fmt.Errorf("backfill sync id of item %d: %w", item.ID, err)
			}
		}
		batch.wire = append(batch.wire, ItemToWire(item, *serverListID, watermark))
		batch.sent = append(batch.sent, item)
	}

	return batch, nil
}

func (m *syncMapper) Stores(ctx context.Context, stores []models.StoreLocation, watermark time.Time) ([]models.StoreLocationSync, []models.StoreLocation, error) {
	wire := make([]models.StoreLocationSync, 0, len(stores))
	sent := make([]models.StoreLocation, 0, len(stores))

	for _, s := range stores {
		if s.SyncID == "" {
			s.SyncID = m.ids.Generate()
			if err := m.storages.Stores.Update(ctx, s); err != nil {
				return nil, nil, fmt.Errorf("backfill sync id of store %d: %w", s.ID, err)
			}
		}
		wire = append(wire, StoreToWire(s, watermark))
		sent = append(sent, s)
	}

	return wire, sent, nil
}

// ListToWire converts a local list. The version field is always left empty.
func ListToWire(list models.ShoppingList, watermark time.Time) models.ShoppingListSync {
	return models.ShoppingListSync{
		ID:         list.ServerID,
		Name:       list.Name,
		SyncID:     list.SyncID,
		CreatedAt:  timestampOrNil(list.CreatedAt),
		UpdatedAt:  timestampOrNil(list.UpdatedAt),
		LastSynced: timestampOrNil(watermark),
	}
}

// ItemToWire converts a local item whose list is known to the server as
// serverListID.
func ItemToWire(item models.ShoppingItem, serverListID int64, watermark time.Time) models.ShoppingItemSync {
	return models.ShoppingItemSync{
		ID:             item.ServerID,
		Name:           item.Name,
		Quantity:       item.Quantity,
		UnitType:       item.UnitType,
		Checked:        item.Checked,
		SortIndex:      item.SortIndex,
		ShoppingListID: serverListID,
		SyncID:         item.SyncID,
		CreatedAt:      timestampOrNil(item.CreatedAt),
		UpdatedAt:      timestampOrNil(item.UpdatedAt),
		LastSynced:     timestampOrNil(watermark),
	}
}

func StoreToWire(s models.StoreLocation, watermark time.Time) models.StoreLocationSync {
	return models.StoreLocationSync{
		ID:         s.ServerID,
		Name:       s.Name,
		Address:    s.Address,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		GeofenceID: s.GeofenceID,
		SyncID:     s.SyncID,
		CreatedAt:  timestampOrNil(s.CreatedAt),
		UpdatedAt:  timestampOrNil(s.UpdatedAt),
		LastSynced: timestampOrNil(watermark),
	}
}

func TombstonesToWire(tombstones []models.Tombstone) []models.DeletedItemSync {
	wire := make([]models.DeletedItemSync, 0, len(tombstones))
	for _, t := range tombstones {
		wire = append(wire, models.DeletedItemSync{
			SyncID:     t.SyncID,
			OriginalID: models.Int64Ptr(t.OriginalID),
			EntityType: t.Kind,
			DeletedAt:  models.NewTimestamp(t.DeletedAt),
		})
	}
	return wire
}

func timestampOrNil(t time.Time) *models.Timestamp {
	if t.IsZero() {
		return nil
	}
	return models.TimestampPtr(t)
}

// ChooseSyncMode picks two-phase mode when a pending list without a server
// id owns at least one pending item; such items cannot reference their list
// on the wire until the list has been created on the server.
func ChooseSyncMode(pendingLists []models.ShoppingList, pendingItems []models.ShoppingItem) models.SyncMode {
	unsent := make(map[int64]struct{})
	for _, l := range pendingLists {
		if l.ServerID == nil {
			unsent[l.ID] = struct{}{}
		}
	}
	if len(unsent) == 0 {
		return models.ModeStandard
	}

	for _, it := range pendingItems {
		if _, ok := unsent[it.ListID]; ok {
			return models.ModeTwoPhase
		}
	}
	return models.ModeStandard
}
