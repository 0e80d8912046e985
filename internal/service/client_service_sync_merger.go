package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/internal/validators"
	"github.com/MKhiriev/go-grocery-sync/models"
)

// syncMerger applies server records to local storage. Applying the same
// response twice leaves the store as applying it once.
type syncMerger struct {
	storages   *store.ClientStorages
	validator  validators.Validator
	storeChain []StoreMatchRule
	logger     *logger.Logger

	// deleted holds sync ids with an unacknowledged tombstone.
	deleted map[string]struct{}
}

func newSyncMerger(storages *store.ClientStorages, validator validators.Validator, storeChain []StoreMatchRule, logger *logger.Logger) *syncMerger {
	if len(storeChain) == 0 {
		storeChain = DefaultStoreMatchChain
	}
	return &syncMerger{storages: storages, validator: validator, storeChain: storeChain, logger: logger}
}

// excluding returns a merger that skips records deleted locally whose
// tombstones the server has not confirmed yet.
func (m *syncMerger) excluding(pending []models.Tombstone) *syncMerger {
	cp := *m
	cp.deleted = make(map[string]struct{}, len(pending))
	for _, t := range pending {
		cp.deleted[t.SyncID] = struct{}{}
	}
	return &cp
}

// admit validates rec and checks it against pending deletions.
func (m *syncMerger) admit(ctx context.Context, kind models.EntityKind, syncID string, rec any) bool {
	if err := m.validator.Validate(ctx, rec); err != nil {
		m.skip(kind, syncID, err.Error())
		return false
	}
	if _, ok := m.deleted[syncID]; ok {
		m.skip(kind, syncID, "deleted locally, tombstone not acknowledged")
		return false
	}
	return true
}

// Merge applies lists first so that items can resolve their list.
func (m *syncMerger) Merge(ctx context.Context, resp models.SyncResponse) (models.MergeStats, error) {
	var stats models.MergeStats

	lists, err := m.MergeLists(ctx, resp.ShoppingLists)
	stats.Add(lists)
	if err != nil {
		return stats, err
	}

	items, err := m.MergeItems(ctx, resp.ShoppingItems)
	stats.Add(items)
	if err != nil {
		return stats, err
	}

	stores, err := m.MergeStores(ctx, resp.StoreLocations)
	stats.Add(stores)
	return stats, err
}

func (m *syncMerger) MergeLists(ctx context.Context, records []models.ShoppingListSync) (models.MergeStats, error) {
	var stats models.MergeStats

	for _, rec := range records {
		if !m.admit(ctx, models.KindList, rec.SyncID, rec) {
			stats.Skipped++
			continue
		}

		local, ok, err := found(m.storages.Lists.FindBySyncID(ctx, rec.SyncID))
		if err != nil {
			return stats, fmt.Errorf("match list %s: %w", rec.SyncID, err)
		}

		if !ok {
			list := models.ShoppingList{
				Name:       rec.Name,
				SyncID:     rec.SyncID,
				ServerID:   rec.ID,
				CreatedAt:  rec.CreatedAt.TimeOrZero(),
				UpdatedAt:  rec.UpdatedAt.TimeOrZero(),
				SyncStatus: models.StatusSynced,
			}
			if _, err = m.storages.Lists.Insert(ctx, list); err != nil {
				return stats, fmt.Errorf("insert list %s: %w", rec.SyncID, err)
			}
			stats.Inserted++
			continue
		}

		if localWins(local.SyncStatus, local.UpdatedAt, rec.UpdatedAt) {
			local.ServerID = rec.ID
			local.SyncStatus = pendingAfterServerAck(local.SyncStatus)
		} else {
			local.Name = rec.Name
			local.ServerID = rec.ID
			local.UpdatedAt = incomingOr(local.UpdatedAt, rec.UpdatedAt)
			local.SyncStatus = models.StatusSynced
		}
		if err = m.storages.Lists.Update(ctx, local); err != nil {
			return stats, fmt.Errorf("update list %s: %w", rec.SyncID, err)
		}
		stats.Updated++
	}

	return stats, nil
}

func (m *syncMerger) MergeItems(ctx context.Context, records []models.ShoppingItemSync) (models.MergeStats, error) {
	var stats models.MergeStats

	for _, rec := range records {
		if !m.admit(ctx, models.KindItem, rec.SyncID, rec) {
			stats.Skipped++
			continue
		}

		list, ok, err := found(m.storages.Lists.FindByServerID(ctx, rec.ShoppingListID))
		if err != nil {
			return stats, fmt.Errorf("resolve list of item %s: %w", rec.SyncID, err)
		}
		if !ok {
			m.skip(models.KindItem, rec.SyncID, fmt.Sprintf("list with server id %d is unknown locally", rec.ShoppingListID))
			stats.Skipped++
			continue
		}

		local, ok, err := found(m.storages.Items.FindBySyncID(ctx, rec.SyncID))
		if err != nil {
			return stats, fmt.Errorf("match item %s: %w", rec.SyncID, err)
		}

		if !ok {
			item := models.ShoppingItem{
				ListID:     list.ID,
				Name:       rec.Name,
				Quantity:   rec.Quantity,
				UnitType:   rec.UnitType,
				Checked:    rec.Checked,
				SortIndex:  rec.SortIndex,
				SyncID:     rec.SyncID,
				ServerID:   rec.ID,
				CreatedAt:  rec.CreatedAt.TimeOrZero(),
				UpdatedAt:  rec.UpdatedAt.TimeOrZero(),
				SyncStatus: models.StatusSynced,
			}
			if _, err = m.storages.Items.Insert(ctx, item); err != nil {
				return stats, fmt.Errorf("insert item %s: %w", rec.SyncID, err)
			}
			stats.Inserted++
			continue
		}

		if localWins(local.SyncStatus, local.UpdatedAt, rec.UpdatedAt) {
			local.ServerID = rec.ID
			local.SyncStatus = pendingAfterServerAck(local.SyncStatus)
		} else {
			local.ListID = list.ID
			local.Name = rec.Name
			local.Quantity = rec.Quantity
			local.UnitType = rec.UnitType
			local.Checked = rec.Checked
			local.SortIndex = rec.SortIndex
			local.ServerID = rec.ID
			local.UpdatedAt = incomingOr(local.UpdatedAt, rec.UpdatedAt)
			local.SyncStatus = models.StatusSynced
		}
		if err = m.storages.Items.Update(ctx, local); err != nil {
			return stats, fmt.Errorf("update item %s: %w", rec.SyncID, err)
		}
		stats.Updated++
	}

	return stats, nil
}

func (m *syncMerger) MergeStores(ctx context.Context, records []models.StoreLocationSync) (models.MergeStats, error) {
	var stats models.MergeStats

	for _, rec := range records {
		if !m.admit(ctx, models.KindStore, rec.SyncID, rec) {
			stats.Skipped++
			continue
		}

		local, rule, ok, err := MatchStore(ctx, m.storages.Stores, m.storeChain, rec)
		if err != nil {
			return stats, fmt.Errorf("match store %s by %s: %w", rec.SyncID, rule, err)
		}

		if !ok {
			s := models.StoreLocation{
				Name:       rec.Name,
				Address:    rec.Address,
				Latitude:   rec.Latitude,
				Longitude:  rec.Longitude,
				GeofenceID: rec.GeofenceID,
				SyncID:     rec.SyncID,
				ServerID:   rec.ID,
				CreatedAt:  rec.CreatedAt.TimeOrZero(),
				UpdatedAt:  rec.UpdatedAt.TimeOrZero(),
				SyncStatus: models.StatusSynced,
			}
			if _, err = m.storages.Stores.Insert(ctx, s); err != nil {
				return stats, fmt.Errorf("insert store %s: %w", rec.SyncID, err)
			}
			stats.Inserted++
			continue
		}

		if rule != "sync_id" {
			m.logger.Debug().
				Str("func", "syncMerger.MergeStores").
				Str("sync_id", rec.SyncID).
				Str("local_sync_id", local.SyncID).
				Str("rule", rule).
				Msg("store matched heuristically")
		}

		if local.SyncID == "" {
			local.SyncID = rec.SyncID
		}
		if localWins(local.SyncStatus, local.UpdatedAt, rec.UpdatedAt) {
			local.ServerID = rec.ID
			local.SyncStatus = pendingAfterServerAck(local.SyncStatus)
		} else {
			local.Name = rec.Name
			local.Address = rec.Address
			local.Latitude = rec.Latitude
			local.Longitude = rec.Longitude
			// geofences are registered on this device; the server may not know them
			if rec.GeofenceID != "" {
				local.GeofenceID = rec.GeofenceID
			}
			local.ServerID = rec.ID
			local.UpdatedAt = incomingOr(local.UpdatedAt, rec.UpdatedAt)
			local.SyncStatus = models.StatusSynced
		}
		if err = m.storages.Stores.Update(ctx, local); err != nil {
			return stats, fmt.Errorf("update store %s: %w", rec.SyncID, err)
		}
		stats.Updated++
	}

	return stats, nil
}

func (m *syncMerger) skip(kind models.EntityKind, syncID, reason string) {
	m.logger.Warn().
		Str("func", "syncMerger.skip").
		Str("kind", string(kind)).
		Str("sync_id", syncID).
		Str("reason", reason).
		Msg("server record skipped")
}

// localWins reports whether a pending local row was edited after the
// incoming server version. Such a row keeps its fields and only learns its
// server id; the edit goes out with the next sync.
func localWins(status models.SyncStatus, localUpdated time.Time, incoming *models.Timestamp) bool {
	if status == models.StatusSynced || incoming == nil {
		return false
	}
	return localUpdated.After(incoming.Time)
}

// pendingAfterServerAck keeps a row pending. A row the server now knows is
// no longer LOCAL_ONLY.
func pendingAfterServerAck(status models.SyncStatus) models.SyncStatus {
	if status == models.StatusLocalOnly {
		return models.StatusModifiedLocally
	}
	return status
}

func incomingOr(local time.Time, incoming *models.Timestamp) time.Time {
	if incoming == nil || incoming.IsZero() {
		return local
	}
	return incoming.Time
}
