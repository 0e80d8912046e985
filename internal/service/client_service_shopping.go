package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type clientShoppingService struct {
	storages   *store.ClientStorages
	tombstones TombstoneTracker
	ids        IDGenerator
	trigger    SyncTrigger
	now        func() time.Time
	logger     *logger.Logger
}

// NewClientShoppingService builds the mutation layer. trigger may be nil;
// otherwise it is nudged after every successful mutation.
func NewClientShoppingService(storages *store.ClientStorages, tombstones TombstoneTracker, ids IDGenerator, trigger SyncTrigger, logger *logger.Logger) ClientShoppingService {
	return &clientShoppingService{
		storages:   storages,
		tombstones: tombstones,
		ids:        ids,
		trigger:    trigger,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// touched returns the status of a row that was just edited locally.
func touched(status models.SyncStatus) models.SyncStatus {
	if status == models.StatusSynced {
		return models.StatusModifiedLocally
	}
	if status == "" {
		return models.StatusLocalOnly
	}
	return status
}

func (s *clientShoppingService) changed() {
	if s.trigger != nil {
		s.trigger.RequestSync()
	}
}

// ── Lists ────────────────────────────────────────────────────────────────────

func (s *clientShoppingService) CreateList(ctx context.Context, name string) (models.ShoppingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ShoppingList{}, fmt.Errorf("%w: list name is empty", ErrInvalidDataProvided)
	}

	now := s.now()
	list := models.ShoppingList{
		Name:       name,
		SyncID:     s.ids.Generate(),
		CreatedAt:  now,
		UpdatedAt:  now,
		SyncStatus: models.StatusLocalOnly,
	}
	id, err := s.storages.Lists.Insert(ctx, list)
	if err != nil {
		return models.ShoppingList{}, fmt.Errorf("create list: %w", err)
	}
	list.ID = id

	s.changed()
	return list, nil
}

func (s *clientShoppingService) RenameList(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: list name is empty", ErrInvalidDataProvided)
	}

	list, err := s.storages.Lists.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find list %d: %w", id, err)
	}
	if list.Name == name {
		return nil
	}

	list.Name = name
	list.UpdatedAt = s.now()
	list.SyncStatus = touched(list.SyncStatus)
	if err = s.storages.Lists.Update(ctx, list); err != nil {
		return fmt.Errorf("rename list %d: %w", id, err)
	}

	s.changed()
	return nil
}

func (s *clientShoppingService) DeleteList(ctx context.Context, id int64) error {
	list, err := s.storages.Lists.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find list %d: %w", id, err)
	}

	items, err := s.storages.Items.ListByList(ctx, id, models.SortCustom)
	if err != nil {
		return fmt.Errorf("read items of list %d: %w", id, err)
	}
	for _, it := range items {
		if err = s.tombstones.RecordDeletion(ctx, itemDeletion(it)); err != nil {
			return err
		}
	}
	if _, err = s.storages.Items.DeleteByList(ctx, id); err != nil {
		return fmt.Errorf("delete items of list %d: %w", id, err)
	}

	if err = s.tombstones.RecordDeletion(ctx, models.DeletedEntity{
		Kind:     models.KindList,
		SyncID:   list.SyncID,
		LocalID:  list.ID,
		ServerID: list.ServerID,
		Status:   list.SyncStatus,
	}); err != nil {
		return err
	}
	if err = s.storages.Lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete list %d: %w", id, err)
	}

	s.logger.Debug().
		Str("func", "clientShoppingService.DeleteList").
		Int64("list_id", id).
		Int("items", len(items)).
		Msg("list deleted")
	s.changed()
	return nil
}

func (s *clientShoppingService) GetLists(ctx context.Context) ([]models.ShoppingList, error) {
	return s.storages.Lists.ListAll(ctx)
}

// ── Items ────────────────────────────────────────────────────────────────────

func (s *clientShoppingService) AddItem(ctx context.Context, item models.ShoppingItem) (models.ShoppingItem, error) {
	if err := validateItem(item); err != nil {
		return models.ShoppingItem{}, err
	}
	if _, err := s.storages.Lists.FindByID(ctx, item.ListID); err != nil {
		return models.ShoppingItem{}, fmt.Errorf("find list %d: %w", item.ListID, err)
	}

	if item.SortIndex == 0 {
		existing, err := s.storages.Items.ListByList(ctx, item.ListID, models.SortCustom)
		if err != nil {
			return models.ShoppingItem{}, fmt.Errorf("read items of list %d: %w", item.ListID, err)
		}
		for _, it := range existing {
			if it.SortIndex >= item.SortIndex {
				item.SortIndex = it.SortIndex + 1
			}
		}
	}

	now := s.now()
	item.ID = 0
	item.Name = strings.TrimSpace(item.Name)
	item.SyncID = s.ids.Generate()
	item.ServerID = nil
	item.CreatedAt = now
	item.UpdatedAt = now
	item.SyncStatus = models.StatusLocalOnly

	id, err := s.storages.Items.Insert(ctx, item)
	if err != nil {
		return models.ShoppingItem{}, fmt.Errorf("add item: %w", err)
	}
	item.ID = id

	s.changed()
	return item, nil
}

// UpdateItem overwrites the user-editable fields of the stored item.
func (s *clientShoppingService) UpdateItem(ctx context.Context, item models.ShoppingItem) error {
	if err := validateItem(item); err != nil {
		return err
	}

	cur, err := s.storages.Items.FindByID(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("find item %d: %w", item.ID, err)
	}

	cur.Name = strings.TrimSpace(item.Name)
	cur.Quantity = item.Quantity
	cur.UnitType = item.UnitType
	cur.Checked = item.Checked
	cur.SortIndex = item.SortIndex
	return s.saveItem(ctx, cur)
}

func (s *clientShoppingService) SetItemChecked(ctx context.Context, id int64, checked bool) error {
	cur, err := s.storages.Items.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find item %d: %w", id, err)
	}
	if cur.Checked == checked {
		return nil
	}
	cur.Checked = checked
	return s.saveItem(ctx, cur)
}

func (s *clientShoppingService) ReorderItems(ctx context.Context, listID int64, orderedIDs []int64) error {
	items, err := s.storages.Items.ListByList(ctx, listID, models.SortCustom)
	if err != nil {
		return fmt.Errorf("read items of list %d: %w", listID, err)
	}
	byID := make(map[int64]models.ShoppingItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	moved := 0
	for idx, id := range orderedIDs {
		it, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: item %d is not in list %d", ErrInvalidDataProvided, id, listID)
		}
		if it.SortIndex == idx {
			continue
		}
		it.SortIndex = idx
		it.UpdatedAt = s.now()
		it.SyncStatus = touched(it.SyncStatus)
		if err = s.storages.Items.Update(ctx, it); err != nil {
			return fmt.Errorf("reorder item %d: %w", id, err)
		}
		moved++
	}

	if moved > 0 {
		s.changed()
	}
	return nil
}

func (s *clientShoppingService) DeleteItem(ctx context.Context, id int64) error {
	cur, err := s.storages.Items.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find item %d: %w", id, err)
	}
	if err = s.tombstones.RecordDeletion(ctx, itemDeletion(cur)); err != nil {
		return err
	}
	if err = s.storages.Items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	s.changed()
	return nil
}

func (s *clientShoppingService) GetItems(ctx context.Context, listID int64, mode models.SortMode) ([]models.ShoppingItem, error) {
	return s.storages.Items.ListByList(ctx, listID, mode)
}

func (s *clientShoppingService) HasUncheckedItems(ctx context.Context, listID int64) (bool, error) {
	items, err := s.storages.Items.ListByList(ctx, listID, models.SortCustom)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if !it.Checked {
			return true, nil
		}
	}
	return false, nil
}

func (s *clientShoppingService) saveItem(ctx context.Context, item models.ShoppingItem) error {
	item.UpdatedAt = s.now()
	item.SyncStatus = touched(item.SyncStatus)
	if err := s.storages.Items.Update(ctx, item); err != nil {
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	s.changed()
	return nil
}

func itemDeletion(it models.ShoppingItem) models.DeletedEntity {
	return models.DeletedEntity{
		Kind:     models.KindItem,
		SyncID:   it.SyncID,
		LocalID:  it.ID,
		ServerID: it.ServerID,
		Status:   it.SyncStatus,
	}
}

func validateItem(item models.ShoppingItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: item name is empty", ErrInvalidDataProvided)
	}
	if math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) || item.Quantity < 0 {
		return fmt.Errorf("%w: invalid quantity %v", ErrInvalidDataProvided, item.Quantity)
	}
	return nil
}

// ── Stores ───────────────────────────────────────────────────────────────────

func (s *clientShoppingService) AddStore(ctx context.Context, st models.StoreLocation) (models.StoreLocation, error) {
	if err := validateStore(st); err != nil {
		return models.StoreLocation{}, err
	}

	now := s.now()
	st.ID = 0
	st.Name = strings.TrimSpace(st.Name)
	st.SyncID = s.ids.Generate()
	st.ServerID = nil
	st.CreatedAt = now
	st.UpdatedAt = now
	st.SyncStatus = models.StatusLocalOnly

	id, err := s.storages.Stores.Insert(ctx, st)
	if err != nil {
		return models.StoreLocation{}, fmt.Errorf("add store: %w", err)
	}
	st.ID = id

	s.changed()
	return st, nil
}

func (s *clientShoppingService) UpdateStore(ctx context.Context, st models.StoreLocation) error {
	if err := validateStore(st); err != nil {
		return err
	}

	cur, err := s.storages.Stores.FindByID(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("find store %d: %w", st.ID, err)
	}

	cur.Name = strings.TrimSpace(st.Name)
	cur.Address = st.Address
	cur.Latitude = st.Latitude
	cur.Longitude = st.Longitude
	cur.GeofenceID = st.GeofenceID
	cur.UpdatedAt = s.now()
	cur.SyncStatus = touched(cur.SyncStatus)
	if err = s.storages.Stores.Update(ctx, cur); err != nil {
		return fmt.Errorf("update store %d: %w", st.ID, err)
	}

	s.changed()
	return nil
}

func (s *clientShoppingService) DeleteStore(ctx context.Context, id int64) error {
	cur, err := s.storages.Stores.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find store %d: %w", id, err)
	}
	if err = s.tombstones.RecordDeletion(ctx, models.DeletedEntity{
		Kind:     models.KindStore,
		SyncID:   cur.SyncID,
		LocalID:  cur.ID,
		ServerID: cur.ServerID,
		Status:   cur.SyncStatus,
	}); err != nil {
		return err
	}
	if err = s.storages.Stores.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete store %d: %w", id, err)
	}

	s.changed()
	return nil
}

func (s *clientShoppingService) GetStores(ctx context.Context) ([]models.StoreLocation, error) {
	return s.storages.Stores.ListAll(ctx)
}

func validateStore(st models.StoreLocation) error {
	if strings.TrimSpace(st.Name) == "" {
		return fmt.Errorf("%w: store name is empty", ErrInvalidDataProvided)
	}
	if math.IsNaN(st.Latitude) || math.Abs(st.Latitude) > 90 ||
		math.IsNaN(st.Longitude) || math.Abs(st.Longitude) > 180 {
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidDataProvided)
	}
	return nil
}

// ── Status ───────────────────────────────────────────────────────────────────

func (s *clientShoppingService) PendingCounts(ctx context.Context) (models.PendingCounts, error) {
	lists, err := s.storages.Lists.ListPendingSync(ctx)
	if err != nil {
		return models.PendingCounts{}, fmt.Errorf("count pending lists: %w", err)
	}
	items, err := s.storages.Items.ListPendingSync(ctx)
	if err != nil {
		return models.PendingCounts{}, fmt.Errorf("count pending items: %w", err)
	}
	stores, err := s.storages.Stores.ListPendingSync(ctx)
	if err != nil {
		return models.PendingCounts{}, fmt.Errorf("count pending stores: %w", err)
	}
	tombstones, err := s.tombstones.Pending(ctx)
	if err != nil {
		return models.PendingCounts{}, fmt.Errorf("count tombstones: %w", err)
	}

	return models.PendingCounts{
		Lists:      len(lists),
		Items:      len(items),
		Stores:     len(stores),
		Tombstones: len(tombstones),
	}, nil
}
