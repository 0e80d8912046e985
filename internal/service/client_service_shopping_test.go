// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/mock"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
)

// newShoppingWithTrigger returns the service over a fresh database with a
// mocked sync trigger.
func newShoppingWithTrigger(t *testing.T) (*clientShoppingService, *store.ClientStorages, *mock.MockSyncTrigger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	trigger := mock.NewMockSyncTrigger(ctrl)
	storages := newTestStorages(t)

	svc := NewClientShoppingService(storages, NewTombstoneTracker(storages.Tombstones, logger.Nop()), &seqIDs{prefix: "sid"}, trigger, logger.Nop())
	return svc.(*clientShoppingService), storages, trigger
}

// insertSyncedList stores a list as if it came from the server.
func insertSyncedList(t *testing.T, storages *store.ClientStorages, name string, serverID int64) models.ShoppingList {
	t.Helper()
	past := time.Now().UTC().Add(-time.Hour)
	list := models.ShoppingList{
		Name: name, SyncID: "srv-" + name, ServerID: models.Int64Ptr(serverID),
		CreatedAt: past, UpdatedAt: past, SyncStatus: models.StatusSynced,
	}
	id, err := storages.Lists.Insert(context.Background(), list)
	require.NoError(t, err)
	list.ID = id
	return list
}

func insertSyncedItem(t *testing.T, storages *store.ClientStorages, listID int64, name string, serverID int64) models.ShoppingItem {
	t.Helper()
	past := time.Now().UTC().Add(-time.Hour)
	item := models.ShoppingItem{
		ListID: listID, Name: name, Quantity: 1, SyncID: "srv-" + name, ServerID: models.Int64Ptr(serverID),
		CreatedAt: past, UpdatedAt: past, SyncStatus: models.StatusSynced,
	}
	id, err := storages.Items.Insert(context.Background(), item)
	require.NoError(t, err)
	item.ID = id
	return item
}

func TestTouched(t *testing.T) {
	assert.Equal(t, models.StatusModifiedLocally, touched(models.StatusSynced))
	assert.Equal(t, models.StatusModifiedLocally, touched(models.StatusModifiedLocally))
	assert.Equal(t, models.StatusLocalOnly, touched(models.StatusLocalOnly))
	assert.Equal(t, models.StatusLocalOnly, touched(""))
}

// ── Lists ────────────────────────────────────────────────────────────────────

func TestShopping_CreateList(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	trigger.EXPECT().RequestSync().Times(1)

	list, err := svc.CreateList(ctx, "  Groceries ")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, "sid-1", list.SyncID)
	assert.Nil(t, list.ServerID)
	assert.Equal(t, models.StatusLocalOnly, list.SyncStatus)

	got := mustList(t, storages, list.ID)
	assert.Equal(t, list.SyncID, got.SyncID)

	// blank names are rejected without a trigger
	_, err = svc.CreateList(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestShopping_RenameList(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	synced := insertSyncedList(t, storages, "Old", 500)

	trigger.EXPECT().RequestSync().Times(1)
	require.NoError(t, svc.RenameList(ctx, synced.ID, "New"))

	got := mustList(t, storages, synced.ID)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, models.StatusModifiedLocally, got.SyncStatus)
	assert.True(t, got.UpdatedAt.After(synced.UpdatedAt))
	require.NotNil(t, got.ServerID)
	assert.Equal(t, int64(500), *got.ServerID)

	// same name is a no-op
	require.NoError(t, svc.RenameList(ctx, synced.ID, "New"))

	err := svc.RenameList(ctx, 999, "Ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestShopping_DeleteList(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	trigger.EXPECT().RequestSync().AnyTimes()

	list := insertSyncedList(t, storages, "Pantry", 500)
	insertSyncedItem(t, storages, list.ID, "Rice", 900)
	_, err := svc.AddItem(ctx, models.ShoppingItem{ListID: list.ID, Name: "Beans", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteList(ctx, list.ID))

	_, err = storages.Lists.FindByID(ctx, list.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	items, err := storages.Items.ListByList(ctx, list.ID, models.SortCustom)
	require.NoError(t, err)
	assert.Empty(t, items)

	// the never-synced item leaves no tombstone
	tombstones, err := storages.Tombstones.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tombstones, 2)
	assert.Equal(t, models.KindItem, tombstones[0].Kind)
	assert.Equal(t, "srv-Rice", tombstones[0].SyncID)
	assert.Equal(t, models.KindList, tombstones[1].Kind)
	assert.Equal(t, list.SyncID, tombstones[1].SyncID)
}

func TestShopping_DeleteItem_TombstoneFailureKeepsRow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	tracker := mock.NewMockTombstoneTracker(ctrl)
	svc := NewClientShoppingService(storages, tracker, &seqIDs{prefix: "sid"}, nil, logger.Nop())

	list := insertSyncedList(t, storages, "Pantry", 500)
	item := insertSyncedItem(t, storages, list.ID, "Rice", 900)

	errDB := errors.New("disk full")
	tracker.EXPECT().RecordDeletion(gomock.Any(), models.DeletedEntity{
		Kind: models.KindItem, SyncID: item.SyncID, LocalID: item.ID, ServerID: item.ServerID, Status: models.StatusSynced,
	}).Return(errDB)

	err := svc.DeleteItem(ctx, item.ID)
	assert.ErrorIs(t, err, errDB)

	// удаление не состоялось
	mustItem(t, storages, item.ID)
}

// ── Items ────────────────────────────────────────────────────────────────────

func TestShopping_AddItem(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	trigger.EXPECT().RequestSync().AnyTimes()

	list, err := svc.CreateList(ctx, "Groceries")
	require.NoError(t, err)

	var added []models.ShoppingItem
	for _, name := range []string{"Milk", "Eggs", "Bread"} {
		it, err := svc.AddItem(ctx, models.ShoppingItem{ListID: list.ID, Name: name, Quantity: 1, UnitType: "pcs"})
		require.NoError(t, err)
		added = append(added, it)
	}

	for i, it := range added {
		assert.Equal(t, i, it.SortIndex, it.Name)
		assert.Equal(t, models.StatusLocalOnly, it.SyncStatus)
		assert.NotEmpty(t, it.SyncID)
		assert.Nil(t, it.ServerID)
	}

	_, err = svc.AddItem(ctx, models.ShoppingItem{ListID: 999, Name: "Orphan", Quantity: 1})
	assert.ErrorIs(t, err, store.ErrNotFound)

	items, err := storages.Items.ListByList(ctx, list.ID, models.SortCustom)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestShopping_AddItem_Invalid(t *testing.T) {
	tests := []struct {
		name string
		item models.ShoppingItem
	}{
		{name: "blank name", item: models.ShoppingItem{Name: " ", Quantity: 1}},
		{name: "negative quantity", item: models.ShoppingItem{Name: "Milk", Quantity: -1}},
		{name: "NaN quantity", item: models.ShoppingItem{Name: "Milk", Quantity: math.NaN()}},
		{name: "infinite quantity", item: models.ShoppingItem{Name: "Milk", Quantity: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, storages, _ := newShoppingWithTrigger(t)
			list := insertSyncedList(t, storages, "Groceries", 500)
			tt.item.ListID = list.ID

			_, err := svc.AddItem(context.Background(), tt.item)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestShopping_UpdateAndCheckItem(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	list := insertSyncedList(t, storages, "Groceries", 500)
	item := insertSyncedItem(t, storages, list.ID, "Milk", 900)

	trigger.EXPECT().RequestSync().Times(2)

	item.Name = "Oat milk"
	item.Quantity = 2
	item.UnitType = "l"
	require.NoError(t, svc.UpdateItem(ctx, item))

	got := mustItem(t, storages, item.ID)
	assert.Equal(t, "Oat milk", got.Name)
	assert.Equal(t, 2.0, got.Quantity)
	assert.Equal(t, models.StatusModifiedLocally, got.SyncStatus)

	hasUnchecked, err := svc.HasUncheckedItems(ctx, list.ID)
	require.NoError(t, err)
	assert.True(t, hasUnchecked)

	require.NoError(t, svc.SetItemChecked(ctx, item.ID, true))
	// already checked: no write, no trigger
	require.NoError(t, svc.SetItemChecked(ctx, item.ID, true))

	hasUnchecked, err = svc.HasUncheckedItems(ctx, list.ID)
	require.NoError(t, err)
	assert.False(t, hasUnchecked)
}

func TestShopping_ReorderItems(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	trigger.EXPECT().RequestSync().AnyTimes()

	list := insertSyncedList(t, storages, "Groceries", 500)
	a, err := svc.AddItem(ctx, models.ShoppingItem{ListID: list.ID, Name: "A", Quantity: 1})
	require.NoError(t, err)
	b, err := svc.AddItem(ctx, models.ShoppingItem{ListID: list.ID, Name: "B", Quantity: 3})
	require.NoError(t, err)
	c, err := svc.AddItem(ctx, models.ShoppingItem{ListID: list.ID, Name: "C", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.ReorderItems(ctx, list.ID, []int64{c.ID, a.ID, b.ID}))

	items, err := svc.GetItems(ctx, list.ID, models.SortCustom)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{items[0].Name, items[1].Name, items[2].Name})

	byQuantity, err := svc.GetItems(ctx, list.ID, models.SortQuantity)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, []string{byQuantity[0].Name, byQuantity[1].Name, byQuantity[2].Name})

	err = svc.ReorderItems(ctx, list.ID, []int64{a.ID, 12345})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Stores ───────────────────────────────────────────────────────────────────

func TestShopping_Stores(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	trigger.EXPECT().RequestSync().AnyTimes()

	_, err := svc.AddStore(ctx, models.StoreLocation{Name: "Nowhere", Latitude: 91})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.AddStore(ctx, models.StoreLocation{Name: "Nowhere", Longitude: -181})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	shop, err := svc.AddStore(ctx, models.StoreLocation{Name: " Bakery ", Address: "Main St 1", Latitude: 48.85, Longitude: 2.35})
	require.NoError(t, err)
	assert.Equal(t, "Bakery", shop.Name)
	assert.Equal(t, models.StatusLocalOnly, shop.SyncStatus)

	shop.GeofenceID = "geo-1"
	require.NoError(t, svc.UpdateStore(ctx, shop))
	got, err := storages.Stores.FindByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "geo-1", got.GeofenceID)
	// still never sent
	assert.Equal(t, models.StatusLocalOnly, got.SyncStatus)

	stores, err := svc.GetStores(ctx)
	require.NoError(t, err)
	assert.Len(t, stores, 1)

	require.NoError(t, svc.DeleteStore(ctx, shop.ID))
	tombstones, err := storages.Tombstones.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tombstones)
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestShopping_PendingCounts(t *testing.T) {
	ctx := context.Background()
	svc, storages, trigger := newShoppingWithTrigger(t)
	trigger.EXPECT().RequestSync().AnyTimes()

	synced := insertSyncedList(t, storages, "Synced", 500)
	gone := insertSyncedItem(t, storages, synced.ID, "Gone", 900)

	list, err := svc.CreateList(ctx, "Fresh")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, models.ShoppingItem{ListID: list.ID, Name: "Apples", Quantity: 6})
	require.NoError(t, err)
	_, err = svc.AddStore(ctx, models.StoreLocation{Name: "Market"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteItem(ctx, gone.ID))

	counts, err := svc.PendingCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PendingCounts{Lists: 1, Items: 1, Stores: 1, Tombstones: 1}, counts)
	assert.Equal(t, 4, counts.Total())
}
