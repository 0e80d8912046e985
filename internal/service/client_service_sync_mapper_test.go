package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ChooseSyncMode ───────────────────────────────────────────────────────────

func TestChooseSyncMode(t *testing.T) {
	serverID := models.Int64Ptr(500)

	tests := []struct {
		name  string
		lists []models.ShoppingList
		items []models.ShoppingItem
		want  models.SyncMode
	}{
		{
			name: "nothing pending",
			want: models.ModeStandard,
		},
		{
			name:  "new list with pending item",
			lists: []models.ShoppingList{{ID: 1, SyncStatus: models.StatusLocalOnly}},
			items: []models.ShoppingItem{{ID: 10, ListID: 1}},
			want:  models.ModeTwoPhase,
		},
		{
			name:  "new list without items",
			lists: []models.ShoppingList{{ID: 1, SyncStatus: models.StatusLocalOnly}},
			want:  models.ModeStandard,
		},
		{
			name:  "modified list with server id and pending item",
			lists: []models.ShoppingList{{ID: 1, ServerID: serverID, SyncStatus: models.StatusModifiedLocally}},
			items: []models.ShoppingItem{{ID: 10, ListID: 1}},
			want:  models.ModeStandard,
		},
		{
			name:  "new list, pending item of another list",
			lists: []models.ShoppingList{{ID: 1}},
			items: []models.ShoppingItem{{ID: 10, ListID: 2}},
			want:  models.ModeStandard,
		},
		{
			name: "one of several lists needs two phases",
			lists: []models.ShoppingList{
				{ID: 1, ServerID: serverID},
				{ID: 2},
			},
			items: []models.ShoppingItem{{ID: 10, ListID: 1}, {ID: 11, ListID: 2}},
			want:  models.ModeTwoPhase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseSyncMode(tt.lists, tt.items))
		})
	}
}

// ── Wire conversion ──────────────────────────────────────────────────────────

func TestListToWire(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	watermark := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	wire := ListToWire(models.ShoppingList{
		ID: 7, Name: "Weekly", SyncID: "L1", CreatedAt: created, UpdatedAt: created,
	}, watermark)

	assert.Nil(t, wire.ID)
	assert.Equal(t, "Weekly", wire.Name)
	assert.Equal(t, "L1", wire.SyncID)
	require.NotNil(t, wire.LastSynced)
	assert.True(t, watermark.Equal(wire.LastSynced.Time))
	assert.Nil(t, wire.Version)

	// no watermark before the first sync
	assert.Nil(t, ListToWire(models.ShoppingList{SyncID: "L1"}, time.Time{}).LastSynced)
}

func TestItemToWire(t *testing.T) {
	wire := ItemToWire(models.ShoppingItem{
		ID: 3, ListID: 1, Name: "Milk", Quantity: 1.5, UnitType: "L", Checked: true, SortIndex: 4,
		SyncID: "I1", ServerID: models.Int64Ptr(900),
	}, 500, time.Time{})

	assert.Equal(t, int64(500), wire.ShoppingListID)
	require.NotNil(t, wire.ID)
	assert.Equal(t, int64(900), *wire.ID)
	assert.Equal(t, 1.5, wire.Quantity)
	assert.Equal(t, "L", wire.UnitType)
	assert.True(t, wire.Checked)
	assert.Equal(t, 4, wire.SortIndex)
	assert.Nil(t, wire.Version)
}

func TestTombstonesToWire(t *testing.T) {
	deleted := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	wire := TombstonesToWire([]models.Tombstone{{ID: 1, SyncID: "S1", OriginalID: 12, Kind: models.KindStore, DeletedAt: deleted}})

	require.Len(t, wire, 1)
	assert.Equal(t, "S1", wire[0].SyncID)
	require.NotNil(t, wire[0].OriginalID)
	assert.Equal(t, int64(12), *wire[0].OriginalID)
	assert.Equal(t, models.KindStore, wire[0].EntityType)
	assert.True(t, deleted.Equal(wire[0].DeletedAt.Time))
}

// ── syncMapper ───────────────────────────────────────────────────────────────

func TestSyncMapper_Lists_BackfillsSyncID(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	mapper := newSyncMapper(storages, &seqIDs{prefix: "gen"}, logger.Nop())

	id, err := storages.Lists.Insert(ctx, models.ShoppingList{Name: "legacy"})
	require.NoError(t, err)
	pending, err := storages.Lists.ListPendingSync(ctx)
	require.NoError(t, err)

	wire, sent, err := mapper.Lists(ctx, pending, time.Time{})
	require.NoError(t, err)
	require.Len(t, wire, 1)
	assert.Equal(t, "gen-1", wire[0].SyncID)
	assert.Equal(t, "gen-1", sent[0].SyncID)

	stored, err := storages.Lists.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "gen-1", stored.SyncID)

	// a retry reuses the persisted id
	pending, err = storages.Lists.ListPendingSync(ctx)
	require.NoError(t, err)
	wire, _, err = mapper.Lists(ctx, pending, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", wire[0].SyncID)
}

func TestSyncMapper_Items_DefersItemsOfUnsentLists(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	mapper := newSyncMapper(storages, &seqIDs{prefix: "gen"}, logger.Nop())

	synced, err := storages.Lists.Insert(ctx, models.ShoppingList{Name: "synced", SyncID: "L1", ServerID: models.Int64Ptr(500), SyncStatus: models.StatusSynced})
	require.NoError(t, err)
	unsent, err := storages.Lists.Insert(ctx, models.ShoppingList{Name: "new", SyncID: "L2"})
	require.NoError(t, err)

	_, err = storages.Items.Insert(ctx, models.ShoppingItem{ListID: synced, Name: "Milk", SyncID: "I1"})
	require.NoError(t, err)
	_, err = storages.Items.Insert(ctx, models.ShoppingItem{ListID: unsent, Name: "Bread", SyncID: "I2"})
	require.NoError(t, err)

	pending, err := storages.Items.ListPendingSync(ctx)
	require.NoError(t, err)

	batch, err := mapper.Items(ctx, pending, time.Time{})
	require.NoError(t, err)

	require.Len(t, batch.wire, 1)
	assert.Equal(t, "I1", batch.wire[0].SyncID)
	assert.Equal(t, int64(500), batch.wire[0].ShoppingListID)
	require.Len(t, batch.sent, 1)
	require.Len(t, batch.deferred, 1)
	assert.Equal(t, "I2", batch.deferred[0].SyncID)
}
