package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/mock"
	"github.com/MKhiriev/go-grocery-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTombstoneTracker_RecordDeletion(t *testing.T) {
	tests := []struct {
		name   string
		entity models.DeletedEntity
		want   int
	}{
		{
			name:   "synced item",
			entity: models.DeletedEntity{Kind: models.KindItem, SyncID: "I1", LocalID: 3, ServerID: models.Int64Ptr(900), Status: models.StatusSynced},
			want:   1,
		},
		{
			name:   "modified list",
			entity: models.DeletedEntity{Kind: models.KindList, SyncID: "L1", LocalID: 1, ServerID: models.Int64Ptr(500), Status: models.StatusModifiedLocally},
			want:   1,
		},
		{
			name:   "never synced store",
			entity: models.DeletedEntity{Kind: models.KindStore, SyncID: "S1", LocalID: 2, Status: models.StatusLocalOnly},
			want:   0,
		},
		{
			name:   "no sync id",
			entity: models.DeletedEntity{Kind: models.KindItem, LocalID: 4, ServerID: models.Int64Ptr(1), Status: models.StatusSynced},
			want:   0,
		},
		{
			name:   "local only but acknowledged by the server",
			entity: models.DeletedEntity{Kind: models.KindItem, SyncID: "I2", LocalID: 5, ServerID: models.Int64Ptr(901), Status: models.StatusLocalOnly},
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			storages := newTestStorages(t)
			tracker := NewTombstoneTracker(storages.Tombstones, logger.Nop())

			require.NoError(t, tracker.RecordDeletion(ctx, tt.entity))

			pending, err := tracker.Pending(ctx)
			require.NoError(t, err)
			require.Len(t, pending, tt.want)
			if tt.want == 1 {
				assert.Equal(t, tt.entity.SyncID, pending[0].SyncID)
				assert.Equal(t, tt.entity.LocalID, pending[0].OriginalID)
				assert.Equal(t, tt.entity.Kind, pending[0].Kind)
				assert.False(t, pending[0].Acknowledged)
				assert.False(t, pending[0].DeletedAt.IsZero())
			}
		})
	}
}

func TestTombstoneTracker_RecordDeletion_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTombstoneRepository(ctrl)
	tracker := NewTombstoneTracker(repo, logger.Nop())

	err := tracker.RecordDeletion(context.Background(), models.DeletedEntity{Kind: "WIDGET", SyncID: "x", Status: models.StatusSynced})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTombstoneTracker_AcknowledgeThenPurge(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	tracker := NewTombstoneTracker(storages.Tombstones, logger.Nop())

	for _, id := range []string{"I1", "I2"} {
		require.NoError(t, tracker.RecordDeletion(ctx, models.DeletedEntity{Kind: models.KindItem, SyncID: id, Status: models.StatusSynced}))
	}
	pending, err := tracker.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// only the first one went out with the request
	require.NoError(t, tracker.Acknowledge(ctx, []int64{pending[0].ID}))

	all, err := storages.Tombstones.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Acknowledged)
	assert.False(t, all[1].Acknowledged)

	purged, err := tracker.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	// purge is safe to repeat
	purged, err = tracker.Purge(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)

	pending, err = tracker.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "I2", pending[0].SyncID)
}

func TestTombstoneTracker_Acknowledge_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTombstoneRepository(ctrl)
	tracker := NewTombstoneTracker(repo, logger.Nop())

	// no repository call expected
	require.NoError(t, tracker.Acknowledge(context.Background(), nil))
}

func TestTombstoneTracker_RecordDeletion_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTombstoneRepository(ctrl)
	tracker := NewTombstoneTracker(repo, logger.Nop())
	errDB := errors.New("disk full")

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errDB)

	err := tracker.RecordDeletion(context.Background(), models.DeletedEntity{Kind: models.KindList, SyncID: "L1", Status: models.StatusSynced})
	assert.ErrorIs(t, err, errDB)
}
