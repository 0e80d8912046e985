package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-grocery-sync/internal/mock"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchStore_Chain(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	seed := []models.StoreLocation{
		{Name: "Corner Shop", Address: "1 Main St", Latitude: 52.5200, Longitude: 13.4050, SyncID: "S1"},
		{Name: "Fence Market", Address: "2 Side St", Latitude: 48.8566, Longitude: 2.3522, GeofenceID: "geo-1", SyncID: "S2"},
		{Name: "Hill Grocer", Address: "3 Hill Rd", Latitude: 40.7128, Longitude: -74.0060, SyncID: "S3"},
		{Name: "Server Known", Address: "4 Far Rd", Latitude: 10, Longitude: 10, SyncID: "S4", ServerID: models.Int64Ptr(77)},
	}
	for _, s := range seed {
		_, err := storages.Stores.Insert(ctx, s)
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		rec      models.StoreLocationSync
		wantRule string
		wantSync string
		wantOK   bool
	}{
		{
			name:     "sync id wins over everything",
			rec:      models.StoreLocationSync{SyncID: "S3", GeofenceID: "geo-1", Latitude: 52.5200, Longitude: 13.4050},
			wantRule: "sync_id",
			wantSync: "S3",
			wantOK:   true,
		},
		{
			name:     "geofence id",
			rec:      models.StoreLocationSync{SyncID: "remote", GeofenceID: "geo-1"},
			wantRule: "geofence_id",
			wantSync: "S2",
			wantOK:   true,
		},
		{
			name:     "coordinates within epsilon",
			rec:      models.StoreLocationSync{SyncID: "remote", Latitude: 52.52005, Longitude: 13.40505},
			wantRule: "proximity",
			wantSync: "S1",
			wantOK:   true,
		},
		{
			name:     "name and address ignore case",
			rec:      models.StoreLocationSync{SyncID: "remote", Name: "hill GROCER", Address: "3 hill rd", Latitude: 1, Longitude: 1},
			wantRule: "name_address",
			wantSync: "S3",
			wantOK:   true,
		},
		{
			name:     "server id of an earlier heuristic match",
			rec:      models.StoreLocationSync{ID: models.Int64Ptr(77), SyncID: "remote", Name: "Renamed", Latitude: -10, Longitude: -10},
			wantRule: "server_id",
			wantSync: "S4",
			wantOK:   true,
		},
		{
			name:   "coordinates just outside epsilon",
			rec:    models.StoreLocationSync{SyncID: "remote", Name: "Elsewhere", Latitude: 52.5200 + 2*CoordinateEpsilon, Longitude: 13.4050},
			wantOK: false,
		},
		{
			name:   "empty geofence never matches",
			rec:    models.StoreLocationSync{SyncID: "remote", Name: "New", Latitude: -33.8688, Longitude: 151.2093},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule, ok, err := MatchStore(ctx, storages.Stores, DefaultStoreMatchChain, tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRule, rule)
				assert.Equal(t, tt.wantSync, got.SyncID)
			}
		})
	}
}

func TestMatchStore_CustomRuleAppended(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)
	_, err := storages.Stores.Insert(ctx, models.StoreLocation{Name: "Only", SyncID: "S1", Latitude: 1, Longitude: 1})
	require.NoError(t, err)

	always := StoreMatchRule{Name: "first_store", Match: func(ctx context.Context, repo store.StoreLocationRepository, _ models.StoreLocationSync) (models.StoreLocation, bool, error) {
		return firstStore(ctx, repo, func(models.StoreLocation) bool { return true })
	}}
	chain := append(append([]StoreMatchRule(nil), DefaultStoreMatchChain...), always)

	got, rule, ok, err := MatchStore(ctx, storages.Stores, chain, models.StoreLocationSync{SyncID: "x", Name: "nothing alike", Latitude: -5, Longitude: -5})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first_store", rule)
	assert.Equal(t, "S1", got.SyncID)
}

func TestMatchStore_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStoreLocationRepository(ctrl)
	errDB := errors.New("db down")

	repo.EXPECT().FindBySyncID(gomock.Any(), "S1").Return(models.StoreLocation{}, store.ErrNotFound)
	repo.EXPECT().FindByGeofenceID(gomock.Any(), "geo").Return(models.StoreLocation{}, errDB)

	_, rule, ok, err := MatchStore(context.Background(), repo, DefaultStoreMatchChain, models.StoreLocationSync{SyncID: "S1", GeofenceID: "geo"})
	assert.ErrorIs(t, err, errDB)
	assert.False(t, ok)
	assert.Equal(t, "geofence_id", rule)
}

func TestMatchStore_HeuristicsSkipStoresBoundElsewhere(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	_, err := storages.Stores.Insert(ctx, models.StoreLocation{
		Name: "Twin A", Address: "5 Mall Sq", Latitude: 52.5200, Longitude: 13.4050, GeofenceID: "geo-a",
		SyncID: "S-a", ServerID: models.Int64Ptr(10),
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		rec      models.StoreLocationSync
		wantRule string
		wantOK   bool
	}{
		{
			name:   "neighbour with another server id",
			rec:    models.StoreLocationSync{ID: models.Int64Ptr(11), SyncID: "S-b", Name: "Twin B", Latitude: 52.52004, Longitude: 13.40504},
			wantOK: false,
		},
		{
			name:   "same name and address with another server id",
			rec:    models.StoreLocationSync{ID: models.Int64Ptr(11), SyncID: "S-b", Name: "twin a", Address: "5 mall sq", Latitude: 1, Longitude: 1},
			wantOK: false,
		},
		{
			name:   "geofence bound to another server id",
			rec:    models.StoreLocationSync{ID: models.Int64Ptr(11), SyncID: "S-b", GeofenceID: "geo-a"},
			wantOK: false,
		},
		{
			name:   "record without server id",
			rec:    models.StoreLocationSync{SyncID: "S-b", Latitude: 52.52004, Longitude: 13.40504},
			wantOK: false,
		},
		{
			name:     "same server id still matches by proximity",
			rec:      models.StoreLocationSync{ID: models.Int64Ptr(10), SyncID: "S-remote", Latitude: 52.52004, Longitude: 13.40504},
			wantRule: "proximity",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule, ok, err := MatchStore(ctx, storages.Stores, DefaultStoreMatchChain, tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRule, rule)
				assert.Equal(t, "S-a", got.SyncID)
			}
		})
	}
}
