// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/MKhiriev/go-grocery-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validList() models.ShoppingListSync {
	return models.ShoppingListSync{ID: models.Int64Ptr(1), SyncID: "L1", Name: "Weekly"}
}

func validItem() models.ShoppingItemSync {
	return models.ShoppingItemSync{
		ID: models.Int64Ptr(2), SyncID: "I1", Name: "Milk", Quantity: 2, ShoppingListID: 1,
	}
}

func validStore() models.StoreLocationSync {
	return models.StoreLocationSync{
		ID: models.Int64Ptr(3), SyncID: "S1", Name: "Corner", Latitude: 52.52, Longitude: 13.405,
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncRecordValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("values and pointers", func(t *testing.T) {
		l, i, s := validList(), validItem(), validStore()
		d := models.DeletedItemSync{SyncID: "X", EntityType: models.KindItem}
		r := models.SyncResponse{ServerTimestamp: models.NewTimestamp(time.Now())}

		for _, obj := range []any{l, &l, i, &i, s, &s, d, &d, r, &r} {
			assert.NoError(t, v.Validate(ctx, obj), "%T", obj)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validList(), "colour"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

func TestValidate_ShoppingList(t *testing.T) {
	v := NewSyncRecordValidator()
	ctx := context.Background()

	noSync := validList()
	noSync.SyncID = ""
	assert.ErrorIs(t, v.Validate(ctx, noSync), ErrInvalidSyncID)

	noServer := validList()
	noServer.ID = nil
	assert.ErrorIs(t, v.Validate(ctx, noServer), ErrMissingServerID)
	assert.NoError(t, v.Validate(ctx, noServer, FieldSyncID), "scoped to sync id only")
}

func TestValidate_ShoppingItem(t *testing.T) {
	v := NewSyncRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(i *models.ShoppingItemSync)
		want   error
	}{
		{name: "valid", mutate: func(i *models.ShoppingItemSync) {}},
		{name: "zero quantity", mutate: func(i *models.ShoppingItemSync) { i.Quantity = 0 }},
		{name: "no sync id", mutate: func(i *models.ShoppingItemSync) { i.SyncID = "" }, want: ErrInvalidSyncID},
		{name: "no server id", mutate: func(i *models.ShoppingItemSync) { i.ID = nil }, want: ErrMissingServerID},
		{name: "no list", mutate: func(i *models.ShoppingItemSync) { i.ShoppingListID = 0 }, want: ErrInvalidShoppingListID},
		{name: "negative quantity", mutate: func(i *models.ShoppingItemSync) { i.Quantity = -1 }, want: ErrInvalidQuantity},
		{name: "NaN quantity", mutate: func(i *models.ShoppingItemSync) { i.Quantity = math.NaN() }, want: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)
			err := v.Validate(ctx, item)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_StoreLocation(t *testing.T) {
	v := NewSyncRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{name: "origin", lat: 0, lon: 0},
		{name: "bounds", lat: -90, lon: 180},
		{name: "lat too big", lat: 90.5, lon: 0, wantErr: true},
		{name: "lon too small", lat: 0, lon: -181, wantErr: true},
		{name: "NaN", lat: math.NaN(), lon: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStore()
			s.Latitude, s.Longitude = tt.lat, tt.lon
			err := v.Validate(ctx, s)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinates)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_DeletedItem(t *testing.T) {
	v := NewSyncRecordValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.DeletedItemSync{EntityType: models.KindList}), ErrInvalidSyncID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeletedItemSync{SyncID: "x", EntityType: "WIDGET"}), ErrInvalidEntityType)
}

func TestValidate_SyncResponse(t *testing.T) {
	v := NewSyncRecordValidator()

	err := v.Validate(context.Background(), models.SyncResponse{})
	assert.ErrorIs(t, err, ErrMissingServerTimestamp)
}
