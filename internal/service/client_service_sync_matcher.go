// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
)

// CoordinateEpsilon is the largest latitude and longitude difference, in
// degrees, at which two stores are considered the same place (about 10m).
const CoordinateEpsilon = 1e-4

// StoreMatchRule finds the local store an incoming record refers to.
// ok is false when the rule does not apply or finds nothing.
type StoreMatchRule struct {
	Name  string
	Match func(ctx context.Context, repo store.StoreLocationRepository, rec models.StoreLocationSync) (s models.StoreLocation, ok bool, err error)
}

// DefaultStoreMatchChain is evaluated in order; the first match wins.
var DefaultStoreMatchChain = []StoreMatchRule{
	{Name: "sync_id", Match: matchStoreBySyncID},
	{Name: "geofence_id", Match: matchStoreByGeofenceID},
	{Name: "proximity", Match: matchStoreByProximity},
	{Name: "name_address", Match: matchStoreByNameAddress},
	{Name: "server_id", Match: matchStoreByServerID},
}

// MatchStore runs chain against rec and reports the rule that matched.
func MatchStore(ctx context.Context, repo store.StoreLocationRepository, chain []StoreMatchRule, rec models.StoreLocationSync) (models.StoreLocation, string, bool, error) {
	for _, rule := range chain {
		s, ok, err := rule.Match(ctx, repo, rec)
		if err != nil {
			return models.StoreLocation{}, rule.Name, false, err
		}
		if ok {
			return s, rule.Name, true, nil
		}
	}
	return models.StoreLocation{}, "", false, nil
}

func matchStoreBySyncID(ctx context.Context, repo store.StoreLocationRepository, rec models.StoreLocationSync) (models.StoreLocation, bool, error) {
	return found(repo.FindBySyncID(ctx, rec.SyncID))
}

func matchStoreByGeofenceID(ctx context.Context, repo store.StoreLocationRepository, rec models.StoreLocationSync) (models.StoreLocation, bool, error) {
	if rec.GeofenceID == "" {
		return models.StoreLocation{}, false, nil
	}
	s, ok, err := found(repo.FindByGeofenceID(ctx, rec.GeofenceID))
	if !ok || err != nil || !claimable(s, rec) {
		return models.StoreLocation{}, false, err
	}
	return s, true, nil
}

func matchStoreByProximity(ctx context.Context, repo store.StoreLocationRepository, rec models.StoreLocationSync) (models.StoreLocation, bool, error) {
	return firstStore(ctx, repo, func(s models.StoreLocation) bool {
		return claimable(s, rec) &&
			math.Abs(s.Latitude-rec.Latitude) < CoordinateEpsilon &&
			math.Abs(s.Longitude-rec.Longitude) < CoordinateEpsilon
	})
}

func matchStoreByNameAddress(ctx context.Context, repo store.StoreLocationRepository, rec models.StoreLocationSync) (models.StoreLocation, bool, error) {
	return firstStore(ctx, repo, func(s models.StoreLocation) bool {
		return claimable(s, rec) &&
			strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(rec.Name)) &&
			strings.EqualFold(strings.TrimSpace(s.Address), strings.TrimSpace(rec.Address))
	})
}

// claimable reports whether a heuristic rule may pair s with rec. A local
// store already bound to another server record is a different shop, however
// close or similarly named.
func claimable(s models.StoreLocation, rec models.StoreLocationSync) bool {
	return s.ServerID == nil || (rec.ID != nil && *s.ServerID == *rec.ID)
}

// matchStoreByServerID catches stores matched heuristically in an earlier
// sync whose fields have drifted since.
func matchStoreByServerID(ctx context.Context, repo store.StoreLocationRepository, rec models.StoreLocationSync) (models.StoreLocation, bool, error) {
	if rec.ID == nil {
		return models.StoreLocation{}, false, nil
	}
	return found(repo.FindByServerID(ctx, *rec.ID))
}

func firstStore(ctx context.Context, repo store.StoreLocationRepository, pred func(models.StoreLocation) bool) (models.StoreLocation, bool, error) {
	all, err := repo.ListAll(ctx)
	if err != nil {
		return models.StoreLocation{}, false, err
	}
	for _, s := range all {
		if pred(s) {
			return s, true, nil
		}
	}
	return models.StoreLocation{}, false, nil
}

// found maps store.ErrNotFound to a plain miss.
func found[T any](v T, err error) (T, bool, error) {
	var zero T
	if errors.Is(err, store.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}
