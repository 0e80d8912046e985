// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus describes how a local entity relates to the last known server state.
type SyncStatus string

const (
	// StatusLocalOnly marks an entity created offline that was never sent.
	StatusLocalOnly SyncStatus = "LOCAL_ONLY"
	// StatusModifiedLocally marks a previously synced entity edited since.
	StatusModifiedLocally SyncStatus = "MODIFIED_LOCALLY"
	// StatusSynced marks an entity that matches the last known server state.
	StatusSynced SyncStatus = "SYNCED"
)

// EntityKind is the wire tag identifying a collection. The values are the
// ones the sync server expects in deleted item records.
type EntityKind string

const (
	KindList  EntityKind = "SHOPPING_LIST"
	KindItem  EntityKind = "SHOPPING_ITEM"
	KindStore EntityKind = "STORE_LOCATION"
)

// Valid reports whether k is one of the known entity kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindList, KindItem, KindStore:
		return true
	}
	return false
}

// ShoppingList is a named list owning zero or more items.
//
// ID is the local key and never leaves the device. SyncID is the stable
// identifier shared with the server; ServerID is set by the merge step only.
type ShoppingList struct {
	ID         int64
	Name       string
	SyncID     string
	ServerID   *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	SyncStatus SyncStatus
}

// ShoppingItem belongs to exactly one ShoppingList, referenced by its local key.
type ShoppingItem struct {
	ID         int64
	ListID     int64
	Name       string
	Quantity   float64
	UnitType   string
	Checked    bool
	SortIndex  int
	SyncID     string
	ServerID   *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	SyncStatus SyncStatus
}

// StoreLocation is a shop the user visits. GeofenceID is a device-local
// registration and the server is not authoritative over it.
type StoreLocation struct {
	ID         int64
	Name       string
	Address    string
	Latitude   float64
	Longitude  float64
	GeofenceID string
	SyncID     string
	ServerID   *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	SyncStatus SyncStatus
}

// Tombstone records a local deletion until the server acknowledges it.
type Tombstone struct {
	ID           int64
	SyncID       string
	OriginalID   int64
	Kind         EntityKind
	DeletedAt    time.Time
	Acknowledged bool
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}

// DeletedEntity describes a row that was just removed locally.
type DeletedEntity struct {
	Kind     EntityKind
	SyncID   string
	LocalID  int64
	ServerID *int64
	Status   SyncStatus
}
