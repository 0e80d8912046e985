package models

// SyncRequest is the body of the single synchronisation RPC.
//
// Lists, items and stores carry only entities pending upload; DeletedItems
// carries every unacknowledged tombstone. LastSyncTimestamp is the watermark
// the client believes the server is at, nil on the very first sync.
type SyncRequest struct {
	LastSyncTimestamp *Timestamp          `json:"lastSyncTimestamp"`
	ShoppingLists     []ShoppingListSync  `json:"shoppingLists"`
	ShoppingItems     []ShoppingItemSync  `json:"shoppingItems"`
	StoreLocations    []StoreLocationSync `json:"storeLocations"`
	DeletedItems      []DeletedItemSync   `json:"deletedItems"`
}

// SyncResponse is the server's authoritative view of everything relevant
// since the request watermark, not only echoes of what was sent.
type SyncResponse struct {
	ServerTimestamp Timestamp           `json:"serverTimestamp"`
	ShoppingLists   []ShoppingListSync  `json:"shoppingLists"`
	ShoppingItems   []ShoppingItemSync  `json:"shoppingItems"`
	StoreLocations  []StoreLocationSync `json:"storeLocations"`
}

// ShoppingListSync is the wire form of a ShoppingList.
type ShoppingListSync struct {
	ID         *int64     `json:"id"`
	Name       string     `json:"name"`
	SyncID     string     `json:"syncId"`
	CreatedAt  *Timestamp `json:"createdAt"`
	UpdatedAt  *Timestamp `json:"updatedAt"`
	LastSynced *Timestamp `json:"lastSynced"`
	Version    *int64     `json:"version"`
}

// ShoppingItemSync is the wire form of a ShoppingItem. ShoppingListID is the
// owning list's server id, never its local key.
type ShoppingItemSync struct {
	ID             *int64     `json:"id"`
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	UnitType       string     `json:"unitType"`
	Checked        bool       `json:"checked"`
	SortIndex      int        `json:"sortIndex"`
	ShoppingListID int64      `json:"shoppingListId"`
	SyncID         string     `json:"syncId"`
	CreatedAt      *Timestamp `json:"createdAt"`
	UpdatedAt      *Timestamp `json:"updatedAt"`
	LastSynced     *Timestamp `json:"lastSynced"`
	Version        *int64     `json:"version"`
}

// StoreLocationSync is the wire form of a StoreLocation.
type StoreLocationSync struct {
	ID         *int64     `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	GeofenceID string     `json:"geofenceId"`
	SyncID     string     `json:"syncId"`
	CreatedAt  *Timestamp `json:"createdAt"`
	UpdatedAt  *Timestamp `json:"updatedAt"`
	LastSynced *Timestamp `json:"lastSynced"`
	Version    *int64     `json:"version"`
}

// DeletedItemSync is the wire form of a Tombstone.
type DeletedItemSync struct {
	SyncID     string     `json:"syncId"`
	OriginalID *int64     `json:"originalId"`
	EntityType EntityKind `json:"entityType"`
	DeletedAt  Timestamp  `json:"deletedAt"`
}

// IsEmpty reports whether the request carries nothing to upload.
func (r SyncRequest) IsEmpty() bool {
	return len(r.ShoppingLists) == 0 &&
		len(r.ShoppingItems) == 0 &&
		len(r.StoreLocations) == 0 &&
		len(r.DeletedItems) == 0
}
