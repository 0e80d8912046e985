package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-grocery-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// Authenticator is the auth capability the sync engine consumes.
type Authenticator interface {
	// IsAuthenticated reports whether a session with an access token exists.
	IsAuthenticated() bool

	// RefreshAccessToken exchanges the stored refresh token for a new access
	// token and updates the session and the transport with it.
	RefreshAccessToken(ctx context.Context) error

	// Invalidate signs the user out.
	Invalidate(ctx context.Context) error
}

// ClientAuthService is the user-facing side of authentication.
type ClientAuthService interface {
	Authenticator

	// SignIn authenticates with the server and starts a session.
	SignIn(ctx context.Context, username, password string) error

	// Logout ends the session. Local data is kept.
	Logout(ctx context.Context) error

	// Username returns the signed-in user, empty when signed out.
	Username() string

	// TokenClaims reads the claims of the current access token.
	TokenClaims() (models.TokenClaims, error)
}

// SyncSession is the part of the session the orchestrator reads and
// advances.
type SyncSession interface {
	AccessToken() string
	LastSync() time.Time
	SetLastSync(ctx context.Context, ts time.Time) error
}

// TombstoneTracker records local deletions until the server confirms them.
type TombstoneTracker interface {
	// RecordDeletion appends a tombstone for entity. Entities the server has
	// never seen produce none.
	RecordDeletion(ctx context.Context, entity models.DeletedEntity) error

	// Pending returns every unacknowledged tombstone.
	Pending(ctx context.Context) ([]models.Tombstone, error)

	// Acknowledge flags the tombstones included in a successful request.
	Acknowledge(ctx context.Context, ids []int64) error

	// Purge deletes acknowledged tombstones and reports how many went.
	Purge(ctx context.Context) (int64, error)
}

// ClientSyncService runs one synchronisation attempt.
type ClientSyncService interface {
	// Synchronize never panics and never returns a nil-outcome result: every
	// failure is classified as retryable or fatal.
	Synchronize(ctx context.Context) models.SyncResult
}

// SyncTrigger asks for a sync as soon as possible.
type SyncTrigger interface {
	RequestSync()
}

// ClientSyncJob schedules [ClientSyncService.Synchronize] in the background.
type ClientSyncJob interface {
	SyncTrigger

	// Start launches the background goroutine. A running job is stopped
	// first.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// LastResult returns the result of the most recent attempt.
	LastResult() (models.SyncResult, bool)
}

// ClientShoppingService is the data-mutation layer. Every mutation keeps the
// sync bookkeeping (stable ids, statuses, tombstones) consistent.
type ClientShoppingService interface {
	CreateList(ctx context.Context, name string) (models.ShoppingList, error)
	RenameList(ctx context.Context, id int64, name string) error
	// DeleteList removes the list with all its items.
	DeleteList(ctx context.Context, id int64) error
	GetLists(ctx context.Context) ([]models.ShoppingList, error)

	AddItem(ctx context.Context, item models.ShoppingItem) (models.ShoppingItem, error)
	UpdateItem(ctx context.Context, item models.ShoppingItem) error
	SetItemChecked(ctx context.Context, id int64, checked bool) error
	// ReorderItems assigns sort indexes following orderedIDs.
	ReorderItems(ctx context.Context, listID int64, orderedIDs []int64) error
	DeleteItem(ctx context.Context, id int64) error
	GetItems(ctx context.Context, listID int64, mode models.SortMode) ([]models.ShoppingItem, error)
	HasUncheckedItems(ctx context.Context, listID int64) (bool, error)

	AddStore(ctx context.Context, store models.StoreLocation) (models.StoreLocation, error)
	UpdateStore(ctx context.Context, store models.StoreLocation) error
	DeleteStore(ctx context.Context, id int64) error
	GetStores(ctx context.Context) ([]models.StoreLocation, error)

	// PendingCounts reports what the next sync would upload.
	PendingCounts(ctx context.Context) (models.PendingCounts, error)
}

// IDGenerator hands out stable sync identifiers.
type IDGenerator interface {
	Generate() string
}
