package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type shoppingListRepository struct {
	*DB
	logger *logger.Logger
}

// NewShoppingListRepository returns the SQLite implementation of
// [ShoppingListRepository].
func NewShoppingListRepository(db *DB, logger *logger.Logger) ShoppingListRepository {
	return &shoppingListRepository{DB: db, logger: logger}
}

func (r *shoppingListRepository) Insert(ctx context.Context, list models.ShoppingList) (int64, error) {
	now := time.Now().UTC()
	if list.CreatedAt.IsZero() {
		list.CreatedAt = now
	}
	if list.UpdatedAt.IsZero() {
		list.UpdatedAt = now
	}
	if list.SyncStatus == "" {
		list.SyncStatus = models.StatusLocalOnly
	}

	id, err := r.insert(ctx, "shoppingListRepository.Insert", psql.Insert(tableShoppingLists).
		Columns(shoppingListColumns[1:]...).
		Values(list.Name, list.SyncID, nullableInt64(list.ServerID), list.CreatedAt.UTC(), list.UpdatedAt.UTC(), string(list.SyncStatus)))
	if err != nil {
		r.logger.Err(err).Str("func", "shoppingListRepository.Insert").Str("sync_id", list.SyncID).Msg("failed to insert shopping list")
		return 0, err
	}

	return id, nil
}

func (r *shoppingListRepository) Update(ctx context.Context, list models.ShoppingList) error {
	return r.execAffecting(ctx, "shoppingListRepository.Update", psql.Update(tableShoppingLists).
		SetMap(map[string]any{
			"name":        list.Name,
			"sync_id":     list.SyncID,
			"server_id":   nullableInt64(list.ServerID),
			"updated_at":  list.UpdatedAt.UTC(),
			"sync_status": string(list.SyncStatus),
		}).
		Where(sq.Eq{"id": list.ID}))
}

func (r *shoppingListRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, "shoppingListRepository.Delete", buildDeleteByIDQuery(tableShoppingLists, id))
}

func (r *shoppingListRepository) FindByID(ctx context.Context, id int64) (models.ShoppingList, error) {
	return queryOne(ctx, r.DB, "shoppingListRepository.FindByID",
		selectFrom(tableShoppingLists, shoppingListColumns).Where(sq.Eq{"id": id}), scanShoppingList)
}

func (r *shoppingListRepository) FindBySyncID(ctx context.Context, syncID string) (models.ShoppingList, error) {
	if syncID == "" {
		return models.ShoppingList{}, ErrNotFound
	}
	return queryOne(ctx, r.DB, "shoppingListRepository.FindBySyncID",
		selectFrom(tableShoppingLists, shoppingListColumns).Where(sq.Eq{"sync_id": syncID}), scanShoppingList)
}

func (r *shoppingListRepository) FindByServerID(ctx context.Context, serverID int64) (models.ShoppingList, error) {
	return queryOne(ctx, r.DB, "shoppingListRepository.FindByServerID",
		selectFrom(tableShoppingLists, shoppingListColumns).Where(sq.Eq{"server_id": serverID}).Limit(1), scanShoppingList)
}

func (r *shoppingListRepository) ListPendingSync(ctx context.Context) ([]models.ShoppingList, error) {
	return queryAll(ctx, r.DB, "shoppingListRepository.ListPendingSync",
		selectFrom(tableShoppingLists, shoppingListColumns).Where(pendingSync).OrderBy("id ASC"), scanShoppingList)
}

func (r *shoppingListRepository) ListAll(ctx context.Context) ([]models.ShoppingList, error) {
	return queryAll(ctx, r.DB, "shoppingListRepository.ListAll",
		selectFrom(tableShoppingLists, shoppingListColumns).OrderBy("id ASC"), scanShoppingList)
}

func (r *shoppingListRepository) SetSyncStatus(ctx context.Context, syncID string, status models.SyncStatus) error {
	return r.execAffecting(ctx, "shoppingListRepository.SetSyncStatus",
		buildSetSyncStatusQuery(tableShoppingLists, syncID, status))
}

func scanShoppingList(row rowScanner) (models.ShoppingList, error) {
	var (
		list     models.ShoppingList
		serverID sql.NullInt64
		status   string
	)

	if err := row.Scan(&list.ID, &list.Name, &list.SyncID, &serverID, &list.CreatedAt, &list.UpdatedAt, &status); err != nil {
		return models.ShoppingList{}, err
	}
	list.ServerID = int64FromNull(serverID)
	list.SyncStatus = models.SyncStatus(status)

	return list, nil
}
