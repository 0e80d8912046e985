package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type shoppingItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewShoppingItemRepository returns the SQLite implementation of
// [ShoppingItemRepository].
func NewShoppingItemRepository(db *DB, logger *logger.Logger) ShoppingItemRepository {
	return &shoppingItemRepository{DB: db, logger: logger}
}

func (r *shoppingItemRepository) Insert(ctx context.Context, item models.ShoppingItem) (int64, error) {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}
	if item.SyncStatus == "" {
		item.SyncStatus = models.StatusLocalOnly
	}

	id, err := r.insert(ctx, "shoppingItemRepository.Insert", psql.Insert(tableShoppingItems).
		Columns(shoppingItemColumns[1:]...).
		Values(
			item.ListID, item.Name, item.Quantity, item.UnitType, item.Checked, item.SortIndex,
			item.SyncID, nullableInt64(item.ServerID), item.CreatedAt.UTC(), item.UpdatedAt.UTC(), string(item.SyncStatus),
		))
	if err != nil {
		r.logger.Err(err).Str("func", "shoppingItemRepository.Insert").Str("sync_id", item.SyncID).Msg("failed to insert shopping item")
		return 0, err
	}

	return id, nil
}

func (r *shoppingItemRepository) Update(ctx context.Context, item models.ShoppingItem) error {
	return r.execAffecting(ctx, "shoppingItemRepository.Update", psql.Update(tableShoppingItems).
		SetMap(map[string]any{
			"list_id":     item.ListID,
			"name":        item.Name,
			"quantity":    item.Quantity,
			"unit_type":   item.UnitType,
			"checked":     item.Checked,
			"sort_index":  item.SortIndex,
			"sync_id":     item.SyncID,
			"server_id":   nullableInt64(item.ServerID),
			"updated_at":  item.UpdatedAt.UTC(),
			"sync_status": string(item.SyncStatus),
		}).
		Where(sq.Eq{"id": item.ID}))
}

func (r *shoppingItemRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, "shoppingItemRepository.Delete", buildDeleteByIDQuery(tableShoppingItems, id))
}

func (r *shoppingItemRepository) FindByID(ctx context.Context, id int64) (models.ShoppingItem, error) {
	return queryOne(ctx, r.DB, "shoppingItemRepository.FindByID",
		selectFrom(tableShoppingItems, shoppingItemColumns).Where(sq.Eq{"id": id}), scanShoppingItem)
}

func (r *shoppingItemRepository) FindBySyncID(ctx context.Context, syncID string) (models.ShoppingItem, error) {
	if syncID == "" {
		return models.ShoppingItem{}, ErrNotFound
	}
	return queryOne(ctx, r.DB, "shoppingItemRepository.FindBySyncID",
		selectFrom(tableShoppingItems, shoppingItemColumns).Where(sq.Eq{"sync_id": syncID}), scanShoppingItem)
}

func (r *shoppingItemRepository) FindByServerID(ctx context.Context, serverID int64) (models.ShoppingItem, error) {
	return queryOne(ctx, r.DB, "shoppingItemRepository.FindByServerID",
		selectFrom(tableShoppingItems, shoppingItemColumns).Where(sq.Eq{"server_id": serverID}).Limit(1), scanShoppingItem)
}

func (r *shoppingItemRepository) ListPendingSync(ctx context.Context) ([]models.ShoppingItem, error) {
	return queryAll(ctx, r.DB, "shoppingItemRepository.ListPendingSync",
		selectFrom(tableShoppingItems, shoppingItemColumns).Where(pendingSync).OrderBy("id ASC"), scanShoppingItem)
}

func (r *shoppingItemRepository) ListAll(ctx context.Context) ([]models.ShoppingItem, error) {
	return queryAll(ctx, r.DB, "shoppingItemRepository.ListAll",
		selectFrom(tableShoppingItems, shoppingItemColumns).OrderBy("id ASC"), scanShoppingItem)
}

func (r *shoppingItemRepository) SetSyncStatus(ctx context.Context, syncID string, status models.SyncStatus) error {
	return r.execAffecting(ctx, "shoppingItemRepository.SetSyncStatus",
		buildSetSyncStatusQuery(tableShoppingItems, syncID, status))
}

func (r *shoppingItemRepository) ListByList(ctx context.Context, listID int64, mode models.SortMode) ([]models.ShoppingItem, error) {
	return queryAll(ctx, r.DB, "shoppingItemRepository.ListByList",
		selectFrom(tableShoppingItems, shoppingItemColumns).
			Where(sq.Eq{"list_id": listID}).
			OrderBy(itemOrderBy(mode)...),
		scanShoppingItem)
}

func (r *shoppingItemRepository) DeleteByList(ctx context.Context, listID int64) (int64, error) {
	res, err := r.exec(ctx, "shoppingItemRepository.DeleteByList",
		psql.Delete(tableShoppingItems).Where(sq.Eq{"list_id": listID}))
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func scanShoppingItem(row rowScanner) (models.ShoppingItem, error) {
	var (
		item     models.ShoppingItem
		serverID sql.NullInt64
		status   string
	)

	err := row.Scan(
		&item.ID, &item.ListID, &item.Name, &item.Quantity, &item.UnitType, &item.Checked, &item.SortIndex,
		&item.SyncID, &serverID, &item.CreatedAt, &item.UpdatedAt, &status,
	)
	if err != nil {
		return models.ShoppingItem{}, err
	}
	item.ServerID = int64FromNull(serverID)
	item.SyncStatus = models.SyncStatus(status)

	return item, nil
}
