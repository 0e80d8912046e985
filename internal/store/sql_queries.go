package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-sync/models"
)

// psql renders '?' placeholders, the format go-sqlite3 understands.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	tableShoppingLists  = "shopping_lists"
	tableShoppingItems  = "shopping_items"
	tableStoreLocations = "store_locations"
	tableDeletedItems   = "deleted_items"
)

var (
	shoppingListColumns = []string{
		"id", "name", "sync_id", "server_id", "created_at", "updated_at", "sync_status",
	}
	shoppingItemColumns = []string{
		"id", "list_id", "name", "quantity", "unit_type", "checked", "sort_index",
		"sync_id", "server_id", "created_at", "updated_at", "sync_status",
	}
	storeLocationColumns = []string{
		"id", "name", "address", "latitude", "longitude", "geofence_id",
		"sync_id", "server_id", "created_at", "updated_at", "sync_status",
	}
	tombstoneColumns = []string{
		"id", "sync_id", "original_id", "entity_type", "deleted_at", "acknowledged",
	}
)

// pendingSync matches rows that still have to be uploaded.
var pendingSync = sq.NotEq{"sync_status": string(models.StatusSynced)}

func selectFrom(table string, columns []string) sq.SelectBuilder {
	return psql.Select(columns...).From(table)
}

func buildSetSyncStatusQuery(table, syncID string, status models.SyncStatus) sq.UpdateBuilder {
	return psql.Update(table).
		Set("sync_status", string(status)).
		Where(sq.Eq{"sync_id": syncID})
}

func buildDeleteByIDQuery(table string, id int64) sq.DeleteBuilder {
	return psql.Delete(table).Where(sq.Eq{"id": id})
}

// itemOrderBy maps a sort mode to ORDER BY clauses.
func itemOrderBy(mode models.SortMode) []string {
	switch mode {
	case models.SortDate:
		return []string{"created_at DESC", "id DESC"}
	case models.SortQuantity:
		return []string{"quantity DESC", "id ASC"}
	case models.SortChecked:
		return []string{"checked ASC", "name ASC"}
	default:
		return []string{"sort_index ASC", "id ASC"}
	}
}
