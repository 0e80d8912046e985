package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-grocery-sync/internal/config"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
)

// ClientStorages groups every local repository the sync engine and the
// mutation layer operate on.
type ClientStorages struct {
	Lists      ShoppingListRepository
	Items      ShoppingItemRepository
	Stores     StoreLocationRepository
	Tombstones TombstoneRepository

	db *DB
}

// NewClientStorages opens the SQLite database configured in cfg.DB, applies
// pending migrations and wires all repositories to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, logger), nil
}

// NewClientStoragesFromDB wires repositories to an already prepared DB.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Lists:      NewShoppingListRepository(db, logger),
		Items:      NewShoppingItemRepository(db, logger),
		Stores:     NewStoreLocationRepository(db, logger),
		Tombstones: NewTombstoneRepository(db, logger),
		db:         db,
	}
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
