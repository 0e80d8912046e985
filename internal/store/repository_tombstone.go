// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type tombstoneRepository struct {
	*DB
	logger *logger.Logger
}

// NewTombstoneRepository returns the SQLite implementation of
// [TombstoneRepository].
func NewTombstoneRepository(db *DB, logger *logger.Logger) TombstoneRepository {
	return &tombstoneRepository{DB: db, logger: logger}
}

func (r *tombstoneRepository) Insert(ctx context.Context, t models.Tombstone) (int64, error) {
	if t.DeletedAt.IsZero() {
		t.DeletedAt = time.Now().UTC()
	}

	id, err := r.insert(ctx, "tombstoneRepository.Insert", psql.Insert(tableDeletedItems).
		Columns(tombstoneColumns[1:]...).
		Values(t.SyncID, t.OriginalID, string(t.Kind), t.DeletedAt.UTC(), t.Acknowledged))
	if err != nil {
		r.logger.Err(err).Str("func", "tombstoneRepository.Insert").Str("sync_id", t.SyncID).Msg("failed to insert tombstone")
		return 0, err
	}

	return id, nil
}

func (r *tombstoneRepository) ListUnacknowledged(ctx context.Context) ([]models.Tombstone, error) {
	return queryAll(ctx, r.DB, "tombstoneRepository.ListUnacknowledged",
		selectFrom(tableDeletedItems, tombstoneColumns).Where(sq.Eq{"acknowledged": false}).OrderBy("id ASC"), scanTombstone)
}

func (r *tombstoneRepository) ListAll(ctx context.Context) ([]models.Tombstone, error) {
	return queryAll(ctx, r.DB, "tombstoneRepository.ListAll",
		selectFrom(tableDeletedItems, tombstoneColumns).OrderBy("id ASC"), scanTombstone)
}

func (r *tombstoneRepository) Acknowledge(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.exec(ctx, "tombstoneRepository.Acknowledge", psql.Update(tableDeletedItems).
		Set("acknowledged", true).
		Where(sq.Eq{"id": ids}))
	return err
}

func (r *tombstoneRepository) PurgeAcknowledged(ctx context.Context) (int64, error) {
	res, err := r.exec(ctx, "tombstoneRepository.PurgeAcknowledged",
		psql.Delete(tableDeletedItems).Where(sq.Eq{"acknowledged": true}))
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func scanTombstone(row rowScanner) (models.Tombstone, error) {
	var (
		t    models.Tombstone
		kind string
	)

	if err := row.Scan(&t.ID, &t.SyncID, &t.OriginalID, &kind, &t.DeletedAt, &t.Acknowledged); err != nil {
		return models.Tombstone{}, err
	}
	t.Kind = models.EntityKind(kind)

	return t, nil
}
