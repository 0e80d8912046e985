package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/models"
)

// needsTombstone reports whether the server may know e.
func needsTombstone(e models.DeletedEntity) bool {
	if e.SyncID == "" {
		return false
	}
	return !(e.Status == models.StatusLocalOnly && e.ServerID == nil)
}

type tombstoneTracker struct {
	repo   store.TombstoneRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewTombstoneTracker(repo store.TombstoneRepository, logger *logger.Logger) TombstoneTracker {
	return &tombstoneTracker{repo: repo, now: time.Now, logger: logger}
}

func (t *tombstoneTracker) RecordDeletion(ctx context.Context, entity models.DeletedEntity) error {
	if !entity.Kind.Valid() {
		return fmt.Errorf("%w: unknown entity kind %q", ErrInvalidDataProvided, entity.Kind)
	}
	if !needsTombstone(entity) {
		t.logger.Debug().
			Str("func", "tombstoneTracker.RecordDeletion").
			Str("kind", string(entity.Kind)).
			Int64("local_id", entity.LocalID).
			Msg("never synced, no tombstone")
		return nil
	}

	_, err := t.repo.Insert(ctx, models.Tombstone{
		SyncID:     entity.SyncID,
		OriginalID: entity.LocalID,
		Kind:       entity.Kind,
		DeletedAt:  t.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("record deletion of %s %s: %w", entity.Kind, entity.SyncID, err)
	}
	return nil
}

func (t *tombstoneTracker) Pending(ctx context.Context) ([]models.Tombstone, error) {
	return t.repo.ListUnacknowledged(ctx)
}

func (t *tombstoneTracker) Acknowledge(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return t.repo.Acknowledge(ctx, ids)
}

func (t *tombstoneTracker) Purge(ctx context.Context) (int64, error) {
	return t.repo.PurgeAcknowledged(ctx)
}

func tombstoneIDs(tombstones []models.Tombstone) []int64 {
	ids := make([]int64, 0, len(tombstones))
	for _, t := range tombstones {
		ids = append(ids, t.ID)
	}
	return ids
}
