package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/adapter"
	"github.com/MKhiriev/go-grocery-sync/internal/config"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/internal/utils"
	"github.com/MKhiriev/go-grocery-sync/internal/validators"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type clientSyncService struct {
	storages   *store.ClientStorages
	adapter    adapter.SyncAdapter
	session    SyncSession
	auth       Authenticator
	tombstones TombstoneTracker
	ids        IDGenerator
	validator  validators.Validator

	mapper *syncMapper
	merger *syncMerger
	gate   *authRetryGate

	phaseDelay time.Duration

	// running admits one attempt at a time.
	running sync.Mutex

	logger *logger.Logger
}

// NewClientSyncService builds the sync orchestrator. cfg.PhaseDelay is the
// pause between the two phases of a two-phase sync; zero or negative skips
// it (config hands over [config.PhaseDelayDisabled] for "off").
func NewClientSyncService(
	storages *store.ClientStorages,
	syncAdapter adapter.SyncAdapter,
	sess SyncSession,
	auth Authenticator,
	tombstones TombstoneTracker,
	ids IDGenerator,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) ClientSyncService {
	validator := validators.NewSyncRecordValidator()
	return &clientSyncService{
		storages:   storages,
		adapter:    syncAdapter,
		session:    sess,
		auth:       auth,
		tombstones: tombstones,
		ids:        ids,
		validator:  validator,
		mapper:     newSyncMapper(storages, ids, logger),
		merger:     newSyncMerger(storages, validator, DefaultStoreMatchChain, logger),
		gate:       newAuthRetryGate(auth, logger),
		phaseDelay: cfg.PhaseDelay,
		logger:     logger,
	}
}

// syncRun is the bookkeeping of one attempt.
type syncRun struct {
	result models.SyncResult
	log    *logger.Logger
}

func (r *syncRun) enter(state models.SyncState) {
	r.log.Debug().
		Str("func", "syncRun.enter").
		Str("from", string(r.result.State)).
		Str("to", string(state)).
		Msg("sync state changed")
	r.result.State = state
	r.result.Trace = append(r.result.Trace, state)
}

func (s *clientSyncService) Synchronize(ctx context.Context) (result models.SyncResult) {
	if !s.running.TryLock() {
		return models.SyncResult{
			Outcome: models.OutcomeRetryable,
			State:   models.StateFailed,
			Trace:   []models.SyncState{models.StateFailed},
			Err:     ErrSyncInProgress,
		}
	}
	defer s.running.Unlock()

	runID := s.ids.Generate()
	ctx = utils.WithRunID(ctx, runID)
	run := &syncRun{log: &logger.Logger{Logger: s.logger.With().Str("run_id", runID).Logger()}}
	run.enter(models.StateIdle)

	defer func() {
		if p := recover(); p != nil {
			run.log.Error().Str("func", "clientSyncService.Synchronize").Interface("panic", p).Msg("sync panicked")
			result = s.fail(run, fmt.Errorf("%w: %v", ErrSyncPanicked, p))
		}
	}()

	if !s.auth.IsAuthenticated() {
		return s.fail(run, ErrNotAuthenticated)
	}
	s.adapter.SetToken(s.session.AccessToken())

	run.enter(models.StateAnalyzing)
	pendingLists, err := s.storages.Lists.ListPendingSync(ctx)
	if err != nil {
		return s.fail(run, fmt.Errorf("read pending lists: %w", err))
	}
	pendingItems, err := s.storages.Items.ListPendingSync(ctx)
	if err != nil {
		return s.fail(run, fmt.Errorf("read pending items: %w", err))
	}

	run.result.Mode = ChooseSyncMode(pendingLists, pendingItems)
	run.log.Info().
		Str("func", "clientSyncService.Synchronize").
		Str("mode", string(run.result.Mode)).
		Int("pending_lists", len(pendingLists)).
		Int("pending_items", len(pendingItems)).
		Msg("sync started")

	var watermark time.Time
	if run.result.Mode == models.ModeTwoPhase {
		run.enter(models.StateTwoPhaseSync)
		watermark, err = s.twoPhaseSync(ctx, run, pendingLists)
	} else {
		run.enter(models.StateStandardSync)
		watermark, err = s.standardSync(ctx, run, pendingLists, pendingItems)
	}
	if err != nil {
		return s.fail(run, err)
	}

	// The merge is committed and the watermark is held in memory, so the
	// attempt succeeded. A stale persisted watermark only re-pulls records.
	if err = s.session.SetLastSync(ctx, watermark); err != nil {
		run.log.Warn().
			Err(err).
			Str("func", "clientSyncService.Synchronize").
			Time("watermark", watermark).
			Msg("sync watermark not persisted")
	}
	run.result.ServerTimestamp = watermark

	run.enter(models.StateDone)
	run.result.Outcome = models.OutcomeSuccess
	run.log.Info().
		Str("func", "clientSyncService.Synchronize").
		Int("phases", run.result.Phases).
		Int("sent", run.result.Sent).
		Int("deferred", run.result.Deferred).
		Int("inserted", run.result.Merge.Inserted).
		Int("updated", run.result.Merge.Updated).
		Int("skipped", run.result.Merge.Skipped).
		Time("watermark", watermark).
		Msg("sync finished")
	return run.result
}

func (s *clientSyncService) standardSync(ctx context.Context, run *syncRun, pendingLists []models.ShoppingList, pendingItems []models.ShoppingItem) (time.Time, error) {
	lastSync := s.session.LastSync()

	lists, sentLists, err := s.mapper.Lists(ctx, pendingLists, lastSync)
	if err != nil {
		return time.Time{}, err
	}
	items, err := s.mapper.Items(ctx, pendingItems, lastSync)
	if err != nil {
		return time.Time{}, err
	}
	stores, sentStores, err := s.pendingStores(ctx, lastSync)
	if err != nil {
		return time.Time{}, err
	}
	tombstones, err := s.tombstones.Pending(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("read tombstones: %w", err)
	}
	run.result.Deferred += len(items.deferred)

	req := models.SyncRequest{
		LastSyncTimestamp: timestampOrNil(lastSync),
		ShoppingLists:     lists,
		ShoppingItems:     items.wire,
		StoreLocations:    stores,
		DeletedItems:      TombstonesToWire(tombstones),
	}
	resp, err := s.send(ctx, run, req)
	if err != nil {
		return time.Time{}, err
	}

	run.enter(models.StateMerging)
	if err = s.merge(ctx, run, resp, tombstones); err != nil {
		return time.Time{}, err
	}
	if err = s.markSent(ctx, sentLists, items.sent, sentStores); err != nil {
		return time.Time{}, err
	}
	if err = s.finalizeTombstones(ctx, run, tombstones); err != nil {
		return time.Time{}, err
	}

	return resp.ServerTimestamp.Time, nil
}

func (s *clientSyncService) twoPhaseSync(ctx context.Context, run *syncRun, pendingLists []models.ShoppingList) (time.Time, error) {
	lastSync := s.session.LastSync()

	// phase 1: lists only. Tombstones go out in phase 2, so lists deleted
	// here must not be brought back by the phase 1 response.
	deletedBefore, err := s.tombstones.Pending(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 1: read tombstones: %w", err)
	}
	lists, sentLists, err := s.mapper.Lists(ctx, pendingLists, lastSync)
	if err != nil {
		return time.Time{}, err
	}
	resp, err := s.send(ctx, run, models.SyncRequest{
		LastSyncTimestamp: timestampOrNil(lastSync),
		ShoppingLists:     lists,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 1: %w", err)
	}

	listStats, err := s.merger.excluding(deletedBefore).MergeLists(ctx, resp.ShoppingLists)
	run.result.Merge.Add(listStats)
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 1 merge: %w", err)
	}
	if err = s.markSent(ctx, sentLists, nil, nil); err != nil {
		return time.Time{}, fmt.Errorf("phase 1: %w", err)
	}
	run.log.Info().
		Str("func", "clientSyncService.twoPhaseSync").
		Int("lists", len(lists)).
		Msg("phase 1 done")

	if err = sleepWithContext(ctx, s.phaseDelay); err != nil {
		return time.Time{}, err
	}

	// phase 2: items, stores and tombstones
	pendingItems, err := s.storages.Items.ListPendingSync(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 2: read pending items: %w", err)
	}
	items, err := s.mapper.Items(ctx, pendingItems, lastSync)
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 2: %w", err)
	}
	run.result.Deferred += len(items.deferred)
	for _, it := range items.deferred {
		run.log.Warn().
			Str("func", "clientSyncService.twoPhaseSync").
			Str("kind", string(models.KindItem)).
			Str("sync_id", it.SyncID).
			Str("reason", "list still has no server id").
			Msg("item deferred to next sync")
	}

	stores, sentStores, err := s.pendingStores(ctx, lastSync)
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 2: %w", err)
	}
	tombstones, err := s.tombstones.Pending(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 2: read tombstones: %w", err)
	}

	resp, err = s.send(ctx, run, models.SyncRequest{
		LastSyncTimestamp: timestampOrNil(lastSync),
		ShoppingItems:     items.wire,
		StoreLocations:    stores,
		DeletedItems:      TombstonesToWire(tombstones),
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("phase 2: %w", err)
	}

	run.enter(models.StateMerging)
	if err = s.merge(ctx, run, resp, tombstones); err != nil {
		return time.Time{}, fmt.Errorf("phase 2: %w", err)
	}
	if err = s.markSent(ctx, nil, items.sent, sentStores); err != nil {
		return time.Time{}, fmt.Errorf("phase 2: %w", err)
	}
	if err = s.finalizeTombstones(ctx, run, tombstones); err != nil {
		return time.Time{}, fmt.Errorf("phase 2: %w", err)
	}

	return resp.ServerTimestamp.Time, nil
}

func (s *clientSyncService) pendingStores(ctx context.Context, lastSync time.Time) ([]models.StoreLocationSync, []models.StoreLocation, error) {
	pending, err := s.storages.Stores.ListPendingSync(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read pending stores: %w", err)
	}
	return s.mapper.Stores(ctx, pending, lastSync)
}

// send issues one RPC call through the auth retry gate and validates the
// response envelope.
func (s *clientSyncService) send(ctx context.Context, run *syncRun, req models.SyncRequest) (models.SyncResponse, error) {
	run.result.Phases++
	run.result.Sent += len(req.ShoppingLists) + len(req.ShoppingItems) + len(req.StoreLocations) + len(req.DeletedItems)

	var resp models.SyncResponse
	err := s.gate.Do(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = s.adapter.Synchronize(ctx, req)
		return callErr
	})
	if err != nil {
		return models.SyncResponse{}, err
	}

	if err = s.validator.Validate(ctx, resp); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", adapter.ErrMalformedResponse, err)
	}
	return resp, nil
}

// merge applies resp, skipping records deleted by the tombstones sent with
// the request.
func (s *clientSyncService) merge(ctx context.Context, run *syncRun, resp models.SyncResponse, sent []models.Tombstone) error {
	stats, err := s.merger.excluding(sent).Merge(ctx, resp)
	run.result.Merge.Add(stats)
	if err != nil {
		return fmt.Errorf("merge response: %w", err)
	}
	return nil
}

// markSent flags the sent rows SYNCED if they now carry a server id and were
// not edited while the request was in flight.
func (s *clientSyncService) markSent(ctx context.Context, lists []models.ShoppingList, items []models.ShoppingItem, stores []models.StoreLocation) error {
	for _, sent := range lists {
		cur, ok, err := found(s.storages.Lists.FindByID(ctx, sent.ID))
		if err != nil {
			return fmt.Errorf("mark list %s: %w", sent.SyncID, err)
		}
		if ok && unchangedAndAcked(cur.ServerID, cur.SyncStatus, cur.UpdatedAt, sent.UpdatedAt) {
			if err = s.storages.Lists.SetSyncStatus(ctx, cur.SyncID, models.StatusSynced); err != nil {
				return fmt.Errorf("mark list %s: %w", sent.SyncID, err)
			}
		}
	}
	for _, sent := range items {
		cur, ok, err := found(s.storages.Items.FindByID(ctx, sent.ID))
		if err != nil {
			return fmt.Errorf("mark item %s: %w", sent.SyncID, err)
		}
		if ok && unchangedAndAcked(cur.ServerID, cur.SyncStatus, cur.UpdatedAt, sent.UpdatedAt) {
			if err = s.storages.Items.SetSyncStatus(ctx, cur.SyncID, models.StatusSynced); err != nil {
				return fmt.Errorf("mark item %s: %w", sent.SyncID, err)
			}
		}
	}
	for _, sent := range stores {
		cur, ok, err := found(s.storages.Stores.FindByID(ctx, sent.ID))
		if err != nil {
			return fmt.Errorf("mark store %s: %w", sent.SyncID, err)
		}
		if ok && unchangedAndAcked(cur.ServerID, cur.SyncStatus, cur.UpdatedAt, sent.UpdatedAt) {
			if err = s.storages.Stores.SetSyncStatus(ctx, cur.SyncID, models.StatusSynced); err != nil {
				return fmt.Errorf("mark store %s: %w", sent.SyncID, err)
			}
		}
	}
	return nil
}

func unchangedAndAcked(serverID *int64, status models.SyncStatus, current, sent time.Time) bool {
	return serverID != nil && status != models.StatusSynced && current.Equal(sent)
}

func (s *clientSyncService) finalizeTombstones(ctx context.Context, run *syncRun, sent []models.Tombstone) error {
	if len(sent) == 0 {
		return nil
	}
	if err := s.tombstones.Acknowledge(ctx, tombstoneIDs(sent)); err != nil {
		return fmt.Errorf("acknowledge tombstones: %w", err)
	}
	purged, err := s.tombstones.Purge(ctx)
	if err != nil {
		// acknowledged rows are purged by the next successful sync
		run.log.Err(err).Str("func", "clientSyncService.finalizeTombstones").Msg("failed to purge tombstones")
		return nil
	}
	run.log.Debug().Str("func", "clientSyncService.finalizeTombstones").Int64("purged", purged).Msg("tombstones purged")
	return nil
}

func (s *clientSyncService) fail(run *syncRun, err error) models.SyncResult {
	run.enter(models.StateFailed)
	run.result.Outcome = classify(err)
	run.result.Err = err

	ev := run.log.Error()
	if run.result.Outcome == models.OutcomeRetryable {
		ev = run.log.Warn()
	}
	ev.Err(err).
		Str("func", "clientSyncService.fail").
		Str("outcome", run.result.Outcome.String()).
		Msg("sync failed")
	return run.result
}

// classify maps an attempt error to the scheduler-facing outcome.
func classify(err error) models.SyncOutcome {
	switch {
	case err == nil:
		return models.OutcomeSuccess
	case errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, ErrSessionInvalidated),
		errors.Is(err, adapter.ErrUnauthorized):
		return models.OutcomeFatal
	default:
		return models.OutcomeRetryable
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
