package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/adapter"
	"github.com/MKhiriev/go-grocery-sync/internal/config"
	"github.com/MKhiriev/go-grocery-sync/internal/crypto"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/service"
	"github.com/MKhiriev/go-grocery-sync/internal/session"
	"github.com/MKhiriev/go-grocery-sync/internal/store"
	"github.com/MKhiriev/go-grocery-sync/internal/workers"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	session  *session.Session
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp opens local storage, restores the sealed session and wires the
// services against the configured sync server.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	persister := session.NewFileStore(cfg.Storage.Session.Path, cfg.App.SessionKey, crypto.NewSealer())
	sess, err := session.Load(ctx, persister, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	syncAdapter, err := adapter.NewHTTPSyncAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create sync adapter: %w", err)
	}

	return newApp(storages, sess, syncAdapter, cfg.Workers, logger), nil
}

func newApp(storages *store.ClientStorages, sess *session.Session, syncAdapter adapter.SyncAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) *App {
	services := service.NewClientServices(storages, sess, syncAdapter, workersCfg, logger)
	return &App{
		services: services,
		storages: storages,
		session:  sess,
		workers:  workers.NewWorkers(logger, services.SyncJob),
		logger:   logger,
	}
}

// Services exposes the wired services to the commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run performs a startup sync and then keeps the background workers going
// until ctx is done. It returns ErrNotSignedIn without a session and the
// startup error when that sync fails fatally.
func (a *App) Run(ctx context.Context) error {
	if !a.services.AuthService.IsAuthenticated() {
		return ErrNotSignedIn
	}

	res := a.services.SyncService.Synchronize(ctx)
	switch res.Outcome {
	case models.OutcomeFatal:
		return fmt.Errorf("startup sync: %w", res.Err)
	case models.OutcomeRetryable:
		// the job retries on its own schedule
		a.logger.Warn().Err(res.Err).Str("func", "App.Run").Msg("startup sync failed")
		a.services.SyncJob.RequestSync()
	}

	a.workers.Run(ctx)
	return nil
}

// SyncOnce runs a single synchronisation attempt.
func (a *App) SyncOnce(ctx context.Context) models.SyncResult {
	return a.services.SyncService.Synchronize(ctx)
}

// Status collects what the status command shows.
func (a *App) Status(ctx context.Context) (Status, error) {
	pending, err := a.services.ShoppingService.PendingCounts(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("read pending counts: %w", err)
	}
	lists, err := a.services.ShoppingService.GetLists(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("read lists: %w", err)
	}
	stores, err := a.services.ShoppingService.GetStores(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("read stores: %w", err)
	}

	st := Status{
		Username:      a.session.Username(),
		Authenticated: a.services.AuthService.IsAuthenticated(),
		LastSync:      a.session.LastSync(),
		Pending:       pending,
		Lists:         len(lists),
		Stores:        len(stores),
	}
	if claims, err := a.services.AuthService.TokenClaims(); err == nil {
		st.TokenExpires = claims.ExpiresAt
	}
	return st, nil
}

// Close releases the local database.
func (a *App) Close() error {
	a.workers.Stop()
	return a.storages.Close()
}

// Status is a point-in-time summary of the local replica.
type Status struct {
	Username      string
	Authenticated bool
	LastSync      time.Time
	TokenExpires  time.Time
	Pending       models.PendingCounts
	Lists         int
	Stores        int
}
