package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/utils"
	"github.com/MKhiriev/go-grocery-sync/models"
)

const (
	tokenIssuer     = "grocery-sync-test"
	tokenSignKey    = "test-sign-key"
	requestIDHeader = "X-Request-ID"
)

// SyncServer imitates the grocery backend: it signs users in, refreshes
// tokens and answers POST /api/sync by upserting records by sync id and
// returning everything changed since the client's watermark.
type SyncServer struct {
	*httptest.Server

	mu sync.Mutex

	users         map[string]string
	refreshTokens map[string]string
	tokenTTL      time.Duration

	nextID   int64
	lastTime time.Time

	lists  map[string]serverRecord[models.ShoppingListSync]
	items  map[string]serverRecord[models.ShoppingItemSync]
	stores map[string]serverRecord[models.StoreLocationSync]

	deleted  []models.DeletedItemSync
	requests []models.SyncRequest

	rejectedLists map[string]bool
	unauthorized  int
	failures      int
	failureStatus int
	rejectRefresh bool
	onSync        func(req models.SyncRequest)
	syncCalls     int
	refreshCalls  int

	logger *logger.Logger
}

type serverRecord[T any] struct {
	rec      T
	modified time.Time
}

// NewSyncServer starts a server; it is closed when t's test ends.
func NewSyncServer(t testing.TB) *SyncServer {
	s := &SyncServer{
		users:         make(map[string]string),
		refreshTokens: make(map[string]string),
		tokenTTL:      time.Hour,
		nextID:        100,
		lists:         make(map[string]serverRecord[models.ShoppingListSync]),
		items:         make(map[string]serverRecord[models.ShoppingItemSync]),
		stores:        make(map[string]serverRecord[models.StoreLocationSync]),
		rejectedLists: make(map[string]bool),
		logger:        logger.Nop(),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *SyncServer) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID)

	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signin", s.signIn)
		r.Post("/api/auth/refreshtoken", s.refreshToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Post("/api/sync", s.synchronize)
	})

	return router
}

// ── Configuration ────────────────────────────────────────────────────────────

// AddUser registers credentials accepted by /api/auth/signin.
func (s *SyncServer) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// IssueTokens signs username in without a request and returns the pair.
func (s *SyncServer) IssueTokens(username string) models.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	access, refresh := s.issueLocked(username)
	return models.TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer"}
}

// UnauthorizeNextSyncs makes the next n sync calls answer 401.
func (s *SyncServer) UnauthorizeNextSyncs(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unauthorized = n
}

// FailNextSyncs makes the next n sync calls answer status.
func (s *SyncServer) FailNextSyncs(n, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
	s.failureStatus = status
}

// RejectRefresh makes every refresh call answer 403.
func (s *SyncServer) RejectRefresh(reject bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectRefresh = reject
}

// RejectList makes the server drop the list with syncID, so it never gets
// a server id.
func (s *SyncServer) RejectList(syncID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectedLists[syncID] = true
}

// OnSync registers fn to run before each accepted sync request is applied.
func (s *SyncServer) OnSync(fn func(req models.SyncRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSync = fn
}

// SeedList stores a list as if another device had created it.
func (s *SyncServer) SeedList(rec models.ShoppingListSync) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowLocked()
	rec.ID = s.idLocked(nil)
	stamp(&rec.CreatedAt, &rec.UpdatedAt, now)
	s.lists[rec.SyncID] = serverRecord[models.ShoppingListSync]{rec: rec, modified: now}
	return *rec.ID
}

func (s *SyncServer) SeedItem(rec models.ShoppingItemSync) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowLocked()
	rec.ID = s.idLocked(nil)
	stamp(&rec.CreatedAt, &rec.UpdatedAt, now)
	s.items[rec.SyncID] = serverRecord[models.ShoppingItemSync]{rec: rec, modified: now}
	return *rec.ID
}

func (s *SyncServer) SeedStore(rec models.StoreLocationSync) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.nowLocked()
	rec.ID = s.idLocked(nil)
	stamp(&rec.CreatedAt, &rec.UpdatedAt, now)
	s.stores[rec.SyncID] = serverRecord[models.StoreLocationSync]{rec: rec, modified: now}
	return *rec.ID
}

// ── Inspection ───────────────────────────────────────────────────────────────

// Requests returns every sync request the server accepted, in order.
func (s *SyncServer) Requests() []models.SyncRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SyncRequest(nil), s.requests...)
}

// SyncCalls counts every call to /api/sync, rejected ones included.
func (s *SyncServer) SyncCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncCalls
}

func (s *SyncServer) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

// Deleted returns the tombstones the server received.
func (s *SyncServer) Deleted() []models.DeletedItemSync {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DeletedItemSync(nil), s.deleted...)
}

func (s *SyncServer) List(syncID string) (models.ShoppingListSync, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.lists[syncID]
	return r.rec, ok
}

func (s *SyncServer) Item(syncID string) (models.ShoppingItemSync, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.items[syncID]
	return r.rec, ok
}

func (s *SyncServer) Store(syncID string) (models.StoreLocationSync, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.stores[syncID]
	return r.rec, ok
}

// ── Middleware ───────────────────────────────────────────────────────────────

func (s *SyncServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := s.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func (s *SyncServer) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("missing bearer token")
			utils.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}
		if _, err = utils.ValidateJWTToken(token, tokenSignKey, tokenIssuer); err != nil {
			log.Err(err).Msg("invalid token")
			utils.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ── Handlers ─────────────────────────────────────────────────────────────────

func (s *SyncServer) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if pw, ok := s.users[req.Username]; !ok || pw != req.Password {
		utils.WriteError(w, http.StatusUnauthorized, "bad credentials")
		return
	}

	access, refresh := s.issueLocked(req.Username)
	_, _ = utils.WriteJSON(w, models.JwtResponse{
		Token:        access,
		RefreshToken: refresh,
		Type:         "Bearer",
		ID:           1,
		Username:     req.Username,
		Email:        req.Username + "@example.com",
	}, http.StatusOK)
}

func (s *SyncServer) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCalls++

	username, ok := s.refreshTokens[req.RefreshToken]
	if s.rejectRefresh || !ok {
		utils.WriteError(w, http.StatusForbidden, "refresh token is not in database")
		return
	}

	access, err := utils.GenerateJWTToken(tokenIssuer, username, s.tokenTTL, tokenSignKey)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_, _ = utils.WriteJSON(w, models.TokenRefreshResponse{
		AccessToken:  access,
		RefreshToken: req.RefreshToken,
		TokenType:    "Bearer",
	}, http.StatusOK)
}

func (s *SyncServer) synchronize(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	s.mu.Lock()
	s.syncCalls++
	if s.unauthorized > 0 {
		s.unauthorized--
		s.mu.Unlock()
		utils.WriteError(w, http.StatusUnauthorized, "token expired")
		return
	}
	if s.failures > 0 {
		s.failures--
		status := s.failureStatus
		s.mu.Unlock()
		utils.WriteError(w, status, "injected failure")
		return
	}
	hook := s.onSync
	s.mu.Unlock()

	var req models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid sync request")
		utils.WriteError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if hook != nil {
		hook(req)
	}

	resp := s.apply(req)
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write sync response")
	}
}

func (s *SyncServer) apply(req models.SyncRequest) models.SyncResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	now := s.nowLocked()

	for _, d := range req.DeletedItems {
		s.deleted = append(s.deleted, d)
		switch d.EntityType {
		case models.KindList:
			delete(s.lists, d.SyncID)
		case models.KindItem:
			delete(s.items, d.SyncID)
		case models.KindStore:
			delete(s.stores, d.SyncID)
		}
	}

	for _, rec := range req.ShoppingLists {
		if s.rejectedLists[rec.SyncID] {
			continue
		}
		prev, ok := s.lists[rec.SyncID]
		rec.ID = s.idLocked(existingID(ok, prev.rec.ID))
		rec.LastSynced = nil
		stamp(&rec.CreatedAt, &rec.UpdatedAt, now)
		s.lists[rec.SyncID] = serverRecord[models.ShoppingListSync]{rec: rec, modified: now}
	}

	for _, rec := range req.ShoppingItems {
		if !s.hasListLocked(rec.ShoppingListID) {
			continue
		}
		prev, ok := s.items[rec.SyncID]
		rec.ID = s.idLocked(existingID(ok, prev.rec.ID))
		rec.LastSynced = nil
		stamp(&rec.CreatedAt, &rec.UpdatedAt, now)
		s.items[rec.SyncID] = serverRecord[models.ShoppingItemSync]{rec: rec, modified: now}
	}

	for _, rec := range req.StoreLocations {
		prev, ok := s.stores[rec.SyncID]
		rec.ID = s.idLocked(existingID(ok, prev.rec.ID))
		rec.LastSynced = nil
		stamp(&rec.CreatedAt, &rec.UpdatedAt, now)
		s.stores[rec.SyncID] = serverRecord[models.StoreLocationSync]{rec: rec, modified: now}
	}

	since := req.LastSyncTimestamp.TimeOrZero()
	return models.SyncResponse{
		ServerTimestamp: models.NewTimestamp(now),
		ShoppingLists:   changedSince(s.lists, since),
		ShoppingItems:   changedSince(s.items, since),
		StoreLocations:  changedSince(s.stores, since),
	}
}

func (s *SyncServer) hasListLocked(serverID int64) bool {
	for _, l := range s.lists {
		if l.rec.ID != nil && *l.rec.ID == serverID {
			return true
		}
	}
	return false
}

func (s *SyncServer) issueLocked(username string) (string, string) {
	access, err := utils.GenerateJWTToken(tokenIssuer, username, s.tokenTTL, tokenSignKey)
	if err != nil {
		panic(err)
	}
	refresh := uuid.NewString()
	s.refreshTokens[refresh] = username
	return access, refresh
}

// nowLocked returns a strictly increasing server clock.
func (s *SyncServer) nowLocked() time.Time {
	now := time.Now().UTC()
	if !now.After(s.lastTime) {
		now = s.lastTime.Add(time.Microsecond)
	}
	s.lastTime = now
	return now
}

func (s *SyncServer) idLocked(existing *int64) *int64 {
	if existing != nil {
		return existing
	}
	s.nextID++
	return models.Int64Ptr(s.nextID)
}

func existingID(ok bool, id *int64) *int64 {
	if !ok {
		return nil
	}
	return id
}

func stamp(created, updated **models.Timestamp, now time.Time) {
	if *created == nil {
		*created = models.TimestampPtr(now)
	}
	if *updated == nil {
		*updated = models.TimestampPtr(now)
	}
}

func changedSince[T any](records map[string]serverRecord[T], since time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if since.IsZero() || r.modified.After(since) {
			out = append(out, r.rec)
		}
	}
	return out
}
