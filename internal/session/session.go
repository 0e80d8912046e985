// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
)

// State is the persisted part of a session.
type State struct {
	Username     string    `json:"username,omitempty"`
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	TokenType    string    `json:"tokenType,omitempty"`
	LastSync     time.Time `json:"lastSync,omitzero"`
}

// Session is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	state State

	store  Persister
	logger *logger.Logger
}

// Load restores the session kept by store. A missing session yields an
// empty, signed-out one.
func Load(ctx context.Context, store Persister, log *logger.Logger) (*Session, error) {
	state, err := store.Load(ctx)
	if err != nil && !errors.Is(err, ErrNoSession) {
		log.Err(err).Str("func", "session.Load").Msg("error loading session")
		return nil, fmt.Errorf("load session: %w", err)
	}

	return &Session{state: state, store: store, logger: log}, nil
}

// IsAuthenticated reports whether an access token is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken != ""
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RefreshToken
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Username
}

// LastSync returns the watermark of the last successful sync; zero if the
// client never synced.
func (s *Session) LastSync() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LastSync
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SignIn starts a session for username. A different user than the previous
// one starts without a watermark.
func (s *Session) SignIn(ctx context.Context, username string, tokens models.TokenPair) error {
	return s.update(ctx, "session.SignIn", func(st *State) {
		if st.Username != username {
			st.LastSync = time.Time{}
		}
		st.Username = username
		st.AccessToken = tokens.AccessToken
		st.RefreshToken = tokens.RefreshToken
		st.TokenType = tokens.TokenType
	})
}

// SetTokens replaces the credentials after a refresh. An empty refresh token
// keeps the previous one.
func (s *Session) SetTokens(ctx context.Context, tokens models.TokenPair) error {
	return s.update(ctx, "session.SetTokens", func(st *State) {
		st.AccessToken = tokens.AccessToken
		if tokens.RefreshToken != "" {
			st.RefreshToken = tokens.RefreshToken
		}
		if tokens.TokenType != "" {
			st.TokenType = tokens.TokenType
		}
	})
}

// SetLastSync advances the watermark. Like every update, the new value is
// kept in memory even when persisting it fails.
func (s *Session) SetLastSync(ctx context.Context, ts time.Time) error {
	return s.update(ctx, "session.SetLastSync", func(st *State) {
		st.LastSync = ts.UTC()
	})
}

// Invalidate signs the user out and drops the persisted session.
func (s *Session) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "session.Invalidate").Msg("error clearing persisted session")
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *Session) update(ctx context.Context, funcName string, mutate func(st *State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.state)
	if err := s.store.Save(ctx, s.state); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("error persisting session")
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}
