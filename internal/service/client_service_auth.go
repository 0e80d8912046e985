package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-grocery-sync/internal/adapter"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/session"
	"github.com/MKhiriev/go-grocery-sync/internal/utils"
	"github.com/MKhiriev/go-grocery-sync/models"
)

type clientAuthService struct {
	session *session.Session
	adapter adapter.SyncAdapter
	logger  *logger.Logger
}

// NewClientAuthService binds the session to the transport. The adapter's
// bearer token is seeded from the session so a restored sign-in is usable
// right away.
func NewClientAuthService(sess *session.Session, syncAdapter adapter.SyncAdapter, logger *logger.Logger) ClientAuthService {
	syncAdapter.SetToken(sess.AccessToken())
	return &clientAuthService{session: sess, adapter: syncAdapter, logger: logger}
}

func (a *clientAuthService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

func (a *clientAuthService) Username() string {
	return a.session.Username()
}

func (a *clientAuthService) TokenClaims() (models.TokenClaims, error) {
	if !a.session.IsAuthenticated() {
		return models.TokenClaims{}, ErrNotAuthenticated
	}
	return utils.ParseTokenClaims(a.session.AccessToken())
}

func (a *clientAuthService) SignIn(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidDataProvided)
	}

	resp, err := a.adapter.SignIn(ctx, models.SignInRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("sign in on server: %w", err)
	}

	name := resp.Username
	if name == "" {
		if claims, claimsErr := utils.ParseTokenClaims(resp.Token); claimsErr == nil {
			name = claims.Subject
		}
	}
	if name == "" {
		name = username
	}

	pair := models.TokenPair{AccessToken: resp.Token, RefreshToken: resp.RefreshToken, TokenType: resp.Type}
	if err = a.session.SignIn(ctx, name, pair); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	a.logger.Info().Str("func", "clientAuthService.SignIn").Str("username", name).Msg("signed in")
	return nil
}

func (a *clientAuthService) RefreshAccessToken(ctx context.Context) error {
	refreshToken := a.session.RefreshToken()
	if refreshToken == "" {
		return ErrRefreshTokenMissing
	}

	resp, err := a.adapter.RefreshToken(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}

	pair := models.TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken, TokenType: resp.TokenType}
	if err = a.session.SetTokens(ctx, pair); err != nil {
		// the in-memory session already holds the new tokens
		a.logger.Err(err).Str("func", "clientAuthService.RefreshAccessToken").Msg("failed to persist refreshed tokens")
	}
	a.adapter.SetToken(resp.AccessToken)

	a.logger.Debug().Str("func", "clientAuthService.RefreshAccessToken").Msg("access token refreshed")
	return nil
}

func (a *clientAuthService) Invalidate(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.session.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	a.logger.Warn().Str("func", "clientAuthService.Invalidate").Msg("session invalidated")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() && a.session.RefreshToken() == "" {
		return nil
	}
	return a.Invalidate(ctx)
}

// authRetryGate runs one RPC call and, on 401, refreshes the access token
// once and repeats the call once.
type authRetryGate struct {
	auth   Authenticator
	logger *logger.Logger
}

func newAuthRetryGate(auth Authenticator, logger *logger.Logger) *authRetryGate {
	return &authRetryGate{auth: auth, logger: logger}
}

// Do returns the result of the last call attempt. A failed refresh
// invalidates the session and yields ErrSessionInvalidated, unless ctx was
// cancelled while refreshing.
func (g *authRetryGate) Do(ctx context.Context, call func(ctx context.Context) error) error {
	err := call(ctx)
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	log := g.logger.With().Str("func", "authRetryGate.Do").Logger()
	log.Info().Msg("request unauthorized, refreshing access token")

	if refreshErr := g.auth.RefreshAccessToken(ctx); refreshErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("refresh access token: %w", ctxErr)
		}
		log.Err(refreshErr).Msg("token refresh failed, signing out")
		if invErr := g.auth.Invalidate(ctx); invErr != nil {
			log.Err(invErr).Msg("failed to invalidate session")
		}
		return fmt.Errorf("%w: %w", ErrSessionInvalidated, refreshErr)
	}

	return call(ctx)
}
