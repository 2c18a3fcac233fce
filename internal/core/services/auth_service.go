package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/granaapp/grana-go/internal/apperrors"
	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	portssvc "github.com/granaapp/grana-go/internal/core/ports/services"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/granaapp/grana-go/internal/platform/ctxlog"
	"github.com/golang-jwt/jwt/v5"
)

// authService owns the session: login/register/reset against the remote
// auth endpoints, durable persistence of {user, token}, and applying the
// token to the transport. It also owns the session boundary: whenever the
// user changes, every session-scoped collection is reset.
type authService struct {
	storeState
	repo        portsrepo.AuthRepository
	sessions    portsrepo.SessionStore
	tokens      portssvc.TokenSink
	collections []portssvc.SessionScoped
	user        *domain.User
}

// NewAuthService creates the session store. The collections are the
// sibling stores to reset on login, register and logout.
func NewAuthService(repo portsrepo.AuthRepository, sessions portsrepo.SessionStore, tokens portssvc.TokenSink, collections ...portssvc.SessionScoped) portssvc.AuthSvcFacade {
	return &authService{repo: repo, sessions: sessions, tokens: tokens, collections: collections}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	session, err := s.repo.Login(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	return s.adoptSession(ctx, *session)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	session, err := s.repo.Register(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	return s.adoptSession(ctx, *session)
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s.begin()

	if err := s.repo.ResetPassword(ctx, req); err != nil {
		s.fail(err)
		return err
	}

	s.succeed()
	return nil
}

// Restore resumes a persisted session. A missing, corrupt or expired session
// yields (nil, nil): the caller simply starts unauthenticated.
func (s *authService) Restore(ctx context.Context) (*domain.User, error) {
	logger := ctxlog.From(ctx)

	session, err := s.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSession) {
			return nil, nil
		}
		return nil, err
	}

	if expired, expiry := tokenExpired(session.Token); expired {
		logger.Info("Stored session token expired, discarding",
			slog.Time("expired_at", expiry))
		if err := s.sessions.ClearSession(ctx); err != nil {
			logger.Warn("Failed to clear expired session", slog.String("error", err.Error()))
		}
		return nil, nil
	}

	s.user = &session.User
	s.tokens.SetToken(session.Token)
	logger.Info("Session restored", slog.String("user_id", session.User.UserID))
	return s.user, nil
}

// Logout clears the persisted session, drops the active token and resets
// the session-scoped collections.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.ClearSession(ctx); err != nil {
		s.fail(err)
		return err
	}
	s.user = nil
	s.tokens.SetToken("")
	s.resetCollections()
	s.succeed()
	return nil
}

func (s *authService) CurrentUser() *domain.User {
	return s.user
}

// adoptSession persists the session, applies the token and records the user.
func (s *authService) adoptSession(ctx context.Context, session domain.Session) (*domain.User, error) {
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		// The remote login succeeded; persisting is what failed. Surface it,
		// the caller may retry or continue without a durable session.
		ctxlog.From(ctx).Error("Failed to persist session", slog.String("error", err.Error()))
		s.fail(err)
		return nil, err
	}

	s.user = &session.User
	s.tokens.SetToken(session.Token)
	s.resetCollections()
	s.succeed()
	ctxlog.From(ctx).Info("Session established", slog.String("user_id", session.User.UserID))
	return s.user, nil
}

// resetCollections empties the sibling stores so nothing from a previous
// user survives the session change. Each store repopulates on its next
// Reload.
func (s *authService) resetCollections() {
	for _, collection := range s.collections {
		collection.Reset()
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the server owns the signing secret. Tokens without a parseable
// exp claim are treated as non-expiring and left to the server to reject.
func tokenExpired(token string) (bool, time.Time) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, time.Time{}
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false, time.Time{}
	}
	return expiry.Before(time.Now()), expiry.Time
}
