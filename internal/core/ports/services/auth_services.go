package services

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
)

// AuthSvcFacade is the session store as seen by UI collaborators. It owns
// login, registration, password reset and the durable session.
type AuthSvcFacade interface {
	StoreState

	// Login authenticates, persists the session and applies the token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)

	// Register creates the user, persists the session and applies the token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// ResetPassword requests a server-side password reset.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error

	// Restore resumes a persisted session. It returns (nil, nil) when no
	// usable session exists; corrupt stored data counts as no session.
	Restore(ctx context.Context) (*domain.User, error)

	// Logout clears the persisted session and the active token.
	Logout(ctx context.Context) error

	// CurrentUser returns the authenticated user, or nil.
	CurrentUser() *domain.User
}
