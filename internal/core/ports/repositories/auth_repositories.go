package repositories

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
)

// AuthRepository defines the remote authentication endpoints.
type AuthRepository interface {
	// Login exchanges credentials for a {user, token} session.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error)

	// Register creates a new user and returns the initial session.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Session, error)

	// ResetPassword requests a password reset for the given email.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}
