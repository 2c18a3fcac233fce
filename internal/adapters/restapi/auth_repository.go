package restapi

import (
	"context"
	"net/http"

	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	"github.com/granaapp/grana-go/internal/dto"
)

// AuthRepository implements the auth endpoints over the shared client.
type AuthRepository struct {
	client *Client
}

var _ portsrepo.AuthRepository = (*AuthRepository)(nil)

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Login(ctx context.Context, req dto.LoginRequest) (*domain.Session, error) {
	var session domain.Session
	if err := r.client.do(ctx, http.MethodPost, "/auth/login", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *AuthRepository) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Session, error) {
	var session domain.Session
	if err := r.client.do(ctx, http.MethodPost, "/auth/register", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *AuthRepository) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	return r.client.do(ctx, http.MethodPost, "/auth/reset-password", req, nil)
}
