package repositories

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
)

// SessionStore is the durable client-side key-value storage for the
// authenticated session. Implementations persist the user and token under
// namespaced keys so a restart resumes the session without a login.
type SessionStore interface {
	// SaveSession persists the session, replacing any previous one.
	SaveSession(ctx context.Context, session domain.Session) error

	// LoadSession returns the stored session. It returns
	// apperrors.ErrNoSession when nothing is stored or the stored data is
	// unreadable; corrupt data is never a fatal failure.
	LoadSession(ctx context.Context) (*domain.Session, error)

	// ClearSession removes the stored session, if any.
	ClearSession(ctx context.Context) error

	Close() error
}
