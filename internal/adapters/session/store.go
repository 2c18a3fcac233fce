// Package session persists the authenticated session in a local sqlite
// key-value table, the durable client-side storage of the application.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/granaapp/grana-go/internal/apperrors"
	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	"github.com/granaapp/grana-go/internal/platform/ctxlog"

	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed portsrepo.SessionStore. The user record and token
// live under "<namespace>_user" and "<namespace>_token".
type Store struct {
	db        *sql.DB
	namespace string
}

var _ portsrepo.SessionStore = (*Store)(nil)

// NewStore opens (creating if needed) the session database at dbPath and
// applies pending migrations.
func NewStore(dbPath, namespace string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create session db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping session database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session database: %w", err)
	}

	return &Store{db: db, namespace: namespace}, nil
}

func (s *Store) userKey() string  { return s.namespace + "_user" }
func (s *Store) tokenKey() string { return s.namespace + "_token" }

// SaveSession persists the user and token, replacing any previous session.
func (s *Store) SaveSession(ctx context.Context, session domain.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session write: %w", err)
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO session_values (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := tx.ExecContext(ctx, upsert, s.userKey(), string(userJSON)); err != nil {
		return fmt.Errorf("write session user: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, s.tokenKey(), session.Token); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session write: %w", err)
	}
	return nil
}

// LoadSession returns the stored session. Missing or unreadable data yields
// apperrors.ErrNoSession; corrupt rows are logged and treated as absent.
func (s *Store) LoadSession(ctx context.Context) (*domain.Session, error) {
	logger := ctxlog.From(ctx)

	userJSON, err := s.readValue(ctx, s.userKey())
	if err != nil {
		return nil, err
	}
	token, err := s.readValue(ctx, s.tokenKey())
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		logger.Warn("Stored session user is corrupt, treating as no session",
			slog.String("key", s.userKey()),
			slog.String("error", err.Error()))
		return nil, apperrors.ErrNoSession
	}
	if user.UserID == "" || token == "" {
		logger.Warn("Stored session is incomplete, treating as no session")
		return nil, apperrors.ErrNoSession
	}

	return &domain.Session{User: user, Token: token}, nil
}

// ClearSession removes the persisted user and token, if any.
func (s *Store) ClearSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_values WHERE key IN (?, ?)`, s.userKey(), s.tokenKey())
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) readValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session_values WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrNoSession
	}
	if err != nil {
		// A read failure on the cache must never be fatal to the caller.
		ctxlog.From(ctx).Warn("Session storage read failed, treating as no session",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return "", apperrors.ErrNoSession
	}
	return value, nil
}
