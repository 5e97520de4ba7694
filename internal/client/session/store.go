// Package session persists the current user and client preferences in the
// local key-value store. Storage here is a cache of the real source of
// truth (server plus in-memory state), so every failure degrades to "no
// value" with a log line instead of reaching the caller.
package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akulikov/stockpile/internal/client/storage"
	"github.com/akulikov/stockpile/internal/models"
)

// Sub-keys inside the application namespace. Each key has exactly one
// writing owner, so no coordination is needed between them.
const (
	keyUser     = "user"
	keyToken    = "token"
	keyTheme    = "theme"
	keyClientID = "client_id"
)

// Store provides typed access to the session namespace.
type Store struct {
	kv  storage.KV
	log *slog.Logger
}

// New creates a session store over kv. logger may be nil.
func New(kv storage.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, log: logger}
}

// User returns the stored user record, or nil when there is none.
// Absence, unreadable data and storage failure all collapse to nil.
func (s *Store) User(ctx context.Context) *models.User {
	data, err := s.kv.Get(ctx, keyUser)
	if err != nil {
		s.logAbsent(keyUser, err)
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn("failed to decode stored user", "error", err)
		return nil
	}

	return &user
}

// SetUser stores the user record. Best-effort: failure is logged only.
func (s *Store) SetUser(ctx context.Context, user *models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn("failed to encode user", "error", err)
		return
	}

	if err := s.kv.Set(ctx, keyUser, data); err != nil {
		s.log.Warn("failed to store user", "error", err)
	}
}

// DeleteUser removes the stored user record.
func (s *Store) DeleteUser(ctx context.Context) {
	if err := s.kv.Delete(ctx, keyUser); err != nil {
		s.log.Warn("failed to delete stored user", "error", err)
	}
}

// Token returns the stored session token, or "" when there is none.
func (s *Store) Token(ctx context.Context) string {
	data, err := s.kv.Get(ctx, keyToken)
	if err != nil {
		s.logAbsent(keyToken, err)
		return ""
	}
	return string(data)
}

// SetToken stores the session token.
func (s *Store) SetToken(ctx context.Context, token string) {
	if err := s.kv.Set(ctx, keyToken, []byte(token)); err != nil {
		s.log.Warn("failed to store token", "error", err)
	}
}

// DeleteToken removes the stored session token.
func (s *Store) DeleteToken(ctx context.Context) {
	if err := s.kv.Delete(ctx, keyToken); err != nil {
		s.log.Warn("failed to delete stored token", "error", err)
	}
}

// Theme returns the stored theme preference, or "" when unset.
func (s *Store) Theme(ctx context.Context) string {
	data, err := s.kv.Get(ctx, keyTheme)
	if err != nil {
		s.logAbsent(keyTheme, err)
		return ""
	}
	return string(data)
}

// SetTheme stores the theme preference.
func (s *Store) SetTheme(ctx context.Context, theme string) {
	if err := s.kv.Set(ctx, keyTheme, []byte(theme)); err != nil {
		s.log.Warn("failed to store theme", "error", err)
	}
}

// ClientID returns the stable per-install identifier, generating and
// persisting one on first use.
func (s *Store) ClientID(ctx context.Context) string {
	data, err := s.kv.Get(ctx, keyClientID)
	if err == nil && len(data) > 0 {
		return string(data)
	}
	if err != nil {
		s.logAbsent(keyClientID, err)
	}

	id := uuid.New().String()
	if err := s.kv.Set(ctx, keyClientID, []byte(id)); err != nil {
		s.log.Warn("failed to store client id", "error", err)
	}

	return id
}

// Clear wipes the whole application namespace.
func (s *Store) Clear(ctx context.Context) {
	if err := s.kv.Clear(ctx); err != nil {
		s.log.Warn("failed to clear storage", "error", err)
	}
}

// logAbsent logs storage trouble without promoting plain absence to a
// warning.
func (s *Store) logAbsent(key string, err error) {
	if err == storage.ErrKeyNotFound {
		s.log.Debug("no stored value", "key", key)
		return
	}
	s.log.Warn("failed to read stored value", "key", key, "error", err)
}
