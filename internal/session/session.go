// Package session holds the logged-in operator and the UI theme, both
// persisted in the key-value store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/01moynul/kashish-pos/internal/kv"
	"github.com/01moynul/kashish-pos/internal/models"
)

// OwnerDisplayName is the name shown on price history entries made by the owner.
const OwnerDisplayName = "Owner"

var (
	ErrInvalidCredentials = errors.New("session: invalid credentials")
	ErrPersistence        = errors.New("session: persistence failed")
)

// Store tracks the single operator session and the theme.
type Store struct {
	mu       sync.RWMutex
	kv       kv.Store
	username string
	password models.Password
	user     *models.User
	theme    string
}

// New hashes the configured credential pair and restores any saved session and theme.
func New(ctx context.Context, store kv.Store, username, password string) (*Store, error) {
	s := &Store{kv: store, username: username, theme: models.ThemeLight}
	if err := s.password.Set(password); err != nil {
		return nil, fmt.Errorf("session: hash password: %w", err)
	}
	s.password.Plaintext = nil

	raw, found, err := store.Get(ctx, kv.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("session: load user: %w", err)
	}
	if found {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("session: decode user: %w", err)
		}
		s.user = &u
	}

	raw, found, err = store.Get(ctx, kv.KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("session: load theme: %w", err)
	}
	if found {
		s.theme = decodeTheme(raw)
	}
	return s, nil
}

// decodeTheme accepts a JSON string or a bare word; anything unknown is light.
func decodeTheme(raw []byte) string {
	var t string
	if err := json.Unmarshal(raw, &t); err != nil {
		t = string(raw)
	}
	if t == models.ThemeDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// Login checks the credential pair and starts the owner session.
func (s *Store) Login(ctx context.Context, username, password string) (models.User, error) {
	if username != s.username {
		return models.User{}, ErrInvalidCredentials
	}
	ok, err := s.password.Matches(password)
	if err != nil {
		return models.User{}, fmt.Errorf("session: compare password: %w", err)
	}
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{Username: OwnerDisplayName, Role: models.RoleOwner}
	s.user = &u

	raw, err := json.Marshal(u)
	if err == nil {
		err = s.kv.Set(ctx, kv.KeyUser, raw)
	}
	if err != nil {
		return u, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return u, nil
}

// Logout ends the session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.kv.Delete(ctx, kv.KeyUser); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// User returns the current user, if any.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// ActorName is the current user's name, or "" with no session.
func (s *Store) ActorName() string {
	u, ok := s.User()
	if !ok {
		return ""
	}
	return u.Username
}

func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == models.ThemeDark {
		s.theme = models.ThemeLight
	} else {
		s.theme = models.ThemeDark
	}

	raw, _ := json.Marshal(s.theme)
	if err := s.kv.Set(ctx, kv.KeyTheme, raw); err != nil {
		return s.theme, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return s.theme, nil
}
