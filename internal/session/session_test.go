package session

import (
	"context"
	"testing"

	"github.com/01moynul/kashish-pos/internal/kv"
	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, store kv.Store) *Store {
	t.Helper()
	s, err := New(context.Background(), store, "admin", "admin123")
	require.NoError(t, err)
	return s
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newSession(t, mem)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.ActorName())

	_, err := s.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "root", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u, err := s.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "Owner", Role: models.RoleOwner}, u)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "Owner", s.ActorName())

	raw, found, err := mem.Get(ctx, kv.KeyUser)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"username":"Owner","role":"OWNER"}`, string(raw))
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	_, err := newSession(t, mem).Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	restarted := newSession(t, mem)
	u, ok := restarted.User()
	require.True(t, ok)
	assert.Equal(t, "Owner", u.Username)

	require.NoError(t, restarted.Logout(ctx))
	assert.False(t, restarted.IsAuthenticated())
	_, found, err := mem.Get(ctx, kv.KeyUser)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestThemeToggle(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newSession(t, mem)
	assert.Equal(t, models.ThemeLight, s.Theme())

	theme, err := s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)
	assert.Equal(t, models.ThemeDark, newSession(t, mem).Theme())

	theme, err = s.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
}

func TestThemeAcceptsBareValue(t *testing.T) {
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(context.Background(), kv.KeyTheme, []byte("dark")))
	assert.Equal(t, models.ThemeDark, newSession(t, mem).Theme())

	require.NoError(t, mem.Set(context.Background(), kv.KeyTheme, []byte(`"sepia"`)))
	assert.Equal(t, models.ThemeLight, newSession(t, mem).Theme())
}
