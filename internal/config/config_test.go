package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/photofeed/internal/auth"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PHOTOFEED_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "@123.com", cfg.Auth.DomainSuffix)
	require.Equal(t, 50, cfg.Content.Images)
	require.Equal(t, 10, cfg.Content.Videos)
	require.Equal(t, 5*time.Second, cfg.Location.Timeout)
	require.Len(t, cfg.Auth.Users, 3)

	allow, err := cfg.AllowList()
	require.NoError(t, err)
	_, ok := allow.Match("ADMIN@123.com", "admin123")
	require.True(t, ok)
	require.Equal(t, auth.DefaultCredentials(), allow.Credentials())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "photofeed.toml")
	data := []byte(`
[auth]
domain_suffix = "@gmail.com"

[[auth.users]]
identifier = "anwar@gmail.com"
secret = "1234"

[content]
images = 5
videos = 2
seed = 7

[location]
denied = true
timeout = "250ms"

[log]
path = ""
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "@gmail.com", cfg.Auth.DomainSuffix)
	require.Equal(t, []UserConfig{{Identifier: "anwar@gmail.com", Secret: "1234"}}, cfg.Auth.Users)
	require.Equal(t, 5, cfg.Content.Images)
	require.Equal(t, int64(7), cfg.Content.Seed)
	require.True(t, cfg.Location.Denied)
	require.Equal(t, 250*time.Millisecond, cfg.Location.Timeout)
	require.Empty(t, cfg.Log.Path)

	allow, err := cfg.AllowList()
	require.NoError(t, err)
	require.Equal(t, 1, allow.Len())
}

func TestLoadFileMissingExplicitPathFails(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PHOTOFEED_CONFIG", "")
	t.Setenv("PHOTOFEED_CONTENT_IMAGES", "12")
	t.Setenv("PHOTOFEED_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Content.Images)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestAllowListRejectsBlankIdentifier(t *testing.T) {
	cfg := Config{Auth: AuthConfig{Users: []UserConfig{{Identifier: " ", Secret: "x"}}}}
	_, err := cfg.AllowList()
	require.ErrorIs(t, err, auth.ErrEmptyIdentifier)
}
