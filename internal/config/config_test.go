package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycards/internal/prefs"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, prefs.TypeFile, cfg.Prefs.Type)
	assert.Equal(t, SearchSubstring, cfg.Search.Mode)
	assert.Equal(t, 10, cfg.View.ScrollThreshold)
	assert.Equal(t, "**/*.yaml", cfg.Catalog.Pattern)
	assert.Empty(t, cfg.Catalog.Dir)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
catalog:
  dir: /srv/shortcuts
prefs:
  type: sqlite
  sqlite:
    path: /tmp/p.db
search:
  mode: fuzzy
view:
  image_width: 30
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/shortcuts", cfg.Catalog.Dir)
	assert.Equal(t, prefs.TypeSQLite, cfg.Prefs.Type)
	assert.Equal(t, "/tmp/p.db", cfg.Prefs.SQLite.Path)
	assert.Equal(t, SearchFuzzy, cfg.Search.Mode)
	assert.Equal(t, 30, cfg.View.ImageWidth)
	assert.Equal(t, 12, cfg.View.ImageHeight, "unset keys keep defaults")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KEYCARDS_PREFS_TYPE", "memory")
	t.Setenv("KEYCARDS_VIEW_SCROLL_THRESHOLD", "4")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, prefs.TypeMemory, cfg.Prefs.Type)
	assert.Equal(t, 4, cfg.View.ScrollThreshold)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  mode: regex\n"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveWritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Prefs.Type = prefs.TypeSQLite
	cfg.View.ImageHeight = 8
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Prefs.Type = "etcd"
	assert.Error(t, Save(filepath.Join(t.TempDir(), "c.yaml"), cfg))
}

func TestDefaultPathUsesHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	want := filepath.Join(dir, ".config", "keycards", "config.yaml")
	assert.Equal(t, want, DefaultPath())
}
