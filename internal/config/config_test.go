package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDBName, cfg.DBPath)
	assert.Equal(t, "Todolist", cfg.UI.Title)
	assert.Equal(t, "esc", cfg.Keys.Quit)
	assert.Equal(t, "enter", cfg.Keys.Submit)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	// A second load reads the file it just wrote.
	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = "elsewhere.db"

[keys]
quit = "q"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere.db", cfg.DBPath)
	assert.Equal(t, "q", cfg.Keys.Quit)
	// Unset fields fall back to defaults.
	assert.Equal(t, "enter", cfg.Keys.Submit)
	assert.Equal(t, "Todolist", cfg.UI.Title)
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = ["), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}
