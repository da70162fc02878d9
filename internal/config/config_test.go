package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that defaults are applied when no config files
// exist. Requires HOME isolation to avoid loading a real global config.
// NO t.Parallel() because of t.Setenv.
func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Token)
	assert.Equal(t, "", cfg.User)
	assert.Equal(t, 30, cfg.Timeout)
}

func TestLoad_GlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	globalPath := filepath.Join(tmpDir, ".pushover", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte(`{
		"token": "global-token",
		"user": "global-user"
	}`), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "global-token", cfg.Token)
	assert.Equal(t, "global-user", cfg.User)
	assert.Equal(t, 30, cfg.Timeout)
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	globalPath := filepath.Join(tmpDir, ".pushover", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(globalPath), 0o755))
	require.NoError(t, os.WriteFile(globalPath, []byte(`{
		"token": "global-token",
		"sound": "bike"
	}`), 0o600))

	localPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{
		"token": "local-token"
	}`), 0o600))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "local-token", cfg.Token)
	assert.Equal(t, "bike", cfg.Sound, "keys absent locally keep the global value")
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("PUSHOVER_TOKEN", "env-token")
	t.Setenv("PUSHOVER_TIMEOUT", "5")

	localPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{
		"token": "local-token",
		"timeout": 60
	}`), 0o600))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, 5, cfg.Timeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("PUSHOVER_TIMEOUT", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoad_MalformedLocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	localPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{not json`), 0o600))

	_, err := Load(localPath)
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".pushover", "config.json")

	require.NoError(t, Init(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second init must not clobber an existing file.
	err = Init(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
