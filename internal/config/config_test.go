package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	unsetEnv(t, "GCP_RUNTIME_PATH", "GCP_FRONTEND", "GCP_PERSIST_HISTORY", "GCP_HISTORY_LIMIT")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".gcp"), cfg.GetRuntimePath())
	assert.Equal(t, FrontendReadline, cfg.Frontend)
	assert.True(t, cfg.PersistHistory)
	assert.Equal(t, 500, cfg.HistoryLimit)
	assert.Equal(t, filepath.Join(home, ".gcp", "gcp.db"), cfg.GetDatabasePath())
	assert.Equal(t, filepath.Join(home, ".gcp", ".env"), cfg.GetEnvFilePath())
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GCP_RUNTIME_PATH", dir)
	t.Setenv("GCP_FRONTEND", "tui")
	t.Setenv("GCP_PERSIST_HISTORY", "false")
	t.Setenv("GCP_HISTORY_LIMIT", "10")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.RuntimePath)
	assert.Equal(t, FrontendTUI, cfg.Frontend)
	assert.False(t, cfg.PersistHistory)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, filepath.Join(dir, "input_history"), cfg.GetHistoryFilePath())
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown frontend", key: "GCP_FRONTEND", val: "qt"},
		{name: "negative limit", key: "GCP_HISTORY_LIMIT", val: "-1"},
		{name: "malformed limit", key: "GCP_HISTORY_LIMIT", val: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GCP_RUNTIME_PATH", t.TempDir())
			t.Setenv("GCP_FRONTEND", "readline")
			t.Setenv("GCP_HISTORY_LIMIT", "5")
			t.Setenv(tt.key, tt.val)

			_, err := LoadAppConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewConsoleConfig(t *testing.T) {
	t.Setenv("GCP_PROMPT", "gcp> ")
	t.Setenv("GCP_PAGE_SCROLL", "0")

	cfg := NewConsoleConfig(context.Background())
	assert.Equal(t, "gcp> ", cfg.Prompt)
	assert.Equal(t, 20, cfg.PageScroll)
}

func TestIsDebug(t *testing.T) {
	t.Setenv("GCP_DEBUG", "1")
	assert.True(t, IsDebug())
	t.Setenv("GCP_DEBUG", "")
	assert.False(t, IsDebug())
}
