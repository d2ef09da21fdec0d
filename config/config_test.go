package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blixt/unistyle/textstyle"
)

var keys = []string{"UNISTYLE_STYLE", "UNISTYLE_VARIANT", "UNISTYLE_ADDR", "UNISTYLE_LOG_LEVEL", "UNISTYLE_LOG_FORMAT"}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, textstyle.Bold, cfg.Style)
	assert.Equal(t, textstyle.SansNormal, cfg.Variant)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "UNISTYLE_STYLE=script\nUNISTYLE_VARIANT=boldSans\nUNISTYLE_ADDR=127.0.0.1:9000\nUNISTYLE_LOG_LEVEL=DEBUG\nUNISTYLE_LOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, textstyle.Script, cfg.Style)
	assert.Equal(t, textstyle.BoldSans, cfg.Variant)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UNISTYLE_STYLE=script\n"), 0644))
	t.Setenv("UNISTYLE_STYLE", "monospace")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, textstyle.Monospace, cfg.Style)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"style", "UNISTYLE_STYLE", "comic"},
		{"variant", "UNISTYLE_VARIANT", "gothic"},
		{"level", "UNISTYLE_LOG_LEVEL", "loud"},
		{"format", "UNISTYLE_LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestInvalidStyleWrapsSentinel(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNISTYLE_STYLE", "comic")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, textstyle.ErrUnknownStyle)
}
