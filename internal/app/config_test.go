package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"xorcrack/internal/app"
	"xorcrack/internal/domain"
	"xorcrack/internal/score"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := app.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultKeyRange, cfg.KeyRange())
	assert.Equal(t, score.DefaultControlPenalty, cfg.Scoring.ControlPenalty)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xorcrack.yaml")
	data := []byte(`
search:
  max_key: 255
  top: 3
batch:
  workers: 2
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := app.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.KeyRange{Min: 1, Max: 255}, cfg.KeyRange())
	assert.Equal(t, 3, cfg.Search.Top)
	assert.Equal(t, 2, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XORCRACK_WORKERS", "7")
	t.Setenv("XORCRACK_SERVER", "http://127.0.0.1:9999")

	cfg, err := app.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Batch.Workers)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Server.URL)
}

func TestLoad_BadEnvWorkers(t *testing.T) {
	t.Setenv("XORCRACK_WORKERS", "many")
	_, err := app.Load("")
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [1, 2"), 0o600))
	_, err := app.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*app.Config)
		want   error
	}{
		{"key zero", func(c *app.Config) { c.Search.MinKey = 0 }, domain.ErrInvalidKeyRange},
		{"key too large", func(c *app.Config) { c.Search.MaxKey = 256 }, domain.ErrInvalidKeyRange},
		{"inverted", func(c *app.Config) { c.Search.MinKey, c.Search.MaxKey = 200, 100 }, domain.ErrInvalidKeyRange},
		{"negative penalty", func(c *app.Config) { c.Scoring.ControlPenalty = -0.5 }, score.ErrInvalidPenalty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := app.DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	cfg := app.DefaultConfig()
	cfg.Batch.Workers = -1
	assert.Error(t, cfg.Validate())

	cfg = app.DefaultConfig()
	cfg.Server.Timeout = "soon"
	assert.Error(t, cfg.Validate())
}

func TestNewWire(t *testing.T) {
	cfg := app.DefaultConfig()
	w, err := app.NewWire(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, w.Crack)
	assert.Nil(t, w.Remote)

	cfg.Server.URL = "http://127.0.0.1:1"
	w, err = app.NewWire(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, w.Remote)

	cfg.Search.MinKey = 0
	_, err = app.NewWire(cfg, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidKeyRange)
}

func TestNewLogger(t *testing.T) {
	l, err := app.NewLogger(app.LoggingConfig{Level: "warn"}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = app.NewLogger(app.LoggingConfig{Level: "warn"}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = app.NewLogger(app.LoggingConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
