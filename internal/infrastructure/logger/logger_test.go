package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "console format", cfg: DefaultConfig()},
		{name: "json format", cfg: ProductionConfig()},
		{
			name: "debug level stderr",
			cfg:  &Config{Level: "debug", Format: "json", Output: "stderr", TimeFormat: "2006-01-02"},
		},
		{
			name: "unknown level falls back to info",
			cfg:  &Config{Level: "verbose", Format: "json", Output: "stdout", TimeFormat: "2006-01-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)
		})
	}
}

func TestNewNilConfig(t *testing.T) {
	l, err := New(nil)
	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	cfg := &Config{Level: "info", Format: "json", Output: path, TimeFormat: "2006-01-02T15:04:05Z07:00"}

	l, err := New(cfg)
	require.NoError(t, err)

	l.Info("file sink works")
	require.NoError(t, Sync(l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file sink works")
}

func TestNewUnwritableFileFallsBack(t *testing.T) {
	cfg := &Config{Level: "info", Format: "json", Output: "/nonexistent-dir/app.log", TimeFormat: "2006-01-02"}

	l, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "stdout", cfg.Output)
}
