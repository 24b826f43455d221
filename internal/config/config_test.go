package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mincut.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Full(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `trials: 250
concurrent: true
seed: 42
max_workers: 8
log_level: debug
graph:
  file: g.txt
  edges:
    - "a -- b"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Trials)
	assert.True(t, cfg.Concurrent)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, 8, cfg.MaxWorkers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "g.txt", cfg.Graph.File)
	assert.Equal(t, []string{"a -- b"}, cfg.Graph.Edges)
}

func TestLoad_KeepsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(writeFile(t, "concurrent: true\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTrials, cfg.Trials)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Nil(t, cfg.Seed)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "trials: [1\n"))
	assert.Error(t, err)

	for _, body := range []string{
		"trials: -1\n",
		"max_workers: -2\n",
		"confidence: 1.5\n",
		"trials: 0\n",
	} {
		_, err := Load(writeFile(t, body))
		assert.ErrorIs(t, err, ErrInvalidConfig, body)
	}

	_, err = Load(writeFile(t, "trials: 0\nconfidence: 0.9\n"))
	assert.NoError(t, err)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()
	seed := uint64(9)
	want := Default()
	want.Seed = &seed
	want.Graph.Edges = []string{"x -- y"}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Write(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
