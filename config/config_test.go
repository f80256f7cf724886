package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Tuning = "Drop D"
	cfg.Instrument = "Overdriven Guitar"
	cfg.Velocity = 90
	cfg.Output.PortName = "FluidSynth"
	require.NoError(t, cfg.saveTo(path))

	loaded, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tuning": "Open G"}`), 0644))

	cfg, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Open G", cfg.Tuning)
	assert.Equal(t, uint8(100), cfg.Velocity, "unset fields fall back to defaults")
}

func TestLoadRejectsBadContent(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err := loadFrom(bad)
	assert.Error(t, err)

	loud := filepath.Join(dir, "loud.json")
	require.NoError(t, os.WriteFile(loud, []byte(`{"velocity": 200}`), 0644))
	_, err = loadFrom(loud)
	assert.Error(t, err)
}
