package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteLookup(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {100, 200, 50}}}

	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(0))
	assert.Equal(t, RGB{100, 200, 50}, p.Lookup(1))
	assert.Equal(t, RGB{50, 100, 25}, p.Lookup(0.5))

	// Out-of-range positions clamp.
	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(-1))
	assert.Equal(t, RGB{100, 200, 50}, p.Lookup(2))
}

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gpl")
	content := "GIMP Palette\nName: test\nColumns: 2\n#\n255 0 0 red\n0 255 0 green\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadGPL(path)
	require.NoError(t, err)
	assert.Equal(t, "test", p.Name)
	assert.Equal(t, []RGB{{255, 0, 0}, {0, 255, 0}}, p.Colors)

	empty := filepath.Join(t.TempDir(), "empty.gpl")
	require.NoError(t, os.WriteFile(empty, []byte("GIMP Palette\n"), 0644))
	_, err = LoadGPL(empty)
	assert.Error(t, err)
}
