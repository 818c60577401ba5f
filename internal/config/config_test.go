package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/render/svg"
)

func TestDefault(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	cfg := Default()

	assert.Equal(t, 16.0, cfg.FontSize)
	assert.Equal(t, 10.0, cfg.MarginPercent)
	assert.Equal(t, 3.0, cfg.StrokeWidth)
	assert.Equal(t, 1.5, cfg.DotSize)
	assert.Equal(t, 1.0, cfg.Scale)
	assert.Equal(t, "Arial", cfg.FontFamily)
	assert.Equal(t, "light", cfg.Theme)
	assert.Empty(t, cfg.LibraryPaths)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultLibraryPathEnv(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv(LibraryPathEnv, "/opt/lib/sym"+sep+sep+"/home/me/sym")

	assert.Equal(t, []string{"/opt/lib/sym", "/home/me/sym"}, Default().LibraryPaths)
}

func TestLoadFromReader(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")
	cfg, err := LoadFromReader(strings.NewReader(`
font_size: 20
theme: dark
scale: 2.5
dot_size: 2
library_paths:
  - ./sym
text:
  no_spice_directive: true
`))
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.FontSize)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, []string{"./sym"}, cfg.LibraryPaths)
	assert.True(t, cfg.Text.NoSpiceDirective)
	// untouched keys keep their defaults
	assert.Equal(t, 10.0, cfg.MarginPercent)
	assert.Equal(t, 3.0, cfg.StrokeWidth)

	opts := cfg.RenderOptions()
	assert.Equal(t, 20.0, opts.FontSize)
	assert.True(t, opts.NoSpiceDirective)
	assert.False(t, opts.NoText)
	assert.Equal(t, 6.0, opts.JunctionRadius)

	st, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, svg.ThemeDark, st.Theme)
	assert.Equal(t, 3.0, st.StrokeWidth)
	assert.Equal(t, 2.0, st.DotSize)
	assert.Equal(t, 2.5, st.Scale)
}

func TestLoadFromReaderInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "font_size: [1"},
		{"type", "font_size: big"},
		{"zero font", "font_size: 0"},
		{"negative margin", "margin_percent: -1"},
		{"zero stroke", "stroke_width: 0"},
		{"negative dot size", "dot_size: -1"},
		{"zero scale", "scale: 0"},
		{"theme", "theme: sepia"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 16.0, cfg.FontSize)

	path := filepath.Join(t.TempDir(), "ltsvg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("margin_percent: 0\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.MarginPercent)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
