package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resAsy = `Version 4
SymbolType CELL
LINE Normal 16 88 16 96
RECTANGLE Normal 0 16 32 88
WINDOW 0 36 40 Left 2
WINDOW 3 36 76 Left 2
PIN 16 16 NONE 0
PIN 16 96 NONE 0
`

const dividerAsc = `Version 4
SHEET 1 880 680
WIRE 144 -32 144 0
WIRE 144 0 256 0
WIRE 144 0 144 32
WIRE 144 112 144 160
FLAG 144 160 0
FLAG 256 0 out
SYMBOL res 128 16 R0
SYMATTR InstName R1
SYMATTR Value 10k
WINDOW 3 36 60 Left 2
TEXT 0 -64 Left 2 !.op
`

// writeFixture writes a schematic and, in a separate directory, its symbol
func writeFixture(t *testing.T) (schematic, libDir string) {
	t.Helper()
	t.Setenv("LTSPICE_LIB_PATH", "")
	dir := t.TempDir()
	libDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "res.asy"), []byte(resAsy), 0o644))
	schematic = filepath.Join(dir, "divider.asc")
	require.NoError(t, os.WriteFile(schematic, []byte(dividerAsc), 0o644))
	return schematic, libDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeWithLog(t, args...)
	return stdout, err
}

func executeWithLog(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cmd := newRootCmd()
	var out, log bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), log.String(), err
}

func TestConvertE2E(t *testing.T) {
	schematic, libDir := writeFixture(t)
	dir := filepath.Dir(schematic)

	tests := []struct {
		name        string
		args        []string
		output      string
		wantErr     bool
		wantContain []string
		wantMissing []string
	}{
		{
			name:        "default output name",
			args:        []string{"convert", schematic, "--lib", libDir},
			output:      filepath.Join(dir, "divider.svg"),
			wantContain: []string{"<title>divider</title>", `id="junctions"`, "10k", ".op", "R1"},
		},
		{
			name:        "text switches",
			args:        []string{"convert", schematic, "-L", libDir, "-o", filepath.Join(dir, "quiet.svg"), "--no-directive", "--no-value"},
			output:      filepath.Join(dir, "quiet.svg"),
			wantContain: []string{"R1"},
			wantMissing: []string{"10k", ".op"},
		},
		{
			name:        "dark theme",
			args:        []string{"convert", schematic, "-L", libDir, "-o", filepath.Join(dir, "dark.svg"), "--theme", "dark"},
			output:      filepath.Join(dir, "dark.svg"),
			wantContain: []string{"fill:#1e1e1e"},
		},
		{
			name:        "dot size",
			args:        []string{"convert", schematic, "-L", libDir, "-o", filepath.Join(dir, "dots.svg"), "--dot-size", "2"},
			output:      filepath.Join(dir, "dots.svg"),
			wantContain: []string{`<circle cx="144.00" cy="0.00" r="6.00"`},
			wantMissing: []string{`r="4.50"`},
		},
		{
			name:    "zero scale",
			args:    []string{"convert", schematic, "-L", libDir, "--scale", "0"},
			wantErr: true,
		},
		{
			name:    "unknown theme",
			args:    []string{"convert", schematic, "-L", libDir, "--theme", "sepia"},
			wantErr: true,
		},
		{
			name:    "missing symbol",
			args:    []string{"convert", schematic, "-o", filepath.Join(dir, "x.svg")},
			wantErr: true,
		},
		{
			name:    "missing file",
			args:    []string{"convert", filepath.Join(dir, "nope.asc")},
			wantErr: true,
		},
		{
			name:    "no arguments",
			args:    []string{"convert"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(tt.output)
			require.NoError(t, err)
			out := string(data)
			for _, want := range tt.wantContain {
				assert.Contains(t, out, want)
			}
			for _, miss := range tt.wantMissing {
				assert.NotContains(t, out, miss)
			}
		})
	}
}

func TestConvertStdoutAndJSON(t *testing.T) {
	schematic, libDir := writeFixture(t)
	jsonPath := filepath.Join(filepath.Dir(schematic), "doc.json")

	out, err := execute(t, "convert", schematic, "-L", libDir, "-o", "-", "--export-json", jsonPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc struct {
		Viewport struct {
			Width float64 `json:"width"`
		} `json:"viewport"`
		Junctions []any `json:"junctions"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Greater(t, doc.Viewport.Width, 0.0)
	assert.Len(t, doc.Junctions, 1)
}

func TestConvertScale(t *testing.T) {
	schematic, libDir := writeFixture(t)
	jsonPath := filepath.Join(filepath.Dir(schematic), "doc.json")

	out, err := execute(t, "convert", schematic, "-L", libDir, "-o", "-", "--scale", "2", "--export-json", jsonPath)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc struct {
		Viewport struct {
			MinX   float64 `json:"min_x"`
			MinY   float64 `json:"min_y"`
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		} `json:"viewport"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	vp := doc.Viewport

	assert.Contains(t, out, fmt.Sprintf(`<svg width="%.2f" height="%.2f"`, vp.Width*2, vp.Height*2))
	assert.Contains(t, out, fmt.Sprintf(`viewBox="%.2f %.2f %.2f %.2f"`, vp.MinX, vp.MinY, vp.Width, vp.Height))
}

func TestConvertLogging(t *testing.T) {
	schematic, libDir := writeFixture(t)

	_, log, err := executeWithLog(t, "convert", schematic, "-L", libDir, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, log, "converted schematic")
	assert.NotContains(t, log, "level=DEBUG")

	_, log, err = executeWithLog(t, "convert", schematic, "-L", libDir, "-o", "-", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, log, "level=DEBUG")
}

func TestConvertConfigFile(t *testing.T) {
	schematic, libDir := writeFixture(t)
	dir := filepath.Dir(schematic)
	cfgPath := filepath.Join(dir, "ltsvg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("stroke_width: 5\nlibrary_paths:\n  - "+libDir+"\n"), 0o644))

	out, err := execute(t, "convert", schematic, "--config", cfgPath, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "stroke-width:5;")

	// flags win over the file
	out, err = execute(t, "convert", schematic, "--config", cfgPath, "-o", "-", "--stroke", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "stroke-width:2;")
}

func TestInfoE2E(t *testing.T) {
	schematic, libDir := writeFixture(t)

	out, err := execute(t, "info", schematic, "-L", libDir)
	require.NoError(t, err)
	for _, want := range []string{
		"Version: 4",
		"Instances: 1",
		"Wires: 4",
		"Grounds: 1",
		"Net labels: 1",
		"res",
		"ok",
		"R1",
		"10k",
		"out at (256, 0)",
	} {
		assert.Contains(t, out, want)
	}

	out, err = execute(t, "info", schematic)
	require.NoError(t, err)
	assert.Contains(t, out, "missing")

	out, err = execute(t, "info", schematic, "R1")
	require.NoError(t, err)
	assert.Contains(t, out, "Symbol: res")
	assert.Contains(t, out, "Value = 10k")
	assert.Contains(t, out, "3 at (36, 60) Left")

	_, err = execute(t, "info", schematic, "R9")
	assert.Error(t, err)
}
