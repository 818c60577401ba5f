package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/ltspice2svg/internal/config"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/library"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/render"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/render/svg"
)

type convertOptions struct {
	output     string
	exportJSON string
	libs       []string
	margin     float64
	stroke     float64
	dotSize    float64
	scale      float64
	fontSize   float64
	theme      string
	workers    int

	noText       bool
	noComment    bool
	noDirective  bool
	noSymbolText bool
	noName       bool
	noValue      bool
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <schematic.asc>",
		Short: "Convert a schematic to SVG",
		Long: `Convert an LTspice schematic to SVG.

The output defaults to the input name with an .svg extension; "-o -"
writes to stdout. Flags override values from --config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output SVG file (- for stdout)")
	f.StringVar(&opts.exportJSON, "export-json", "", "also write the resolved document as JSON")
	f.StringArrayVarP(&opts.libs, "lib", "L", nil, "symbol library directory (repeatable)")
	f.Float64Var(&opts.margin, "margin", 10, "viewport margin in percent of the larger side")
	f.Float64Var(&opts.stroke, "stroke", 3, "stroke width")
	f.Float64Var(&opts.dotSize, "dot-size", 1.5, "junction dot radius as a multiple of the stroke width")
	f.Float64Var(&opts.scale, "scale", 1, "scale factor for the SVG width and height")
	f.Float64Var(&opts.fontSize, "font-size", 16, "base font size")
	f.StringVar(&opts.theme, "theme", "light", "color theme (light, dark)")
	f.IntVar(&opts.workers, "workers", 0, "parallel symbol placement (0 = all CPUs)")

	f.BoolVar(&opts.noText, "no-text", false, "omit all text")
	f.BoolVar(&opts.noComment, "no-comment", false, "omit schematic comments")
	f.BoolVar(&opts.noDirective, "no-directive", false, "omit SPICE directives")
	f.BoolVar(&opts.noSymbolText, "no-symbol-text", false, "omit text drawn by symbols")
	f.BoolVar(&opts.noName, "no-name", false, "omit component names")
	f.BoolVar(&opts.noValue, "no-value", false, "omit component values")
	return cmd
}

// loadConfig reads --config and applies the flags that were set
func loadConfig(cmd *cobra.Command, root *rootOptions, opts *convertOptions) (*config.Config, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("margin") {
		cfg.MarginPercent = opts.margin
	}
	if f.Changed("stroke") {
		cfg.StrokeWidth = opts.stroke
	}
	if f.Changed("dot-size") {
		cfg.DotSize = opts.dotSize
	}
	if f.Changed("scale") {
		cfg.Scale = opts.scale
	}
	if f.Changed("font-size") {
		cfg.FontSize = opts.fontSize
	}
	if f.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	cfg.LibraryPaths = append(append([]string(nil), opts.libs...), cfg.LibraryPaths...)

	t := &cfg.Text
	t.Disable = t.Disable || opts.noText
	t.NoSchematicComment = t.NoSchematicComment || opts.noComment
	t.NoSpiceDirective = t.NoSpiceDirective || opts.noDirective
	t.NoSymbolText = t.NoSymbolText || opts.noSymbolText
	t.NoComponentName = t.NoComponentName || opts.noName
	t.NoComponentValue = t.NoComponentValue || opts.noValue

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// symbolDirs puts the schematic's own directory first
func symbolDirs(input string, cfg *config.Config) []string {
	return append([]string{filepath.Dir(input)}, cfg.LibraryPaths...)
}

func runConvert(cmd *cobra.Command, root *rootOptions, opts *convertOptions, input string) error {
	cfg, err := loadConfig(cmd, root, opts)
	if err != nil {
		return err
	}
	logger := root.logger

	lib := library.FromDirs(logger, symbolDirs(input, cfg)...)
	sch, err := library.OpenSchematic(input, lib)
	if err != nil {
		return fmt.Errorf("error loading schematic: %w", err)
	}

	ropts := cfg.RenderOptions()
	ropts.Logger = logger
	doc, err := render.BuildContext(cmd.Context(), sch, ropts)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", input, err)
	}

	style, err := cfg.Style()
	if err != nil {
		return err
	}
	style.Title = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
		return svg.Write(w, doc, style)
	}); err != nil {
		return err
	}

	if opts.exportJSON != "" {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		if err := writeOutput(cmd.OutOrStdout(), opts.exportJSON, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}); err != nil {
			return err
		}
	}

	logger.Info("converted schematic",
		"input", input,
		"output", output,
		"symbols", lib.Len(),
		"instances", len(doc.Symbols),
		"junctions", len(doc.Junctions))
	return nil
}

// writeOutput writes to stdout for "-", otherwise to the named file
func writeOutput(stdout io.Writer, name string, write func(io.Writer) error) error {
	if name == "-" {
		return write(stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
