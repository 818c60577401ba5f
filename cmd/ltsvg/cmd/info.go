package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/ltspice2svg/internal/config"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/library"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/parser"
)

func newInfoCmd(root *rootOptions) *cobra.Command {
	var libs []string
	cmd := &cobra.Command{
		Use:   "info <schematic.asc> [instance]",
		Short: "Show schematic information",
		Long: `Display information about an LTspice schematic.

Without instance argument: shows schematic summary
With instance argument: shows details for that specific instance`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			cfg.LibraryPaths = append(append([]string(nil), libs...), cfg.LibraryPaths...)
			return runInfo(cmd, root, cfg, args)
		},
	}
	cmd.Flags().StringArrayVarP(&libs, "lib", "L", nil, "symbol library directory (repeatable)")
	return cmd
}

func runInfo(cmd *cobra.Command, root *rootOptions, cfg *config.Config, args []string) error {
	filename := args[0]
	raw, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	text, err := library.Decode(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	sch, err := parser.ParseSchematicNamed(filename, strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("error parsing schematic: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(args) >= 2 {
		return showInstanceDetails(out, sch, args[1])
	}

	lib := library.FromDirs(root.logger, symbolDirs(filename, cfg)...)
	showSchemSummary(out, sch, filename, lib)
	return nil
}

func showSchemSummary(out io.Writer, sch *model.Schematic, filename string, lib *library.Library) {
	fmt.Fprintf(out, "Schematic: %s\n", filename)
	fmt.Fprintf(out, "Version: %s\n", sch.Version)
	if sch.Sheet.Width > 0 {
		fmt.Fprintf(out, "Sheet: %d (%gx%g)\n", sch.Sheet.Number, sch.Sheet.Width, sch.Sheet.Height)
	}
	fmt.Fprintln(out)

	// Statistics
	fmt.Fprintln(out, "Statistics:")
	fmt.Fprintf(out, "  Instances: %d\n", len(sch.Instances))
	fmt.Fprintf(out, "  Wires: %d\n", len(sch.Wires))
	fmt.Fprintf(out, "  Net labels: %d\n", len(sch.FlagsOf(model.FlagNetLabel)))
	fmt.Fprintf(out, "  Grounds: %d\n", len(sch.FlagsOf(model.FlagGround)))
	fmt.Fprintf(out, "  IO pins: %d\n", len(sch.FlagsOf(model.FlagIOPin)))
	fmt.Fprintf(out, "  Texts: %d\n", len(sch.Texts))
	fmt.Fprintf(out, "  Shapes: %d\n", len(sch.Shapes))
	fmt.Fprintln(out)

	names := sch.SymbolNames()
	fmt.Fprintf(out, "Symbols (%d):\n", len(names))
	for _, name := range names {
		status := "ok"
		if _, err := lib.Resolve(name); err != nil {
			status = "error: " + err.Error()
			if errors.Is(err, model.ErrUnresolvedSymbol) {
				status = "missing"
			}
		}
		fmt.Fprintf(out, "  %-20s %s\n", name, status)
	}
	fmt.Fprintln(out)

	// Instances sorted by name
	insts := append([]model.SymbolInstance(nil), sch.Instances...)
	sort.SliceStable(insts, func(i, j int) bool {
		return insts[i].Name() < insts[j].Name()
	})
	fmt.Fprintln(out, "Instances:")
	for _, inst := range insts {
		name := inst.Name()
		if name == "" {
			name = "?"
		}
		fmt.Fprintf(out, "  %-10s %-20s %-6s %s\n", name, inst.Symbol, inst.Orientation, inst.Value())
	}

	labels := sch.FlagsOf(model.FlagNetLabel)
	if len(labels) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Net labels:")
		for _, f := range labels {
			fmt.Fprintf(out, "  %s at (%g, %g)\n", f.Label, f.Position.X, f.Position.Y)
		}
	}
}

func showInstanceDetails(out io.Writer, sch *model.Schematic, name string) error {
	inst := sch.GetInstance(name)
	if inst == nil {
		return fmt.Errorf("instance %s not found", name)
	}

	fmt.Fprintf(out, "Instance: %s\n", name)
	fmt.Fprintf(out, "Symbol: %s\n", inst.Symbol)
	fmt.Fprintf(out, "Position: (%g, %g)\n", inst.Position.X, inst.Position.Y)
	fmt.Fprintf(out, "Orientation: %s\n", inst.Orientation)
	fmt.Fprintf(out, "Line: %d\n", inst.Line)

	keys := make([]string, 0, len(inst.Attributes))
	for k := range inst.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Attributes:")
		for _, k := range keys {
			fmt.Fprintf(out, "  %s = %s\n", k, inst.Attributes[k])
		}
	}

	if len(inst.Overrides) > 0 {
		ids := make([]int, 0, len(inst.Overrides))
		for id := range inst.Overrides {
			ids = append(ids, int(id))
		}
		sort.Ints(ids)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Window overrides:")
		for _, id := range ids {
			w := inst.Overrides[model.WindowID(id)]
			fmt.Fprintf(out, "  %d at (%g, %g) %s\n", id, w.Position.X, w.Position.Y, w.Justification)
		}
	}
	return nil
}
