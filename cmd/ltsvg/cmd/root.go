package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/ltspice2svg/internal/config"
	"github.com/OpenTraceLab/ltspice2svg/internal/logging"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	verbose    bool
	configPath string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "ltsvg",
		Short: "ltsvg - LTspice schematic to SVG converter",
		Long: `ltsvg reads LTspice schematics (.asc) and their symbols (.asy) and
draws them as SVG.

Symbols are searched in the schematic's directory, then in every --lib
directory, then in the directories listed in ` + config.LibraryPathEnv + `.

Examples:
  ltsvg convert filter.asc                    # Write filter.svg
  ltsvg convert filter.asc -o - --theme dark  # SVG to stdout
  ltsvg info filter.asc                       # Show schematic info`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = logging.Setup(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")

	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newInfoCmd(opts))
	return cmd
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
