package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/reflectc/cmd/reflectc/commands"
	"github.com/lumen-lang/reflectc/config"
	"github.com/lumen-lang/reflectc/logger"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "reflectc",
	Short: "Lumen type-reflection toolbox",
	Long: `reflectc - inspect the type metadata the Lumen reflection transformer emits.

Available commands:
  unpack  - Decode a packed __type string into readable instructions
  ops     - Print the reflection instruction set
  mode    - Report the effective reflection mode for a path
  version - Show version information

Examples:
  reflectc unpack 1kx
  reflectc ops
  reflectc mode ./src/models`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbosity == 0 {
			verbosity = cfg.Verbosity
		}
		return logger.Initialize(logger.VerbosityToLevel(verbosity))
	},
}

func main() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase output verbosity (-v, -vv)")

	rootCmd.AddCommand(commands.UnpackCmd)
	rootCmd.AddCommand(commands.OpsCmd)
	rootCmd.AddCommand(commands.ModeCmd)
	rootCmd.AddCommand(commands.VersionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
