package commands

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/reflectc/transform"
)

// ModeCmd reports the effective reflection mode for a path based on the
// hierarchical lumen.json lookup. Doc tags and session overrides are
// per-compilation concerns and not visible here.
var ModeCmd = &cobra.Command{
	Use:   "mode [path]",
	Short: "Report the effective reflection mode for a path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}

		oracle := transform.NewOracle()
		mode, ok := oracle.DirectoryMode(abs)
		if !ok {
			pterm.Info.Printf("%s: no %s with a reflection field; mode is %s",
				abs, transform.ConfigFileName, transform.ModeNever)
			pterm.Println()
			return nil
		}
		pterm.Info.Printf("%s: %s", abs, mode)
		pterm.Println()
		return nil
	},
}
