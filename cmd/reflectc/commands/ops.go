package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/reflectc/typecode"
)

// OpsCmd prints the reflection instruction set.
var OpsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Print the reflection instruction set",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := pterm.TableData{{"Op", "Name", "Params"}}
		for _, op := range typecode.Ops() {
			rows = append(rows, []string{
				strconv.Itoa(int(op)),
				op.String(),
				strconv.Itoa(op.Params()),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}
