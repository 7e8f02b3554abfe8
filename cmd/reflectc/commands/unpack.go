package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/reflectc/typecode"
)

// UnpackCmd decodes a packed opcode string into readable instructions.
var UnpackCmd = &cobra.Command{
	Use:   "unpack <encoded>",
	Short: "Decode a packed __type string",
	Long: `Decode the trailing encoded string of a packed __type value into a
readable instruction listing. Literal-stack entries are not part of the
encoded string; parameter slots print as bare indices.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := typecode.DecodeOps(args[0])
		if err != nil {
			return err
		}
		fmt.Print(typecode.Disassemble(typecode.PackStruct{Ops: ops}))
		pterm.Success.Printf("%d instruction slots decoded", len(ops))
		pterm.Println()
		return nil
	},
}
