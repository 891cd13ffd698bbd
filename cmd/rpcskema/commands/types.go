package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// TypesCmd lists the registered wire types.
var TypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered wire types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range registry.Names() {
			e, _ := registry.Lookup(name)
			line := fmt.Sprintf("%-48s %s", name, e.Kind())
			if vs := e.Variants(); len(vs) > 0 {
				line += " [" + strings.Join(vs, " ") + "]"
			}
			fmt.Fprintln(out, strings.TrimRight(line, " "))
		}
		return nil
	},
}
