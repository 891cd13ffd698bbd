package commands

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// SchemaCmd prints the JSON Schema projection of a type.
var SchemaCmd = &cobra.Command{
	Use:   "schema <Type>",
	Short: "Print the JSON Schema of a wire type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := registry.JSONSchema(args[0])
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
