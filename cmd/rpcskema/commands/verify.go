package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/rpcskema/fixtures"
)

// VerifyCmd round-trips every fixture of a directory.
var VerifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Round-trip the <Type>.json|yaml fixtures of a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := parseOptions()
		if err != nil {
			return err
		}
		dir := "testdata/fixtures"
		if len(args) == 1 {
			dir = args[0]
		}
		v := &fixtures.Verifier{Registry: registry, Logger: logger, Options: opt}
		rep, err := v.VerifyDir(cmd.Context(), dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, res := range rep.Results {
			status := "ok"
			if res.Err != nil {
				status = "FAIL " + res.Err.Error()
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", res.Type, res.File, status)
		}
		for _, s := range rep.Skipped {
			fmt.Fprintf(out, "-\t%s\tskipped\n", s)
		}
		if failed := rep.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d of %d fixtures failed", len(failed), len(rep.Results))
		}
		return nil
	},
}
