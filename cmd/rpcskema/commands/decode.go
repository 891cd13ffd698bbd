package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	rpcskema "github.com/reoring/rpcskema"
)

// DecodeCmd decodes a payload as a type and prints its canonical encoding.
var DecodeCmd = &cobra.Command{
	Use:   "decode <Type> [file|-]",
	Short: "Decode a payload and print its canonical encoding",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := parseOptions()
		if err != nil {
			return err
		}
		name := args[0]
		src := "-"
		if len(args) == 2 {
			src = args[1]
		}
		data, err := readInput(cmd, src)
		if err != nil {
			return err
		}
		log := logger.With(zap.String("type", name), zap.String("input", src))
		opt.OnIssue = logIssue(log)

		v, err := registry.Decode(cmd.Context(), name, data, opt)
		if err != nil {
			if iss, ok := rpcskema.AsIssues(err); ok {
				for _, it := range iss {
					log.Debug("issue", zap.String("path", it.Path), zap.String("code", it.Code), zap.String("hint", it.Hint))
				}
			}
			return fmt.Errorf("decode %s: %w", name, err)
		}
		out, err := registry.Encode(cmd.Context(), name, v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if viper.GetBool(flagIndent) {
			var buf bytes.Buffer
			if err := json.Indent(&buf, out, "", "  "); err != nil {
				return err
			}
			out = buf.Bytes()
		}
		log.Debug("decoded", zap.Int("bytes_in", len(data)), zap.Int("bytes_out", len(out)))
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	DecodeCmd.Flags().Bool(flagIndent, false, "indent the output")
}

func readInput(cmd *cobra.Command, src string) ([]byte, error) {
	if src == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(src)
}
