package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	rpcskema "github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/model"
)

var (
	logger   = zap.NewNop()
	registry = model.Registry

	// newLogger builds the command logger. Warnings are always shown,
	// progress only with --verbose.
	newLogger = func(verbose bool) (*zap.Logger, error) {
		if verbose {
			return zap.NewDevelopment()
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		return cfg.Build()
	}
)

// RootCmd is the root command for rpcskema. It is called once in the main
// function.
var RootCmd = &cobra.Command{
	Use:           "rpcskema",
	Short:         "Decode, encode and verify node JSON-RPC payloads",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		logger, err = newLogger(viper.GetBool(flagVerbose))
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.String(flagConfig, "", "config file (yaml, json or toml)")
	pf.BoolP(flagVerbose, "v", false, "log progress to stderr")
	pf.Int(flagMaxDepth, 0, "maximum nesting depth of JSON input (0 = unlimited)")
	pf.Int64(flagMaxBytes, 0, "maximum size of JSON input in bytes (0 = unlimited)")
	pf.String(flagDuplicateKeys, "ignore", "duplicate object keys: ignore, warn or error")
	pf.Bool(flagFailFast, false, "stop at the first issue")

	RootCmd.AddCommand(
		TypesCmd,
		SchemaCmd,
		DecodeCmd,
		VerifyCmd,
	)
}

func loadConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("RPCSKEMA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := viper.GetString(flagConfig); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// parseOptions builds decode options from flags, config and environment.
func parseOptions() (rpcskema.ParseOpt, error) {
	sev, err := parseSeverity(viper.GetString(flagDuplicateKeys))
	if err != nil {
		return rpcskema.ParseOpt{}, err
	}
	return rpcskema.ParseOpt{
		Strictness: rpcskema.Strictness{OnDuplicateKey: sev},
		MaxDepth:   viper.GetInt(flagMaxDepth),
		MaxBytes:   viper.GetInt64(flagMaxBytes),
		FailFast:   viper.GetBool(flagFailFast),
	}, nil
}

// logIssue reports a non-fatal decode issue, such as a duplicate key under
// --duplicate-keys=warn.
func logIssue(log *zap.Logger) func(rpcskema.Issue) {
	return func(it rpcskema.Issue) {
		log.Warn("input issue", zap.String("path", it.Path), zap.String("code", it.Code), zap.String("hint", it.Hint))
	}
}

func parseSeverity(s string) (rpcskema.Severity, error) {
	switch strings.ToLower(s) {
	case "", "ignore":
		return rpcskema.Ignore, nil
	case "warn":
		return rpcskema.Warn, nil
	case "error":
		return rpcskema.Error, nil
	}
	return rpcskema.Ignore, fmt.Errorf("invalid %s %q: want ignore, warn or error", flagDuplicateKeys, s)
}
