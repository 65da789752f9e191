package cmd

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/sja1105/staticconfig"
)

// app is the state resolved by the root command before any subcommand runs.
type app struct {
	cfg    *Config
	logger logr.Logger
}

// parserOptions returns the parser options implied by the configuration.
// The quirk mode is left out when it is detected per input.
func (a *app) parserOptions() ([]staticconfig.Option, bool, error) {
	q, auto, err := a.cfg.QuirkMode()
	if err != nil {
		return nil, false, err
	}

	opts := []staticconfig.Option{
		staticconfig.WithLogger(a.logger),
		staticconfig.WithStrictLength(a.cfg.StrictLength),
	}
	if !auto {
		opts = append(opts, staticconfig.WithQuirks(q))
	}

	return opts, auto, nil
}

func newLogger(w zapcore.WriteSyncer, lvl zapcore.Level) logr.Logger {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, w, lvl)

	return zapr.NewLogger(zap.New(core))
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{logger: logr.Discard()}

	var (
		configPath  string
		quirks      string
		compression string
		verbose     bool
		strict      bool
	)

	rootCmd := &cobra.Command{
		Use:   "sja1105cfg",
		Short: "Inspect and build SJA1105 static configuration images",
		Long: `sja1105cfg decodes, validates, assembles and stages the static
configuration images loaded by the NXP SJA1105 switch family.

Settings are read from an optional YAML file and may be overridden
by command line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("quirks") {
				cfg.Quirks = quirks
			}
			if flags.Changed("compression") {
				cfg.Compression = compression
			}
			if flags.Changed("strict") {
				cfg.StrictLength = strict
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			lvl, _ := cfg.Level()
			a.cfg = cfg
			a.logger = newLogger(zapcore.Lock(os.Stderr), lvl)

			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")
	pf.StringVarP(&quirks, "quirks", "q", QuirksAuto, "Quirk mode: auto, none, or a comma separated list of quirks")
	pf.StringVar(&compression, "compression", "zstd", "Staging compression: none, zstd, s2, lz4")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&strict, "strict", false, "Treat inaccurate table lengths as errors")

	rootCmd.AddCommand(
		newDumpCmd(a),
		newValidateCmd(a),
		newAssembleCmd(a),
		newStageCmd(a),
		newUnstageCmd(a),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
