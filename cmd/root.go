package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/analyzer"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool
	noColor bool
	variant string

	logger *zap.Logger
	config analyzer.Config
)

// errReported is returned once the failure has already been printed.
var errReported = errors.New("failure reported")

var rootCmd = &cobra.Command{
	Use:              "scover [expression]",
	Short:            "scover - short-circuit coverage analyzer for boolean expressions",
	Args:             cobra.ArbitraryArgs,
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}
		logger = l

		config, err = loadConfig(cmd)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		// Format: scover a and b => behaves like the analyze subcommand
		return analyzeCmd.RunE(cmd, args)
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", analyzer.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the analysis")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "Selection variant: basic or extended (overrides the config file)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// loadConfig reads the configuration file and applies the flag overrides.
// Only an explicitly passed --config must exist; init starts from the
// defaults since it is about to write the file.
func loadConfig(cmd *cobra.Command) (analyzer.Config, error) {
	var (
		c   analyzer.Config
		err error
	)
	switch {
	case cmd == initCmd:
		c = analyzer.DefaultConfig()
	case cmd.Flags().Changed("config"):
		c, err = analyzer.LoadConfig(cfgFile)
	default:
		c, err = analyzer.LoadConfigOrDefault(cfgFile)
	}
	if err != nil {
		return c, fmt.Errorf("error loading config: %w", err)
	}

	return applyOverrides(c, variant, noColor)
}

func applyOverrides(c analyzer.Config, variant string, noColor bool) (analyzer.Config, error) {
	if variant != "" {
		c.Variant = analyzer.Variant(variant)
	}
	if noColor {
		c.Color = false
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
