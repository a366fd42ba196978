package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/analyzer"
	"github.com/gnoswap-labs/scover/formatter"
)

const stdinPath = "-"

var (
	checkJSON    bool
	checkOutPath string
	checkWorkers int
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Analyze every expression in expression files or directories",
	Long: `Reads expression files (.bexp, .txt) with one expression per line; blank
lines and lines starting with '#' are skipped. Directories are walked and
'-' reads from stdin. Exits with a non-zero status when an expression
cannot be analyzed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("please provide file or directory paths, or - for stdin")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		engine, done, err := newEngine(logger, config)
		if err != nil {
			return err
		}
		defer done()

		workers := config.Workers
		if checkWorkers > 0 {
			workers = checkWorkers
		}
		opts := checkOptions{
			JSON:    checkJSON,
			OutPath: checkOutPath,
			Verbose: verbose,
			Color:   useColor(),
			Process: analyzer.ProcessOptions{
				Workers:  workers,
				Progress: !checkJSON && isatty.IsTerminal(os.Stderr.Fd()),
			},
		}
		return runCheck(ctx, logger, cmd.OutOrStdout(), cmd.InOrStdin(), engine, args, opts)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output findings in JSON format")
	checkCmd.Flags().StringVarP(&checkOutPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "Number of files analyzed concurrently (default: config or one per CPU)")
}

type checkOptions struct {
	JSON    bool
	OutPath string
	Verbose bool
	Color   bool
	Process analyzer.ProcessOptions
}

// newEngine returns the analyzer, wrapped in the result cache when one is
// configured. done persists the cache.
func newEngine(logger *zap.Logger, c analyzer.Config) (analyzer.Engine, func(), error) {
	a := analyzer.New(c, logger)
	if c.CacheDir == "" {
		return a, func() {}, nil
	}

	cached, err := analyzer.NewCachedEngine(a, c.CacheDir)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening cache: %w", err)
	}
	done := func() {
		if err := cached.Save(); err != nil {
			logger.Error("Error saving cache", zap.String("dir", c.CacheDir), zap.Error(err))
			return
		}
		logger.Debug("cache saved", zap.Int("entries", cached.Len()))
	}
	return cached, done, nil
}

func runCheck(
	ctx context.Context,
	logger *zap.Logger,
	stdout io.Writer,
	stdin io.Reader,
	engine analyzer.Engine,
	paths []string,
	opts checkOptions,
) error {
	var findings []analyzer.Finding
	for _, path := range paths {
		var (
			found []analyzer.Finding
			err   error
		)
		if path == stdinPath {
			found, err = analyzer.ProcessReader(ctx, engine, "<stdin>", stdin)
		} else {
			found, err = analyzer.ProcessPath(ctx, logger, engine, path, opts.Process, analyzer.ProcessFile)
		}
		if err != nil {
			logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			return errReported
		}
		findings = append(findings, found...)
	}

	if err := printFindings(stdout, findings, opts); err != nil {
		logger.Error("Error writing findings", zap.Error(err))
		return errReported
	}

	for _, f := range findings {
		if f.Failed() {
			return errReported
		}
	}
	return nil
}

func printFindings(stdout io.Writer, findings []analyzer.Finding, opts checkOptions) error {
	if !opts.JSON {
		return formatter.New(formatter.Options{Color: opts.Color}).WriteFindings(stdout, findings, opts.Verbose)
	}
	if findings == nil {
		findings = []analyzer.Finding{}
	}
	if opts.OutPath == "" {
		return formatter.WriteJSON(stdout, findings)
	}

	f, err := os.Create(opts.OutPath)
	if err != nil {
		return fmt.Errorf("error creating JSON output file: %w", err)
	}
	defer f.Close()
	return formatter.WriteJSON(f, findings)
}
