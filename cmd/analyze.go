package cmd

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/analyzer"
	"github.com/gnoswap-labs/scover/formatter"
)

var (
	analyzeJSON bool
	minimalOnly bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [expression]",
	Short: "Print the evaluation patterns and minimal test cases of an expression",
	Long: `Analyzes a boolean expression built from single-letter variables, 'and',
'or', 'not', parentheses and True/False. Words may be passed as separate
arguments: scover analyze a and not b`,
	RunE: func(cmd *cobra.Command, args []string) error {
		expression := analyzer.DefaultExpression
		if len(args) > 0 {
			expression = strings.Join(args, " ")
		}

		a := analyzer.New(config, logger)
		opts := analyzeOptions{JSON: analyzeJSON, MinimalOnly: minimalOnly, Color: useColor()}
		return runAnalyze(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, a, expression, opts)
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the result in JSON format")
	analyzeCmd.Flags().BoolVar(&minimalOnly, "minimal-only", false, "Print only the minimal test cases")
}

type analyzeOptions struct {
	JSON        bool
	MinimalOnly bool
	Color       bool
}

func runAnalyze(stdout, stderr io.Writer, logger *zap.Logger, engine analyzer.Engine, expression string, opts analyzeOptions) error {
	f := formatter.New(formatter.Options{Color: opts.Color, HideFull: opts.MinimalOnly})

	res, err := engine.Analyze(expression)
	if err != nil {
		logger.Debug("analysis failed", zap.String("expression", expression), zap.Error(err))
		if werr := f.WriteError(stderr, expression, err); werr != nil {
			return werr
		}
		return errReported
	}

	if opts.JSON {
		return formatter.WriteJSON(stdout, res)
	}
	return f.WriteResult(stdout, res)
}

// useColor honors the configuration and whether stdout is a terminal.
func useColor() bool {
	return config.Color && !color.NoColor
}
