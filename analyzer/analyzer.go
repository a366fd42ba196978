// Package analyzer runs the short-circuit coverage analysis of a boolean
// expression: it extracts the variables, parses the expression, enumerates
// every assignment, and selects a minimal set of test cases.
package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/internal/boolexpr"
	"github.com/gnoswap-labs/scover/internal/pattern"
	"github.com/gnoswap-labs/scover/internal/reach"
	"github.com/gnoswap-labs/scover/internal/selector"
)

// DefaultExpression is analyzed when no expression is given.
const DefaultExpression = "(((a or b) and c) or d) and e"

var (
	// ErrNoVariables means the expression holds no single-letter variable.
	ErrNoVariables = errors.New("no variables found")
	// ErrInvalidExpression wraps any syntax or evaluation failure.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrTooManyVariables means the expression exceeds Config.MaxVariables.
	ErrTooManyVariables = errors.New("too many variables")
)

// Result is the outcome of analyzing one expression.
type Result struct {
	Expression  string             `json:"expression"`
	Variant     Variant            `json:"variant"`
	Variables   []string           `json:"variables"`
	Full        []pattern.Row      `json:"full"`
	Minimal     []pattern.Row      `json:"minimal"`
	Indices     []int              `json:"minimal_indices"` // positions of Minimal in Full
	Target      int                `json:"target"`
	Padded      []int              `json:"padded,omitempty"` // indices into Full
	Evaluations int                `json:"evaluations"`
	Missing     []string           `json:"missing,omitempty"`
	Reach       reach.Reachability `json:"reachability"`
}

// Analyzer analyzes expressions with a fixed configuration.
type Analyzer struct {
	config Config
	logger *zap.Logger
}

// New creates an Analyzer. A nil logger disables logging.
func New(config Config, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxVariables <= 0 {
		config.MaxVariables = DefaultMaxVariables
	}
	if config.Variant == "" {
		config.Variant = VariantBasic
	}
	return &Analyzer{config: config, logger: logger}
}

// Config returns the configuration the analyzer runs with.
func (a *Analyzer) Config() Config { return a.config }

// Analyze analyzes expression with the analyzer's variant.
func (a *Analyzer) Analyze(expression string) (*Result, error) {
	return a.AnalyzeVariant(expression, a.config.Variant)
}

// AnalyzeVariant analyzes expression with the given variant, overriding
// the configured one.
func (a *Analyzer) AnalyzeVariant(expression string, variant Variant) (*Result, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	vars := boolexpr.ExtractVariables(expression)
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	if err := a.checkLimit(vars); err != nil {
		return nil, err
	}

	expr, err := boolexpr.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	extended := variant == VariantExtended
	enum, err := pattern.Enumerate(expr, vars, pattern.Options{WithResult: extended})
	if err != nil {
		if errors.Is(err, boolexpr.ErrUnboundVariable) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
		}
		return nil, fmt.Errorf("enumerate %q: %w", expression, err)
	}

	var sel selector.Selection
	if extended {
		sel = selector.SelectWithResult(enum.Rows, vars)
	} else {
		sel = selector.Select(enum.Rows, vars)
	}

	rc, err := reach.Check(expr)
	if err != nil {
		return nil, fmt.Errorf("reachability of %q: %w", expression, err)
	}

	a.logger.Debug("analyzed expression",
		zap.String("expression", expression),
		zap.String("variant", string(variant)),
		zap.Int("variables", len(vars)),
		zap.Int("patterns", len(enum.Rows)),
		zap.Int("minimal", len(sel.Rows)),
	)

	return &Result{
		Expression:  strings.TrimSpace(expression),
		Variant:     variant,
		Variables:   vars,
		Full:        enum.Rows,
		Minimal:     sel.Rows,
		Indices:     sel.Indices,
		Target:      selector.Target(len(vars)),
		Padded:      sel.Padded,
		Evaluations: enum.Evaluations,
		Missing:     sel.Coverage.Missing(),
		Reach:       rc,
	}, nil
}

// Analyze analyzes expression with the default configuration.
func Analyze(expression string) (*Result, error) {
	return New(DefaultConfig(), nil).Analyze(expression)
}

func (a *Analyzer) checkLimit(vars []string) error {
	if len(vars) > a.config.MaxVariables {
		return fmt.Errorf("%w: %d variables, limit is %d", ErrTooManyVariables, len(vars), a.config.MaxVariables)
	}
	return nil
}
