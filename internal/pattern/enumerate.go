package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gnoswap-labs/scover/internal/boolexpr"
)

// ErrEvaluationMismatch means the traced and untraced evaluators disagreed
// on the result for the same assignment. It indicates a bug, not bad input.
var ErrEvaluationMismatch = errors.New("traced and untraced evaluation disagree")

// Options controls enumeration.
type Options struct {
	// WithResult attaches the overall result to every row.
	WithResult bool
}

// Enumeration is the deduplicated, sorted pattern set of an expression.
type Enumeration struct {
	Variables   []string
	Rows        []Row
	Evaluations int // number of traced evaluations performed
}

// Enumerate traces expr under every assignment of vars and collects the
// distinct patterns. Assignments are generated in binary counting order
// with the first variable as the most significant bit and false before
// true. Any evaluation error aborts the run.
func Enumerate(expr boolexpr.Expr, vars []string, opts Options) (Enumeration, error) {
	ev := boolexpr.NewEvaluator()
	n := len(vars)
	total := 1 << n

	seen := make(map[Pattern]Outcome, total)
	evaluations := 0

	for combo := 0; combo < total; combo++ {
		a := Assign(vars, combo)

		result, reads, err := ev.Trace(expr, a)
		if err != nil {
			return Enumeration{}, fmt.Errorf("assignment %s: %w", formatAssignment(vars, a), err)
		}
		evaluations++

		p := FromReads(vars, reads)
		outcome := OutcomeNone
		if opts.WithResult {
			outcome, err = classify(ev, expr, a, result)
			if err != nil {
				return Enumeration{}, fmt.Errorf("assignment %s: %w", formatAssignment(vars, a), err)
			}
		}

		if prev, ok := seen[p]; ok && prev != outcome {
			return Enumeration{}, fmt.Errorf("pattern %s: %w", p, ErrEvaluationMismatch)
		}
		seen[p] = outcome
	}

	rows := make([]Row, 0, len(seen))
	for p, outcome := range seen {
		rows = append(rows, Row{Pattern: p, Result: outcome})
	}
	Sort(rows)

	return Enumeration{
		Variables:   vars,
		Rows:        rows,
		Evaluations: evaluations,
	}, nil
}

// classify runs the untraced evaluator and checks it against the result of
// the traced one.
func classify(ev *boolexpr.Evaluator, expr boolexpr.Expr, a boolexpr.Assignment, traced bool) (Outcome, error) {
	plain, err := ev.Eval(expr, a)
	if err != nil {
		return OutcomeError, nil
	}
	if plain != traced {
		return OutcomeError, ErrEvaluationMismatch
	}
	return outcomeOf(plain), nil
}

// Assign builds the assignment for the combo'th step of the enumeration.
func Assign(vars []string, combo int) boolexpr.Assignment {
	n := len(vars)
	a := make(boolexpr.Assignment, n)
	for i, v := range vars {
		a[v] = combo&(1<<(n-1-i)) != 0
	}
	return a
}

// FromReads derives the pattern of a trace.
func FromReads(vars []string, reads boolexpr.Reads) Pattern {
	var b strings.Builder
	b.Grow(len(vars))
	for _, v := range vars {
		val, ok := reads.Read(v)
		switch {
		case !ok:
			b.WriteByte(byte(SymbolSkipped))
		case val:
			b.WriteByte(byte(SymbolTrue))
		default:
			b.WriteByte(byte(SymbolFalse))
		}
	}
	return Pattern(b.String())
}

// Sort orders rows by plain byte-wise comparison of their symbols.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Pattern != rows[j].Pattern {
			return rows[i].Pattern < rows[j].Pattern
		}
		return rows[i].Result < rows[j].Result
	})
}

func formatAssignment(vars []string, a boolexpr.Assignment) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = fmt.Sprintf("%s=%t", v, a[v])
	}
	return strings.Join(parts, ",")
}
