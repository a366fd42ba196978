package boolexpr

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnboundVariable is returned when evaluation reads a variable that has
// no value in the assignment.
var ErrUnboundVariable = errors.New("unbound variable")

// Assignment maps every variable to its truth value.
type Assignment map[string]bool

// Reads records the variables inspected during a traced evaluation and the
// value each one held. Variables inside a skipped operand never appear.
type Reads map[string]bool

// Read reports whether name was inspected and, if so, its value.
func (r Reads) Read(name string) (value, ok bool) {
	value, ok = r[name]
	return value, ok
}

// Names returns the read variable names, sorted.
func (r Reads) Names() []string {
	return sortedKeys(r)
}

// Evaluator evaluates expression trees against an assignment.
type Evaluator struct{}

// NewEvaluator creates a new evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Trace evaluates expr with short-circuit order and returns the overall
// result together with every variable read on the way.
func (ev *Evaluator) Trace(expr Expr, a Assignment) (bool, Reads, error) {
	reads := make(Reads)
	result, err := ev.trace(expr, a, reads)
	if err != nil {
		return false, nil, err
	}
	return result, reads, nil
}

func (ev *Evaluator) trace(expr Expr, a Assignment, reads Reads) (bool, error) {
	switch e := expr.(type) {
	case LiteralExpr:
		return e.Val, nil

	case VarExpr:
		val, ok := a[e.Name]
		if !ok {
			return false, fmt.Errorf("%w %q", ErrUnboundVariable, e.Name)
		}
		reads[e.Name] = val
		return val, nil

	case NotExpr:
		val, err := ev.trace(e.Operand, a, reads)
		if err != nil {
			return false, err
		}
		return !val, nil

	case BinaryExpr:
		left, err := ev.trace(e.Left, a, reads)
		if err != nil {
			return false, err
		}
		switch e.Op {
		case OpAnd:
			if !left {
				return false, nil
			}
		case OpOr:
			if left {
				return true, nil
			}
		default:
			return false, fmt.Errorf("unknown operator %v", e.Op)
		}
		return ev.trace(e.Right, a, reads)

	default:
		return false, fmt.Errorf("unsupported expression %T", expr)
	}
}

// Eval evaluates expr without recording reads. It is kept separate from
// Trace so the two can be checked against each other.
func (ev *Evaluator) Eval(expr Expr, a Assignment) (bool, error) {
	switch e := expr.(type) {
	case LiteralExpr:
		return e.Val, nil

	case VarExpr:
		val, ok := a[e.Name]
		if !ok {
			return false, fmt.Errorf("%w %q", ErrUnboundVariable, e.Name)
		}
		return val, nil

	case NotExpr:
		val, err := ev.Eval(e.Operand, a)
		return !val, err

	case BinaryExpr:
		left, err := ev.Eval(e.Left, a)
		if err != nil {
			return false, err
		}
		right, err := ev.Eval(e.Right, a)
		if err != nil {
			return false, err
		}
		switch e.Op {
		case OpAnd:
			return left && right, nil
		case OpOr:
			return left || right, nil
		}
		return false, fmt.Errorf("unknown operator %v", e.Op)

	default:
		return false, fmt.Errorf("unsupported expression %T", expr)
	}
}

// TraceString parses expression and traces it under a.
func TraceString(expression string, a Assignment) (bool, Reads, error) {
	expr, err := Parse(expression)
	if err != nil {
		return false, nil, err
	}
	return NewEvaluator().Trace(expr, a)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
