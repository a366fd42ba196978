// Package reach answers whether an expression can evaluate to True and
// whether it can evaluate to False, by encoding it as a circuit and handing
// it to a SAT solver.
package reach

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/gnoswap-labs/scover/internal/boolexpr"
)

// Class names the three ways an expression can behave overall.
type Class string

const (
	Tautology     Class = "tautology"
	Contradiction Class = "contradiction"
	Contingent    Class = "contingent"
)

// Reachability is the outcome of Check.
type Reachability struct {
	CanBeTrue  bool  `json:"can_be_true"`
	CanBeFalse bool  `json:"can_be_false"`
	Class      Class `json:"class"`
}

func classOf(canTrue, canFalse bool) Class {
	switch {
	case canTrue && !canFalse:
		return Tautology
	case canFalse && !canTrue:
		return Contradiction
	default:
		return Contingent
	}
}

type circuit struct {
	c    *logic.C
	lits map[string]z.Lit
}

func (b *circuit) build(expr boolexpr.Expr) (z.Lit, error) {
	switch e := expr.(type) {
	case boolexpr.LiteralExpr:
		if e.Val {
			return b.c.T, nil
		}
		return b.c.F, nil
	case boolexpr.VarExpr:
		lit, ok := b.lits[e.Name]
		if !ok {
			lit = b.c.Lit()
			b.lits[e.Name] = lit
		}
		return lit, nil
	case boolexpr.NotExpr:
		x, err := b.build(e.Operand)
		if err != nil {
			return z.LitNull, err
		}
		return x.Not(), nil
	case boolexpr.BinaryExpr:
		l, err := b.build(e.Left)
		if err != nil {
			return z.LitNull, err
		}
		r, err := b.build(e.Right)
		if err != nil {
			return z.LitNull, err
		}
		switch e.Op {
		case boolexpr.OpAnd:
			return b.c.And(l, r), nil
		case boolexpr.OpOr:
			return b.c.Or(l, r), nil
		}
		return z.LitNull, fmt.Errorf("reach: unknown operator %v", e.Op)
	default:
		return z.LitNull, fmt.Errorf("reach: unsupported node %T", expr)
	}
}

// Check classifies expr over all assignments of its variables.
func Check(expr boolexpr.Expr) (Reachability, error) {
	b := &circuit{c: logic.NewC(), lits: make(map[string]z.Lit)}
	root, err := b.build(expr)
	if err != nil {
		return Reachability{}, err
	}

	canTrue := satisfiable(b.c, root)
	canFalse := satisfiable(b.c, root.Not())
	return Reachability{
		CanBeTrue:  canTrue,
		CanBeFalse: canFalse,
		Class:      classOf(canTrue, canFalse),
	}, nil
}

// satisfiable reports whether goal can hold. Constant goals are answered
// directly since the constant variable is left unconstrained in the CNF.
func satisfiable(c *logic.C, goal z.Lit) bool {
	switch goal {
	case c.T:
		return true
	case c.F:
		return false
	}

	g := gini.New()
	c.ToCnf(g)
	g.Add(goal)
	g.Add(0)
	return g.Solve() == 1
}
