package boolexpr

// Expr represents a node of a boolean expression tree.
type Expr interface {
	isExpr()
	String() string
}

// LiteralExpr represents the constants True and False.
type LiteralExpr struct {
	Val bool
}

func (LiteralExpr) isExpr() {}
func (e LiteralExpr) String() string {
	if e.Val {
		return "True"
	}
	return "False"
}

// VarExpr represents a variable reference.
type VarExpr struct {
	Name string
}

func (VarExpr) isExpr() {}
func (e VarExpr) String() string {
	return e.Name
}

// BinaryOp represents binary operators.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "?"
	}
}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}
func (e BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// NotExpr represents a logical negation.
type NotExpr struct {
	Operand Expr
}

func (NotExpr) isExpr() {}
func (e NotExpr) String() string {
	return "(not " + e.Operand.String() + ")"
}

// Helper functions to construct AST nodes

// BoolLit creates a boolean literal expression.
func BoolLit(v bool) Expr {
	return LiteralExpr{Val: v}
}

// Var creates a variable reference expression.
func Var(name string) Expr {
	return VarExpr{Name: name}
}

// Not creates a logical not expression.
func Not(e Expr) Expr {
	return NotExpr{Operand: e}
}

// And creates a logical and expression.
func And(left, right Expr) Expr {
	return BinaryExpr{Op: OpAnd, Left: left, Right: right}
}

// Or creates a logical or expression.
func Or(left, right Expr) Expr {
	return BinaryExpr{Op: OpOr, Left: left, Right: right}
}

// Variables returns the distinct variable names referenced by e, sorted.
func Variables(e Expr) []string {
	seen := make(map[string]bool)
	collectVars(e, seen)
	return sortedKeys(seen)
}

func collectVars(expr Expr, seen map[string]bool) {
	switch e := expr.(type) {
	case VarExpr:
		seen[e.Name] = true
	case NotExpr:
		collectVars(e.Operand, seen)
	case BinaryExpr:
		collectVars(e.Left, seen)
		collectVars(e.Right, seen)
	}
}
