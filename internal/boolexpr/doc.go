/*
Package boolexpr provides a lexer, parser and short-circuit evaluator for
small boolean expressions built from single-letter variables.

# Grammar

	expr    = orExpr .
	orExpr  = andExpr { "or" andExpr } .
	andExpr = notExpr { "and" notExpr } .
	notExpr = "not" notExpr | primary .
	primary = variable | "True" | "False" | "(" expr ")" .

A variable is a single ASCII letter. `not` binds tighter than `and`, which
binds tighter than `or`; both binary operators are left-associative.

# Evaluation

The Evaluator walks the tree left to right. For `and` the right operand is
only visited when the left one is True, for `or` only when the left one is
False. Trace records every variable leaf that was visited together with the
value it held, which is what the pattern enumerator turns into T/F/_ rows.

	e, err := boolexpr.Parse("not a or (b and c)")
	if err != nil {
		// *SyntaxError
	}

	ev := boolexpr.NewEvaluator()
	result, reads, err := ev.Trace(e, boolexpr.Assignment{"a": true, "b": false, "c": true})
	// result == false, reads == {"a": true, "b": false}
*/
package boolexpr
