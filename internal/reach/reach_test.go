package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/scover/internal/boolexpr"
	"github.com/gnoswap-labs/scover/internal/pattern"
)

func TestCheck(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		want       Reachability
	}{
		{"a", Reachability{CanBeTrue: true, CanBeFalse: true, Class: Contingent}},
		{"a and b", Reachability{CanBeTrue: true, CanBeFalse: true, Class: Contingent}},
		{"a or not a", Reachability{CanBeTrue: true, CanBeFalse: false, Class: Tautology}},
		{"a and not a", Reachability{CanBeTrue: false, CanBeFalse: true, Class: Contradiction}},
		{"(a or b) and not (a or b)", Reachability{CanBeTrue: false, CanBeFalse: true, Class: Contradiction}},
		{"not (a and b) or (a and b)", Reachability{CanBeTrue: true, CanBeFalse: false, Class: Tautology}},
		{"True", Reachability{CanBeTrue: true, CanBeFalse: false, Class: Tautology}},
		{"False or a", Reachability{CanBeTrue: true, CanBeFalse: true, Class: Contingent}},
		{"a and False", Reachability{CanBeTrue: false, CanBeFalse: true, Class: Contradiction}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expression, func(t *testing.T) {
			t.Parallel()
			expr, err := boolexpr.Parse(tt.expression)
			require.NoError(t, err)

			got, err := Check(expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The solver must agree with brute force over the enumerated rows.
func TestCheckAgreesWithEnumeration(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"(a or b) and c",
		"(a and b) or (c and d)",
		"not a or (b and c)",
		"(((a or b) and c) or d) and e",
		"(a or not b) and (not a or b) and (a or b) and (not a or not b)",
		"a or not a or c",
	}

	for _, expression := range expressions {
		expression := expression
		t.Run(expression, func(t *testing.T) {
			t.Parallel()
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)
			e, err := pattern.Enumerate(expr, boolexpr.ExtractVariables(expression), pattern.Options{WithResult: true})
			require.NoError(t, err)

			var sawTrue, sawFalse bool
			for _, r := range e.Rows {
				sawTrue = sawTrue || r.Result == pattern.OutcomeTrue
				sawFalse = sawFalse || r.Result == pattern.OutcomeFalse
			}

			got, err := Check(expr)
			require.NoError(t, err)
			assert.Equal(t, sawTrue, got.CanBeTrue)
			assert.Equal(t, sawFalse, got.CanBeFalse)
		})
	}
}
