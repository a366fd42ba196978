package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/scover/internal/boolexpr"
)

func enumerateString(t *testing.T, expression string, opts Options) Enumeration {
	t.Helper()
	expr, err := boolexpr.Parse(expression)
	require.NoError(t, err)
	e, err := Enumerate(expr, boolexpr.ExtractVariables(expression), opts)
	require.NoError(t, err)
	return e
}

func TestEnumerate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		variables  []string
		rows       []Row
	}{
		{
			expression: "a and b",
			variables:  []string{"a", "b"},
			rows: []Row{
				{"F_", OutcomeFalse},
				{"TF", OutcomeFalse},
				{"TT", OutcomeTrue},
			},
		},
		{
			expression: "a or b",
			variables:  []string{"a", "b"},
			rows: []Row{
				{"FF", OutcomeFalse},
				{"FT", OutcomeTrue},
				{"T_", OutcomeTrue},
			},
		},
		{
			expression: "(a or b) and c",
			variables:  []string{"a", "b", "c"},
			rows: []Row{
				{"FF_", OutcomeFalse},
				{"FTF", OutcomeFalse},
				{"FTT", OutcomeTrue},
				{"T_F", OutcomeFalse},
				{"T_T", OutcomeTrue},
			},
		},
		{
			expression: "not a or (b and c)",
			variables:  []string{"a", "b", "c"},
			rows: []Row{
				{"F__", OutcomeTrue},
				{"TF_", OutcomeFalse},
				{"TTF", OutcomeFalse},
				{"TTT", OutcomeTrue},
			},
		},
		{
			expression: "(a and b) or (c and d)",
			variables:  []string{"a", "b", "c", "d"},
			rows: []Row{
				{"F_F_", OutcomeFalse},
				{"F_TF", OutcomeFalse},
				{"F_TT", OutcomeTrue},
				{"TFF_", OutcomeFalse},
				{"TFTF", OutcomeFalse},
				{"TFTT", OutcomeTrue},
				{"TT__", OutcomeTrue},
			},
		},
		{
			expression: "a or not a or c",
			variables:  []string{"a", "c"},
			rows: []Row{
				{"F_", OutcomeTrue},
				{"T_", OutcomeTrue},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			t.Parallel()
			e := enumerateString(t, tt.expression, Options{WithResult: true})
			assert.Equal(t, tt.variables, e.Variables)
			assert.Equal(t, tt.rows, e.Rows)
			assert.Equal(t, 1<<len(tt.variables), e.Evaluations)

			basic := enumerateString(t, tt.expression, Options{})
			assert.Equal(t, Patterns(tt.rows), Patterns(basic.Rows))
			for _, r := range basic.Rows {
				assert.Equal(t, OutcomeNone, r.Result)
			}
		})
	}
}

func TestEnumerateProperties(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"a",
		"not a",
		"a and b and c",
		"(((a or b) and c) or d) and e",
		"not (a and not b) or (c and (d or not a))",
		"a and not a",
		"(a or b) and (c or d) and (e or f)",
	}

	ev := boolexpr.NewEvaluator()
	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			t.Parallel()
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)
			vars := boolexpr.ExtractVariables(expression)

			e, err := Enumerate(expr, vars, Options{WithResult: true})
			require.NoError(t, err)
			require.NotEmpty(t, e.Rows)
			assert.Equal(t, 1<<len(vars), e.Evaluations)
			assert.LessOrEqual(t, len(e.Rows), 1<<len(vars))

			index := make(map[Pattern]Outcome, len(e.Rows))
			for _, r := range e.Rows {
				assert.NotContains(t, index, r.Pattern, "duplicate pattern")
				index[r.Pattern] = r.Result
			}

			for combo := 0; combo < 1<<len(vars); combo++ {
				a := Assign(vars, combo)
				result, reads, err := ev.Trace(expr, a)
				require.NoError(t, err)

				p := FromReads(vars, reads)
				for i, v := range vars {
					val, read := reads.Read(v)
					switch p.At(i) {
					case SymbolSkipped:
						assert.False(t, read)
					case SymbolTrue:
						assert.True(t, read)
						assert.True(t, val)
					case SymbolFalse:
						assert.True(t, read)
						assert.False(t, val)
					}
				}

				outcome, ok := index[p]
				require.True(t, ok, "pattern %s missing", p)
				assert.Equal(t, outcomeOf(result), outcome)
			}

			again, err := Enumerate(expr, vars, Options{WithResult: true})
			require.NoError(t, err)
			assert.Equal(t, e, again)
		})
	}
}

func TestEnumerateAbortsOnError(t *testing.T) {
	t.Parallel()

	// b reads fail once a is true, so no partial rows may come back
	expr := boolexpr.And(boolexpr.Var("a"), boolexpr.Var("b"))
	e, err := Enumerate(expr, []string{"a"}, Options{})
	assert.ErrorIs(t, err, boolexpr.ErrUnboundVariable)
	assert.Nil(t, e.Rows)
	assert.Zero(t, e.Evaluations)
}

func TestAssignOrder(t *testing.T) {
	t.Parallel()
	vars := []string{"a", "b"}

	assert.Equal(t, boolexpr.Assignment{"a": false, "b": false}, Assign(vars, 0))
	assert.Equal(t, boolexpr.Assignment{"a": false, "b": true}, Assign(vars, 1))
	assert.Equal(t, boolexpr.Assignment{"a": true, "b": false}, Assign(vars, 2))
	assert.Equal(t, boolexpr.Assignment{"a": true, "b": true}, Assign(vars, 3))
}

func TestSortIsBytewise(t *testing.T) {
	t.Parallel()
	rows := []Row{{Pattern: "_T"}, {Pattern: "T_"}, {Pattern: "F_"}, {Pattern: "TF"}}
	Sort(rows)
	assert.Equal(t, []Pattern{"F_", "TF", "T_", "_T"}, Patterns(rows))
}

func TestRowMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := Row{Pattern: "TF_", Result: OutcomeTrue}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"pattern":"TF_","cells":["T","F","_"],"result":"T"}`, string(data))

	data, err = Row{Pattern: "F_"}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"pattern":"F_","cells":["F","_"]}`, string(data))
}
