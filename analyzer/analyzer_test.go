package analyzer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/scover/internal/boolexpr"
	"github.com/gnoswap-labs/scover/internal/pattern"
	"github.com/gnoswap-labs/scover/internal/reach"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		variables  []string
		full       []pattern.Pattern
		minimal    []pattern.Pattern
	}{
		{
			expression: "a and b",
			variables:  []string{"a", "b"},
			full:       []pattern.Pattern{"F_", "TF", "TT"},
			minimal:    []pattern.Pattern{"F_", "TF", "TT"},
		},
		{
			expression: "(a or b) and c",
			variables:  []string{"a", "b", "c"},
			full:       []pattern.Pattern{"FF_", "FTF", "FTT", "T_F", "T_T"},
			minimal:    []pattern.Pattern{"FF_", "FTF", "FTT", "T_F"},
		},
		{
			expression: "(a and b) or (c and d)",
			variables:  []string{"a", "b", "c", "d"},
			full:       []pattern.Pattern{"F_F_", "F_TF", "F_TT", "TFF_", "TFTF", "TFTT", "TT__"},
			minimal:    []pattern.Pattern{"F_F_", "F_TF", "F_TT", "TFF_", "TT__"},
		},
		{
			expression: "  not a or (b and c)  ",
			variables:  []string{"a", "b", "c"},
			full:       []pattern.Pattern{"F__", "TF_", "TTF", "TTT"},
			minimal:    []pattern.Pattern{"F__", "TF_", "TTF", "TTT"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expression, func(t *testing.T) {
			t.Parallel()
			res, err := Analyze(tt.expression)
			require.NoError(t, err)

			assert.Equal(t, tt.variables, res.Variables)
			assert.Equal(t, tt.full, pattern.Patterns(res.Full))
			assert.Equal(t, tt.minimal, pattern.Patterns(res.Minimal))
			assert.Equal(t, VariantBasic, res.Variant)
			assert.Equal(t, 1<<len(tt.variables), res.Evaluations)
			assert.Equal(t, len(tt.variables)+1, res.Target)
			assert.Empty(t, res.Missing)
			for _, r := range res.Full {
				assert.Equal(t, pattern.OutcomeNone, r.Result)
			}
		})
	}
}

func TestAnalyzeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expression string
		want       error
	}{
		{"", ErrNoVariables},
		{"   ", ErrNoVariables},
		{"True", ErrNoVariables},
		{"True and", ErrNoVariables},
		{"and or not", ErrNoVariables},
		{"a and", ErrInvalidExpression},
		{"(a or b", ErrInvalidExpression},
		{"a or b)", ErrInvalidExpression},
		{"a && b", ErrInvalidExpression},
		{"a and foo", ErrInvalidExpression},
		{"a b", ErrInvalidExpression},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expression, func(t *testing.T) {
			t.Parallel()
			res, err := Analyze(tt.expression)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalyzeSyntaxErrorIsWrapped(t *testing.T) {
	t.Parallel()
	_, err := Analyze("(a or b")
	require.Error(t, err)

	var syntaxErr *boolexpr.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Contains(t, err.Error(), "invalid expression")
}

func TestAnalyzeTooManyVariables(t *testing.T) {
	t.Parallel()
	a := New(Config{MaxVariables: 2}, nil)

	_, err := a.Analyze("a and b and c")
	assert.ErrorIs(t, err, ErrTooManyVariables)

	_, err = a.Analyze("a and b")
	assert.NoError(t, err)
}

func TestAnalyzeExtended(t *testing.T) {
	t.Parallel()
	a := New(Config{Variant: VariantExtended}, nil)

	res, err := a.Analyze("(a or b) and c")
	require.NoError(t, err)
	assert.Equal(t, VariantExtended, res.Variant)
	assert.Equal(t, []pattern.Row{
		{Pattern: "FF_", Result: pattern.OutcomeFalse},
		{Pattern: "FTF", Result: pattern.OutcomeFalse},
		{Pattern: "FTT", Result: pattern.OutcomeTrue},
		{Pattern: "T_F", Result: pattern.OutcomeFalse},
	}, res.Minimal)
	assert.Equal(t, reach.Contingent, res.Reach.Class)

	res, err = a.Analyze("a or not a or c")
	require.NoError(t, err)
	assert.Len(t, res.Minimal, 2)
	assert.Equal(t, []string{"c=T", "c=F", "result=F"}, res.Missing)
	assert.Equal(t, reach.Tautology, res.Reach.Class)
}

func TestAnalyzeVariantOverride(t *testing.T) {
	t.Parallel()
	a := New(DefaultConfig(), nil)

	res, err := a.AnalyzeVariant("a and b", VariantExtended)
	require.NoError(t, err)
	assert.Equal(t, pattern.OutcomeTrue, res.Full[2].Result)

	_, err = a.AnalyzeVariant("a and b", Variant("fancy"))
	assert.Error(t, err)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	t.Parallel()
	first, err := Analyze("(((a or b) and c) or d) and e")
	require.NoError(t, err)
	second, err := Analyze("(((a or b) and c) or d) and e")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResultJSON(t *testing.T) {
	t.Parallel()
	res, err := New(Config{Variant: VariantExtended}, nil).Analyze("a and b")
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "a and b", decoded["expression"])
	assert.Equal(t, "extended", decoded["variant"])
	assert.Equal(t, []any{"a", "b"}, decoded["variables"])
	assert.Len(t, decoded["full"], 3)
	assert.Equal(t, map[string]any{
		"can_be_true":  true,
		"can_be_false": true,
		"class":        "contingent",
	}, decoded["reachability"])
	assert.NotContains(t, decoded, "missing")
}
