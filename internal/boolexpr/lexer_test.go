package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Token
		wantErr  bool
	}{
		{
			name:  "single variable",
			input: "a",
			expected: []Token{
				{Type: TokenIdent, Value: "a", Position: 0},
				{Type: TokenEOF, Value: "", Position: 1},
			},
		},
		{
			name:  "operators and grouping",
			input: "a and (b)",
			expected: []Token{
				{Type: TokenIdent, Value: "a", Position: 0},
				{Type: TokenAnd, Value: "and", Position: 2},
				{Type: TokenLParen, Value: "(", Position: 6},
				{Type: TokenIdent, Value: "b", Position: 7},
				{Type: TokenRParen, Value: ")", Position: 8},
				{Type: TokenEOF, Value: "", Position: 9},
			},
		},
		{
			name:  "not and literals",
			input: "not True or\tFalse",
			expected: []Token{
				{Type: TokenNot, Value: "not", Position: 0},
				{Type: TokenTrue, Value: "True", Position: 4},
				{Type: TokenOr, Value: "or", Position: 9},
				{Type: TokenFalse, Value: "False", Position: 12},
				{Type: TokenEOF, Value: "", Position: 17},
			},
		},
		{
			name:  "uppercase variable",
			input: "(A)",
			expected: []Token{
				{Type: TokenLParen, Value: "(", Position: 0},
				{Type: TokenIdent, Value: "A", Position: 1},
				{Type: TokenRParen, Value: ")", Position: 2},
				{Type: TokenEOF, Value: "", Position: 3},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []Token{{Type: TokenEOF, Value: "", Position: 0}},
		},
		{name: "c-style operator", input: "a && b", wantErr: true},
		{name: "multi-letter identifier", input: "ab or c", wantErr: true},
		{name: "identifier with digit", input: "a1", wantErr: true},
		{name: "lowercase literal", input: "a or true", wantErr: true},
		{name: "number", input: "1 and a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Lex(tt.input)
			if tt.wantErr {
				var syntaxErr *SyntaxError
				require.ErrorAs(t, err, &syntaxErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLexErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := Lex("a & b")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 2, syntaxErr.Pos)
	assert.Equal(t, "col 3: unexpected character '&'", syntaxErr.Error())
}

func TestLexWhitespace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ascii spaces", "a\tand\r\n\v\fb", false},
		{"next line byte", "a and\x85b", true},
		{"no-break space byte", "a and\xa0b", true},
		{"utf-8 no-break space", "a and\u00a0b", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens, err := Lex(tt.input)
			if tt.wantErr {
				var syntaxErr *SyntaxError
				assert.ErrorAs(t, err, &syntaxErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, tokens, 4)
		})
	}
}
