// Package pattern turns short-circuit traces into T/F/_ rows and enumerates
// the distinct rows of an expression.
package pattern

import (
	"encoding/json"
	"strings"
)

// Symbol describes how one variable behaved in one evaluation.
type Symbol byte

const (
	SymbolTrue    Symbol = 'T' // read and True
	SymbolFalse   Symbol = 'F' // read and False
	SymbolSkipped Symbol = '_' // never read
)

func (s Symbol) String() string { return string(rune(s)) }

// Pattern holds one Symbol per variable, in variable order. It is a string
// so patterns compare, hash and sort structurally.
type Pattern string

// Len returns the number of variables covered by p.
func (p Pattern) Len() int { return len(p) }

// At returns the symbol for the i'th variable.
func (p Pattern) At(i int) Symbol { return Symbol(p[i]) }

// Symbols returns p split into one string per variable.
func (p Pattern) Symbols() []string {
	cells := make([]string, len(p))
	for i := range len(p) {
		cells[i] = p.At(i).String()
	}
	return cells
}

// Outcome is the overall value of the expression for a row.
type Outcome string

const (
	OutcomeNone  Outcome = ""      // not computed (basic variant)
	OutcomeTrue  Outcome = "T"     // expression evaluated to True
	OutcomeFalse Outcome = "F"     // expression evaluated to False
	OutcomeError Outcome = "Error" // untraced evaluation failed
)

func outcomeOf(v bool) Outcome {
	if v {
		return OutcomeTrue
	}
	return OutcomeFalse
}

// Row is a Pattern plus, in the extended variant, the expression result.
type Row struct {
	Pattern Pattern
	Result  Outcome
}

func (r Row) String() string {
	if r.Result == OutcomeNone {
		return string(r.Pattern)
	}
	return string(r.Pattern) + " => " + string(r.Result)
}

type rowJSON struct {
	Pattern string   `json:"pattern"`
	Cells   []string `json:"cells"`
	Result  string   `json:"result,omitempty"`
}

// MarshalJSON renders the row with its cells spelled out.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(rowJSON{
		Pattern: string(r.Pattern),
		Cells:   r.Pattern.Symbols(),
		Result:  string(r.Result),
	})
}

// UnmarshalJSON accepts what MarshalJSON produces.
func (r *Row) UnmarshalJSON(data []byte) error {
	var raw rowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p := raw.Pattern
	if p == "" && len(raw.Cells) > 0 {
		p = strings.Join(raw.Cells, "")
	}
	r.Pattern = Pattern(p)
	r.Result = Outcome(raw.Result)
	return nil
}

// Patterns returns the patterns of rows, in order.
func Patterns(rows []Row) []Pattern {
	out := make([]Pattern, len(rows))
	for i, r := range rows {
		out[i] = r.Pattern
	}
	return out
}
