package selector

import (
	"github.com/gnoswap-labs/scover/internal/pattern"
)

// Coverage tracks which goals the selected rows reach: a True and a False
// read for every variable, and in the extended variant each result value.
type Coverage struct {
	Variables []string
	True      []bool // True[i]: some selected row reads Variables[i] as T
	False     []bool // False[i]: some selected row reads Variables[i] as F

	ResultTrue  bool
	ResultFalse bool
	withResult  bool
}

func newCoverage(vars []string, withResult bool) *Coverage {
	return &Coverage{
		Variables:  vars,
		True:       make([]bool, len(vars)),
		False:      make([]bool, len(vars)),
		withResult: withResult,
	}
}

// gain reports whether r would mark at least one uncovered goal.
func (c *Coverage) gain(r pattern.Row) bool {
	for i := range c.Variables {
		if i >= r.Pattern.Len() {
			break
		}
		switch r.Pattern.At(i) {
		case pattern.SymbolTrue:
			if !c.True[i] {
				return true
			}
		case pattern.SymbolFalse:
			if !c.False[i] {
				return true
			}
		}
	}
	return c.resultGain(r)
}

func (c *Coverage) resultGain(r pattern.Row) bool {
	if !c.withResult {
		return false
	}
	return (r.Result == pattern.OutcomeTrue && !c.ResultTrue) ||
		(r.Result == pattern.OutcomeFalse && !c.ResultFalse)
}

func (c *Coverage) mark(r pattern.Row) {
	for i := range c.Variables {
		if i >= r.Pattern.Len() {
			break
		}
		switch r.Pattern.At(i) {
		case pattern.SymbolTrue:
			c.True[i] = true
		case pattern.SymbolFalse:
			c.False[i] = true
		}
	}
	if !c.withResult {
		return
	}
	switch r.Result {
	case pattern.OutcomeTrue:
		c.ResultTrue = true
	case pattern.OutcomeFalse:
		c.ResultFalse = true
	}
}

// Complete reports whether every goal is covered.
func (c *Coverage) Complete() bool {
	return len(c.Missing()) == 0
}

// Missing lists uncovered goals as "a=T", "b=F", "result=T", ...
func (c *Coverage) Missing() []string {
	var missing []string
	for i, v := range c.Variables {
		if !c.True[i] {
			missing = append(missing, v+"=T")
		}
		if !c.False[i] {
			missing = append(missing, v+"=F")
		}
	}
	if c.withResult {
		if !c.ResultTrue {
			missing = append(missing, "result=T")
		}
		if !c.ResultFalse {
			missing = append(missing, "result=F")
		}
	}
	return missing
}

// Reachable computes the coverage of all rows, which is the best any
// selection from them can do.
func Reachable(rows []pattern.Row, vars []string, withResult bool) *Coverage {
	c := newCoverage(vars, withResult)
	for _, r := range rows {
		c.mark(r)
	}
	return c
}
