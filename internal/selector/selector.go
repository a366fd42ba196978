// Package selector picks a small set of test cases out of the full pattern
// table of an expression.
package selector

import (
	"sort"

	"github.com/gnoswap-labs/scover/internal/pattern"
)

// Selection is the outcome of a selection run.
type Selection struct {
	Rows     []pattern.Row
	Indices  []int // positions of Rows in the input, ascending
	Padded   []int // input positions added only to reach the target size
	Coverage *Coverage
}

// Target returns the intended selection size for n variables.
func Target(n int) int { return n + 1 }

// Select is the basic variant: it covers every variable's T and F reads.
//
// The coverage pass scans rows in order without removing anything from the
// input; padding then takes unselected rows from the front of the input.
func Select(rows []pattern.Row, vars []string) Selection {
	target := Target(len(vars))
	cov := newCoverage(vars, false)
	chosen := make(map[int]bool, target)

	for i, r := range rows {
		if len(chosen) >= target {
			break
		}
		if cov.gain(r) {
			cov.mark(r)
			chosen[i] = true
		}
	}

	var padded []int
	for i := range rows {
		if len(chosen) >= target {
			break
		}
		if !chosen[i] {
			cov.mark(rows[i])
			chosen[i] = true
			padded = append(padded, i)
		}
	}

	return build(rows, chosen, padded, cov)
}

// SelectWithResult is the extended variant: besides variable reads it also
// covers each overall result value that occurs in rows.
//
// Chosen rows are removed from a candidate pool. When padding is needed,
// rows covering an outstanding result value are taken before the rest of
// the pool in input order.
func SelectWithResult(rows []pattern.Row, vars []string) Selection {
	target := Target(len(vars))
	cov := newCoverage(vars, true)
	chosen := make(map[int]bool, target)

	var pool []int
	for i, r := range rows {
		if len(chosen) < target && cov.gain(r) {
			cov.mark(r)
			chosen[i] = true
			continue
		}
		pool = append(pool, i)
	}

	var padded []int
	take := func(k int) {
		i := pool[k]
		cov.mark(rows[i])
		chosen[i] = true
		padded = append(padded, i)
		pool = append(pool[:k], pool[k+1:]...)
	}

	for k := 0; k < len(pool) && len(chosen) < target; {
		if cov.resultGain(rows[pool[k]]) {
			take(k)
			continue
		}
		k++
	}
	for len(pool) > 0 && len(chosen) < target {
		take(0)
	}

	return build(rows, chosen, padded, cov)
}

func build(rows []pattern.Row, chosen map[int]bool, padded []int, cov *Coverage) Selection {
	indices := make([]int, 0, len(chosen))
	for i := range chosen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	sort.Ints(padded)

	out := make([]pattern.Row, len(indices))
	for k, i := range indices {
		out[k] = rows[i]
	}
	return Selection{
		Rows:     out,
		Indices:  indices,
		Padded:   padded,
		Coverage: cov,
	}
}
