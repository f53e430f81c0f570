/*
Package game
File: army.go
Description:
    An Army is the compact force representation used everywhere outside a
    running battle: a mission's dispatched fleet, a planet's standing
    forces, and the simulator's survivor output.

    Invariant: entries with a zero or negative count are semantically
    absent and are never stored. Because Go map iteration order is
    random, any code that walks an Army goes through Kinds(), which
    returns kinds in canonical order; the simulation depends on this
    for seed reproducibility.
*/

package game

import "sort"

// Army maps unit kind -> count.
type Army map[UnitKind]int

// Amount returns the count for a kind, 0 if absent.
func (a Army) Amount(k UnitKind) int {
	return a[k]
}

// Add increases the count for a kind, dropping the entry when the
// result is not positive.
func (a Army) Add(k UnitKind, n int) {
	c := a[k] + n
	if c > 0 {
		a[k] = c
	} else {
		delete(a, k)
	}
}

// Remove decreases the count for a kind (see Add).
func (a Army) Remove(k UnitKind, n int) {
	a.Add(k, -n)
}

// Merge sums the counts of another army into this one.
func (a Army) Merge(other Army) {
	for _, k := range other.Kinds() {
		a.Add(k, other[k])
	}
}

// Filter returns a new Army containing only the entries whose kind
// satisfies the predicate.
func (a Army) Filter(keep func(UnitKind) bool) Army {
	out := Army{}
	for _, k := range a.Kinds() {
		if keep(k) {
			out[k] = a[k]
		}
	}
	return out
}

// Clone returns an independent copy.
func (a Army) Clone() Army {
	out := make(Army, len(a))
	for k, c := range a {
		if c > 0 {
			out[k] = c
		}
	}
	return out
}

// Total returns the number of individual units in the army.
func (a Army) Total() int {
	n := 0
	for k, c := range a {
		if c > 0 && k != 0 {
			n += c
		}
	}
	return n
}

// Kinds returns the kinds present (count > 0) in canonical order.
func (a Army) Kinds() []UnitKind {
	kinds := make([]UnitKind, 0, len(a))
	for k, c := range a {
		if c > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ArmyFromCounts converts a string-keyed count map (as found in YAML
// scenarios and JSON requests) into an Army. Unknown keys are rejected.
func ArmyFromCounts(counts map[string]int) (Army, error) {
	out := Army{}
	for key, c := range counts {
		k, err := ParseUnitKind(key)
		if err != nil {
			return nil, err
		}
		if c > 0 {
			out[k] = c
		}
	}
	return out, nil
}
