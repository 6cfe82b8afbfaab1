// Package lotto implements the Lotto 6/45 core: random combination
// generation, vendor QR ticket decoding, and prize tier evaluation.
package lotto

import (
	"fmt"
	"sort"
)

const (
	// MinNumber and MaxNumber bound the universe of drawable numbers.
	MinNumber = 1
	MaxNumber = 45

	// CombinationSize is the number of distinct values in one combination.
	CombinationSize = 6

	// MaxCombinations is the maximum number of combinations on one ticket.
	MaxCombinations = 5
)

// Labels is the fixed combination label alphabet. Labels are assigned
// positionally in generation or parse order.
var Labels = []string{"A", "B", "C", "D", "E"}

// NumberSet is a combination of exactly six distinct numbers in
// [MinNumber, MaxNumber], sorted ascending. Treat it as immutable once
// created.
type NumberSet []int

// NewNumberSet validates and canonicalizes the given numbers into a
// NumberSet. The input slice is not modified.
func NewNumberSet(numbers []int) (NumberSet, error) {
	if len(numbers) != CombinationSize {
		return nil, fmt.Errorf("expected %d numbers, got %d", CombinationSize, len(numbers))
	}

	set := make(NumberSet, len(numbers))
	copy(set, numbers)
	sort.Ints(set)

	for i, n := range set {
		if n < MinNumber || n > MaxNumber {
			return nil, fmt.Errorf("number %d is out of range [%d, %d]", n, MinNumber, MaxNumber)
		}

		if i > 0 && set[i-1] == n {
			return nil, fmt.Errorf("number %d is duplicated", n)
		}
	}

	return set, nil
}

// Contains reports whether n is a member of the set.
func (s NumberSet) Contains(n int) bool {
	for _, m := range s {
		if m == n {
			return true
		}
	}

	return false
}

// Combination is one labeled NumberSet within a ticket bundle.
type Combination struct {
	Label   string
	Numbers NumberSet
}

// TicketBundle is an ordered list of labeled combinations. The order is
// meaningful: labels are assigned by position, not chosen by the caller.
type TicketBundle []Combination

// Get returns the combination with the given label.
func (b TicketBundle) Get(label string) (NumberSet, bool) {
	for _, c := range b {
		if c.Label == label {
			return c.Numbers, true
		}
	}

	return nil, false
}

// UnionNumbers returns the set of all numbers appearing in any
// combination of the bundle.
func UnionNumbers(bundle TicketBundle) map[int]bool {
	union := map[int]bool{}
	for _, c := range bundle {
		for _, n := range c.Numbers {
			union[n] = true
		}
	}

	return union
}
