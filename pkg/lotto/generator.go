package lotto

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// ErrInsufficientPool is returned when fewer than CombinationSize numbers
// remain in the universe after exclusions.
var ErrInsufficientPool = errors.New("not enough numbers remain to draw a combination")

// Generator draws random combinations from the [MinNumber, MaxNumber]
// universe. The random source is injected so tests can make outputs
// reproducible; a Generator is not safe for concurrent use unless its
// source is.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by the given source. A nil
// source falls back to a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{rng: rng}
}

// Generate draws count combinations of six distinct numbers each, taken
// uniformly without replacement from the universe minus exclude. Numbers
// may repeat across combinations; uniqueness is only guaranteed within
// one. Labels are assigned in generation order.
func (g *Generator) Generate(count int, exclude map[int]bool) (TicketBundle, error) {
	if count < 1 || count > MaxCombinations {
		return nil, fmt.Errorf("combination count %d is out of range [1, %d]", count, MaxCombinations)
	}

	var pool []int
	for n := MinNumber; n <= MaxNumber; n++ {
		if !exclude[n] {
			pool = append(pool, n)
		}
	}

	if len(pool) < CombinationSize {
		return nil, ErrInsufficientPool
	}

	bundle := make(TicketBundle, 0, count)
	for i := 0; i < count; i++ {
		numbers := make(NumberSet, CombinationSize)
		for j, k := range g.rng.Perm(len(pool))[:CombinationSize] {
			numbers[j] = pool[k]
		}
		sort.Ints(numbers)

		bundle = append(bundle, Combination{Label: Labels[i], Numbers: numbers})
	}

	return bundle, nil
}

// Recommend draws count fresh combinations avoiding every number in
// excluded. It is the exclusion-based recommendation entry point; the
// excluded set is typically UnionNumbers of a decoded ticket.
func (g *Generator) Recommend(excluded map[int]bool, count int) (TicketBundle, error) {
	return g.Generate(count, excluded)
}
