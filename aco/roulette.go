package aco

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// wheel is a reusable roulette-wheel sampler. The prefix-sum buffer grows
// once to the largest candidate set and is reused for every draw of an ant.
type wheel struct {
	cum []float64
}

// pick draws an index in [0, len(weights)) with probability proportional to
// weights[k], using prefix sums and a binary search.
//
// All-zero weights fall back to a uniform draw, or fail with ErrZeroWeights
// when strict is set. Negative or non-finite weights fail with ErrNegativeWeight;
// finite weights whose sum overflows fail with ErrPheromoneOverflow.
// Zero-weight entries are never selected while any weight is positive.
//
// Complexity: O(k) prefix build + O(log k) search.
func (w *wheel) pick(weights []float64, rng *rand.Rand, strict bool) (int, error) {
	var k = len(weights)
	if k == 0 {
		return 0, fmt.Errorf("wheel.pick: no candidates: %w", ErrRouteShape)
	}
	if cap(w.cum) < k {
		w.cum = make([]float64, k)
	}
	w.cum = w.cum[:k]

	var (
		total float64
		i     int
		x     float64
	)
	for i = 0; i < k; i++ {
		x = weights[i]
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("wheel.pick: weight[%d]=%g: %w", i, x, ErrNegativeWeight)
		}
		total += x
		w.cum[i] = total
	}

	if math.IsInf(total, 1) {
		return 0, fmt.Errorf("wheel.pick: %d candidates: %w", k, ErrPheromoneOverflow)
	}
	if total <= 0 {
		if strict {
			return 0, fmt.Errorf("wheel.pick: %d candidates: %w", k, ErrZeroWeights)
		}
		return rng.Intn(k), nil
	}

	// First index whose cumulative weight strictly exceeds r.
	r := rng.Float64() * total
	idx := sort.Search(k, func(j int) bool { return w.cum[j] > r })
	if idx == k {
		// r rounded up to total: take the last positive-weight candidate.
		for idx = k - 1; idx > 0 && weights[idx] == 0; idx-- {
		}
	}

	return idx, nil
}

// SelectWeighted is the stand-alone roulette-wheel draw used by ants; see
// wheel.pick for the exact contract.
func SelectWeighted(weights []float64, rng *rand.Rand, strict bool) (int, error) {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	var w wheel
	return w.pick(weights, rng, strict)
}
