package aco

import "sort"

// RouteCount is one row of the frequency table.
type RouteCount struct {
	Key   string
	Count int
	Cost  float64
}

// Tracker records how often each route was produced, overall and per
// iteration. The colony is its only writer; it is not safe for concurrent use.
type Tracker struct {
	counts  map[string]int
	costs   map[string]float64
	perIter []map[string]int
	iterLen []int
	total   int

	best     Route
	bestCost float64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		counts: make(map[string]int),
		costs:  make(map[string]float64),
	}
}

// Record adds one route produced in iteration iter with the given cost.
// The first route with the strictly lowest cost becomes Best.
func (t *Tracker) Record(iter int, r Route, cost float64) {
	if iter < 0 {
		iter = 0
	}
	for len(t.perIter) <= iter {
		t.perIter = append(t.perIter, make(map[string]int))
		t.iterLen = append(t.iterLen, 0)
	}

	key := r.Key()
	t.counts[key]++
	t.costs[key] = cost
	t.perIter[iter][key]++
	t.iterLen[iter]++
	t.total++

	if t.best == nil || cost < t.bestCost {
		t.best = append(Route(nil), r...)
		t.bestCost = cost
	}
}

// Summary returns a copy of the route-key → count table.
func (t *Tracker) Summary() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}

	return out
}

// Total is the number of recorded routes.
func (t *Tracker) Total() int { return t.total }

// Iterations is the number of iterations seen (highest index + 1).
func (t *Tracker) Iterations() int { return len(t.perIter) }

// IterationCounts returns a copy of the table for one iteration
// (empty for an unknown iteration).
func (t *Tracker) IterationCounts(iter int) map[string]int {
	out := make(map[string]int)
	if iter < 0 || iter >= len(t.perIter) {
		return out
	}
	for k, v := range t.perIter[iter] {
		out[k] = v
	}

	return out
}

// IterationShare is the fraction of routes in iteration iter equal to key.
func (t *Tracker) IterationShare(iter int, key string) float64 {
	if iter < 0 || iter >= len(t.perIter) || t.iterLen[iter] == 0 {
		return 0
	}

	return float64(t.perIter[iter][key]) / float64(t.iterLen[iter])
}

// Best returns the lowest-cost route recorded so far; ok is false when
// nothing was recorded.
func (t *Tracker) Best() (r Route, cost float64, ok bool) {
	if t.best == nil {
		return nil, 0, false
	}

	return append(Route(nil), t.best...), t.bestCost, true
}

// Ranked returns the table sorted by count descending, then key ascending.
func (t *Tracker) Ranked() []RouteCount {
	out := make([]RouteCount, 0, len(t.counts))
	for k, v := range t.counts {
		out = append(out, RouteCount{Key: k, Count: v, Cost: t.costs[k]})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Key < out[b].Key
	})

	return out
}
