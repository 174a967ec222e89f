// Package aco - route utilities.
//
// A Route is an open visit order of length n starting at the start node; the
// closing edge back to the start is implied. Helpers provided:
//   - Validate: enforce the permutation-from-start invariant.
//   - Cost: sum of traversed edges, closing edge excluded.
//   - ClosedCost: Cost plus the closing edge.
//   - Key / ParseRouteKey: canonical "0 2 3 1" representation.
//   - Closed, String: closed copy and "[0 2 3 1 | 0]" debug form.
//   - EnumerateRoutes: every route from a start node with its cost.
package aco

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxEnumerateNodes bounds EnumerateRoutes: (n-1)! routes are produced.
const maxEnumerateNodes = 10

// Route is an ordered visit sequence; Route[0] is the start node.
type Route []int

// RouteCost pairs a route with its (open) cost.
type RouteCost struct {
	Route Route
	Cost  float64
}

// Validate checks that r is a permutation of {0..n-1} of length n with r[0]==start.
//
// Errors: ErrRouteShape (length, range, start), ErrDuplicateNode.
// Complexity: O(n) time, O(n) space.
func (r Route) Validate(n, start int) error {
	if n <= 0 || len(r) != n {
		return fmt.Errorf("Route.Validate: len=%d n=%d: %w", len(r), n, ErrRouteShape)
	}
	if r[0] != start {
		return fmt.Errorf("Route.Validate: starts at %d, want %d: %w", r[0], start, ErrRouteShape)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = r[i]
		if v < 0 || v >= n {
			return fmt.Errorf("Route.Validate: node %d: %w", v, ErrRouteShape)
		}
		if seen[v] {
			return fmt.Errorf("Route.Validate: node %d: %w", v, ErrDuplicateNode)
		}
		seen[v] = true
	}

	return nil
}

// Cost sums d over consecutive pairs of r. The closing edge is not included.
//
// Complexity: O(n).
func (r Route) Cost(d *Distances) (float64, error) {
	var (
		total float64
		w     float64
		err   error
		i     int
	)
	for i = 0; i+1 < len(r); i++ {
		if w, err = d.At(r[i], r[i+1]); err != nil {
			return 0, fmt.Errorf("Route.Cost: %w", err)
		}
		total += w
	}

	return total, nil
}

// ClosedCost is Cost plus the edge from the last node back to r[0].
func (r Route) ClosedCost(d *Distances) (float64, error) {
	c, err := r.Cost(d)
	if err != nil || len(r) < 2 {
		return c, err
	}
	w, err := d.At(r[len(r)-1], r[0])
	if err != nil {
		return 0, fmt.Errorf("Route.ClosedCost: %w", err)
	}

	return c + w, nil
}

// Key returns the canonical representation: node ids joined by single spaces.
func (r Route) Key() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// ParseRouteKey is the inverse of Route.Key.
func ParseRouteKey(key string) (Route, error) {
	fields := strings.Fields(key)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseRouteKey(%q): %w", key, ErrRouteShape)
	}
	r := make(Route, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("ParseRouteKey(%q): %w: %w", key, ErrRouteShape, err)
		}
		r[i] = v
	}

	return r, nil
}

// Closed returns a copy of r with the start node appended.
func (r Route) Closed() Route {
	if len(r) == 0 {
		return nil
	}
	out := make(Route, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]

	return out
}

// String returns a compact form, e.g. "[0 2 3 1 | 0]" where the bar marks the closure.
func (r Route) String() string {
	if len(r) == 0 {
		return "[]"
	}
	return "[" + r.Key() + " | " + strconv.Itoa(r[0]) + "]"
}

// EnumerateRoutes lists every route from start together with its open cost,
// sorted by cost ascending, then by key.
//
// Errors: ErrStartOutOfRange, ErrEnumerationLimit (n > 10).
// Complexity: O(n · (n-1)!).
func EnumerateRoutes(d *Distances, start int) ([]RouteCost, error) {
	n := d.Len()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	if n > maxEnumerateNodes {
		return nil, fmt.Errorf("EnumerateRoutes(n=%d): %w", n, ErrEnumerationLimit)
	}

	var (
		out     []RouteCost
		route   = make(Route, 1, n)
		visited = make([]bool, n)
		walk    func(cost float64) error
	)
	route[0] = start
	visited[start] = true

	walk = func(cost float64) error {
		if len(route) == n {
			out = append(out, RouteCost{Route: append(Route(nil), route...), Cost: cost})
			return nil
		}
		last := route[len(route)-1]
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			w, err := d.At(last, v)
			if err != nil {
				return err
			}
			visited[v] = true
			route = append(route, v)
			if err = walk(cost + w); err != nil {
				return err
			}
			route = route[:len(route)-1]
			visited[v] = false
		}
		return nil
	}
	if err := walk(0); err != nil {
		return nil, fmt.Errorf("EnumerateRoutes: %w", err)
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Cost != out[b].Cost {
			return out[a].Cost < out[b].Cost
		}
		return out[a].Route.Key() < out[b].Route.Key()
	})

	return out, nil
}
