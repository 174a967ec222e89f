// Package aco implements single-colony Ant Colony Optimization over a small
// complete graph: simulated ants build closed tours from a fixed start node,
// biased by a shared pheromone table that is reinforced by short routes and
// decays every iteration.
//
// What
//
//   - Distances: immutable symmetric, zero-diagonal cost table.
//   - Pheromone: mutable weight table with floored evaporation.
//   - BuildRoute: one ant, roulette-wheel selection over a snapshot.
//   - RunIteration / Colony: fork-join over the colony, deposit aggregation
//     (compounding or normalized), evaporation.
//   - Tracker: route frequency table, per-iteration shares, best route.
//
// Why
//
//   - Short routes receive larger deposits (PheromonePerRoute / cost), so
//     their edges accumulate weight and are chosen more often; the colony
//     concentrates on the cheapest tours without enumerating them.
//
// Determinism
//
//	Every ant draws from a private stream derived from (Seed, iteration, ant).
//	Ant results are folded in ant-index order after the join barrier, so a
//	fixed seed reproduces routes and tables bit for bit regardless of the
//	Workers setting. With Workers==1 ants run sequentially on the caller.
//
// Closing edge
//
//	A route implies an edge from its last node back to the start. That edge
//	receives the deposit like every traversed edge, but its length is not part
//	of the cost the deposit is computed from.
//
// Complexity (n = nodes, m = colony size, T = iterations)
//
//   - One ant:        O(n²)
//   - One iteration:  O(m · n²)
//   - Run:            O(T · m · n²)
//
// Quick example:
//
//	dist, _ := aco.NewDistances(aco.ExampleDistances())
//	col, _ := aco.NewColony(dist, aco.WithSeed(7), aco.WithColonySize(50))
//	tr, _ := col.Run()
//	best, cost, _ := tr.Best() // [0 2 3 1 | 0], 4.5 (open cost)
package aco
