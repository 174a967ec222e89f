// Package aco - RNG utilities.
//
// This file centralizes deterministic random generation for the colony.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms and
//     across worker counts.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every ant gets its own stream,
//     derived from (seed, iteration, ant) without touching any shared state.
package aco

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// We apply a SplitMix64-style avalanche so that neighbouring stream ids yield
// uncorrelated children.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antStream returns the private random stream of ant `ant` in iteration `iter`.
// The stream depends only on its three inputs, never on scheduling order.
//
// Complexity: O(1).
func antStream(seed int64, iter, ant int) *rand.Rand {
	var base = seed
	if base == 0 {
		base = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(deriveSeed(base, uint64(iter)), uint64(ant))))
}
