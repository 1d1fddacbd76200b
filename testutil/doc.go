// Package testutil provides testing utilities for vecnd.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and helpers that
// draw random fixed-size vectors from it.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.Uniform[float64, [3]float64](rng)        // uniform [0, 1)
//	w := testutil.UniformRange[float64, [3]float64](rng, -1, 1)
//	u := testutil.Unit[float64, [3]float64](rng)           // on the unit sphere
package testutil
