package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vecnd"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// fill draws every element of a vector from next while holding the lock once.
func fill[T vecnd.Float, A vecnd.Array[T]](r *RNG, next func(*rand.Rand) float64) vecnd.Vector[T, A] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return vecnd.Vector[T, A]{}.Map(func(T) T {
		return T(next(r.rand))
	})
}

// Uniform returns a vector with elements in [0, 1).
func Uniform[T vecnd.Float, A vecnd.Array[T]](r *RNG) vecnd.Vector[T, A] {
	return fill[T, A](r, (*rand.Rand).Float64)
}

// UniformRange returns a vector with elements in [minVal, maxVal).
func UniformRange[T vecnd.Float, A vecnd.Array[T]](r *RNG, minVal, maxVal T) vecnd.Vector[T, A] {
	span := float64(maxVal - minVal)
	return fill[T, A](r, func(rnd *rand.Rand) float64 {
		return float64(minVal) + rnd.Float64()*span
	})
}

// Gaussian returns a vector with elements from a standard normal distribution.
func Gaussian[T vecnd.Float, A vecnd.Array[T]](r *RNG) vecnd.Vector[T, A] {
	return fill[T, A](r, (*rand.Rand).NormFloat64)
}

// NonZero returns a vector with elements in [-1, 1) whose norm is at
// least 1e-3, so that normalizing it is well defined.
func NonZero[T vecnd.Float, A vecnd.Array[T]](r *RNG) vecnd.Vector[T, A] {
	for {
		v := UniformRange[T, A](r, -1, 1)
		if v.Norm() >= 1e-3 {
			return v
		}
	}
}

// Unit returns a uniformly distributed vector on the unit sphere.
// Uses a normalized Gaussian sample.
func Unit[T vecnd.Float, A vecnd.Array[T]](r *RNG) vecnd.Vector[T, A] {
	for {
		v := Gaussian[T, A](r)
		if v.Norm() > 0 {
			return v.Normalized()
		}
	}
}
