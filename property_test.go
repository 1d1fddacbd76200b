package vecnd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecnd"
	"github.com/hupe1980/vecnd/testutil"
)

type vec6 = vecnd.Vec6[float64]

const iterations = 500

func assertVecInDelta(t *testing.T, expected, actual vec6, delta float64) {
	t.Helper()
	for i := 0; i < expected.Len(); i++ {
		assert.InDelta(t, expected.At(i), actual.At(i), delta, "index %d", i)
	}
}

func TestProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("map identity", func(t *testing.T) {
		for range iterations {
			v := testutil.UniformRange[float64, [6]float64](rng, -100, 100)
			assert.Equal(t, v, v.Map(func(x float64) float64 { return x }))
		}
	})

	t.Run("add then sub", func(t *testing.T) {
		for range iterations {
			v := testutil.UniformRange[float64, [6]float64](rng, -100, 100)
			w := testutil.UniformRange[float64, [6]float64](rng, -100, 100)
			assertVecInDelta(t, v, v.Add(w).Sub(w), 1e-9)
		}
	})

	t.Run("mul then div", func(t *testing.T) {
		for range iterations {
			v := testutil.UniformRange[float64, [6]float64](rng, -100, 100)
			s := rng.Float64()*10 + 0.1
			assertVecInDelta(t, v, v.MulScalar(s).DivScalar(s), 1e-9)
		}
	})

	t.Run("normalized has unit norm", func(t *testing.T) {
		for range iterations {
			v := testutil.NonZero[float64, [6]float64](rng)
			assert.InDelta(t, 1.0, v.Normalized().Norm(), 1e-9)
		}
	})

	t.Run("norm is sqrt of self dot", func(t *testing.T) {
		for range iterations {
			v := testutil.Gaussian[float64, [6]float64](rng)
			assert.InDelta(t, math.Sqrt(v.Dot(v)), v.Norm(), 1e-12)
		}
	})

	t.Run("clip stays in bounds", func(t *testing.T) {
		for range iterations {
			v := testutil.Gaussian[float64, [6]float64](rng)
			lo, hi := v.Clip(-0.5, 0.5).Bounds()
			assert.GreaterOrEqual(t, lo, -0.5)
			assert.LessOrEqual(t, hi, 0.5)
		}
	})

	t.Run("bounds bracket every element", func(t *testing.T) {
		for range iterations {
			v := testutil.Gaussian[float64, [6]float64](rng)
			lo, hi := v.Bounds()
			for i := 0; i < v.Len(); i++ {
				assert.LessOrEqual(t, lo, v.At(i))
				assert.GreaterOrEqual(t, hi, v.At(i))
			}
		}
	})

	t.Run("comparison masks partition", func(t *testing.T) {
		for range iterations {
			v := testutil.Gaussian[float64, [6]float64](rng)
			w := testutil.Gaussian[float64, [6]float64](rng)
			sum := v.Less(w).Add(v.Greater(w))
			// Gaussian samples never tie.
			assert.Equal(t, vecnd.Constant[float64, [6]float64](1), sum)
		}
	})

	t.Run("angle is symmetric and in range", func(t *testing.T) {
		for range iterations {
			v := testutil.NonZero[float64, [6]float64](rng)
			w := testutil.NonZero[float64, [6]float64](rng)
			a := v.Angle(w)
			assert.InDelta(t, a, w.Angle(v), 1e-12)
			assert.GreaterOrEqual(t, a, 0.0)
			assert.LessOrEqual(t, a, math.Pi)
		}
	})

	t.Run("text round trip", func(t *testing.T) {
		for range iterations {
			v := testutil.Gaussian[float64, [6]float64](rng)
			got, err := vecnd.Parse[float64, [6]float64](v.String())
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
}

func TestConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(1)
	v := testutil.Gaussian[float64, [6]float64](rng)
	w := testutil.Gaussian[float64, [6]float64](rng)

	wantDot := v.Dot(w)
	wantSum := v.Add(w)
	wantText := v.String()

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 1000 {
				assert.Equal(t, wantDot, v.Dot(w))
				assert.Equal(t, wantSum, v.Add(w))
				assert.Equal(t, wantText, v.String())
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
