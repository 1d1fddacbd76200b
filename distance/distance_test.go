package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecnd"
	"github.com/hupe1980/vecnd/testutil"
)

type vec3 = vecnd.Vec3[float32]

func v3(x, y, z float32) vec3 {
	return vecnd.Of[float32]([3]float32{x, y, z})
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vec3
		expected float32
	}{
		{"Simple", v3(1, 2, 3), v3(4, 5, 6), 32},
		{"Zero", v3(0, 0, 0), v3(0, 0, 0), 0},
		{"Mixed", v3(1, -1, 2), v3(1, 1, -2), -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vec3
		expected float32
	}{
		{"Simple", v3(1, 2, 3), v3(4, 5, 6), 27},
		{"Zero", v3(0, 0, 0), v3(0, 0, 0), 0},
		{"Identical", v3(1, 2, 3), v3(1, 2, 3), 0},
		{"Mixed", v3(1, -1, 0), v3(-1, 1, 0), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestCosineAndAngle(t *testing.T) {
	x := vecnd.OneHot[float64, [2]float64](0)
	y := vecnd.OneHot[float64, [2]float64](1)

	assert.InDelta(t, 1.0, Cosine(x, y), 1e-12)
	assert.InDelta(t, 0.0, Cosine(x, x.MulScalar(4)), 1e-12)
	assert.InDelta(t, 2.0, Cosine(x, x.Neg()), 1e-12)
	assert.InDelta(t, math.Pi/2, Angle(x, y), 1e-12)
	assert.True(t, math.IsNaN(Cosine(x, vecnd.Vec2[float64]{})))
}

func TestNormalizeCopy(t *testing.T) {
	v := vecnd.Of[float32]([2]float32{3, 4})
	got, ok := NormalizeCopy(v)
	assert.True(t, ok)
	assert.InDelta(t, float32(0.6), got.At(0), 1e-6)
	assert.InDelta(t, float32(0.8), got.At(1), 1e-6)
	assert.Equal(t, [2]float32{3, 4}, v.Array())

	_, ok = NormalizeCopy(vecnd.Vec2[float32]{})
	assert.False(t, ok)

	_, ok = NormalizeCopy(vecnd.Of[float32]([2]float32{float32(math.NaN()), 1}))
	assert.False(t, ok)
}

func TestTriangleInequality(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 200 {
		a := testutil.UniformRange[float64, [5]float64](rng, -10, 10)
		b := testutil.UniformRange[float64, [5]float64](rng, -10, 10)
		c := testutil.UniformRange[float64, [5]float64](rng, -10, 10)

		ab := math.Sqrt(SquaredL2(a, b))
		bc := math.Sqrt(SquaredL2(b, c))
		ac := math.Sqrt(SquaredL2(a, c))
		assert.LessOrEqual(t, ac, ab+bc+1e-9)
	}
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "L2", MetricL2.String())
		assert.Equal(t, "Cosine", MetricCosine.String())
		assert.Equal(t, "Dot", MetricDot.String())
		assert.Equal(t, "Angle", MetricAngle.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("ParseMetric", func(t *testing.T) {
		m, err := ParseMetric("cosine")
		require.NoError(t, err)
		assert.Equal(t, MetricCosine, m)

		m, err = ParseMetric("L2")
		require.NoError(t, err)
		assert.Equal(t, MetricL2, m)

		_, err = ParseMetric("hamming")
		assert.Error(t, err)
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider[float32, [3]float32](MetricL2)
		require.NoError(t, err)
		assert.InDelta(t, float32(27), f(v3(1, 2, 3), v3(4, 5, 6)), 1e-5)

		f, err = Provider[float32, [3]float32](MetricDot)
		require.NoError(t, err)
		assert.InDelta(t, float32(32), f(v3(1, 2, 3), v3(4, 5, 6)), 1e-5)

		f, err = Provider[float32, [3]float32](MetricCosine)
		require.NoError(t, err)
		assert.InDelta(t, float32(1), f(v3(1, 0, 0), v3(0, 1, 0)), 1e-6)

		f, err = Provider[float32, [3]float32](MetricAngle)
		require.NoError(t, err)
		assert.InDelta(t, float32(math.Pi/2), f(v3(1, 0, 0), v3(0, 0, 1)), 1e-6)

		_, err = Provider[float32, [3]float32](Metric(99))
		assert.Error(t, err)
	})
}
