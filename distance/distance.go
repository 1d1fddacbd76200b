package distance

import (
	"fmt"
	"strings"

	"github.com/hupe1980/vecnd"
)

// Dot calculates the dot product of two vectors.
func Dot[T vecnd.Float, A vecnd.Array[T]](a, b vecnd.Vector[T, A]) T {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2[T vecnd.Float, A vecnd.Array[T]](a, b vecnd.Vector[T, A]) T {
	d := a.Sub(b)
	return d.Dot(d)
}

// Cosine calculates the cosine distance 1 - a·b / (|a| |b|).
// Returns NaN if either vector has zero norm.
func Cosine[T vecnd.Float, A vecnd.Array[T]](a, b vecnd.Vector[T, A]) T {
	return 1 - a.Dot(b)/(a.Norm()*b.Norm())
}

// Angle calculates the angle between two vectors in radians.
func Angle[T vecnd.Float, A vecnd.Array[T]](a, b vecnd.Vector[T, A]) T {
	return a.Angle(b)
}

// NormalizeCopy returns v scaled to unit length.
// Returns false if v has zero (or NaN) norm.
func NormalizeCopy[T vecnd.Float, A vecnd.Array[T]](v vecnd.Vector[T, A]) (vecnd.Vector[T, A], bool) {
	n := v.Norm()
	if !(n > 0) {
		return vecnd.Vector[T, A]{}, false
	}

	return v.DivScalar(n), true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
	MetricAngle
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	case MetricAngle:
		return "Angle"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric returns the metric named s (case-insensitive).
func ParseMetric(s string) (Metric, error) {
	for _, m := range []Metric{MetricL2, MetricCosine, MetricDot, MetricAngle} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown metric: %q", s)
}

// Func is a function type for distance calculation.
type Func[T vecnd.Float, A vecnd.Array[T]] func(a, b vecnd.Vector[T, A]) T

// Provider returns the distance function for the given metric.
func Provider[T vecnd.Float, A vecnd.Array[T]](m Metric) (Func[T, A], error) {
	switch m {
	case MetricL2:
		return SquaredL2[T, A], nil
	case MetricCosine:
		return Cosine[T, A], nil
	case MetricDot:
		return Dot[T, A], nil
	case MetricAngle:
		return Angle[T, A], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
