package vecnd

import "math"

// Dot returns the dot product of v and w.
func (v Vector[T, A]) Dot(w Vector[T, A]) T {
	return v.Mul(w).Sum()
}

// Norm returns the Euclidean length of v.
func (v Vector[T, A]) Norm() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalized returns v scaled to unit length. A zero vector yields NaN
// elements; no guard is applied.
func (v Vector[T, A]) Normalized() Vector[T, A] {
	return v.DivScalar(v.Norm())
}

// Angle returns the angle between v and w in radians.
//
// The cosine ratio is not clamped: when rounding pushes it outside [-1, 1],
// or either vector is zero, the result is NaN.
func (v Vector[T, A]) Angle(w Vector[T, A]) T {
	return T(math.Acos(float64(v.Dot(w) / (v.Norm() * w.Norm()))))
}
