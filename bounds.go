package vecnd

import "math"

// Bounds returns the smallest and largest element of v.
// NaN elements never replace the running minimum or maximum.
func (v Vector[T, A]) Bounds() (lo, hi T) {
	b := Fold(v, func(acc [2]T, x T) [2]T {
		if x < acc[0] {
			acc[0] = x
		}
		if acc[1] < x {
			acc[1] = x
		}

		return acc
	}, [2]T{T(math.Inf(1)), T(math.Inf(-1))})

	return b[0], b[1]
}

// Clip clamps every element of v into [lo, hi].
//
// The upper bound is applied first, so NaN elements become hi and, when
// lo > hi, every element becomes lo.
func (v Vector[T, A]) Clip(lo, hi T) Vector[T, A] {
	return v.Map(func(x T) T {
		if !(x < hi) {
			x = hi
		}
		if lo < x {
			return x
		}

		return lo
	})
}
