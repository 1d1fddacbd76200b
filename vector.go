package vecnd

// Vector is a fixed-size vector of N elements of type T, where A is [N]T.
//
// The elements live inline, so a Vector is a plain value: assigning or
// passing it copies every element. All operations return new vectors and
// leave the receiver untouched.
//
// The zero value is the zero vector.
type Vector[T Float, A Array[T]] struct {
	e A
}

// Of wraps an array literal into a Vector.
//
//	v := vecnd.Of[float64]([3]float64{1, 2, 3})
func Of[T Float, A Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{e: a}
}

// Constant returns a vector with every element equal to c.
func Constant[T Float, A Array[T]](c T) Vector[T, A] {
	var v Vector[T, A]
	for i := 0; i < len(v.e); i++ {
		v.e[i] = c
	}

	return v
}

// OneHot returns a vector of zeros with a one at index k.
// It panics if k is not in [0, N).
func OneHot[T Float, A Array[T]](k int) Vector[T, A] {
	v := Constant[T, A](0)
	v.e[k] = 1

	return v
}

// OneHotChecked is OneHot with an explicit range check on k.
func OneHotChecked[T Float, A Array[T]](k int) (Vector[T, A], error) {
	var v Vector[T, A]
	if k < 0 || k >= len(v.e) {
		return v, &ErrIndexOutOfRange{Index: k, Dimension: len(v.e)}
	}

	return OneHot[T, A](k), nil
}

// Len returns the dimension N.
func (v Vector[T, A]) Len() int {
	return len(v.e)
}

// At returns the element at index i.
func (v Vector[T, A]) At(i int) T {
	return v.e[i]
}

// Array returns a copy of the underlying array.
func (v Vector[T, A]) Array() A {
	return v.e
}

// Map applies f to every element.
func (v Vector[T, A]) Map(f func(T) T) Vector[T, A] {
	var out Vector[T, A]
	for i := 0; i < len(v.e); i++ {
		out.e[i] = f(v.e[i])
	}

	return out
}

// Partial binds v as the left operand of op. The returned function combines
// v with its argument element by element: out[i] = op(v[i], other[i]).
func (v Vector[T, A]) Partial(op func(T, T) T) func(other Vector[T, A]) Vector[T, A] {
	return func(other Vector[T, A]) Vector[T, A] {
		var out Vector[T, A]
		for i := 0; i < len(v.e); i++ {
			out.e[i] = op(v.e[i], other.e[i])
		}

		return out
	}
}

// Fold reduces v from the left, starting at initial and visiting
// elements in index order.
func Fold[V any, T Float, A Array[T]](v Vector[T, A], f func(V, T) V, initial V) V {
	acc := initial
	for i := 0; i < len(v.e); i++ {
		acc = f(acc, v.e[i])
	}

	return acc
}

// Sum returns the sum of all elements.
func (v Vector[T, A]) Sum() T {
	return Fold(v, Plus[T], 0)
}
