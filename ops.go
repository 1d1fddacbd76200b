package vecnd

// Elementwise binary operations. Every arithmetic and comparison operator on
// vectors is one of these fed through Zip, ZipScalar or ScalarZip, so all of
// them share the same broadcast rules.

// Plus returns x + y.
func Plus[T Float](x, y T) T { return x + y }

// Minus returns x - y.
func Minus[T Float](x, y T) T { return x - y }

// Times returns x * y.
func Times[T Float](x, y T) T { return x * y }

// Quo returns x / y.
func Quo[T Float](x, y T) T { return x / y }

// Lt returns 1 if x < y and 0 otherwise.
func Lt[T Float](x, y T) T {
	if x < y {
		return 1
	}

	return 0
}

// Gt returns 1 if x > y and 0 otherwise.
func Gt[T Float](x, y T) T {
	if x > y {
		return 1
	}

	return 0
}

// Zip combines two vectors element by element.
func Zip[T Float, A Array[T]](op func(T, T) T, v, w Vector[T, A]) Vector[T, A] {
	return v.Partial(op)(w)
}

// ZipScalar combines every element of v with s, s on the right.
func ZipScalar[T Float, A Array[T]](op func(T, T) T, v Vector[T, A], s T) Vector[T, A] {
	return v.Map(func(x T) T { return op(x, s) })
}

// ScalarZip combines s with every element of v, s on the left.
func ScalarZip[T Float, A Array[T]](op func(T, T) T, s T, v Vector[T, A]) Vector[T, A] {
	return v.Map(func(x T) T { return op(s, x) })
}

// Add returns v + w.
func (v Vector[T, A]) Add(w Vector[T, A]) Vector[T, A] { return Zip(Plus[T], v, w) }

// Sub returns v - w.
func (v Vector[T, A]) Sub(w Vector[T, A]) Vector[T, A] { return Zip(Minus[T], v, w) }

// Mul returns the elementwise product of v and w.
func (v Vector[T, A]) Mul(w Vector[T, A]) Vector[T, A] { return Zip(Times[T], v, w) }

// Div returns the elementwise quotient of v and w.
func (v Vector[T, A]) Div(w Vector[T, A]) Vector[T, A] { return Zip(Quo[T], v, w) }

// Less returns a 0/1 vector marking where v[i] < w[i].
func (v Vector[T, A]) Less(w Vector[T, A]) Vector[T, A] { return Zip(Lt[T], v, w) }

// Greater returns a 0/1 vector marking where v[i] > w[i].
func (v Vector[T, A]) Greater(w Vector[T, A]) Vector[T, A] { return Zip(Gt[T], v, w) }

// AddScalar returns v + s.
func (v Vector[T, A]) AddScalar(s T) Vector[T, A] { return ZipScalar(Plus[T], v, s) }

// SubScalar returns v - s.
func (v Vector[T, A]) SubScalar(s T) Vector[T, A] { return ZipScalar(Minus[T], v, s) }

// MulScalar returns v * s.
func (v Vector[T, A]) MulScalar(s T) Vector[T, A] { return ZipScalar(Times[T], v, s) }

// DivScalar returns v / s. Division by zero follows IEEE 754.
func (v Vector[T, A]) DivScalar(s T) Vector[T, A] { return ZipScalar(Quo[T], v, s) }

// LessScalar returns a 0/1 vector marking where v[i] < s.
func (v Vector[T, A]) LessScalar(s T) Vector[T, A] { return ZipScalar(Lt[T], v, s) }

// GreaterScalar returns a 0/1 vector marking where v[i] > s.
func (v Vector[T, A]) GreaterScalar(s T) Vector[T, A] { return ZipScalar(Gt[T], v, s) }

// Neg returns -v.
func (v Vector[T, A]) Neg() Vector[T, A] { return v.MulScalar(-1) }

// ScalarAdd returns s + v.
func ScalarAdd[T Float, A Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return ScalarZip(Plus[T], s, v)
}

// ScalarSub returns s - v.
func ScalarSub[T Float, A Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return ScalarZip(Minus[T], s, v)
}

// ScalarMul returns s * v.
func ScalarMul[T Float, A Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return ScalarZip(Times[T], s, v)
}

// ScalarDiv returns s / v, elementwise.
func ScalarDiv[T Float, A Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return ScalarZip(Quo[T], s, v)
}

// ScalarLess returns a 0/1 vector marking where s < v[i].
func ScalarLess[T Float, A Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return ScalarZip(Lt[T], s, v)
}

// ScalarGreater returns a 0/1 vector marking where s > v[i].
func ScalarGreater[T Float, A Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return ScalarZip(Gt[T], s, v)
}
