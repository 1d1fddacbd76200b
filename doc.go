// Package vecnd provides generic fixed-size vectors.
//
// A Vector[T, A] holds N elements of the floating-point type T, where A is
// the array type [N]T. The dimension is part of the type, so vectors of
// different sizes cannot be mixed and the elements are stored inline
// without allocation. Generated aliases Vec1 through Vec16 name the common
// shapes.
//
// # Construction
//
//	v := vecnd.Of[float64]([3]float64{1, 2, 3})
//	c := vecnd.Constant[float64, [3]float64](0.5)
//	e := vecnd.OneHot[float64, [3]float64](1)  // 0 1 0
//
// # Operations
//
// Every operation returns a new vector:
//
//	v.Add(w), v.MulScalar(2), vecnd.ScalarSub(1.0, v)  // elementwise
//	v.Less(w)                                          // 0/1 mask
//	v.Dot(w), v.Norm(), v.Normalized(), v.Angle(w)      // geometry
//	v.Bounds(), v.Clip(0, 1)                            // ranges
//	v.Map(math.Abs), vecnd.Fold(v, f, init)             // higher order
//
// Floating-point edge cases are not trapped: dividing by zero yields Inf or
// NaN, and Angle yields NaN when the cosine ratio leaves [-1, 1].
//
// # Text
//
// String prints the elements separated by single spaces ("1 2 3"); Parse
// and UnmarshalText read the same form back.
package vecnd
