// Package distance provides distance and similarity measures over
// vecnd vectors.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//   - MetricDot: Dot product (inner product)
//   - MetricAngle: Angle between the vectors in radians
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Dot(a, b)
//	unit, ok := distance.NormalizeCopy(v)
package distance
