package main

import (
	"fmt"

	"github.com/hupe1980/vecnd"
	"github.com/hupe1980/vecnd/distance"
)

type request struct {
	op      string
	dim     int
	vectors []string
	text    []vecnd.TextOption

	hasScalar  bool
	scalar     float64
	scalarLeft bool

	lo, hi float64
	value  float64
	index  int
	metric distance.Metric
}

var binaryOps = map[string]func(x, y float64) float64{
	"add": vecnd.Plus[float64],
	"sub": vecnd.Minus[float64],
	"mul": vecnd.Times[float64],
	"div": vecnd.Quo[float64],
	"lt":  vecnd.Lt[float64],
	"gt":  vecnd.Gt[float64],
}

func arity(req request, n int) error {
	if len(req.vectors) != n {
		return fmt.Errorf("%s expects %d vector(s), got %d", req.op, n, len(req.vectors))
	}

	return nil
}

// eval runs req against vectors of the array type A.
func eval[A vecnd.Array[float64]](req request) (string, error) {
	args := make([]vecnd.Vector[float64, A], len(req.vectors))
	for i, s := range req.vectors {
		v, err := vecnd.Parse[float64, A](s)
		if err != nil {
			return "", fmt.Errorf("vector %d: %w", i+1, err)
		}
		args[i] = v
	}

	vector := func(v vecnd.Vector[float64, A]) string {
		return v.Text(req.text...)
	}
	scalars := func(xs ...float64) string {
		out := ""
		for i, x := range xs {
			if i > 0 {
				out += " "
			}
			out += vecnd.Of[float64]([1]float64{x}).Text(req.text...)
		}
		return out
	}

	if op, ok := binaryOps[req.op]; ok {
		switch {
		case req.hasScalar && req.scalarLeft:
			if err := arity(req, 1); err != nil {
				return "", err
			}
			return vector(vecnd.ScalarZip(op, req.scalar, args[0])), nil
		case req.hasScalar:
			if err := arity(req, 1); err != nil {
				return "", err
			}
			return vector(vecnd.ZipScalar(op, args[0], req.scalar)), nil
		default:
			if err := arity(req, 2); err != nil {
				return "", err
			}
			return vector(vecnd.Zip(op, args[0], args[1])), nil
		}
	}

	switch req.op {
	case "dot", "angle", "distance":
		if err := arity(req, 2); err != nil {
			return "", err
		}
		switch req.op {
		case "dot":
			return scalars(args[0].Dot(args[1])), nil
		case "angle":
			return scalars(args[0].Angle(args[1])), nil
		}
		f, err := distance.Provider[float64, A](req.metric)
		if err != nil {
			return "", err
		}
		return scalars(f(args[0], args[1])), nil
	case "norm", "normalize", "sum", "bounds", "clip":
		if err := arity(req, 1); err != nil {
			return "", err
		}
		v := args[0]
		switch req.op {
		case "norm":
			return scalars(v.Norm()), nil
		case "normalize":
			return vector(v.Normalized()), nil
		case "sum":
			return scalars(v.Sum()), nil
		case "bounds":
			return scalars(v.Bounds()), nil
		default:
			return vector(v.Clip(req.lo, req.hi)), nil
		}
	case "constant":
		if err := arity(req, 0); err != nil {
			return "", err
		}
		return vector(vecnd.Constant[float64, A](req.value)), nil
	case "onehot":
		if err := arity(req, 0); err != nil {
			return "", err
		}
		v, err := vecnd.OneHotChecked[float64, A](req.index)
		if err != nil {
			return "", err
		}
		return vector(v), nil
	default:
		return "", fmt.Errorf("unknown operation %q", req.op)
	}
}
