package main

import (
	"fmt"

	"github.com/hupe1980/vecnd"
)

// dispatch picks the array type matching req.dim.
func dispatch(req request) (string, error) {
	switch req.dim {
	case 1:
		return eval[[1]float64](req)
	case 2:
		return eval[[2]float64](req)
	case 3:
		return eval[[3]float64](req)
	case 4:
		return eval[[4]float64](req)
	case 5:
		return eval[[5]float64](req)
	case 6:
		return eval[[6]float64](req)
	case 7:
		return eval[[7]float64](req)
	case 8:
		return eval[[8]float64](req)
	case 9:
		return eval[[9]float64](req)
	case 10:
		return eval[[10]float64](req)
	case 11:
		return eval[[11]float64](req)
	case 12:
		return eval[[12]float64](req)
	case 13:
		return eval[[13]float64](req)
	case 14:
		return eval[[14]float64](req)
	case 15:
		return eval[[15]float64](req)
	case 16:
		return eval[[16]float64](req)
	default:
		return "", fmt.Errorf("%w: %d (supported 1..%d)", vecnd.ErrUnsupportedDimension, req.dim, vecnd.MaxDim)
	}
}
