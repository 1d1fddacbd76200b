package vecnd

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

//go:generate go run ./internal/cmd/generator -max 16 -pkg vecnd -o array_gen.go

// Float is the scalar constraint for vector elements.
type Float interface {
	constraints.Float
}

// bitSize returns 32 or 64 depending on T's width.
func bitSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}
