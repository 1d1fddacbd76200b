// Code generator for the vecnd dimension constraint.
// Renders the Array union over [1]T..[max]T and the VecN aliases.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

var (
	maxDim = flag.Int("max", 16, "largest dimension to generate")
	pkg    = flag.String("pkg", "vecnd", "package name")
	output = flag.String("o", "array_gen.go", "output file")
)

func main() {
	flag.Parse()

	gen := &Generator{
		Package: *pkg,
		Max:     *maxDim,
	}

	src, err := gen.Render()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil { // nolint gosec
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated %s (dimensions 1..%d)\n", *output, *maxDim)
}

type Generator struct {
	Package string
	Max     int
}

// Dims returns 1..Max.
func (g *Generator) Dims() []int {
	dims := make([]int, g.Max)
	for i := range dims {
		dims[i] = i + 1
	}

	return dims
}

// Render returns the gofmt'ed source of the generated file.
func (g *Generator) Render() ([]byte, error) {
	if g.Max < 1 {
		return nil, fmt.Errorf("max dimension must be positive, got %d", g.Max)
	}

	var buf bytes.Buffer
	if err := arrayTemplate.Execute(&buf, g); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}

	return src, nil
}

var arrayTemplate = template.Must(template.New("array").Parse(`// Code generated by internal/cmd/generator; DO NOT EDIT.

package {{.Package}}

// MaxDim is the largest dimension covered by Array.
const MaxDim = {{.Max}}

// Array is satisfied by the fixed-size arrays [1]T through [{{.Max}}]T and by
// named types whose underlying type is one of them.
type Array[T Float] interface {
	{{range $i, $n := .Dims}}{{if $i}} | {{end}}~[{{$n}}]T{{end}}
}
{{range .Dims}}
// Vec{{.}} is the Vector of dimension {{.}}.
type Vec{{.}}[T Float] = Vector[T, [{{.}}]T]
{{end}}`))
