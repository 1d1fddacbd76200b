package vecnd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the elements in index order separated by single spaces,
// without a trailing separator or newline. Elements use the shortest form
// that parses back exactly; Text(WithVerb('g'), WithPrecision(6)) gives
// six significant digits instead.
func (v Vector[T, A]) String() string {
	return v.Text()
}

// Text renders v like String, adjusted by opts.
func (v Vector[T, A]) Text(opts ...TextOption) string {
	o := defaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	v.write(&sb, o.directive(), o.separator)

	return sb.String()
}

// Format implements fmt.Formatter. The verb, flags, width and precision
// apply to each element, so "%.2f" prints "1.00 2.00 3.00" and "%+v"
// prints "+1 +2 +3".
func (v Vector[T, A]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 's':
		verb = 'v'
	case verb == 'v' && f.Flag('+'):
		// fmt reads %+v as "with field names" and drops the sign.
		verb = 'g'
	}
	v.write(f, fmt.FormatString(f, verb), " ")
}

// WriteTo implements io.WriterTo using the String form.
func (v Vector[T, A]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (v Vector[T, A]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vector[T, A]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T, A](string(text))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

func (v Vector[T, A]) write(w io.Writer, directive, sep string) {
	for i := 0; i < len(v.e); i++ {
		if i > 0 {
			_, _ = io.WriteString(w, sep)
		}
		_, _ = fmt.Fprintf(w, directive, v.e[i])
	}
}

// Parse reads a vector from whitespace-separated numbers.
//
// The number of fields must equal N; numbers are parsed at T's precision,
// so the output of String parses back to the same vector, Inf and NaN
// included.
func Parse[T Float, A Array[T]](s string) (Vector[T, A], error) {
	var v Vector[T, A]

	fields := strings.Fields(s)
	if len(fields) != len(v.e) {
		return v, &ErrDimensionMismatch{Expected: len(v.e), Actual: len(fields)}
	}

	bits := bitSize[T]()
	for i, field := range fields {
		x, err := strconv.ParseFloat(field, bits)
		if err != nil {
			return Vector[T, A]{}, &ErrSyntax{Field: i, Text: field, cause: err}
		}
		v.e[i] = T(x)
	}

	return v, nil
}
