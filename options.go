package vecnd

import "fmt"

type textOptions struct {
	separator string
	verb      rune
	precision int
}

func defaultTextOptions() textOptions {
	return textOptions{
		separator: " ",
		verb:      'v',
		precision: -1,
	}
}

// directive returns the fmt directive used for a single element.
func (o textOptions) directive() string {
	if o.precision < 0 {
		return "%" + string(o.verb)
	}

	return fmt.Sprintf("%%.%d%c", o.precision, o.verb)
}

// TextOption configures Vector.Text.
type TextOption func(*textOptions)

// WithSeparator sets the string written between elements.
// The default is a single space.
func WithSeparator(sep string) TextOption {
	return func(o *textOptions) {
		o.separator = sep
	}
}

// WithVerb sets the fmt verb applied to each element ('v', 'g', 'f', 'e', ...).
// The default 'v' prints the shortest representation.
func WithVerb(verb rune) TextOption {
	return func(o *textOptions) {
		o.verb = verb
	}
}

// WithPrecision sets the precision passed to the element verb.
// A negative precision leaves the verb's default.
func WithPrecision(precision int) TextOption {
	return func(o *textOptions) {
		o.precision = precision
	}
}
