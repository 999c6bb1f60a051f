package render

import "fmt"

// Defaults.
const (
	// DefaultPrecision selects the shortest round-trip representation.
	DefaultPrecision = -1

	// DefaultSeparator is placed between values of a row.
	DefaultSeparator = ", "
)

const panicPrecisionInvalid = "render: WithPrecision: precision must be >= -1"

// Option configures a Printer.
type Option func(*Printer)

// WithPrecision prints every value with exactly n decimals.
// n == -1 restores the shortest representation; n < -1 panics (programmer error).
func WithPrecision(n int) Option {
	if n < DefaultPrecision {
		panic(fmt.Sprintf("%s (got %d)", panicPrecisionInvalid, n))
	}

	return func(p *Printer) { p.precision = n }
}

// WithSeparator sets the string placed between values of a row.
func WithSeparator(sep string) Option {
	return func(p *Printer) { p.sep = sep }
}
