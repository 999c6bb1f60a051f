package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RowSource is the read-only surface a Printer consumes.
// *matrix.Dense and *matrix.Grid satisfy it.
type RowSource interface {
	Rows() int
	Row(i int) ([]float64, error)
}

// Printer formats rows and values. The zero value is not usable; use New.
type Printer struct {
	precision int
	sep       string
}

// New returns a Printer with defaults overridden by opts (last writer wins).
func New(opts ...Option) *Printer {
	p := &Printer{precision: DefaultPrecision, sep: DefaultSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// Value formats a single number.
func (p *Printer) Value(v float64) string {
	s := strconv.FormatFloat(v, 'f', p.precision, 64)
	if p.precision != DefaultPrecision {
		return s
	}
	// NaN and ±Inf already read naturally; integers get ".0".
	if strings.ContainsAny(s, ".NI") {
		return s
	}

	return s + ".0"
}

// Slice formats values as "[a, b, c]".
func (p *Printer) Slice(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for j, v := range values {
		if j > 0 {
			b.WriteString(p.sep)
		}
		b.WriteString(p.Value(v))
	}
	b.WriteByte(']')

	return b.String()
}

// Row writes a single row of src followed by a newline.
func (p *Printer) Row(w io.Writer, src RowSource, i int) error {
	row, err := src.Row(i)
	if err != nil {
		return fmt.Errorf("render: row %d: %w", i, err)
	}
	if _, err = fmt.Fprintln(w, p.Slice(row)); err != nil {
		return fmt.Errorf("render: row %d: %w", i, err)
	}

	return nil
}

// Rows writes every row of src, one per line, stopping at the first error.
func (p *Printer) Rows(w io.Writer, src RowSource) error {
	for i := 0; i < src.Rows(); i++ {
		if err := p.Row(w, src, i); err != nil {
			return err
		}
	}

	return nil
}

// Sprint renders every row of src into a string.
func (p *Printer) Sprint(src RowSource) (string, error) {
	var b strings.Builder
	if err := p.Rows(&b, src); err != nil {
		return "", err
	}

	return b.String(), nil
}

var std = New()

// Value formats v with the default Printer.
func Value(v float64) string { return std.Value(v) }

// Rows writes every row of src with the default Printer.
func Rows(w io.Writer, src RowSource) error { return std.Rows(w, src) }
