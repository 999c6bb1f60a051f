package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/render"
)

// newDemoCmd replays the walkthrough: fill a 3x3 matrix, read a row and a
// cell, overwrite a cell, then the same with a Grid and a whole-row write.
func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "walk through fill, row and cell access on both layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.cfg.printer()
			out := cmd.OutOrStdout()
			if err := denseDemo(out, p, a.log, a.cfg.matrixOptions()...); err != nil {
				return err
			}

			return gridDemo(out, p, a.log, a.cfg.matrixOptions()...)
		},
	}
}

func denseDemo(w io.Writer, p *render.Printer, log *zap.Logger, opts ...matrix.Option) error {
	if err := writef(w, "Example matrix\n"); err != nil {
		return err
	}
	m, err := matrix.NewDense(3, 3, opts...)
	if err != nil {
		return err
	}
	if err = m.Fill(1, 1); err != nil {
		return err
	}
	log.Debug("filled", zap.String("layout", layoutDense), zap.Float64("base", 1), zap.Float64("inc", 1))
	if err = p.Rows(w, m); err != nil {
		return err
	}

	row, err := m.Row(1)
	if err != nil {
		return err
	}
	if err = writef(w, "Row 1: %s\n", p.Slice(row)); err != nil {
		return err
	}

	v, err := m.At(1, 1)
	if err != nil {
		return err
	}
	if err = writef(w, "1x1: %s\n", p.Value(v)); err != nil {
		return err
	}

	if err = m.Set(1, 1, 5.2); err != nil {
		return err
	}
	log.Debug("set", zap.Int("row", 1), zap.Int("col", 1), zap.Float64("value", 5.2))

	return p.Rows(w, m)
}

func gridDemo(w io.Writer, p *render.Printer, log *zap.Logger, opts ...matrix.Option) error {
	if err := writef(w, "Example 2\n"); err != nil {
		return err
	}
	g, err := matrix.NewGrid(3, 3, opts...)
	if err != nil {
		return err
	}
	if err = g.Fill(1, 1); err != nil {
		return err
	}
	log.Debug("filled", zap.String("layout", layoutGrid), zap.Float64("base", 1), zap.Float64("inc", 1))
	if err = p.Rows(w, g); err != nil {
		return err
	}

	row, err := g.Row(1)
	if err != nil {
		return err
	}
	if err = writef(w, "Row 1: %s\n", p.Slice(row)); err != nil {
		return err
	}
	if err = writef(w, "1x2: %s\n", p.Value(row[2])); err != nil {
		return err
	}

	row[1] = 5.1
	if err = g.SetRow(1, row); err != nil {
		return err
	}
	log.Debug("row replaced", zap.Int("row", 1), zap.Float64s("values", row))

	return p.Rows(w, g)
}

// writef writes one formatted line of demo output, wrapping write failures
// the way render.Printer.Row does.
func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	return nil
}
