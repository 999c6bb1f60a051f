package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errBadSet = errors.New("want ROW,COL=VALUE")

// cellEdit is one parsed --set argument.
type cellEdit struct {
	row, col int
	value    float64
}

// parseCellEdit parses "ROW,COL=VALUE", e.g. "1,1=5.2".
func parseCellEdit(s string) (cellEdit, error) {
	pos, val, ok := strings.Cut(s, "=")
	if !ok {
		return cellEdit{}, fmt.Errorf("--set %q: %w", s, errBadSet)
	}
	rs, cs, ok := strings.Cut(pos, ",")
	if !ok {
		return cellEdit{}, fmt.Errorf("--set %q: %w", s, errBadSet)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return cellEdit{}, fmt.Errorf("--set %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return cellEdit{}, fmt.Errorf("--set %q: col: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return cellEdit{}, fmt.Errorf("--set %q: value: %w", s, err)
	}

	return cellEdit{row: row, col: col, value: v}, nil
}

// newFillCmd builds a matrix from flags, fills it, applies --set edits and
// prints either every row or the one selected by --row.
func newFillCmd(a *app) *cobra.Command {
	var (
		row   int
		edits []string
	)
	fillCmd := &cobra.Command{
		Use:   "fill",
		Short: "fill a matrix with base + inc*k and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			parsed := make([]cellEdit, 0, len(edits))
			for _, s := range edits {
				e, err := parseCellEdit(s)
				if err != nil {
					return err
				}
				parsed = append(parsed, e)
			}

			m, err := cfg.newMatrix(cfg.Rows, cfg.Cols)
			if err != nil {
				return err
			}
			if err = m.Fill(cfg.Base, cfg.Inc); err != nil {
				return err
			}
			a.log.Debug("filled",
				zap.String("layout", cfg.Layout),
				zap.Int("rows", cfg.Rows), zap.Int("cols", cfg.Cols),
				zap.Float64("base", cfg.Base), zap.Float64("inc", cfg.Inc))

			for _, e := range parsed {
				if err = m.Set(e.row, e.col, e.value); err != nil {
					return err
				}
				a.log.Debug("set", zap.Int("row", e.row), zap.Int("col", e.col), zap.Float64("value", e.value))
			}

			p := cfg.printer()
			if row >= 0 {
				return p.Row(cmd.OutOrStdout(), m, row)
			}

			return p.Rows(cmd.OutOrStdout(), m)
		},
	}

	flags := fillCmd.Flags()
	flags.Int(keyRows, 3, "number of rows")
	flags.Int(keyCols, 3, "number of columns")
	flags.Float64(keyBase, 1, "value at linear index 0")
	flags.Float64(keyInc, 1, "increment per linear index")
	flags.IntVar(&row, "row", -1, "print only this row (-1 = all)")
	flags.StringArrayVar(&edits, "set", nil, "cell edit ROW,COL=VALUE applied after fill (repeatable)")
	_ = a.v.BindPFlags(flags)

	return fillCmd
}
