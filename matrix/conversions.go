// SPDX-License-Identifier: MIT

// Package matrix: conversions between storage layouts and tolerance comparison.
package matrix

import (
	"fmt"
	"math"
)

// ToDense copies any Matrix into a new *Dense with the same shape.
// The numeric policy is inherited from a *Dense or *Grid source; other
// implementations get the default policy.
// Errors: ErrNilMatrix; any error returned by the source's Row.
// Complexity: O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	d, err := NewDense(m.Rows(), m.Cols(), policyOf(m))
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	for i := 0; i < d.r; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("ToDense: %w", err)
		}
		copy(d.data[i*d.c:(i+1)*d.c], row)
	}

	return d, nil
}

// ToGrid copies any Matrix into a new *Grid with the same shape.
// Complexity: O(r*c).
func ToGrid(m Matrix) (*Grid, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGrid: %w", err)
	}
	g, err := NewGrid(m.Rows(), m.Cols(), policyOf(m))
	if err != nil {
		return nil, fmt.Errorf("ToGrid: %w", err)
	}
	for i := 0; i < g.r; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("ToGrid: %w", err)
		}
		copy(g.cells[i], row)
	}

	return g, nil
}

// policyOf returns the Option that reproduces m's numeric policy.
func policyOf(m Matrix) Option {
	var finite bool
	switch v := m.(type) {
	case *Dense:
		finite = v.validateNaNInf
	case *Grid:
		finite = v.validateNaNInf
	default:
		finite = DefaultValidateNaNInf
	}
	if finite {
		return WithFiniteOnly()
	}

	return WithAnyFloat()
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances yield ErrNaNInf.
//
// Complexity: O(r*c) time, O(c) space (row copies on the generic path).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, fmt.Errorf("AllClose: %w", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}

	// Dense fast-path: compare flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if !closeEnough(da.data[k], db.data[k], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via Row.
	for i := 0; i < a.Rows(); i++ {
		ra, err := a.Row(i)
		if err != nil {
			return false, fmt.Errorf("AllClose: %w", err)
		}
		rb, err := b.Row(i)
		if err != nil {
			return false, fmt.Errorf("AllClose: %w", err)
		}
		if err = ValidateVecLen(ra, len(rb)); err != nil {
			return false, fmt.Errorf("AllClose: %w", err)
		}
		for j := range ra {
			if !closeEnough(ra[j], rb[j], rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

func closeEnough(av, bv, rtol, atol float64) bool {
	if av == bv { // covers equal infinities
		return true
	}
	if math.IsInf(av, 0) || math.IsInf(bv, 0) {
		return false
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
