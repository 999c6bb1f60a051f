// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the resolved options to matrix_test without widening
// the production API. Compiled only with the package's tests.

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts the way NewDense/NewGrid do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}

// IsNonFinite exposes isNonFinite.
var IsNonFinite = isNonFinite
