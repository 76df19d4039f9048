// Package closure: sentinel error set.
package closure

import "errors"

var (
	// ErrNonConvergentGrammar indicates that the left-corner relation
	// matrix P_L has spectral radius ≥ 1 (or, failing that pre-check,
	// that (I − P_L) could not be inverted by either LU or QR): the
	// left-spine derivation sum diverges and E is not well-defined.
	ErrNonConvergentGrammar = errors.New("closure: non-convergent grammar")
)
