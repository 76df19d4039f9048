// Package grammar: sentinel error set.
// This file defines ONLY package-level sentinel errors. All grammar
// operations MUST return these sentinels and tests MUST check them via
// errors.Is rather than string comparison.
package grammar

import "errors"

var (
	// ErrInvalidProduction indicates a malformed rule at construction: a
	// non-NT head, or a body element that is neither a non-terminal, a
	// terminal, nor the empty-body marker ε.
	ErrInvalidProduction = errors.New("grammar: invalid production")
)
