// Package chart: sentinel error set.
package chart

import "errors"

var (
	// ErrNotInCNF indicates a parse operation was called on a grammar that
	// is not in Chomsky Normal Form.
	ErrNotInCNF = errors.New("chart: grammar is not in CNF")
)
