// Package grammartext: sentinel error set.
package grammartext

import "errors"

var (
	// ErrBadInput indicates a malformed line in the grammar text source.
	ErrBadInput = errors.New("grammartext: malformed grammar line")
)
