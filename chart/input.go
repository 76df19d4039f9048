package chart

import (
	"strings"

	"github.com/katalvlaran/lri/symbol"
)

// Input is an ordered sequence of terminal tokens to be parsed.
type Input struct {
	toks []symbol.Sym
}

// NewInput wraps an already-tokenized sequence of terminals.
func NewInput(toks ...symbol.Sym) Input {
	return Input{toks: append([]symbol.Sym(nil), toks...)}
}

// NewInputString splits s on ASCII whitespace into terminal tokens.
func NewInputString(s string) Input {
	fields := strings.Fields(s)
	toks := make([]symbol.Sym, len(fields))
	for i, f := range fields {
		toks[i] = symbol.Sym{Name: f}
	}

	return Input{toks: toks}
}

// Len returns the number of tokens, N, in the input.
func (in Input) Len() int { return len(in.toks) }

// At returns the token at sequence position k (0-based); the token at
// position k occupies the half-open span [k, k+1).
func (in Input) At(k int) symbol.Sym { return in.toks[k] }
