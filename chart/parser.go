package chart

import (
	"fmt"

	"github.com/katalvlaran/lri/closure"
	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/matrix"
)

// Parser runs the inside and prefix chart recurrences over a single grammar.
// A Parser does not mutate its grammar; multiple parses may share one
// Parser and run sequentially.
type Parser struct {
	g *grammar.WCFG
}

// NewParser binds a Parser to g. g must remain unmutated for the lifetime
// of the Parser (grammars are treated as read-only once parsing begins).
func NewParser(g *grammar.WCFG) *Parser {
	return &Parser{g: g}
}

// PLC computes the left-corner expectation matrix E = (I − P_L)⁻¹ over the
// parser's grammar, in grammar.OrderedV order. Unlike CKY/LRI, PLC carries
// no CNF requirement: the left-corner relation is defined directly from
// binary productions regardless of whether the rest of the grammar is in
// CNF. Fails with closure.ErrNonConvergentGrammar if the left-corner
// relation diverges.
func (p *Parser) PLC() (matrix.Matrix, error) {
	c, err := closure.Build(p.g)
	if err != nil {
		return nil, fmt.Errorf("chart.PLC: %w", err)
	}

	return c.E(), nil
}
