package grammar

import (
	"strings"

	"github.com/katalvlaran/lri/symbol"
)

// Production is a pair (head, body): head is a non-terminal, body is an
// ordered sequence of terminal/non-terminal symbols. Two productions are
// equal iff their heads and bodies are element-wise equal.
type Production struct {
	Head symbol.NT
	Body []symbol.Symbol
}

// key returns a canonical string identity for p, used to index the
// additive weight table. Distinct productions get distinct keys as long as
// no symbol Name contains the NUL byte used here as the separator.
func (p Production) key() string {
	var b strings.Builder
	b.WriteString(p.Head.Name)
	for _, s := range p.Body {
		b.WriteByte('\x00')
		switch v := s.(type) {
		case symbol.NT:
			b.WriteByte('N')
			b.WriteString(v.Name)
		case symbol.Sym:
			b.WriteByte('T')
			b.WriteString(v.Name)
		}
	}

	return b.String()
}

// IsTerminal reports whether p has shape A → a: a single terminal body
// element, a ≠ ε. ε is excluded because CNF shape (c) requires a ∈ Σ, and
// ε is never a member of Σ (it is only ever valid as the sole body element
// of the distinguished S → ε shape, handled separately by IsEpsilon).
func (p Production) IsTerminal() bool {
	if len(p.Body) != 1 {
		return false
	}
	s, ok := p.Body[0].(symbol.Sym)
	if !ok {
		return false
	}

	return !symbol.IsEpsilon(s)
}

// IsBinary reports whether p has shape A → B C: two non-terminal body
// elements.
func (p Production) IsBinary() bool {
	if len(p.Body) != 2 {
		return false
	}
	_, ok0 := p.Body[0].(symbol.NT)
	_, ok1 := p.Body[1].(symbol.NT)

	return ok0 && ok1
}

// IsEpsilon reports whether p has shape S → ε: a single body element equal
// to symbol.Epsilon.
func (p Production) IsEpsilon() bool {
	if len(p.Body) != 1 {
		return false
	}
	s, ok := p.Body[0].(symbol.Sym)

	return ok && symbol.IsEpsilon(s)
}
