package grammar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lri/symbol"
)

// entry pairs a production with its accumulated weight, in the order it was
// first inserted.
type entry struct {
	p Production
	w float64
}

// WCFG is a weighted context-free grammar: an alphabet of terminals Σ, a set
// of non-terminals V (always containing S), and an additively-accumulated
// weight table over productions.
//
// Iteration order over P (via Terminal/Binary) follows insertion order, not
// Go's randomized map order: this reproduces the reference implementation's
// accumulation order, which the fixture expectations in this module's tests
// were generated against.
type WCFG struct {
	start symbol.NT
	sigma map[symbol.Sym]struct{}
	v     map[symbol.NT]struct{}
	order []entry        // insertion-ordered productions
	index map[string]int // production key -> index into order
}

// Option configures a WCFG at construction time.
type Option func(*WCFG)

// WithStart designates the grammar's start non-terminal. Defaults to
// symbol.S ("S") when not supplied.
func WithStart(start symbol.NT) Option {
	return func(g *WCFG) {
		g.start = start
		g.v[start] = struct{}{}
	}
}

// New creates an empty WCFG. By default the start non-terminal is symbol.S;
// pass WithStart to override it.
func New(opts ...Option) *WCFG {
	g := &WCFG{
		start: symbol.S,
		sigma: make(map[symbol.Sym]struct{}),
		v:     make(map[symbol.NT]struct{}),
		index: make(map[string]int),
	}
	g.v[g.start] = struct{}{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Start returns the grammar's designated start non-terminal.
func (g *WCFG) Start() symbol.NT { return g.start }

// Add performs additive insertion: P[(head, body)] += w. Re-adding an
// identical (head, body) pair accumulates onto its existing weight rather
// than replacing it.
//
// Fails with ErrInvalidProduction if ε appears anywhere in body except as
// the sole element (Go's closed Symbol interface already rules out any
// body element that is neither a terminal nor a non-terminal at compile
// time, so the sole remaining malformed shape Add must reject at runtime
// is ε mixed with other symbols).
func (g *WCFG) Add(w float64, head symbol.NT, body ...symbol.Symbol) error {
	if len(body) > 1 {
		for _, elem := range body {
			if s, ok := elem.(symbol.Sym); ok && symbol.IsEpsilon(s) {
				return fmt.Errorf("grammar.Add: ε may only be a sole body element: %w", ErrInvalidProduction)
			}
		}
	}

	g.v[head] = struct{}{}
	for _, elem := range body {
		switch v := elem.(type) {
		case symbol.NT:
			g.v[v] = struct{}{}
		case symbol.Sym:
			if !symbol.IsEpsilon(v) {
				g.sigma[v] = struct{}{}
			}
		}
	}

	p := Production{Head: head, Body: append([]symbol.Symbol(nil), body...)}
	k := p.key()
	if i, ok := g.index[k]; ok {
		g.order[i].w += w
		return nil
	}
	g.index[k] = len(g.order)
	g.order = append(g.order, entry{p: p, w: w})

	return nil
}

// Weight returns the accumulated weight of production p, or 0 if p has
// never been added.
func (g *WCFG) Weight(p Production) float64 {
	if i, ok := g.index[p.key()]; ok {
		return g.order[i].w
	}

	return 0.0
}

// P yields every (production, weight) pair in insertion order.
func (g *WCFG) P(yield func(Production, float64) bool) {
	for _, e := range g.order {
		if !yield(e.p, e.w) {
			return
		}
	}
}

// Terminal yields productions of shape A → a, in insertion order.
func (g *WCFG) Terminal(yield func(Production, float64) bool) {
	for _, e := range g.order {
		if e.p.IsTerminal() {
			if !yield(e.p, e.w) {
				return
			}
		}
	}
}

// Binary yields productions of shape A → B C, in insertion order.
func (g *WCFG) Binary(yield func(Production, float64) bool) {
	for _, e := range g.order {
		if e.p.IsBinary() {
			if !yield(e.p, e.w) {
				return
			}
		}
	}
}

// V returns the grammar's non-terminal set as an unordered slice. Prefer
// OrderedV when a canonical, reproducible order is required (matrix
// indexing, test fixtures).
func (g *WCFG) V() []symbol.NT {
	out := make([]symbol.NT, 0, len(g.v))
	for nt := range g.v {
		out = append(out, nt)
	}

	return out
}

// Sigma returns the grammar's terminal alphabet as an unordered slice.
func (g *WCFG) Sigma() []symbol.Sym {
	out := make([]symbol.Sym, 0, len(g.sigma))
	for s := range g.sigma {
		out = append(out, s)
	}

	return out
}

// OrderedV returns V sorted lexicographically by non-terminal name: the
// canonical index used by matrix-based closure computation and by any code
// that needs a reproducible iteration order across runs.
func (g *WCFG) OrderedV() []symbol.NT {
	v := g.V()
	sort.Slice(v, func(i, j int) bool { return v[i].Name < v[j].Name })

	return v
}

// InCNF reports whether every production in the grammar matches one of the
// three Chomsky Normal Form shapes: S → ε, A → B C (B, C ≠ S), or A → a
// (a ≠ ε).
func (g *WCFG) InCNF() bool {
	for _, e := range g.order {
		p := e.p
		switch {
		case p.Head == g.start && p.IsEpsilon():
			continue
		case p.IsBinary():
			b0 := p.Body[0].(symbol.NT)
			b1 := p.Body[1].(symbol.NT)
			if b0 == g.start || b1 == g.start {
				return false
			}
			continue
		case p.IsTerminal():
			continue
		default:
			return false
		}
	}

	return true
}
