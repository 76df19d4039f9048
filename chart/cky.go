package chart

import (
	"fmt"

	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/symbol"
)

// CKY computes the inside chart β over in via the reference recurrence:
// span-length-ordered accumulation of terminal and binary production
// weights. Requires the parser's grammar to be in CNF.
//
// The full scalar result for "does this grammar derive exactly in" is
// chart.Get(0, g.Start(), in.Len()).
func (p *Parser) CKY(in Input) (*Chart, error) {
	if !p.g.InCNF() {
		return nil, fmt.Errorf("chart.CKY: %w", ErrNotInCNF)
	}
	n := in.Len()
	beta := newChart()

	start := p.g.Start()
	epsW := p.g.Weight(grammar.Production{Head: start, Body: []symbol.Symbol{symbol.Epsilon}})
	beta.set(0, start, 0, epsW)

	p.g.Terminal(func(prod grammar.Production, w float64) bool {
		a := prod.Body[0].(symbol.Sym)
		for k := 0; k < n; k++ {
			if in.At(k) == a {
				beta.add(k, prod.Head, k+1, w)
			}
		}

		return true
	})

	for l := 2; l <= n; l++ {
		for i := 0; i <= n-l; i++ {
			k := i + l
			for j := i + 1; j < k; j++ {
				p.g.Binary(func(prod grammar.Production, w float64) bool {
					y := prod.Body[0].(symbol.NT)
					z := prod.Body[1].(symbol.NT)
					bij := beta.Get(i, y, j)
					if bij == 0 {
						return true
					}
					bjk := beta.Get(j, z, k)
					if bjk == 0 {
						return true
					}
					beta.add(i, prod.Head, k, bij*bjk*w)

					return true
				})
			}
		}
	}

	return beta, nil
}

// CKYFast computes the same β chart as CKY, reordered for dense grammars:
// it precomputes W[X,Y,Z] = w(X→Y Z), accumulates γ = Σ_j β[i,Y,j]·β[j,Z,k]
// once per (Y,Z) pair, then distributes γ·W[X,Y,Z] across every X. This
// wins over CKY when the binary-production set is dense over V³.
func (p *Parser) CKYFast(in Input) (*Chart, error) {
	if !p.g.InCNF() {
		return nil, fmt.Errorf("chart.CKYFast: %w", ErrNotInCNF)
	}
	n := in.Len()
	beta := newChart()

	start := p.g.Start()
	epsW := p.g.Weight(grammar.Production{Head: start, Body: []symbol.Symbol{symbol.Epsilon}})
	beta.set(0, start, 0, epsW)

	p.g.Terminal(func(prod grammar.Production, w float64) bool {
		a := prod.Body[0].(symbol.Sym)
		for k := 0; k < n; k++ {
			if in.At(k) == a {
				beta.add(k, prod.Head, k+1, w)
			}
		}

		return true
	})

	w := binaryWeightIndex(p.g)
	v := p.g.OrderedV()

	for l := 2; l <= n; l++ {
		for i := 0; i <= n-l; i++ {
			k := i + l
			for _, y := range v {
				for _, z := range v {
					var gamma float64
					for j := i + 1; j < k; j++ {
						bij := beta.Get(i, y, j)
						if bij == 0 {
							continue
						}
						bjk := beta.Get(j, z, k)
						if bjk == 0 {
							continue
						}
						gamma += bij * bjk
					}
					if gamma == 0 {
						continue
					}
					for _, x := range v {
						wxyz := w[wKey{x, y, z}]
						if wxyz == 0 {
							continue
						}
						beta.add(i, x, k, gamma*wxyz)
					}
				}
			}
		}
	}

	return beta, nil
}

// wKey indexes a binary production by (head, first body symbol, second
// body symbol), used to build a dense lookup for CKYFast/LRIFast.
type wKey struct {
	x, y, z symbol.NT
}

// binaryWeightIndex builds W[X,Y,Z] = w(X→Y Z) from g's binary productions.
func binaryWeightIndex(g *grammar.WCFG) map[wKey]float64 {
	w := make(map[wKey]float64)
	g.Binary(func(prod grammar.Production, weight float64) bool {
		w[wKey{prod.Head, prod.Body[0].(symbol.NT), prod.Body[1].(symbol.NT)}] += weight

		return true
	})

	return w
}
