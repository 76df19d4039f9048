package chart

import (
	"fmt"

	"github.com/katalvlaran/lri/closure"
	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/symbol"
)

// LRI computes the prefix chart ppre via the original Jelinek & Lafferty
// (1991) recurrence, evaluated against the E2 tensor that closure.Build
// precomputes: Θ(n³|V|³) over the splits. Requires the parser's grammar to
// be in CNF.
//
// ppre[k, X, k] = 1 for every k, X is seeded before any other accumulation,
// per the empty-prefix identity.
func (p *Parser) LRI(in Input) (*Chart, error) {
	if !p.g.InCNF() {
		return nil, fmt.Errorf("chart.LRI: %w", ErrNotInCNF)
	}
	n := in.Len()
	v := p.g.OrderedV()

	ppre := newChart()
	for k := 0; k <= n; k++ {
		for _, x := range v {
			ppre.set(k, x, k, 1.0)
		}
	}

	beta, err := p.CKY(in)
	if err != nil {
		return nil, fmt.Errorf("chart.LRI: %w", err)
	}
	c, err := closure.Build(p.g)
	if err != nil {
		return nil, fmt.Errorf("chart.LRI: %w", err)
	}

	for _, x := range v {
		for k := 0; k < n; k++ {
			p.g.Terminal(func(prod grammar.Production, w float64) bool {
				y := prod.Head
				a := prod.Body[0].(symbol.Sym)
				if a == in.At(k) {
					ppre.add(k, x, k+1, c.EAt(x, y)*w)
				}

				return true
			})
		}
	}

	for l := 2; l <= n; l++ {
		for i := 0; i <= n-l; i++ {
			k := i + l
			for j := i + 1; j < k; j++ {
				for _, x := range v {
					for _, y := range v {
						bij := beta.Get(i, y, j)
						if bij == 0 {
							continue
						}
						for _, z := range v {
							e2 := c.E2At(x, y, z)
							if e2 == 0 {
								continue
							}
							pjk := ppre.Get(j, z, k)
							if pjk == 0 {
								continue
							}
							ppre.add(i, x, k, e2*bij*pjk)
						}
					}
				}
			}
		}
	}

	return ppre, nil
}

// LRIFast computes the same ppre chart as LRI via Nowak & Cotterell
// (2023)'s Θ(n³|V|³) reformulation: it precomputes, for every (i,j) pair,
// γ[i,j,X,Z] = Σ_Y w(X→Y Z)·β[i,Y,j] and δ[i,j,X,Z] = Σ_Y E[X,Y]·γ[i,j,Y,Z],
// then fills ppre with a single Σ_Z δ[i,j,X,Z]·ppre[j,Z,k] term per split.
func (p *Parser) LRIFast(in Input) (*Chart, error) {
	if !p.g.InCNF() {
		return nil, fmt.Errorf("chart.LRIFast: %w", ErrNotInCNF)
	}
	n := in.Len()
	v := p.g.OrderedV()
	nv := len(v)
	vIdx := make(map[symbol.NT]int, nv)
	for i, nt := range v {
		vIdx[nt] = i
	}

	ppre := newChart()
	for k := 0; k <= n; k++ {
		for _, x := range v {
			ppre.set(k, x, k, 1.0)
		}
	}

	beta, err := p.CKYFast(in)
	if err != nil {
		return nil, fmt.Errorf("chart.LRIFast: %w", err)
	}
	c, err := closure.Build(p.g)
	if err != nil {
		return nil, fmt.Errorf("chart.LRIFast: %w", err)
	}

	// Binary productions as ([x,y,z] index, weight), in insertion order so
	// that γ accumulates in a fixed order.
	type binEntry struct {
		t [3]int
		w float64
	}
	var w []binEntry
	p.g.Binary(func(prod grammar.Production, weight float64) bool {
		x := vIdx[prod.Head]
		y := vIdx[prod.Body[0].(symbol.NT)]
		z := vIdx[prod.Body[1].(symbol.NT)]
		w = append(w, binEntry{[3]int{x, y, z}, weight})

		return true
	})

	idx4 := func(i, j, x, z int) int { return ((i*n+j)*nv+x)*nv + z }
	var gamma, delta []float64
	if n > 0 {
		gamma = make([]float64, n*n*nv*nv)
		delta = make([]float64, n*n*nv*nv)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for _, be := range w {
				t, weight := be.t, be.w
				bij := beta.Get(i, v[t[1]], j)
				if bij == 0 {
					continue
				}
				gamma[idx4(i, j, t[0], t[2])] += weight * bij
			}
			for xi := 0; xi < nv; xi++ {
				for yi := 0; yi < nv; yi++ {
					e := c.EAt(v[xi], v[yi])
					if e == 0 {
						continue
					}
					for zi := 0; zi < nv; zi++ {
						gyz := gamma[idx4(i, j, yi, zi)]
						if gyz == 0 {
							continue
						}
						delta[idx4(i, j, xi, zi)] += e * gyz
					}
				}
			}
		}
	}

	for _, x := range v {
		for i := 0; i < n; i++ {
			p.g.Terminal(func(prod grammar.Production, weight float64) bool {
				y := prod.Head
				a := prod.Body[0].(symbol.Sym)
				if a == in.At(i) {
					ppre.add(i, x, i+1, c.EAt(x, y)*weight)
				}

				return true
			})
		}
	}

	for l := 2; l <= n; l++ {
		for i := 0; i <= n-l; i++ {
			k := i + l
			for j := i + 1; j < k; j++ {
				for xi, x := range v {
					for zi, z := range v {
						d := delta[idx4(i, j, xi, zi)]
						if d == 0 {
							continue
						}
						pjk := ppre.Get(j, z, k)
						if pjk == 0 {
							continue
						}
						ppre.add(i, x, k, d*pjk)
					}
				}
			}
		}
	}

	return ppre, nil
}
