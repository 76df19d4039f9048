package closure_test

import (
	"testing"

	"github.com/katalvlaran/lri/closure"
	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/symbol"
	"github.com/stretchr/testify/require"
)

// Grammar A from the seed test fixtures: S → Y Z (1), Y → Z Y (0.5),
// Y → a (0.5), Z → a (1). With V ordered [S, Y, Z], E must equal
// [[1,1,0.5],[0,1,0.5],[0,0,1]].
func grammarA(t *testing.T) *grammar.WCFG {
	t.Helper()
	g := grammar.New()
	S, Y, Z := symbol.NT{Name: "S"}, symbol.NT{Name: "Y"}, symbol.NT{Name: "Z"}
	a := symbol.Sym{Name: "a"}
	require.NoError(t, g.Add(1.0, S, Y, Z))
	require.NoError(t, g.Add(0.5, Y, Z, Y))
	require.NoError(t, g.Add(0.5, Y, a))
	require.NoError(t, g.Add(1.0, Z, a))

	return g
}

func TestBuild_GrammarA_EMatrix(t *testing.T) {
	g := grammarA(t)
	c, err := closure.Build(g)
	require.NoError(t, err)

	S, Y, Z := symbol.NT{Name: "S"}, symbol.NT{Name: "Y"}, symbol.NT{Name: "Z"}
	want := map[[2]symbol.NT]float64{
		{S, S}: 1, {S, Y}: 1, {S, Z}: 0.5,
		{Y, S}: 0, {Y, Y}: 1, {Y, Z}: 0.5,
		{Z, S}: 0, {Z, Y}: 0, {Z, Z}: 1,
	}
	for pair, want := range want {
		got := c.EAt(pair[0], pair[1])
		require.InDelta(t, want, got, 1e-9, "E[%v,%v]", pair[0], pair[1])
	}
}

// Grammar D: S → S S (1), S → a (0.9) — non-convergent (P_L has an entry ≥ 1).
func TestBuild_GrammarD_NonConvergent(t *testing.T) {
	g := grammar.New()
	S := symbol.NT{Name: "S"}
	a := symbol.Sym{Name: "a"}
	require.NoError(t, g.Add(1.0, S, S, S))
	require.NoError(t, g.Add(0.9, S, a))

	_, err := closure.Build(g)
	require.ErrorIs(t, err, closure.ErrNonConvergentGrammar)
	require.Contains(t, err.Error(), "cycle: S -> S")
}

// P8: E·(I−P) = I within numerical tolerance.
func TestBuild_SatisfiesClosureIdentity(t *testing.T) {
	g := grammarA(t)
	c, err := closure.Build(g)
	require.NoError(t, err)

	v := c.V()
	n := len(v)
	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
	}
	g.Binary(func(prod grammar.Production, w float64) bool {
		x := c.VIndex(prod.Head)
		y := c.VIndex(prod.Body[0].(symbol.NT))
		p[x][y] += w
		return true
	})

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				imp := -p[k][j]
				if k == j {
					imp += 1
				}
				sum += c.EAt(v[i], v[k]) * imp
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, sum, 1e-6, "(E*(I-P))[%d,%d]", i, j)
		}
	}
}
