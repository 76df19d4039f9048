package chart_test

import (
	"testing"

	"github.com/katalvlaran/lri/chart"
	"github.com/katalvlaran/lri/closure"
	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/symbol"
	"github.com/stretchr/testify/require"
)

// grammarA builds the seed fixture: S → Y Z (1), Y → Z Y (0.5), Y → a
// (0.5), Z → a (1).
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

func TestLRI_GrammarA_PrefixProbabilities(t *testing.T) {
	g := grammarA(t)
	p := chart.NewParser(g)
	in := chart.NewInputString("a a a")

	ppre, err := p.LRI(in)
	require.NoError(t, err)

	S := symbol.NT{Name: "S"}
	require.InDelta(t, 1.0, ppre.Get(0, S, 1), 1e-9)
	require.InDelta(t, 1.0, ppre.Get(0, S, 2), 1e-9)
	require.InDelta(t, 0.5, ppre.Get(0, S, 3), 1e-9)
}

// P4: lri and lri_fast must agree.
func TestLRIFast_AgreesWithLRI_GrammarA(t *testing.T) {
	g := grammarA(t)
	p := chart.NewParser(g)
	in := chart.NewInputString("a a a")

	slow, err := p.LRI(in)
	require.NoError(t, err)
	fast, err := p.LRIFast(in)
	require.NoError(t, err)

	S := symbol.NT{Name: "S"}
	require.InDelta(t, slow.Get(0, S, 1), fast.Get(0, S, 1), 1e-9)
	require.InDelta(t, slow.Get(0, S, 2), fast.Get(0, S, 2), 1e-9)
	require.InDelta(t, slow.Get(0, S, 3), fast.Get(0, S, 3), 1e-9)
}

// P3: cky and cky_fast must agree.
func TestCKYFast_AgreesWithCKY_GrammarA(t *testing.T) {
	g := grammarA(t)
	p := chart.NewParser(g)
	in := chart.NewInputString("a a a")

	slow, err := p.CKY(in)
	require.NoError(t, err)
	fast, err := p.CKYFast(in)
	require.NoError(t, err)

	S := symbol.NT{Name: "S"}
	require.InDelta(t, slow.Get(0, S, 3), fast.Get(0, S, 3), 1e-9)
}

// P6: ppre[k, X, k] = 1 for every k and every non-terminal X.
func TestLRI_EmptyPrefixIdentity(t *testing.T) {
	g := grammarA(t)
	p := chart.NewParser(g)
	in := chart.NewInputString("a a a")

	ppre, err := p.LRI(in)
	require.NoError(t, err)

	for _, nt := range g.OrderedV() {
		for k := 0; k <= in.Len(); k++ {
			require.InDelta(t, 1.0, ppre.Get(k, nt, k), 1e-9)
		}
	}
}

// P5: monotonicity — ppre[i,X,k] >= beta[i,X,k].
func TestLRI_MonotoneOverInside(t *testing.T) {
	g := grammarA(t)
	p := chart.NewParser(g)
	in := chart.NewInputString("a a a")

	beta, err := p.CKY(in)
	require.NoError(t, err)
	ppre, err := p.LRI(in)
	require.NoError(t, err)

	for _, nt := range g.OrderedV() {
		for i := 0; i <= in.Len(); i++ {
			for k := i; k <= in.Len(); k++ {
				require.GreaterOrEqual(t, ppre.Get(i, nt, k)+1e-9, beta.Get(i, nt, k))
			}
		}
	}
}

func TestCKY_RejectsNonCNF(t *testing.T) {
	g := grammar.New()
	S, A, B, C := symbol.NT{Name: "S"}, symbol.NT{Name: "A"}, symbol.NT{Name: "B"}, symbol.NT{Name: "C"}
	require.NoError(t, g.Add(1.0, S, A, B, C))

	p := chart.NewParser(g)
	_, err := p.CKY(chart.NewInputString("a"))
	require.ErrorIs(t, err, chart.ErrNotInCNF)
}

// Grammar C: S → a (1); a degenerate single-production grammar.
func TestCKY_GrammarC_DegenerateCase(t *testing.T) {
	g := grammar.New()
	S := symbol.NT{Name: "S"}
	a := symbol.Sym{Name: "a"}
	require.NoError(t, g.Add(1.0, S, a))

	p := chart.NewParser(g)

	beta1, err := p.CKY(chart.NewInputString("a"))
	require.NoError(t, err)
	require.InDelta(t, 1.0, beta1.Get(0, S, 1), 1e-9)

	ppre1, err := p.LRI(chart.NewInputString("a"))
	require.NoError(t, err)
	require.InDelta(t, 1.0, ppre1.Get(0, S, 1), 1e-9)

	beta2, err := p.CKY(chart.NewInputString("a a"))
	require.NoError(t, err)
	require.InDelta(t, 0.0, beta2.Get(0, S, 2), 1e-9)

	ppre2, err := p.LRI(chart.NewInputString("a a"))
	require.NoError(t, err)
	require.InDelta(t, 0.0, ppre2.Get(0, S, 2), 1e-9)
}

func TestPLC_GrammarA(t *testing.T) {
	g := grammarA(t)
	p := chart.NewParser(g)
	e, err := p.PLC()
	require.NoError(t, err)

	// V ordered [S, Y, Z]; E = [[1,1,0.5],[0,1,0.5],[0,0,1]].
	want := [][]float64{
		{1, 1, 0.5},
		{0, 1, 0.5},
		{0, 0, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := e.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, 1e-9, "E[%d,%d]", i, j)
		}
	}
}

// Grammar D: S → S S (1), S → a (0.9). S → S S violates CNF shape (b)
// (B, C ≠ S), so this grammar is both non-CNF and non-convergent. PLC
// carries no CNF requirement, so it must surface the non-convergence
// directly rather than ErrNotInCNF.
func TestPLC_GrammarD_NonConvergent(t *testing.T) {
	g := grammar.New()
	S := symbol.NT{Name: "S"}
	a := symbol.Sym{Name: "a"}
	require.NoError(t, g.Add(1.0, S, S, S))
	require.NoError(t, g.Add(0.9, S, a))
	require.False(t, g.InCNF())

	p := chart.NewParser(g)
	_, err := p.PLC()
	require.ErrorIs(t, err, closure.ErrNonConvergentGrammar)
}

// Grammar B: a richer, ambiguous fixture exercising multi-way NP ambiguity.
func grammarB(t *testing.T) *grammar.WCFG {
	t.Helper()
	g := grammar.New()
	nt := func(name string) symbol.NT { return symbol.NT{Name: name} }
	sym := func(name string) symbol.Sym { return symbol.Sym{Name: name} }

	S, NP, VP, AdvP := nt("S"), nt("NP"), nt("VP"), nt("AdvP")
	N, V, Det, Adj, Adv := nt("N"), nt("V"), nt("Det"), nt("Adj"), nt("Adv")

	require.NoError(t, g.Add(1, S, NP, VP))
	require.NoError(t, g.Add(0.25, NP, Det, N))
	require.NoError(t, g.Add(0.25, NP, Det, NP))
	require.NoError(t, g.Add(0.25, NP, N, N))
	require.NoError(t, g.Add(0.25, NP, Adj, N))
	require.NoError(t, g.Add(1, VP, V, NP))
	require.NoError(t, g.Add(1, AdvP, Adv, NP))
	require.NoError(t, g.Add(0.5, N, sym("fruit")))
	require.NoError(t, g.Add(0.25, N, sym("flies")))
	require.NoError(t, g.Add(0.25, N, sym("banana")))
	require.NoError(t, g.Add(0.5, V, sym("flies")))
	require.NoError(t, g.Add(0.5, V, sym("like")))
	require.NoError(t, g.Add(1, Det, sym("a")))
	require.NoError(t, g.Add(1, Adj, sym("green")))
	require.NoError(t, g.Add(1, Adv, sym("like")))

	return g
}

func TestCKY_GrammarB_FruitFlies(t *testing.T) {
	g := grammarB(t)
	p := chart.NewParser(g)
	beta, err := p.CKY(chart.NewInputString("fruit flies"))
	require.NoError(t, err)

	N, NP := symbol.NT{Name: "N"}, symbol.NT{Name: "NP"}
	require.InDelta(t, 0.5, beta.Get(0, N, 1), 1e-9)
	require.InDelta(t, 0.25, beta.Get(1, N, 2), 1e-9)
	require.InDelta(t, 0.03125, beta.Get(0, NP, 2), 1e-9)
}

func TestLRI_GrammarB_FruitFlies(t *testing.T) {
	g := grammarB(t)
	p := chart.NewParser(g)
	ppre, err := p.LRI(chart.NewInputString("fruit flies"))
	require.NoError(t, err)

	S := symbol.NT{Name: "S"}
	require.InDelta(t, 0.125, ppre.Get(0, S, 1), 1e-9)
	require.InDelta(t, 0.0625, ppre.Get(1, S, 2), 1e-9)
	require.InDelta(t, 0.03125, ppre.Get(0, S, 2), 1e-9)
}
