package grammar_test

import (
	"testing"

	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/symbol"
	"github.com/stretchr/testify/require"
)

func TestAdd_RejectsMixedEpsilonBody(t *testing.T) {
	g := grammar.New()
	S, A := symbol.NT{Name: "S"}, symbol.NT{Name: "A"}
	err := g.Add(1.0, S, symbol.Epsilon, A)
	require.ErrorIs(t, err, grammar.ErrInvalidProduction)
}

func TestAdd_WellFormedRulesSucceed(t *testing.T) {
	g := grammar.New()
	err := g.Add(1.0, symbol.NT{Name: "S"}, symbol.NT{Name: "A"}, symbol.NT{Name: "B"})
	require.NoError(t, err)
}

func TestAdditiveInsertion(t *testing.T) {
	g := grammar.New()
	S, A, B := symbol.NT{Name: "S"}, symbol.NT{Name: "A"}, symbol.NT{Name: "B"}
	require.NoError(t, g.Add(0.5, S, A, B))
	require.NoError(t, g.Add(0.5, S, A, B))
	require.NoError(t, g.Add(0.5, S, A, B))

	p := grammar.Production{Head: S, Body: []symbol.Symbol{A, B}}
	require.InDelta(t, 1.5, g.Weight(p), 1e-12)
}

func TestOrderedV_IsLexicographic(t *testing.T) {
	g := grammar.New()
	S, Y, Z := symbol.NT{Name: "S"}, symbol.NT{Name: "Y"}, symbol.NT{Name: "Z"}
	require.NoError(t, g.Add(1.0, S, Y, Z))
	require.NoError(t, g.Add(0.5, Y, Z, Y))
	require.NoError(t, g.Add(0.5, Y, symbol.Sym{Name: "a"}))
	require.NoError(t, g.Add(1.0, Z, symbol.Sym{Name: "a"}))

	ordered := g.OrderedV()
	names := make([]string, len(ordered))
	for i, nt := range ordered {
		names[i] = nt.Name
	}
	require.Equal(t, []string{"S", "Y", "Z"}, names)
}

func TestInCNF_GrammarA(t *testing.T) {
	g := buildGrammarA()
	require.True(t, g.InCNF())
}

func TestInCNF_RejectsTernaryBody(t *testing.T) {
	g := grammar.New()
	S, A, B, C := symbol.NT{Name: "S"}, symbol.NT{Name: "A"}, symbol.NT{Name: "B"}, symbol.NT{Name: "C"}
	require.NoError(t, g.Add(1.0, S, A, B, C))
	require.False(t, g.InCNF())
}

func TestInCNF_RejectsStartOnRHS(t *testing.T) {
	g := grammar.New()
	S, A := symbol.NT{Name: "S"}, symbol.NT{Name: "A"}
	require.NoError(t, g.Add(1.0, A, S, S))
	require.False(t, g.InCNF())
}

// ε is only a valid body under the start symbol; A → ε for a non-start A
// matches none of CNF's three shapes.
func TestInCNF_RejectsEpsilonUnderNonStart(t *testing.T) {
	g := grammar.New()
	A := symbol.NT{Name: "A"}
	require.NoError(t, g.Add(1.0, A, symbol.Epsilon))
	require.False(t, g.InCNF())
}

func TestTerminalAndBinaryProjections(t *testing.T) {
	g := buildGrammarA()

	var terms, bins int
	g.Terminal(func(grammar.Production, float64) bool { terms++; return true })
	g.Binary(func(grammar.Production, float64) bool { bins++; return true })

	require.Equal(t, 2, terms) // Y → a, Z → a
	require.Equal(t, 2, bins)  // S → Y Z, Y → Z Y
}

// buildGrammarA constructs the spec's seed Grammar A:
// S → Y Z (1), Y → Z Y (0.5), Y → a (0.5), Z → a (1).
func buildGrammarA() *grammar.WCFG {
	g := grammar.New()
	S, Y, Z := symbol.NT{Name: "S"}, symbol.NT{Name: "Y"}, symbol.NT{Name: "Z"}
	a := symbol.Sym{Name: "a"}
	_ = g.Add(1.0, S, Y, Z)
	_ = g.Add(0.5, Y, Z, Y)
	_ = g.Add(0.5, Y, a)
	_ = g.Add(1.0, Z, a)

	return g
}
