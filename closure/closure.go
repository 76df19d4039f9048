package closure

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/matrix"
	"github.com/katalvlaran/lri/matrix/ops"
	"github.com/katalvlaran/lri/symbol"
)

// spectralTolerance bounds the power-iteration convergence check used by
// the non-convergence pre-check below.
const spectralTolerance = 1e-9

// spectralMaxIter bounds the power-iteration sweep count.
const spectralMaxIter = 10_000

// divergenceMargin is how far below 1 the estimated spectral radius of P_L
// must stay for the grammar to be treated as convergent. Power iteration is
// an estimate, not an exact eigenvalue, so an estimate that falls just short
// of 1 is still rejected as divergent.
const divergenceMargin = 1e-9

// Closure holds the left-corner expectation matrix E = (I − P_L)⁻¹ and the
// derived E2 tensor for a single grammar, indexed by grammar.OrderedV.
type Closure struct {
	v    []symbol.NT
	vIdx map[symbol.NT]int
	e    matrix.Matrix
	e2   []float64 // flat |V|³, index (x*n+y)*n+z
}

// Build computes the left-corner closure of g. It fails with
// ErrNonConvergentGrammar if the left-corner relation's spectral radius is
// ≥ 1 (the reflexive-transitive closure diverges), or if neither the LU nor
// the QR solver can invert (I − P_L).
func Build(g *grammar.WCFG) (*Closure, error) {
	v := g.OrderedV()
	n := len(v)
	vIdx := make(map[symbol.NT]int, n)
	for i, nt := range v {
		vIdx[nt] = i
	}

	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("closure.Build: %w", err)
	}
	g.Binary(func(prod grammar.Production, w float64) bool {
		x := vIdx[prod.Head]
		y := vIdx[prod.Body[0].(symbol.NT)]
		cur, _ := p.At(x, y)
		_ = p.Set(x, y, cur+w)
		return true
	})

	if n > 0 {
		radius, err := ops.SpectralRadius(p, spectralTolerance, spectralMaxIter)
		if err == nil && radius >= 1.0-divergenceMargin {
			msg := fmt.Sprintf("closure.Build: spectral radius %.6g >= 1", radius)
			if h := cycleHint(v, p); h != "" {
				msg += " (" + h + ")"
			}
			return nil, fmt.Errorf("%s: %w", msg, ErrNonConvergentGrammar)
		}
		// A non-convergent power iteration is not itself proof of
		// divergence (it may just mean a degenerate starting vector);
		// fall through and let the inversion itself be the final judge.
	}

	e, err := invertIMinusP(p, n)
	if err != nil {
		msg := "closure.Build"
		if h := cycleHint(v, p); h != "" {
			msg += " (" + h + ")"
		}
		return nil, fmt.Errorf("%s: %w", msg, ErrNonConvergentGrammar)
	}
	// For a non-negative P_L, (I − P_L)⁻¹ is entrywise non-negative exactly
	// when ρ(P_L) < 1, so a negative entry marks a divergent closure that the
	// power-iteration pre-check missed (e.g. a periodic P_L).
	var lo, hi float64
	for i := 0; i < n*n; i++ {
		ev, _ := e.At(i/n, i%n)
		lo, hi = min(lo, ev), max(hi, -ev, ev)
	}
	if lo < -divergenceMargin*hi {
		msg := "closure.Build: (I − P_L)⁻¹ has negative entries"
		if h := cycleHint(v, p); h != "" {
			msg += " (" + h + ")"
		}
		return nil, fmt.Errorf("%s: %w", msg, ErrNonConvergentGrammar)
	}

	c := &Closure{v: v, vIdx: vIdx, e: e}
	c.buildE2(g)

	return c, nil
}

// invertIMinusP computes (I - P)^-1, trying the LU-based solver first and
// falling back to QR if LU reports a singular pivot (a near-singular matrix
// that slipped past the spectral pre-check under floating-point rounding).
func invertIMinusP(p matrix.Matrix, n int) (matrix.Matrix, error) {
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	im := subtract(id, p, n)

	inv, err := ops.Inverse(im)
	if err == nil {
		return inv, nil
	}

	// Fallback: solve (I-P)x_j = e_j column by column via QR.
	qt, r, qerr := ops.QR(im)
	if qerr != nil {
		return nil, err
	}
	out, oerr := matrix.NewDense(n, n)
	if oerr != nil {
		return nil, oerr
	}
	for col := 0; col < n; col++ {
		// b = Qt·e_col is column `col` of Qt (Qt is already Qᵀ, so this
		// is exactly the Qᵀb term SolveUpperTriangular's R·x=Qᵀb needs).
		b := make([]float64, n)
		for i := 0; i < n; i++ {
			qv, _ := qt.At(i, col)
			b[i] = qv
		}
		x, serr := ops.SolveUpperTriangular(r, b)
		if serr != nil {
			return nil, serr
		}
		for i := 0; i < n; i++ {
			_ = out.Set(i, col, x[i])
		}
	}

	return out, nil
}

// cycleHint searches the diagnostic graph over non-terminals (an edge
// X → Y wherever P_L[X,Y] ≠ 0) for a cycle reachable from some node, and
// renders it as "cycle: A -> B -> A" for inclusion in a non-convergence
// error. Returns "" if no cycle is found.
func cycleHint(v []symbol.NT, p matrix.Matrix) string {
	n := len(v)
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := make([]int, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	var cycleAt = -1
	var dfs func(u int) bool
	dfs = func(u int) bool {
		color[u] = grey
		for w := 0; w < n; w++ {
			val, _ := p.At(u, w)
			if val == 0 {
				continue
			}
			switch color[w] {
			case white:
				parent[w] = u
				if dfs(w) {
					return true
				}
			case grey:
				parent[w] = u
				cycleAt = w
				return true
			}
		}
		color[u] = black
		return false
	}

	for start := 0; start < n; start++ {
		if color[start] != white {
			continue
		}
		if dfs(start) {
			break
		}
	}
	if cycleAt < 0 {
		return ""
	}

	var names []string
	for u := parent[cycleAt]; u != cycleAt; u = parent[u] {
		names = append(names, v[u].Name)
	}
	names = append(names, v[cycleAt].Name)
	// names is tail-to-head; reverse into head-to-tail and close the loop.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	names = append(names, v[cycleAt].Name)

	return "cycle: " + strings.Join(names, " -> ")
}

// subtract returns I - P as a fresh Dense matrix.
func subtract(id, p matrix.Matrix, n int) matrix.Matrix {
	out, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			iv, _ := id.At(i, j)
			pv, _ := p.At(i, j)
			_ = out.Set(i, j, iv-pv)
		}
	}

	return out
}

// buildE2 fills E2[X,Y,Z] = Σ_Y' E[X,Y']·w(Y'→Y Z), iterating binary
// productions once per outer X as specified.
func (c *Closure) buildE2(g *grammar.WCFG) {
	n := len(c.v)
	c.e2 = make([]float64, n*n*n)
	for xi := 0; xi < n; xi++ {
		g.Binary(func(prod grammar.Production, w float64) bool {
			y2 := c.vIdx[prod.Head]
			y := c.vIdx[prod.Body[0].(symbol.NT)]
			z := c.vIdx[prod.Body[1].(symbol.NT)]
			e, _ := c.e.At(xi, y2)
			if e == 0 {
				return true
			}
			c.e2[(xi*n+y)*n+z] += e * w
			return true
		})
	}
}

// E returns the |V|×|V| left-corner expectation matrix.
func (c *Closure) E() matrix.Matrix { return c.e }

// EAt returns E[X,Y], defaulting to 0 (the default-zero convention) when X
// or Y is not present in the grammar's non-terminal set.
func (c *Closure) EAt(x, y symbol.NT) float64 {
	xi, ok1 := c.vIdx[x]
	yi, ok2 := c.vIdx[y]
	if !ok1 || !ok2 {
		return 0
	}
	v, _ := c.e.At(xi, yi)

	return v
}

// E2At returns E2[X,Y,Z], defaulting to 0 for non-terminals outside V.
func (c *Closure) E2At(x, y, z symbol.NT) float64 {
	xi, ok1 := c.vIdx[x]
	yi, ok2 := c.vIdx[y]
	zi, ok3 := c.vIdx[z]
	if !ok1 || !ok2 || !ok3 {
		return 0
	}
	n := len(c.v)

	return c.e2[(xi*n+yi)*n+zi]
}

// V returns the canonical non-terminal ordering this closure was built
// against (grammar.OrderedV at the time of Build).
func (c *Closure) V() []symbol.NT { return c.v }

// VIndex returns the 0-based index of non-terminal nt in this closure's
// canonical ordering, or -1 if nt is not a member.
func (c *Closure) VIndex(nt symbol.NT) int {
	if i, ok := c.vIdx[nt]; ok {
		return i
	}

	return -1
}
