package chart

import "github.com/katalvlaran/lri/symbol"

// cell identifies a chart entry by its (start, non-terminal, end) triple.
type cell struct {
	i int
	x symbol.NT
	k int
}

// Chart is a default-zero mapping keyed by (start-index, non-terminal,
// end-index). Absent keys read as 0; callers never need a presence check.
type Chart struct {
	m map[cell]float64
}

// newChart returns an empty chart.
func newChart() *Chart {
	return &Chart{m: make(map[cell]float64)}
}

// Get returns the weight stored at (i, x, k), defaulting to 0.
func (c *Chart) Get(i int, x symbol.NT, k int) float64 {
	return c.m[cell{i, x, k}]
}

// add accumulates delta onto the weight stored at (i, x, k).
func (c *Chart) add(i int, x symbol.NT, k int, delta float64) {
	c.m[cell{i, x, k}] += delta
}

// set overwrites the weight stored at (i, x, k).
func (c *Chart) set(i int, x symbol.NT, k int, v float64) {
	c.m[cell{i, x, k}] = v
}
