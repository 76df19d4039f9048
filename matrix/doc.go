// Package matrix provides dense linear-algebra primitives used by the
// left-corner closure computation: a row-major Dense matrix type plus
// LU/QR decomposition, inversion, and spectral-radius estimation.
//
// Matrices here are small and square (indexed by non-terminal count |V|),
// so a flat row-major slice is preferred over a sparse representation.
package matrix
