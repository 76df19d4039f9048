// Package lri computes prefix probabilities and inside weights of strings
// under a weighted context-free grammar in Chomsky Normal Form.
//
// It implements two dynamic-programming recurrences over a weighted CFG:
//
//   - Inside (CKY): the sum of derivation weights for every span and every
//     non-terminal deriving exactly that span.
//   - Left-corner prefix (LRI): the sum of derivation weights for every
//     span and non-terminal deriving any string having that span as a
//     prefix, following Jelinek & Lafferty (1991) and the Θ(n³|V|³)
//     reformulation of Nowak & Cotterell (2023).
//
// Everything is organized under leaf packages:
//
//	symbol/      — terminal and non-terminal atoms
//	grammar/     — the weighted CFG container: additive insertion, CNF checks
//	grammartext/ — plain-text grammar format adapter
//	matrix/      — dense linear algebra: LU, QR, inversion, spectral radius
//	closure/     — the left-corner closure E = (I − P_L)⁻¹ and E2 tensor
//	chart/       — the CKY and LRI chart engines (Parser)
//
// Construct a grammar, bind a Parser, and query a chart:
//
//	g := grammar.New()
//	_ = g.Add(1.0, symbol.NT{Name: "S"}, symbol.NT{Name: "Y"}, symbol.NT{Name: "Z"})
//	p := chart.NewParser(g)
//	beta, err := p.CKY(chart.NewInputString("a a a"))
package lri
