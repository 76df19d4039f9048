// Package grammar implements the weighted context-free grammar container
// (WCFG): productions, additive weight insertion, CNF shape validation, and
// the deterministic query projections (terminal, binary, ordered non-terminal
// index) that the closure and chart packages build on.
//
// A WCFG is append-only during construction and logically immutable once
// handed to a parser: nothing in this package mutates a grammar after it has
// been read by Terminal, Binary, OrderedV, or InCNF.
package grammar
