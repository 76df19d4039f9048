// Package chart implements the inside (CKY) and prefix (LRI) dynamic
// programming recurrences over a weighted CNF grammar: Parser exposes CKY,
// CKYFast, LRI, LRIFast, and PLC, matching the external interface of the
// reference implementation this module reproduces.
//
// Complexity: CKY/CKYFast are Θ(n³|V|³) in the worst case (Θ(n³) span
// decompositions × Θ(|V|³) binary-production combinations); LRI runs its
// split recurrence against the precomputed E2 tensor in Θ(n³|V|³), while
// LRIFast first folds β and E into the δ tensor (Θ(n²|V|³)) so that its
// split recurrence costs Θ(n³|V|²). n is the input length, |V| the
// grammar's non-terminal count.
// Determinism: within one parse call, chart cells are filled in strictly
// increasing span length; accumulation order across productions and splits
// within a span follows grammar.OrderedV and the grammar's insertion order,
// so results are bit-reproducible for a fixed grammar and input.
package chart
