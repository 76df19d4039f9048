// Package closure builds the one-step left-corner relation matrix P_L over a
// grammar's non-terminals and its reflexive-transitive closure
// E = (I − P_L)⁻¹, plus the E2 tensor the fast LRI recurrence needs.
//
// Complexity: O(|V|³) for the matrix inversion (dominates the O(|V|²)
// matrix construction and O(|V|·|binary productions|) E2 build).
// Determinism: V is indexed via grammar.OrderedV, so P_L's row/column order
// — and therefore E's floating-point accumulation — is reproducible across
// runs for an equal grammar.
package closure
