// Package symbol defines the atomic value types shared by a grammar and its
// charts: terminal symbols (Sym) and non-terminals (NT).
//
// Both are plain, comparable structs wrapping a name string, so Go's built-in
// == and map-key semantics give value equality and hashing for free — no
// custom Equal/Hash methods are needed the way a hosted language without
// value-typed structs would require.
package symbol
