// Package grammartext adapts the plain-text grammar format — one rule per
// line, "<weight>: <lhs> -> <rhs...>" — to a *grammar.WCFG. It is a thin,
// line-oriented scanner: grammar construction and validation are delegated
// entirely to package grammar.
package grammartext
