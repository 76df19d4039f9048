package grammartext

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/lri/grammar"
	"github.com/katalvlaran/lri/symbol"
)

// options holds Parse's configurable behavior.
type options struct {
	commentPrefix string
}

// Option configures Parse.
type Option func(*options)

// WithCommentPrefix overrides the default "#" comment-line prefix.
func WithCommentPrefix(prefix string) Option {
	return func(o *options) { o.commentPrefix = prefix }
}

// Parse reads a grammar from its plain-text form: one rule per line,
// "<weight>: <lhs> -> <rhs...>", blank lines and comment lines skipped.
// Both "->" and "→" are accepted as the arrow token. A token is classified
// as a non-terminal iff it starts with "@" (the "@" is stripped from the
// resulting name) or its first rune is upper-case; otherwise it is a
// terminal.
//
// Fails with ErrBadInput, wrapping the offending line number and text, on
// any line that doesn't match the expected shape.
func Parse(src string, opts ...Option) (*grammar.WCFG, error) {
	cfg := options{commentPrefix: "#"}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := grammar.New()
	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, cfg.commentPrefix) {
			continue
		}
		if err := parseLine(g, line); err != nil {
			return nil, fmt.Errorf("grammartext.Parse: line %d %q: %w", i+1, line, err)
		}
	}

	return g, nil
}

func parseLine(g *grammar.WCFG, line string) error {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return ErrBadInput
	}
	weightStr := strings.TrimSpace(line[:colon])
	w, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		return fmt.Errorf("weight %q: %w", weightStr, ErrBadInput)
	}

	rest := strings.ReplaceAll(strings.TrimSpace(line[colon+1:]), "→", "->")
	arrow := strings.Index(rest, "->")
	if arrow < 0 {
		return ErrBadInput
	}
	lhsStr := strings.TrimSpace(rest[:arrow])
	rhsStr := strings.TrimSpace(rest[arrow+2:])
	if lhsStr == "" {
		return ErrBadInput
	}

	lhs, ok := classify(lhsStr).(symbol.NT)
	if !ok {
		return fmt.Errorf("lhs %q must be a non-terminal: %w", lhsStr, ErrBadInput)
	}

	var body []symbol.Symbol
	for _, tok := range strings.Fields(rhsStr) {
		body = append(body, classify(tok))
	}

	return g.Add(w, lhs, body...)
}

// classify maps a raw token to a terminal or non-terminal symbol per the
// "@"-prefix / uppercase-first-letter convention.
func classify(tok string) symbol.Symbol {
	if strings.HasPrefix(tok, "@") {
		return symbol.NT{Name: strings.TrimPrefix(tok, "@")}
	}
	if r, _ := utf8.DecodeRuneInString(tok); unicode.IsUpper(r) {
		return symbol.NT{Name: tok}
	}

	return symbol.Sym{Name: tok}
}
