package symbol

// Symbol is the closed set of atoms that may appear in a production body:
// a terminal (Sym) or a non-terminal (NT). It exists only to let grammar
// and chart code accept "either kind of symbol" without resorting to
// interface{}.
type Symbol interface {
	symbol()
	// String returns the symbol's name.
	String() string
}

// Sym is a terminal atom. Equality is by Name, which Go's == already gives
// a plain struct for free.
type Sym struct {
	Name string
}

func (Sym) symbol() {}

// String returns the terminal's name.
func (s Sym) String() string { return s.Name }

// NT is a non-terminal atom. Equality is by Name.
type NT struct {
	Name string
}

func (NT) symbol() {}

// String returns the non-terminal's name.
func (n NT) String() string { return n.Name }

// Epsilon is the distinguished empty-string terminal. It may appear only as
// the sole body element of a start production S → ε; it is never a member
// of Σ.
var Epsilon = Sym{Name: "ε"}

// IsEpsilon reports whether s is the distinguished empty-string symbol.
func IsEpsilon(s Sym) bool { return s == Epsilon }

// S is the conventional start non-terminal name used by grammar.New's
// default. It is a convenience value, not a hard-coded semantic default:
// per-grammar start symbols are always read from the grammar itself.
var S = NT{Name: "S"}
