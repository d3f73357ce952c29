package symbol

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Symbol is a discrete category of a printed card element
type Symbol int

const (
	None Symbol = iota
	Blank
	Red
	Green
	Blue
	Purple
	Scroll
	Flask
	Feather
	Corner
	Empty
	Starter
)

var names = [...]string{
	None:    "NONE",
	Blank:   "BLANK",
	Red:     "RED",
	Green:   "GREEN",
	Blue:    "BLUE",
	Purple:  "PURPLE",
	Scroll:  "SCROLL",
	Flask:   "FLASK",
	Feather: "FEATHER",
	Corner:  "CORNER",
	Empty:   "EMPTY",
	Starter: "STARTER",
}

// All returns every symbol in declaration order
func All() []Symbol {
	all := make([]Symbol, len(names))
	for i := range names {
		all[i] = Symbol(i)
	}
	return all
}

// Valid reports whether s is one of the declared symbols
func (s Symbol) Valid() bool {
	return s >= None && int(s) < len(names)
}

// String returns the upper-case wire name of the symbol
func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return names[s]
}

// IsColor reports whether s is one of the four resource colors
func (s Symbol) IsColor() bool {
	switch s {
	case Red, Green, Blue, Purple:
		return true
	default:
		return false
	}
}

// IsCountable reports whether s may be counted as a resource.
// Structural markers never are.
func (s Symbol) IsCountable() bool {
	switch s {
	case None, Blank, Corner, Empty, Starter:
		return false
	default:
		return s.Valid()
	}
}

// Parse looks up a symbol by its wire name
func Parse(name string) (Symbol, error) {
	for i, n := range names {
		if n == name {
			return Symbol(i), nil
		}
	}
	if matches := fuzzy.Find(name, names[:]); len(matches) > 0 {
		return None, fmt.Errorf("unknown symbol: %q, did you mean %q?", name, matches[0].Str)
	}
	return None, fmt.Errorf("unknown symbol: %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (s Symbol) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid symbol %d", int(s))
	}
	return []byte(names[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Join renders a list of symbols for messages, e.g. "[RED BLUE]"
func Join(symbols []Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
