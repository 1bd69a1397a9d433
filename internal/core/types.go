package core

import (
	"errors"
	"fmt"
	"sort"
)

// Kind selects one of the supported automaton families.
type Kind uint8

const (
	// KindElementary is the one-dimensional rule-table automaton.
	KindElementary Kind = iota
	// KindLife is the two-dimensional Game of Life on packed cells.
	KindLife
)

var kindNames = map[Kind]string{
	KindElementary: "elementary",
	KindLife:       "life",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a name produced by Kind.String back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

var (
	// ErrUnknownKind is returned when no automaton is registered for a kind.
	ErrUnknownKind = errors.New("unknown automaton kind")
	// ErrKindMismatch is returned when an automaton is asked to step a state
	// of another kind.
	ErrKindMismatch = errors.New("state kind does not match automaton")
)

// Automaton advances a State by one generation.
type Automaton interface {
	Name() string
	Kind() Kind
	// DefaultViewport is the region a fresh state of this kind starts with.
	DefaultViewport() Rect
	// Step mutates s in place. On error s must be left untouched.
	Step(s *State) error
}

// Factory constructs an Automaton using an optional configuration map.
type Factory func(cfg map[string]string) Automaton

var automata = map[Kind]Factory{}

// Register adds an automaton factory for the provided kind.
func Register(kind Kind, f Factory) {
	if f == nil {
		return
	}
	automata[kind] = f
}

// Lookup returns the factory registered for kind.
func Lookup(kind Kind) (Factory, error) {
	f, ok := automata[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	return f, nil
}

// Kinds lists the registered kinds in ascending order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(automata))
	for k := range automata {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
