// Package diagnostic implements the diagnostic categories surfaced to the
// caller by a pipeline run (spec.md §6): Defaulted, Inherited, Promoted,
// Undefined, Unexpected.
package diagnostic

import "fmt"

// Category is one of the diagnostic kinds spec.md §6 enumerates.
type Category int

const (
	Defaulted Category = iota
	Inherited
	Promoted
	Undefined
	Unexpected
)

func (c Category) String() string {
	switch c {
	case Defaulted:
		return "Defaulted"
	case Inherited:
		return "Inherited"
	case Promoted:
		return "Promoted"
	case Undefined:
		return "Undefined"
	case Unexpected:
		return "Unexpected"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single recorded event, anchored to a path.
type Diagnostic struct {
	Category Category
	Path     string
	Detail   string
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Category, d.Path)
	}
	return fmt.Sprintf("%s: %s = %s", d.Category, d.Path, d.Detail)
}

// Set accumulates diagnostics produced during a single pipeline run,
// mirroring the Registry's write-only appender role during phases 3-6
// described in spec.md §5.
type Set struct {
	entries []Diagnostic
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{} }

// Record appends a diagnostic.
func (s *Set) Record(category Category, path, detail string) {
	s.entries = append(s.entries, Diagnostic{Category: category, Path: path, Detail: detail})
}

// All returns every recorded diagnostic, in recording order.
func (s *Set) All() []Diagnostic {
	out := make([]Diagnostic, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByCategory filters recorded diagnostics to one category.
func (s *Set) ByCategory(c Category) []Diagnostic {
	var out []Diagnostic
	for _, e := range s.entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Empty reports whether no diagnostics of category c were recorded.
func (s *Set) Empty(c Category) bool {
	return len(s.ByCategory(c)) == 0
}

// Reset clears all accumulated diagnostics, matching Registry.reset()'s
// responsibility for the per-run diagnostic state (spec.md §4.8).
func (s *Set) Reset() {
	s.entries = nil
}
