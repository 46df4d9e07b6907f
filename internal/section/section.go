// Package section implements Section and Body from spec.md §4.7: an
// ordered name-keyed map of BasicTypes forming a model's templates area
// or its real options, plus the instance-side operations Body adds on
// top, grounded on ygot's container.go/list.go schema-walking shape.
package section

import (
	"github.com/openconfig/aceconf/internal/arity"
	"github.com/openconfig/aceconf/internal/basictype"
	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
)

// Section is an ordered name-keyed map of BasicTypes, used both for a
// model's body and its templates area.
type Section struct {
	types map[string]*basictype.BasicType
	order []string
}

// New returns an empty Section.
func New() *Section { return &Section{types: map[string]*basictype.BasicType{}} }

// Add inserts or replaces a type by name.
func (s *Section) Add(t *basictype.BasicType) {
	if _, exists := s.types[t.Name()]; !exists {
		s.order = append(s.order, t.Name())
	}
	s.types[t.Name()] = t
}

// Get looks up a type by name.
func (s *Section) Get(name string) (*basictype.BasicType, bool) {
	t, ok := s.types[name]
	return t, ok
}

// Names returns the option names in insertion order.
func (s *Section) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of options in the section.
func (s *Section) Len() int { return len(s.order) }

func named(name string) path.Path {
	p, _ := path.Parse("$." + name)
	return p
}

// FromTree builds a Section from an Object Value mapping option names to
// their model-file definitions, per spec.md §6's "Body and templates
// each map an option name to an object carrying at least kind, arity,
// doc."
func FromTree(v *tree.Value) (*Section, error) {
	if v.Kind() != tree.Object {
		return nil, errs.New(errs.AttributeSchema, "", "section must be an object")
	}
	s := New()
	for _, name := range v.Keys() {
		child, _ := v.Get1(named(name))
		t, err := basictype.FromTree(name, child)
		if err != nil {
			return nil, err
		}
		s.Add(t)
	}
	return s, nil
}

// CheckModel validates every child option (spec.md §4.7).
func (s *Section) CheckModel() error {
	for _, name := range s.order {
		if err := s.types[name].CheckModel(); err != nil {
			return err
		}
	}
	return nil
}

// FlattenModel recursively flattens every child option.
func (s *Section) FlattenModel() error {
	for _, name := range s.order {
		if err := s.types[name].FlattenModel(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateModel recursively validates every child option.
func (s *Section) ValidateModel() error {
	for _, name := range s.order {
		if err := s.types[name].ValidateModel(); err != nil {
			return err
		}
	}
	return nil
}

// Merge combines other into s: names present in both must be mergeable
// (same kind, compatible arity and attributes); names only in other are
// inserted, per spec.md §4.7.
func (s *Section) Merge(other *Section) error {
	if other == nil {
		return nil
	}
	for _, name := range other.order {
		ot := other.types[name]
		if et, ok := s.types[name]; ok {
			if err := et.Merge(ot); err != nil {
				return err
			}
			continue
		}
		s.Add(ot.Clone(name))
	}
	return nil
}

// Override applies other on top of s, the composition a Model performs
// after merging its includes (spec.md §4.7).
func (s *Section) Override(other *Section) error {
	if other == nil {
		return nil
	}
	for _, name := range other.order {
		ot := other.types[name]
		if et, ok := s.types[name]; ok {
			if err := et.Override(ot); err != nil {
				return err
			}
			continue
		}
		s.Add(ot.Clone(name))
	}
	return nil
}

// Has reports whether p resolves to at least one option in s.
func (s *Section) Has(ctx *basictype.Context, p path.Path) bool {
	return len(s.Get2(ctx, p)) > 0
}

// Get2 resolves p against s, dispatching on the first path item (Named
// or Any) and recursing into the matched option. A recursive item is
// matched like its non-recursive form; deeper levels are not searched.
// Named Get2 (not Get) to avoid colliding with the by-name lookup
// above, which Section's own users call far more often.
func (s *Section) Get2(ctx *basictype.Context, p path.Path) []*basictype.BasicType {
	items := p.Items
	if len(items) > 0 && (items[0].Kind == path.Global || items[0].Kind == path.Local) {
		items = items[1:]
	}
	return s.resolveItems(ctx, items)
}

func (s *Section) resolveItems(ctx *basictype.Context, items []path.Item) []*basictype.BasicType {
	if len(items) == 0 {
		return nil
	}
	head := items[0]
	rest := items[1:]
	switch head.Kind {
	case path.Any:
		var out []*basictype.BasicType
		for _, name := range s.order {
			t := s.types[name]
			if len(rest) == 0 {
				out = append(out, t)
				continue
			}
			out = append(out, t.ResolveItems(ctx, rest)...)
		}
		return out
	case path.Named:
		t, ok := s.types[head.Name]
		if !ok {
			return nil
		}
		if len(rest) == 0 {
			return []*basictype.BasicType{t}
		}
		return t.ResolveItems(ctx, rest)
	default:
		return nil
	}
}

// PromoteArity promotes the arity of every option matched by p.
func (s *Section) PromoteArity(ctx *basictype.Context, p path.Path) error {
	targets := s.Get2(ctx, p)
	if len(targets) == 0 {
		return errs.New(errs.InvalidPath, p.String(), "no matching option to promote")
	}
	for _, t := range targets {
		s.promoteOne(t)
	}
	return nil
}

func (s *Section) promoteOne(t *basictype.BasicType) {
	promoted, changed := arity.Promote(t.ArityValue)
	if changed {
		t.ArityValue = promoted
	}
}

// Disable resets the arity of every option matched by p to Disabled.
func (s *Section) Disable(ctx *basictype.Context, p path.Path) error {
	targets := s.Get2(ctx, p)
	if len(targets) == 0 {
		return errs.New(errs.InvalidPath, p.String(), "no matching option to disable")
	}
	for _, t := range targets {
		disabled, ok := arity.Disable(t.ArityValue)
		if ok {
			t.ArityValue = disabled
		}
	}
	return nil
}
