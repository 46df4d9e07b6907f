// Package dependency implements cross-option constraints (spec.md
// §3.5/§4.5): require/disable, optionally guarded by a when-match on the
// owning type's instance value, and optionally carrying an either/range
// value-constraint applied to the dependency's target at flatten time.
package dependency

import (
	"fmt"
	"strings"

	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
)

// Kind distinguishes require from disable dependencies.
type Kind int

const (
	Require Kind = iota
	Disable
)

func (k Kind) String() string {
	if k == Disable {
		return "disable"
	}
	return "require"
}

// Priority orders dependency evaluation: Disable runs before Require,
// per spec.md §4.5 ("Disable(1) < Require(5)").
func (k Kind) Priority() int {
	if k == Disable {
		return 1
	}
	return 5
}

// Percent is the placeholder expanded at instance time to the owning
// type's value.
const Percent = "%"

// Dependency is a single require/disable rule attached to a BasicType via
// its deps attribute.
type Dependency struct {
	Kind  Kind
	Paths []path.Path

	// When, if non-empty, is the guard: the dependency only fires when
	// the owner's instance value (after array flattening) matches one of
	// these primitives.
	When []*tree.Value

	// EitherConstraint / RangeConstraint, if set, are applied at
	// flatten_instance to every instance value the dependency's paths
	// resolve to: each value must be one of EitherConstraint and lie
	// within RangeConstraint. The target option's own either and range
	// attributes are not compared against them.
	EitherConstraint []*tree.Value
	RangeConstraint  string
}

// FromTree parses a Dependency out of an Object Value of the shape
// {"require":[...]} or {"disable":[...]}, optionally with "when", either"
// and "range" keys.
func FromTree(v *tree.Value) (*Dependency, error) {
	if v.Kind() != tree.Object {
		return nil, errs.New(errs.AttributeSchema, "deps", "dependency entry must be an object")
	}
	d := &Dependency{}
	reqV, hasReq := v.Get1(named("require"))
	disV, hasDis := v.Get1(named("disable"))
	switch {
	case hasReq && hasDis:
		return nil, errs.New(errs.AttributeSchema, "deps", "dependency cannot be both require and disable")
	case hasReq:
		d.Kind = Require
		paths, err := parsePathList(reqV)
		if err != nil {
			return nil, err
		}
		d.Paths = paths
	case hasDis:
		d.Kind = Disable
		paths, err := parsePathList(disV)
		if err != nil {
			return nil, err
		}
		d.Paths = paths
	default:
		return nil, errs.New(errs.AttributeSchema, "deps", "dependency must declare require or disable")
	}
	if whenV, ok := v.Get1(named("when")); ok {
		if whenV.Kind() != tree.Array {
			return nil, errs.New(errs.AttributeSchema, "deps", "when must be a list")
		}
		whenV.Each(func(c *tree.Value) { d.When = append(d.When, c) })
	}
	if eitherV, ok := v.Get1(named("either")); ok {
		if eitherV.Kind() != tree.Array {
			return nil, errs.New(errs.AttributeSchema, "deps", "either must be a list")
		}
		eitherV.Each(func(c *tree.Value) { d.EitherConstraint = append(d.EitherConstraint, c) })
	}
	if rangeV, ok := v.Get1(named("range")); ok {
		s, err := rangeV.Str()
		if err != nil {
			return nil, errs.New(errs.AttributeSchema, "deps", "range constraint must be a string")
		}
		d.RangeConstraint = s
	}
	return d, nil
}

func named(name string) path.Path {
	p, _ := path.Parse("$." + name)
	return p
}

func parsePathList(v *tree.Value) ([]path.Path, error) {
	if v.Kind() != tree.Array {
		return nil, errs.New(errs.AttributeSchema, "deps", "require/disable must be a list of paths")
	}
	var out []path.Path
	var firstErr error
	v.Each(func(c *tree.Value) {
		if firstErr != nil {
			return
		}
		s, err := c.Str()
		if err != nil {
			firstErr = errs.New(errs.AttributeSchema, "deps", "path entries must be strings")
			return
		}
		p, err := path.Parse(s)
		if err != nil {
			firstErr = err
			return
		}
		out = append(out, p)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// CheckModel validates the local schema per spec.md §4.5: every declared
// path parses (already true by construction) and is not Global-rooted
// (dependency paths live within the current option's scope); if any path
// contains '%', ownerIsBoundedString must hold (owner is a String type
// carrying an either attribute) or UnboundValueExpansion is raised.
func (d *Dependency) CheckModel(ownerIsBoundedString bool) error {
	hasPercent := false
	for _, p := range d.Paths {
		if p.Global() {
			return errs.New(errs.InvalidPath, p.String(), "dependency paths must not be globally rooted")
		}
		if strings.Contains(p.String(), Percent) {
			hasPercent = true
		}
	}
	if hasPercent && !ownerIsBoundedString {
		return errs.New(errs.UnboundValueExpansion, "", "dependency path contains '%' but owner is not a bounded string")
	}
	return nil
}

// GuardActive reports whether the dependency is active given the owning
// type's current instance value(s). An empty When guard is always active.
// A value is matched after array flattening: if owner holds an Array, any
// element matching one of the guard values activates the dependency.
func (d *Dependency) GuardActive(owner *tree.Value) bool {
	if len(d.When) == 0 {
		return true
	}
	if owner == nil {
		return false
	}
	match := func(v *tree.Value) bool {
		for _, w := range d.When {
			if scalarEqual(w, v) {
				return true
			}
		}
		return false
	}
	if owner.Kind() == tree.Array {
		found := false
		owner.Each(func(c *tree.Value) {
			if match(c) {
				found = true
			}
		})
		return found
	}
	return match(owner)
}

func scalarEqual(a, b *tree.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case tree.String:
		as, _ := a.Str()
		bs, _ := b.Str()
		return as == bs
	case tree.Integer:
		ai, _ := a.Int()
		bi, _ := b.Int()
		return ai == bi
	case tree.Float:
		af, _ := a.Float()
		bf, _ := b.Float()
		return af == bf
	case tree.Boolean:
		ab, _ := a.Bool()
		bb, _ := b.Bool()
		return ab == bb
	default:
		return false
	}
}

// ExpandPaths expands the '%' placeholder in every path against
// ownerValue, returning one expanded path per occurrence. ownerValue must
// be the string form of the owning type's instance value.
func (d *Dependency) ExpandPaths(ownerValue string) []path.Path {
	out := make([]path.Path, len(d.Paths))
	for i, p := range d.Paths {
		out[i] = expandOne(p, ownerValue)
	}
	return out
}

func expandOne(p path.Path, ownerValue string) path.Path {
	items := make([]path.Item, len(p.Items))
	copy(items, p.Items)
	for i, it := range items {
		if it.Kind == path.Named && strings.Contains(it.Name, Percent) {
			it.Name = strings.ReplaceAll(it.Name, Percent, ownerValue)
			items[i] = it
		}
	}
	return path.Path{Items: items}
}

// String renders d for diagnostics.
func (d *Dependency) String() string {
	var names []string
	for _, p := range d.Paths {
		names = append(names, p.String())
	}
	return fmt.Sprintf("%s(%s)", d.Kind, strings.Join(names, ","))
}

// ByPriority sorts a slice of Dependency in ascending priority (disable
// runs before require), per spec.md §4.5 and §5.
type ByPriority []*Dependency

func (b ByPriority) Len() int      { return len(b) }
func (b ByPriority) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b ByPriority) Less(i, j int) bool {
	return b[i].Kind.Priority() < b[j].Kind.Priority()
}
