package section

import (
	"fmt"

	"github.com/openconfig/aceconf/internal/arity"
	"github.com/openconfig/aceconf/internal/attribute"
	"github.com/openconfig/aceconf/internal/basictype"
	"github.com/openconfig/aceconf/internal/dependency"
	"github.com/openconfig/aceconf/internal/diagnostic"
	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
	"github.com/openconfig/aceconf/internal/util"
)

// toErr collapses an errs.List back to a plain error: nil if empty, the
// list itself (which implements error) otherwise.
func toErr(list errs.List) error {
	if len(list) == 0 {
		return nil
	}
	return list
}

// Body is a Section wired up to run the instance-side pipeline phases
// over a config tree, per spec.md §3.4/§4.7. It satisfies
// basictype.InstanceValidator so that a Class or Plugin option can
// recurse into a nested model's Body exactly as it would traverse its
// own declared options, grounded on ygot ytypes/container.go's recursive
// validate-a-subtree shape.
type Body struct {
	*Section

	// Resolver, if non-nil, lets this Body's Class/Plugin options
	// delegate to nested models; supplied by the registry that built it.
	Resolver basictype.Resolver
}

// NewBody wraps s as a Body with no nested-model resolver.
func NewBody(s *Section) *Body { return &Body{Section: s} }

func (b *Body) childCtx(diag *diagnostic.Set, strict bool, at path.Path) *basictype.Context {
	return &basictype.Context{Resolver: b.Resolver, Diag: diag, Strict: strict, AbsPath: at}
}

// CheckInstance walks every key of instance, matching it against a
// declared option, checking its occurrence count against that option's
// arity, and recursing into BasicType.CheckInstance for each occurrence.
// Keys with no matching option are recorded as Unexpected and, in strict
// mode, fail the check (spec.md §4.7/§6).
func (b *Body) CheckInstance(instance *tree.Value, diag *diagnostic.Set, strict bool) error {
	if instance.Kind() != tree.Object {
		return errs.New(errs.AttributeSchema, instance.Name(), "instance must be an object")
	}
	util.DbgPrint("check_instance %s", instance.Name())
	util.Indent()
	defer util.Dedent()

	var list errs.List
	for _, name := range instance.Keys() {
		child, _ := instance.Get1(named(name))
		t, ok := b.Get(name)
		if !ok {
			if diag != nil {
				diag.Record(diagnostic.Unexpected, name, "no such option")
			}
			if strict {
				list = errs.Append(list, errs.New(errs.Unexpected, name, "unexpected option in strict mode"))
			}
			continue
		}
		n := occurrences(child)
		if !t.ArityValue.Check(n) {
			list = errs.Append(list, errs.New(errs.ArityMismatch, name, fmt.Sprintf("%d occurrences, arity %s", n, t.ArityValue)))
			continue
		}
		ctx := b.childCtx(diag, strict, named(name))
		err := eachOrOne(child, func(elem *tree.Value) error {
			return t.CheckInstance(ctx, elem)
		})
		list = errs.Append(list, err)
	}
	return toErr(list)
}

// ExpandInstance runs the stabilization loop of spec.md §4.7 (the
// original's "Coach"): repeatedly inject inherited or default values for
// declared-but-absent options and expand every present option, until a
// full pass adds nothing.
func (b *Body) ExpandInstance(instance *tree.Value) error {
	if instance.Kind() != tree.Object {
		return errs.New(errs.AttributeSchema, instance.Name(), "instance must be an object")
	}
	for {
		added := false
		for _, name := range b.Names() {
			t, _ := b.Get(name)
			if instance.Has(named(name)) {
				continue
			}
			if inheritEnabled(t) {
				if v, ok := inheritValue(instance, name); ok {
					if err := instance.Put(named(name), v.Clone()); err != nil {
						return err
					}
					added = true
					continue
				}
			}
			if vals, ok := defaultValues(t); ok && len(vals) > 0 {
				if err := injectDefaults(instance, name, vals); err != nil {
					return err
				}
				added = true
			}
		}
		for _, name := range b.Names() {
			t, _ := b.Get(name)
			child, ok := instance.Get1(named(name))
			if !ok {
				continue
			}
			ctx := b.childCtx(nil, false, named(name))
			if err := eachOrOne(child, func(elem *tree.Value) error {
				return t.ExpandInstance(ctx, elem)
			}); err != nil {
				return err
			}
		}
		if !added {
			return nil
		}
	}
}

// FlattenInstance erases instances of options whose arity has been
// disabled, flattens every remaining occurrence, and checks each
// option's dependencies' either/range constraints against their resolved
// targets, in dependency.ByPriority order (spec.md §4.5/§4.7).
func (b *Body) FlattenInstance(instance *tree.Value, diag *diagnostic.Set) error {
	if instance.Kind() != tree.Object {
		return errs.New(errs.AttributeSchema, instance.Name(), "instance must be an object")
	}
	var list errs.List
	for _, name := range b.Names() {
		t, _ := b.Get(name)
		child, ok := instance.Get1(named(name))
		if t.ArityValue.Kind == arity.Disabled {
			if ok {
				if diag != nil {
					diag.Record(diagnostic.Undefined, name, "option disabled; erasing instance value")
				}
				if err := instance.Erase(named(name)); err != nil {
					list = errs.Append(list, err)
				}
			}
			continue
		}
		if !ok {
			continue
		}
		ctx := b.childCtx(diag, false, named(name))
		err := eachOrOne(child, func(elem *tree.Value) error {
			return t.FlattenInstance(ctx, elem)
		})
		list = errs.Append(list, err)

		deps := append([]*dependency.Dependency(nil), t.Deps...)
		sortDeps(deps)
		for _, d := range deps {
			if err := flattenDependency(t, d, instance, child); err != nil {
				list = errs.Append(list, err)
			}
		}
	}
	return toErr(list)
}

// ResolveInstance checks every remaining option's occurrence count
// against its arity one final time and, for options present in the
// instance, enforces active dependencies' require/disable targets
// (spec.md §4.5/§4.7).
func (b *Body) ResolveInstance(instance *tree.Value) error {
	if instance.Kind() != tree.Object {
		return errs.New(errs.AttributeSchema, instance.Name(), "instance must be an object")
	}
	var list errs.List
	for _, name := range b.Names() {
		t, _ := b.Get(name)
		child, ok := instance.Get1(named(name))
		n := 0
		if ok {
			n = occurrences(child)
		}
		if !t.ArityValue.Check(n) {
			list = errs.Append(list, errs.New(errs.ArityMismatch, name, fmt.Sprintf("%d occurrences, arity %s", n, t.ArityValue)))
		}
		if ok {
			ctx := b.childCtx(nil, false, named(name))
			err := eachOrOne(child, func(elem *tree.Value) error {
				return t.ResolveInstance(ctx, elem)
			})
			list = errs.Append(list, err)
		}
		if !ok {
			continue
		}

		deps := append([]*dependency.Dependency(nil), t.Deps...)
		sortDeps(deps)
		for _, d := range deps {
			if !d.GuardActive(child) {
				continue
			}
			paths := d.Paths
			if child != nil && child.Kind() == tree.String {
				if s, err := child.Str(); err == nil {
					paths = d.ExpandPaths(s)
				}
			}
			for _, p := range paths {
				if err := checkDepTarget(instance, d.Kind, p); err != nil {
					list = errs.Append(list, err)
				}
			}
		}
	}
	return toErr(list)
}

func sortDeps(deps []*dependency.Dependency) {
	for i := 1; i < len(deps); i++ {
		for j := i; j > 0 && deps[j].Kind.Priority() < deps[j-1].Kind.Priority(); j-- {
			deps[j], deps[j-1] = deps[j-1], deps[j]
		}
	}
}

// flattenDependency applies a dependency's declared either/range
// constraint to every value its paths resolve to.
func flattenDependency(owner *basictype.BasicType, d *dependency.Dependency, instance, ownerValue *tree.Value) error {
	if !d.GuardActive(ownerValue) {
		return nil
	}
	if len(d.EitherConstraint) == 0 && d.RangeConstraint == "" {
		return nil
	}
	var rangeAttr *attribute.RangeAttr
	if d.RangeConstraint != "" {
		rangeAttr = attribute.NewRange("")
		if err := rangeAttr.CheckModel(tree.NewString("range", d.RangeConstraint)); err != nil {
			return err
		}
	}
	for _, p := range d.Paths {
		for _, target := range instance.Get(p) {
			if len(d.EitherConstraint) > 0 && !containsValue(d.EitherConstraint, target) {
				return errs.New(errs.ValueConstraint, p.String(), "target value not in dependency's either constraint")
			}
			if rangeAttr != nil {
				n, err := target.Number()
				if err != nil || !rangeAttr.Contains(n) {
					return errs.New(errs.ValueConstraint, p.String(), "target value outside dependency's range constraint")
				}
			}
		}
	}
	return nil
}

func containsValue(set []*tree.Value, v *tree.Value) bool {
	for _, s := range set {
		if s.Kind() != v.Kind() {
			continue
		}
		switch s.Kind() {
		case tree.String:
			sv, _ := s.Str()
			vv, _ := v.Str()
			if sv == vv {
				return true
			}
		case tree.Integer:
			sv, _ := s.Int()
			vv, _ := v.Int()
			if sv == vv {
				return true
			}
		}
	}
	return false
}

// checkDepTarget enforces a single expanded dependency path: Require
// means the target must resolve to at least one value, Disable means it
// must resolve to none.
func checkDepTarget(instance *tree.Value, kind dependency.Kind, p path.Path) error {
	n := len(instance.Get(p))
	switch kind {
	case dependency.Require:
		if n == 0 {
			return errs.New(errs.DependencyUnresolved, p.String(), "required dependency target is absent")
		}
	case dependency.Disable:
		if n > 0 {
			return errs.New(errs.DependencyConstraint, p.String(), "disabled dependency target is present")
		}
	}
	return nil
}

// inheritValue looks up name one parent level up from instance. For a
// top-level instance there is no parent, so nothing is inherited; for the
// value of a Class or Plugin option, expanded by the nested model's Body,
// the parent is the enclosing model's instance object, so inheritance
// reaches across that one boundary and no further.
func inheritValue(instance *tree.Value, name string) (*tree.Value, bool) {
	parent := instance.Parent()
	if parent == nil || parent.Kind() != tree.Object {
		return nil, false
	}
	return parent.Get1(named(name))
}

func inheritEnabled(t *basictype.BasicType) bool {
	a, ok := t.Attrs.Get("inherit")
	if !ok {
		return false
	}
	in, ok := a.(*attribute.InheritAttr)
	return ok && in.Value
}

func defaultValues(t *basictype.BasicType) ([]*tree.Value, bool) {
	a, ok := t.Attrs.Get("default")
	if !ok {
		return nil, false
	}
	d, ok := a.(*attribute.DefaultAttr)
	if !ok {
		return nil, false
	}
	return d.Values, true
}

func injectDefaults(instance *tree.Value, name string, vals []*tree.Value) error {
	for _, v := range vals {
		if err := instance.Put(named(name), v.Clone()); err != nil {
			return err
		}
	}
	return nil
}

// eachOrOne applies fn once per array element, or once to v itself if v
// is not an array (an option with arity one still routes through this,
// matching BasicType.CheckInstance's own scalar handling).
func eachOrOne(v *tree.Value, fn func(*tree.Value) error) error {
	if v.Kind() != tree.Array {
		return fn(v)
	}
	var list errs.List
	v.Each(func(c *tree.Value) {
		list = errs.Append(list, fn(c))
	})
	return toErr(list)
}

// occurrences counts how many instance values a declared option's key
// currently holds: the length of an array, or one for any scalar/object.
func occurrences(v *tree.Value) int {
	if v == nil {
		return 0
	}
	if v.Kind() == tree.Array {
		return v.Len()
	}
	return 1
}
