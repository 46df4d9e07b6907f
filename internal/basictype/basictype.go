package basictype

import (
	"fmt"

	"github.com/openconfig/aceconf/internal/arity"
	"github.com/openconfig/aceconf/internal/attribute"
	"github.com/openconfig/aceconf/internal/dependency"
	"github.com/openconfig/aceconf/internal/diagnostic"
	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
	"github.com/openconfig/aceconf/internal/util"
)

// InstanceValidator is the capability a nested model's body exposes to a
// Class or Plugin BasicType: the four instance-side pipeline phases,
// scoped to one instance sub-tree. section.Body implements this; defining
// it here (rather than importing the section package) keeps basictype at
// the bottom of the dependency graph — Class/Plugin recurse into a nested
// model without basictype depending on section or model.
type InstanceValidator interface {
	CheckInstance(instance *tree.Value, diag *diagnostic.Set, strict bool) error
	ExpandInstance(instance *tree.Value) error
	FlattenInstance(instance *tree.Value, diag *diagnostic.Set) error
	ResolveInstance(instance *tree.Value) error
}

// Resolver locates the nested model body a Class or Plugin option
// delegates to, without BasicType depending on the model/registry
// packages. ResolveModel looks up a body by its declared model path
// (Class); ResolvePlugin picks the first registered plugin body whose
// trigger pattern matches the given absolute path (Plugin dispatch).
type Resolver interface {
	ResolveModel(modelPath string) (InstanceValidator, error)
	ResolvePlugin(trigger path.Path) (InstanceValidator, bool)
}

// Context threads the state BasicType's instance-phase methods need but
// that does not belong on the type itself: where in the tree we are
// (for plugin trigger matching and dependency %-expansion), how to
// resolve nested models, and where to record diagnostics.
type Context struct {
	Resolver Resolver
	Diag     *diagnostic.Set
	Strict   bool
	AbsPath  path.Path
}

// BasicType is the abstract option definition of spec.md §3.4: a kind, a
// declared name, an arity, a set of attributes, and a list of
// dependencies, specialized over KindValue.
type BasicType struct {
	KindValue    Kind
	DeclaredName string
	ArityValue   arity.Arity
	Attrs        *attribute.Set
	Deps         []*dependency.Dependency

	parent *BasicType // non-owning back-reference; nil at a Section root

	// Selector-specific: the template prototype this type clones for
	// each key at instance time. Set by the owning Model's flatten phase
	// once the named template is resolved from the Templates section.
	TemplateProto *BasicType

	// Plugin/Class-specific: the model path this option delegates to.
	ModelPath string
}

// New constructs a BasicType of the given kind and name with an empty
// attribute set.
func New(k Kind, name string) *BasicType {
	return &BasicType{KindValue: k, DeclaredName: name, Attrs: attribute.NewSet()}
}

// FromTree builds a BasicType named name from its raw model-file
// representation v (an Object carrying "kind", "arity", "doc", and any
// attribute-specific children), grounded on dependency.FromTree's
// read-the-object-shape-into-a-typed-struct approach.
func FromTree(name string, v *tree.Value) (*BasicType, error) {
	if v.Kind() != tree.Object {
		return nil, errs.New(errs.AttributeSchema, name, "option definition must be an object")
	}
	kindVal, ok := v.Get1(pathNamed("kind"))
	if !ok {
		return nil, errs.New(errs.AttributeSchema, name, "missing required attribute kind")
	}
	kindStr, err := kindVal.Str()
	if err != nil {
		return nil, errs.New(errs.AttributeSchema, name, "kind must be a string")
	}
	k, ok := ParseKind(kindStr)
	if !ok {
		return nil, errs.New(errs.AttributeSchema, name, fmt.Sprintf("unknown kind %q", kindStr))
	}

	t := New(k, name)
	t.KindValue = k

	arityVal, _ := v.Get1(pathNamed("arity"))
	arityAttr := attribute.NewArity(arity.UndefinedArity)
	if err := arityAttr.LoadModel(arityVal); err != nil {
		return nil, err
	}
	t.Attrs.Add(arityAttr)
	t.ArityValue = arityAttr.Value

	docVal, _ := v.Get1(pathNamed("doc"))
	docAttr := attribute.NewDoc("")
	if err := docAttr.LoadModel(docVal); err != nil {
		return nil, err
	}
	t.Attrs.Add(docAttr)

	if depVal, ok := v.Get1(pathNamed("deprecated")); ok {
		a := attribute.NewDeprecated("")
		if err := a.LoadModel(depVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if inhVal, ok := v.Get1(pathNamed("inherit")); ok {
		a := attribute.NewInherit(false)
		if err := a.LoadModel(inhVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if hookVal, ok := v.Get1(pathNamed("hook")); ok {
		a := attribute.NewHook(path.Path{}, "", "")
		if err := a.LoadModel(hookVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if defVal, ok := v.Get1(pathNamed("default")); ok {
		a := attribute.NewDefault()
		if err := a.LoadModel(defVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if eitherVal, ok := v.Get1(pathNamed("either")); ok {
		a := attribute.NewEither()
		if err := a.LoadModel(eitherVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if rangeVal, ok := v.Get1(pathNamed("range")); ok {
		a := attribute.NewRange("")
		if err := a.LoadModel(rangeVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if mapVal, ok := v.Get1(pathNamed("map")); ok {
		a := attribute.NewMap()
		if err := a.LoadModel(mapVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if sizeVal, ok := v.Get1(pathNamed("size")); ok {
		a := attribute.NewSize(arity.UndefinedArity)
		if err := a.LoadModel(sizeVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	}
	if depsVal, ok := v.Get1(pathNamed("deps")); ok {
		a := attribute.NewDeps()
		if err := a.LoadModel(depsVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
		t.Deps = a.Deps
	}
	if modeVal, ok := v.Get1(pathNamed("mode")); ok {
		a := attribute.NewMode("")
		if err := a.LoadModel(modeVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	} else if k == File {
		a := attribute.NewMode("")
		a.LoadModel(nil)
		t.Attrs.Add(a)
	}

	switch k {
	case Enum:
		bindVal, ok := v.Get1(pathNamed("bind"))
		if !ok {
			return nil, errs.New(errs.AttributeSchema, name, "enum requires a bind attribute")
		}
		a := attribute.NewBind()
		if err := a.LoadModel(bindVal); err != nil {
			return nil, err
		}
		t.Attrs.Add(a)
	case Class, Plugin:
		modelVal, ok := v.Get1(pathNamed("model"))
		if !ok {
			return nil, errs.New(errs.AttributeSchema, name, "class/plugin requires a model attribute")
		}
		modelStr, err := modelVal.Str()
		if err != nil {
			return nil, errs.New(errs.AttributeSchema, name, "model must be a string")
		}
		a := attribute.NewModel(modelStr)
		t.Attrs.Add(a)
		t.ModelPath = modelStr
	case Selector:
		templVal, ok := v.Get1(pathNamed("template"))
		if !ok {
			return nil, errs.New(errs.AttributeSchema, name, "select requires a template attribute")
		}
		templStr, err := templVal.Str()
		if err != nil {
			return nil, errs.New(errs.AttributeSchema, name, "template must be a string")
		}
		t.Attrs.Add(attribute.NewTemplate(templStr))
	}

	return t, nil
}

func (t *BasicType) Name() string   { return t.DeclaredName }
func (t *BasicType) Kind() Kind     { return t.KindValue }
func (t *BasicType) Parent() *BasicType { return t.parent }

// IsObject, IsEnumerated, IsRanged, IsMapped are the introspection
// predicates spec.md §4.6 lists.
func (t *BasicType) IsObject() bool { return t.KindValue.IsObject() }

func (t *BasicType) IsEnumerated() bool {
	if t.KindValue == Enum {
		return true
	}
	_, ok := t.Attrs.Get("either")
	return ok
}

func (t *BasicType) IsRanged() bool {
	_, ok := t.Attrs.Get("range")
	return ok
}

func (t *BasicType) IsMapped() bool {
	_, ok := t.Attrs.Get("map")
	return ok
}

func (t *BasicType) either() (*attribute.EitherAttr, bool) {
	a, ok := t.Attrs.Get("either")
	if !ok {
		return nil, false
	}
	e, ok := a.(*attribute.EitherAttr)
	return e, ok
}

func (t *BasicType) rangeAttr() (*attribute.RangeAttr, bool) {
	a, ok := t.Attrs.Get("range")
	if !ok {
		return nil, false
	}
	r, ok := a.(*attribute.RangeAttr)
	return r, ok
}

func (t *BasicType) mapAttr() (*attribute.MapAttr, bool) {
	a, ok := t.Attrs.Get("map")
	if !ok {
		return nil, false
	}
	m, ok := a.(*attribute.MapAttr)
	return m, ok
}

func (t *BasicType) bind() (*attribute.BindAttr, bool) {
	a, ok := t.Attrs.Get("bind")
	if !ok {
		return nil, false
	}
	b, ok := a.(*attribute.BindAttr)
	return b, ok
}

func (t *BasicType) mode() string {
	a, ok := t.Attrs.Get("mode")
	if !ok {
		return "r"
	}
	m, ok := a.(*attribute.ModeAttr)
	if !ok {
		return "r"
	}
	return m.Value
}

// --- model-side phases --------------------------------------------------

// CheckModel validates this type's attribute schema and ensures its
// declared arity lies within the kind's permitted pattern (spec.md §4.6).
func (t *BasicType) CheckModel() error {
	util.DbgSchema("check_model %s (%s)\n", t.DeclaredName, t.KindValue)
	if !arityAllowed(t.KindValue, t.ArityValue) {
		return errs.New(errs.ArityMismatch, t.DeclaredName, fmt.Sprintf("arity %s not permitted for kind %s", t.ArityValue, t.KindValue))
	}
	switch t.KindValue {
	case Class, Plugin:
		if t.ModelPath == "" {
			return errs.New(errs.AttributeSchema, t.DeclaredName, "class/plugin requires a model attribute")
		}
	case Enum:
		if _, ok := t.bind(); !ok {
			return errs.New(errs.AttributeSchema, t.DeclaredName, "enum requires a bind attribute")
		}
	}
	return nil
}

// FlattenModel enforces attribute mutual exclusions and validates
// dependency path schemas against this type's own shape.
func (t *BasicType) FlattenModel() error {
	if err := t.Attrs.FlattenModel(); err != nil {
		return err
	}
	ownerBoundedString := t.KindValue == String
	if ownerBoundedString {
		if _, ok := t.either(); !ok {
			ownerBoundedString = false
		}
	}
	for _, d := range t.Deps {
		if err := d.CheckModel(ownerBoundedString); err != nil {
			return err
		}
	}
	return nil
}

// ValidateModel checks value-level consistency: a declared default must
// satisfy the type's own either/range/map constraint, if any.
func (t *BasicType) ValidateModel() error {
	def, ok := t.Attrs.Get("default")
	if !ok {
		return nil
	}
	d, ok := def.(*attribute.DefaultAttr)
	if !ok {
		return nil
	}
	for _, v := range d.Values {
		if err := t.checkValueConstraint(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *BasicType) checkValueConstraint(v *tree.Value) error {
	if e, ok := t.either(); ok {
		if !e.Contains(v) {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "value not in either list")
		}
	}
	if r, ok := t.rangeAttr(); ok {
		n, err := v.Number()
		if err == nil {
			if !r.Contains(n) {
				return errs.New(errs.ValueConstraint, t.DeclaredName, fmt.Sprintf("value %v out of range %s", n, r.Raw))
			}
		} else if s, serr := v.Str(); serr == nil {
			if !r.Contains(float64(len(s))) {
				return errs.New(errs.ValueConstraint, t.DeclaredName, fmt.Sprintf("length of %q out of range %s", s, r.Raw))
			}
		}
	}
	if m, ok := t.mapAttr(); ok {
		s, err := v.Str()
		if err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "mapped value must be a string key")
		}
		if _, exists := m.Entries[s]; !exists {
			return errs.New(errs.ValueConstraint, t.DeclaredName, fmt.Sprintf("%q is not a key of the map", s))
		}
	}
	return nil
}

// --- instance-side phases -----------------------------------------------

// CheckInstance checks a single occurrence v of this type for type
// mismatch and value-level constraint violations.
func (t *BasicType) CheckInstance(ctx *Context, v *tree.Value) error {
	util.DbgPrint("check_instance %s", t.DeclaredName)
	util.Indent()
	defer util.Dedent()
	switch t.KindValue {
	case Boolean:
		if _, err := v.Bool(); err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a boolean")
		}
	case Integer:
		if _, err := v.Int(); err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected an integer")
		}
		return t.checkValueConstraint(v)
	case Float:
		if _, err := v.Number(); err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a number")
		}
		return t.checkValueConstraint(v)
	case String:
		if _, err := v.Str(); err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a string")
		}
		return t.checkValueConstraint(v)
	case Enum:
		s, err := v.Str()
		if err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a string tag")
		}
		b, _ := t.bind()
		if b != nil {
			if _, ok := b.Entries[s]; !ok {
				return errs.New(errs.ValueConstraint, t.DeclaredName, fmt.Sprintf("%q is not a bound enum tag", s))
			}
		}
	case File:
		s, err := v.Str()
		if err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a file path string")
		}
		return checkFile(s, t.mode())
	case IPv4:
		s, err := v.Str()
		if err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected an IPv4 string")
		}
		return checkIPv4(s)
	case MAC:
		s, err := v.Str()
		if err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a MAC address string")
		}
		return checkMAC(s)
	case URI:
		s, err := v.Str()
		if err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a URI string")
		}
		return checkURI(s)
	case CPUID:
		s, err := v.Str()
		if err != nil {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected a CPU feature string")
		}
		return checkCPUID(s)
	case Class:
		if v.Kind() != tree.Object {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected an object")
		}
		if ctx == nil || ctx.Resolver == nil {
			return errs.New(errs.ModelNotFound, t.DeclaredName, "no resolver available for class")
		}
		nested, err := ctx.Resolver.ResolveModel(t.ModelPath)
		if err != nil {
			return err
		}
		return nested.CheckInstance(v, ctx.Diag, ctx.Strict)
	case Plugin:
		if v.Kind() != tree.Object {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected an object")
		}
		return t.checkPluginChildren(ctx, v)
	case Selector:
		if v.Kind() != tree.Object {
			return errs.New(errs.ValueConstraint, t.DeclaredName, "expected an object")
		}
		return nil // size checked at flatten_instance per spec.md §8 scenario 5
	}
	return nil
}

func (t *BasicType) checkPluginChildren(ctx *Context, v *tree.Value) error {
	if ctx == nil || ctx.Resolver == nil {
		return errs.New(errs.ModelNotFound, t.DeclaredName, "no resolver available for plugin")
	}
	var errList errs.List
	for _, key := range v.Keys() {
		child, _ := v.Get1(pathNamed(key))
		trigger := ctx.AbsPath.PushNamed(key)
		body, ok := ctx.Resolver.ResolvePlugin(trigger)
		if !ok {
			errList = errs.Append(errList, errs.New(errs.UnsupportedFormat, trigger.String(), "no plugin model registered for trigger"))
			continue
		}
		if err := body.CheckInstance(child, ctx.Diag, ctx.Strict); err != nil {
			errList = errs.Append(errList, err)
		}
	}
	if len(errList) > 0 {
		return errList
	}
	return nil
}

// ExpandInstance recurses into compound kinds so nested bodies can inject
// their own defaults; scalar kinds have nothing to expand.
func (t *BasicType) ExpandInstance(ctx *Context, v *tree.Value) error {
	if (t.KindValue == Class || t.KindValue == Plugin) && (ctx == nil || ctx.Resolver == nil) {
		return errs.New(errs.ModelNotFound, t.DeclaredName, "no resolver available")
	}
	switch t.KindValue {
	case Class:
		nested, err := ctx.Resolver.ResolveModel(t.ModelPath)
		if err != nil {
			return err
		}
		return nested.ExpandInstance(v)
	case Plugin:
		for _, key := range v.Keys() {
			child, _ := v.Get1(pathNamed(key))
			trigger := ctx.AbsPath.PushNamed(key)
			if body, ok := ctx.Resolver.ResolvePlugin(trigger); ok {
				if err := body.ExpandInstance(child); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// FlattenInstance recurses into Class and Plugin values and enforces
// Selector's Size bound. Enum values keep their string tag; they are not
// replaced by the bound integer.
func (t *BasicType) FlattenInstance(ctx *Context, v *tree.Value) error {
	if (t.KindValue == Class || t.KindValue == Plugin) && (ctx == nil || ctx.Resolver == nil) {
		return errs.New(errs.ModelNotFound, t.DeclaredName, "no resolver available")
	}
	switch t.KindValue {
	case Selector:
		if sz, ok := t.sizeAttr(); ok {
			if !sz.Value.Check(v.Len()) {
				return errs.New(errs.ArityMismatch, t.DeclaredName, fmt.Sprintf("selector has %d entries, want %s", v.Len(), sz.Value))
			}
		}
	case Class:
		nested, err := ctx.Resolver.ResolveModel(t.ModelPath)
		if err != nil {
			return err
		}
		return nested.FlattenInstance(v, ctx.Diag)
	case Plugin:
		for _, key := range v.Keys() {
			child, _ := v.Get1(pathNamed(key))
			trigger := ctx.AbsPath.PushNamed(key)
			if body, ok := ctx.Resolver.ResolvePlugin(trigger); ok {
				if err := body.FlattenInstance(child, ctx.Diag); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (t *BasicType) sizeAttr() (*attribute.SizeAttr, bool) {
	a, ok := t.Attrs.Get("size")
	if !ok {
		return nil, false
	}
	s, ok := a.(*attribute.SizeAttr)
	return s, ok
}

// ResolveInstance recurses for compound kinds so nested presence/absence
// is validated against the nested body's own schema.
func (t *BasicType) ResolveInstance(ctx *Context, v *tree.Value) error {
	if (t.KindValue == Class || t.KindValue == Plugin) && (ctx == nil || ctx.Resolver == nil) {
		return errs.New(errs.ModelNotFound, t.DeclaredName, "no resolver available")
	}
	switch t.KindValue {
	case Class:
		nested, err := ctx.Resolver.ResolveModel(t.ModelPath)
		if err != nil {
			return err
		}
		return nested.ResolveInstance(v)
	case Plugin:
		for _, key := range v.Keys() {
			child, _ := v.Get1(pathNamed(key))
			trigger := ctx.AbsPath.PushNamed(key)
			if body, ok := ctx.Resolver.ResolvePlugin(trigger); ok {
				if err := body.ResolveInstance(child); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Merge combines other into t in place: both must share a kind, arities
// are intersected, attribute sets merged, and dependencies concatenated,
// per Section.Merge's "existing type must be mergeable" rule (spec.md
// §4.7).
func (t *BasicType) Merge(other *BasicType) error {
	if t.KindValue != other.KindValue {
		return errs.New(errs.AttributeSchema, t.DeclaredName, "cannot merge options of different kinds")
	}
	combined := arity.Intersect(t.ArityValue, other.ArityValue)
	if combined.Kind == arity.Undefined {
		return errs.New(errs.ArityMismatch, t.DeclaredName, "incompatible arities on merge")
	}
	t.ArityValue = combined
	if err := t.Attrs.Merge(other.Attrs); err != nil {
		return err
	}
	t.Deps = append(t.Deps, other.Deps...)
	return nil
}

// Override replaces t's overridable attributes with other's and merges
// the rest, taking other's arity and model/template binding wholesale —
// the composition Model applies after merging its includes (spec.md
// §4.7: "the current model then overrides the merged result").
func (t *BasicType) Override(other *BasicType) error {
	if t.KindValue != other.KindValue {
		return errs.New(errs.AttributeSchema, t.DeclaredName, "cannot override options of different kinds")
	}
	t.ArityValue = other.ArityValue
	if err := t.Attrs.Override(other.Attrs); err != nil {
		return err
	}
	if len(other.Deps) > 0 {
		t.Deps = other.Deps
	}
	if other.ModelPath != "" {
		t.ModelPath = other.ModelPath
	}
	if other.TemplateProto != nil {
		t.TemplateProto = other.TemplateProto
	}
	return nil
}

// RangeConstraint exposes t's range attribute, if any, to callers outside
// the package (Section's dependency-constraint subset check).
func (t *BasicType) RangeConstraint() (*attribute.RangeAttr, bool) {
	return t.rangeAttr()
}

// EitherValues exposes t's either attribute, if any, to callers outside
// the package.
func (t *BasicType) EitherValues() (*attribute.EitherAttr, bool) {
	return t.either()
}

// Clone returns a deep copy of t under newName, detached from any parent.
// Used by Selector to instantiate its template prototype per key.
func (t *BasicType) Clone(newName string) *BasicType {
	c := &BasicType{
		KindValue:     t.KindValue,
		DeclaredName:  newName,
		ArityValue:    t.ArityValue,
		Attrs:         t.Attrs.Clone(),
		Deps:          append([]*dependency.Dependency(nil), t.Deps...),
		TemplateProto: t.TemplateProto,
		ModelPath:     t.ModelPath,
	}
	return c
}

func pathNamed(name string) path.Path {
	p, _ := path.Parse("$." + name)
	return p
}

// --- model-tree path introspection --------------------------------------

// Has reports whether p resolves to at least one BasicType reachable
// from t. Resolution descends only through Selector templates; a path
// that continues past a Class, Plugin or scalar option resolves to
// nothing.
func (t *BasicType) Has(ctx *Context, p path.Path) bool {
	return len(t.Get(ctx, p)) > 0
}

// Get resolves p against the model-side type tree rooted at t.
func (t *BasicType) Get(ctx *Context, p path.Path) []*BasicType {
	items := p.Items
	if len(items) > 0 && (items[0].Kind == path.Global || items[0].Kind == path.Local) {
		items = items[1:]
	}
	return t.ResolveItems(ctx, items)
}

func (t *BasicType) ResolveItems(ctx *Context, items []path.Item) []*BasicType {
	if len(items) == 0 {
		return []*BasicType{t}
	}
	head := items[0]
	rest := items[1:]
	switch t.KindValue {
	case Selector:
		if t.TemplateProto == nil {
			return nil
		}
		if head.Kind == path.Named || head.Kind == path.Any {
			clone := t.TemplateProto.Clone(head.Name)
			return clone.ResolveItems(ctx, rest)
		}
		return nil
	case Class:
		if ctx == nil || ctx.Resolver == nil {
			return nil
		}
		// Class delegates to its nested model; without a concrete Section
		// abstraction here, treat a single further Named step as opaque
		// (the nested model owns its own Section.Get for real resolution;
		// callers needing to cross a Class boundary use model/section
		// directly, which has the Section in scope).
		return nil
	default:
		return nil
	}
}

// PromoteArity promotes the arity of the BasicType(s) matched by p.
func (t *BasicType) PromoteArity(ctx *Context, p path.Path) error {
	targets := t.Get(ctx, p)
	if len(targets) == 0 {
		return errs.New(errs.InvalidPath, p.String(), "no matching option to promote")
	}
	for _, target := range targets {
		promoted, changed := arity.Promote(target.ArityValue)
		if changed {
			target.ArityValue = promoted
		}
	}
	return nil
}

// Disable resets the arity of the BasicType(s) matched by p to Disabled.
func (t *BasicType) Disable(ctx *Context, p path.Path) error {
	targets := t.Get(ctx, p)
	if len(targets) == 0 {
		return errs.New(errs.InvalidPath, p.String(), "no matching option to disable")
	}
	for _, target := range targets {
		disabled, ok := arity.Disable(target.ArityValue)
		if ok {
			target.ArityValue = disabled
		}
	}
	return nil
}
