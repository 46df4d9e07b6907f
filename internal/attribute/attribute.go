// Package attribute implements the named, typed, optional metadata
// attached to a BasicType (spec.md §3.4/§4.4): default, either, range,
// map, arity, kind, doc, inherit, deprecated, hook, deps, and the rest of
// the concrete attribute kinds enumerated in spec.md's table.
package attribute

import (
	"fmt"
	"sort"

	"github.com/openconfig/aceconf/internal/arity"
	"github.com/openconfig/aceconf/internal/dependency"
	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
)

// Attribute is the capability set every concrete attribute kind
// implements, per spec.md §4.4.
type Attribute interface {
	Name() string
	Optional() bool
	Overridable() bool
	CheckModel(v *tree.Value) error
	LoadModel(v *tree.Value) error
	Merge(other Attribute) error
	Override(other Attribute)
	Validate(root, instance *tree.Value) error
	Clone() Attribute
}

// base factors the shared optional/overridable bookkeeping every concrete
// attribute embeds, composition rather than inheritance per spec.md §9.
type base struct {
	name        string
	optional    bool
	overridable bool
}

func (b base) Name() string      { return b.name }
func (b base) Optional() bool    { return b.optional }
func (b base) Overridable() bool { return b.overridable }

// exclusiveGroups lists the attribute names that are pairwise mutually
// exclusive, enforced by Set.FlattenModel per spec.md §4.4: either, range,
// map, hook, size are mutually exclusive as applicable.
var exclusiveGroups = [][]string{
	{"either", "range", "map", "hook", "size"},
}

// Set is the named collection of Attributes on a BasicType.
type Set struct {
	attrs map[string]Attribute
	order []string
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{attrs: map[string]Attribute{}} }

// Add inserts or replaces an Attribute by name.
func (s *Set) Add(a Attribute) {
	if _, exists := s.attrs[a.Name()]; !exists {
		s.order = append(s.order, a.Name())
	}
	s.attrs[a.Name()] = a
}

// Get looks up an Attribute by name.
func (s *Set) Get(name string) (Attribute, bool) {
	a, ok := s.attrs[name]
	return a, ok
}

// Has reports whether name is present.
func (s *Set) Has(name string) bool {
	_, ok := s.attrs[name]
	return ok
}

// Names returns the attribute names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// CheckModel runs CheckModel on every attribute against its corresponding
// child of v (an Object keyed by attribute name).
func (s *Set) CheckModel(v *tree.Value) error {
	for _, name := range s.order {
		child, _ := v.Get1(mustNamed(name))
		if err := s.attrs[name].CheckModel(child); err != nil {
			return err
		}
	}
	return nil
}

// FlattenModel enforces attribute mutual exclusions declared in
// exclusiveGroups.
func (s *Set) FlattenModel() error {
	for _, group := range exclusiveGroups {
		present := present(s, group)
		if len(present) > 1 {
			sort.Strings(present)
			return errs.New(errs.AttributeSchema, "", fmt.Sprintf("mutually exclusive attributes present: %v", present))
		}
	}
	return nil
}

func present(s *Set, group []string) []string {
	var out []string
	for _, n := range group {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Validate runs Validate on every attribute.
func (s *Set) Validate(root, instance *tree.Value) error {
	for _, name := range s.order {
		if err := s.attrs[name].Validate(root, instance); err != nil {
			return err
		}
	}
	return nil
}

// Merge merges other into s: attributes present in both are merged
// in-place; attributes only present in other are cloned in.
func (s *Set) Merge(other *Set) error {
	if other == nil {
		return nil
	}
	for _, name := range other.order {
		oa := other.attrs[name]
		if ea, ok := s.attrs[name]; ok {
			if err := ea.Merge(oa); err != nil {
				return err
			}
			continue
		}
		s.Add(oa.Clone())
	}
	return nil
}

// Override applies other on top of s: attributes marked Overridable are
// replaced wholesale; others are merged.
func (s *Set) Override(other *Set) error {
	if other == nil {
		return nil
	}
	for _, name := range other.order {
		oa := other.attrs[name]
		ea, ok := s.attrs[name]
		if !ok {
			s.Add(oa.Clone())
			continue
		}
		if oa.Overridable() {
			ea.Override(oa)
			continue
		}
		if err := ea.Merge(oa); err != nil {
			return err
		}
	}
	return nil
}

// Clone deep-copies s.
func (s *Set) Clone() *Set {
	out := NewSet()
	for _, name := range s.order {
		out.Add(s.attrs[name].Clone())
	}
	return out
}

func mustNamed(name string) path.Path {
	p, _ := path.Parse("$." + name)
	return p
}

// --- concrete attribute kinds -----------------------------------------

// KindAttr carries the type kind string; it must match the enclosing
// BasicType's declared kind.
type KindAttr struct {
	base
	Value string
}

func NewKind(v string) *KindAttr { return &KindAttr{base: base{name: "kind"}, Value: v} }
func (a *KindAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return errs.New(errs.AttributeSchema, "kind", "missing required attribute")
	}
	s, err := v.Str()
	if err != nil {
		return errs.New(errs.AttributeSchema, "kind", "kind must be a string")
	}
	a.Value = s
	return nil
}
func (a *KindAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *KindAttr) Merge(other Attribute) error {
	if o, ok := other.(*KindAttr); ok {
		a.Value = o.Value
	}
	return nil
}
func (a *KindAttr) Override(other Attribute) { a.Merge(other) }
func (a *KindAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *KindAttr) Clone() Attribute {
	c := *a
	return &c
}

// ArityAttr carries the parsed cardinality.
type ArityAttr struct {
	base
	Value arity.Arity
}

func NewArity(v arity.Arity) *ArityAttr { return &ArityAttr{base: base{name: "arity"}, Value: v} }
func (a *ArityAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return errs.New(errs.AttributeSchema, "arity", "missing required attribute")
	}
	s, err := v.Str()
	if err != nil {
		return errs.New(errs.ArityMismatch, "arity", "arity must be a string")
	}
	parsed, ok := arity.Parse(s)
	if !ok {
		return errs.New(errs.ArityMismatch, "arity", fmt.Sprintf("malformed arity %q", s))
	}
	a.Value = parsed
	return nil
}
func (a *ArityAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *ArityAttr) Merge(other Attribute) error {
	if o, ok := other.(*ArityAttr); ok {
		combined := arity.Intersect(a.Value, o.Value)
		if combined.Kind == arity.Undefined {
			return errs.New(errs.ArityMismatch, "arity", "incompatible arities on merge")
		}
		a.Value = combined
	}
	return nil
}
func (a *ArityAttr) Override(other Attribute) {
	if o, ok := other.(*ArityAttr); ok {
		a.Value = o.Value
	}
}
func (a *ArityAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *ArityAttr) Clone() Attribute {
	c := *a
	return &c
}

// DocAttr carries the mandatory one-line documentation string.
type DocAttr struct {
	base
	Value string
}

func NewDoc(v string) *DocAttr { return &DocAttr{base: base{name: "doc"}, Value: v} }
func (a *DocAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return errs.New(errs.AttributeSchema, "doc", "missing required attribute")
	}
	s, err := v.Str()
	if err != nil || s == "" {
		return errs.New(errs.AttributeSchema, "doc", "doc must be a non-empty string")
	}
	a.Value = s
	return nil
}
func (a *DocAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *DocAttr) Merge(other Attribute) error {
	if o, ok := other.(*DocAttr); ok {
		a.Value = o.Value
	}
	return nil
}
func (a *DocAttr) Override(other Attribute) { a.Merge(other) }
func (a *DocAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *DocAttr) Clone() Attribute {
	c := *a
	return &c
}

// DeprecatedAttr emits a deprecation warning at instance-check.
type DeprecatedAttr struct {
	base
	Message string
}

func NewDeprecated(msg string) *DeprecatedAttr {
	return &DeprecatedAttr{base: base{name: "deprecated", optional: true}, Message: msg}
}
func (a *DeprecatedAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	s, err := v.Str()
	if err != nil {
		return errs.New(errs.AttributeSchema, "deprecated", "deprecated must be a string")
	}
	a.Message = s
	return nil
}
func (a *DeprecatedAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *DeprecatedAttr) Merge(other Attribute) error {
	if o, ok := other.(*DeprecatedAttr); ok {
		a.Message = o.Message
	}
	return nil
}
func (a *DeprecatedAttr) Override(other Attribute) { a.Merge(other) }
func (a *DeprecatedAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *DeprecatedAttr) Clone() Attribute {
	c := *a
	return &c
}

// InheritAttr controls whether a missing instance value may be adopted
// from an enclosing scope.
type InheritAttr struct {
	base
	Value bool
}

func NewInherit(v bool) *InheritAttr {
	return &InheritAttr{base: base{name: "inherit", optional: true}, Value: v}
}
func (a *InheritAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	b, err := v.Bool()
	if err != nil {
		return errs.New(errs.AttributeSchema, "inherit", "inherit must be a boolean")
	}
	a.Value = b
	return nil
}
func (a *InheritAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *InheritAttr) Merge(other Attribute) error {
	if o, ok := other.(*InheritAttr); ok {
		a.Value = a.Value || o.Value
	}
	return nil
}
func (a *InheritAttr) Override(other Attribute) {
	if o, ok := other.(*InheritAttr); ok {
		a.Value = o.Value
	}
}
func (a *InheritAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *InheritAttr) Clone() Attribute {
	c := *a
	return &c
}

// HookAttr rewrites between an option's enumerated source and another
// option's keys: path+pattern+value.
type HookAttr struct {
	base
	Target  path.Path
	Pattern string
	Value   string
}

func NewHook(target path.Path, pattern, value string) *HookAttr {
	return &HookAttr{base: base{name: "hook", optional: true}, Target: target, Pattern: pattern, Value: value}
}
func (a *HookAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	pv, ok := v.Get1(mustNamed("path"))
	if !ok {
		return errs.New(errs.AttributeSchema, "hook", "hook requires a path")
	}
	ps, err := pv.Str()
	if err != nil {
		return errs.New(errs.AttributeSchema, "hook", "hook.path must be a string")
	}
	target, err := path.Parse(ps)
	if err != nil {
		return errs.New(errs.InvalidPath, ps, err.Error())
	}
	if target.Global() {
		return errs.New(errs.InvalidPath, ps, "hook path must not be globally rooted")
	}
	a.Target = target
	if pat, ok := v.Get1(mustNamed("pattern")); ok {
		a.Pattern, _ = pat.Str()
	}
	if val, ok := v.Get1(mustNamed("value")); ok {
		a.Value, _ = val.Str()
	}
	return nil
}
func (a *HookAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *HookAttr) Merge(other Attribute) error {
	if o, ok := other.(*HookAttr); ok {
		*a = *o
	}
	return nil
}
func (a *HookAttr) Override(other Attribute) { a.Merge(other) }
func (a *HookAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *HookAttr) Clone() Attribute {
	c := *a
	return &c
}

// DefaultAttr injects one or many values if the instance omits the key.
type DefaultAttr struct {
	base
	Values []*tree.Value
}

func NewDefault(vs ...*tree.Value) *DefaultAttr {
	return &DefaultAttr{base: base{name: "default", optional: true}, Values: vs}
}
func (a *DefaultAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	if v.Kind() == tree.Array {
		var out []*tree.Value
		v.Each(func(c *tree.Value) { out = append(out, c) })
		a.Values = out
		return nil
	}
	a.Values = []*tree.Value{v}
	return nil
}
func (a *DefaultAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *DefaultAttr) Merge(other Attribute) error {
	if o, ok := other.(*DefaultAttr); ok {
		a.Values = o.Values
	}
	return nil
}
func (a *DefaultAttr) Override(other Attribute) { a.Merge(other) }
func (a *DefaultAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *DefaultAttr) Clone() Attribute {
	c := *a
	c.Values = append([]*tree.Value(nil), a.Values...)
	return &c
}

// EitherAttr is the enumeration constraint.
type EitherAttr struct {
	base
	Values []*tree.Value
}

func NewEither(vs ...*tree.Value) *EitherAttr {
	return &EitherAttr{base: base{name: "either", optional: true}, Values: vs}
}
func (a *EitherAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	if v.Kind() != tree.Array {
		return errs.New(errs.AttributeSchema, "either", "either must be a list")
	}
	var out []*tree.Value
	v.Each(func(c *tree.Value) { out = append(out, c) })
	a.Values = out
	return nil
}
func (a *EitherAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *EitherAttr) Merge(other Attribute) error {
	if o, ok := other.(*EitherAttr); ok {
		a.Values = append(a.Values, o.Values...)
	}
	return nil
}
func (a *EitherAttr) Override(other Attribute) {
	if o, ok := other.(*EitherAttr); ok {
		a.Values = o.Values
	}
}
func (a *EitherAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *EitherAttr) Clone() Attribute {
	c := *a
	c.Values = append([]*tree.Value(nil), a.Values...)
	return &c
}

// Contains reports whether v matches one of the enumerated values: a
// match needs the same kind and an equal primitive value.
func (a *EitherAttr) Contains(v *tree.Value) bool {
	for _, e := range a.Values {
		if sameScalar(e, v) {
			return true
		}
	}
	return false
}

func sameScalar(a, b *tree.Value) bool {
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

// RangeAttr is the closed/open interval constraint, e.g. "[lo,hi]".
type RangeAttr struct {
	base
	Raw            string
	Lo, Hi         float64
	HasLo, HasHi   bool
	LoIncl, HiIncl bool
}

func NewRange(raw string) *RangeAttr { return &RangeAttr{base: base{name: "range", optional: true}, Raw: raw} }

func (a *RangeAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	s, err := v.Str()
	if err != nil {
		return errs.New(errs.AttributeSchema, "range", "range must be a string")
	}
	if err := a.parse(s); err != nil {
		return errs.New(errs.AttributeSchema, "range", err.Error())
	}
	return nil
}

func (a *RangeAttr) parse(s string) error {
	if len(s) < 2 {
		return fmt.Errorf("malformed range %q", s)
	}
	a.Raw = s
	a.LoIncl = s[0] == '['
	a.HiIncl = s[len(s)-1] == ']'
	if !a.LoIncl && s[0] != '(' {
		return fmt.Errorf("malformed range %q", s)
	}
	if !a.HiIncl && s[len(s)-1] != ')' {
		return fmt.Errorf("malformed range %q", s)
	}
	inner := s[1 : len(s)-1]
	var lo, hi string
	comma := -1
	for i, c := range inner {
		if c == ',' {
			comma = i
			break
		}
	}
	if comma < 0 {
		return fmt.Errorf("malformed range %q: missing comma", s)
	}
	lo, hi = inner[:comma], inner[comma+1:]
	if lo != "" {
		var f float64
		if _, err := fmt.Sscanf(lo, "%g", &f); err != nil {
			return fmt.Errorf("malformed range lower bound %q", lo)
		}
		a.Lo, a.HasLo = f, true
	}
	if hi != "" {
		var f float64
		if _, err := fmt.Sscanf(hi, "%g", &f); err != nil {
			return fmt.Errorf("malformed range upper bound %q", hi)
		}
		a.Hi, a.HasHi = f, true
	}
	return nil
}

func (a *RangeAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *RangeAttr) Merge(other Attribute) error {
	if o, ok := other.(*RangeAttr); ok {
		*a = *o
	}
	return nil
}
func (a *RangeAttr) Override(other Attribute) { a.Merge(other) }
func (a *RangeAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *RangeAttr) Clone() Attribute {
	c := *a
	return &c
}

// Contains reports whether n lies within the range.
func (a *RangeAttr) Contains(n float64) bool {
	if a.HasLo {
		if a.LoIncl && n < a.Lo {
			return false
		}
		if !a.LoIncl && n <= a.Lo {
			return false
		}
	}
	if a.HasHi {
		if a.HiIncl && n > a.Hi {
			return false
		}
		if !a.HiIncl && n >= a.Hi {
			return false
		}
	}
	return true
}

// Subset reports whether a is entirely contained within b, used when
// flattening a dependency constraint against its target's range.
func (a *RangeAttr) Subset(b *RangeAttr) bool {
	if b.HasLo && (!a.HasLo || a.Lo < b.Lo || (a.Lo == b.Lo && !b.LoIncl && a.LoIncl)) {
		return false
	}
	if b.HasHi && (!a.HasHi || a.Hi > b.Hi || (a.Hi == b.Hi && !b.HiIncl && a.HiIncl)) {
		return false
	}
	return true
}

// MapAttr is the mapped enumeration: object of string->T, keys are the
// allowed values.
type MapAttr struct {
	base
	Entries map[string]*tree.Value
	Keys    []string
}

func NewMap() *MapAttr {
	return &MapAttr{base: base{name: "map", optional: true}, Entries: map[string]*tree.Value{}}
}
func (a *MapAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	if v.Kind() != tree.Object {
		return errs.New(errs.AttributeSchema, "map", "map must be an object")
	}
	a.Entries = map[string]*tree.Value{}
	a.Keys = v.Keys()
	for _, k := range a.Keys {
		c, _ := v.Get1(mustNamed(k))
		a.Entries[k] = c
	}
	return nil
}
func (a *MapAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *MapAttr) Merge(other Attribute) error {
	if o, ok := other.(*MapAttr); ok {
		for _, k := range o.Keys {
			if _, exists := a.Entries[k]; !exists {
				a.Keys = append(a.Keys, k)
			}
			a.Entries[k] = o.Entries[k]
		}
	}
	return nil
}
func (a *MapAttr) Override(other Attribute) {
	if o, ok := other.(*MapAttr); ok {
		a.Entries = o.Entries
		a.Keys = o.Keys
	}
}
func (a *MapAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *MapAttr) Clone() Attribute {
	c := *a
	c.Entries = map[string]*tree.Value{}
	for k, v := range a.Entries {
		c.Entries[k] = v
	}
	c.Keys = append([]string(nil), a.Keys...)
	return &c
}

// ModelAttr carries the included/parent model path, used by Class/Plugin.
type ModelAttr struct {
	base
	Value string
}

func NewModel(v string) *ModelAttr { return &ModelAttr{base: base{name: "model"}, Value: v} }
func (a *ModelAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return errs.New(errs.AttributeSchema, "model", "missing required attribute")
	}
	s, err := v.Str()
	if err != nil {
		return errs.New(errs.AttributeSchema, "model", "model must be a string")
	}
	a.Value = s
	return nil
}
func (a *ModelAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *ModelAttr) Merge(other Attribute) error {
	if o, ok := other.(*ModelAttr); ok {
		a.Value = o.Value
	}
	return nil
}
func (a *ModelAttr) Override(other Attribute) { a.Merge(other) }
func (a *ModelAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *ModelAttr) Clone() Attribute {
	c := *a
	return &c
}

// TemplateAttr carries the template type name used by Selector.
type TemplateAttr struct {
	base
	Value string
}

func NewTemplate(v string) *TemplateAttr { return &TemplateAttr{base: base{name: "template"}, Value: v} }
func (a *TemplateAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return errs.New(errs.AttributeSchema, "template", "missing required attribute")
	}
	s, err := v.Str()
	if err != nil {
		return errs.New(errs.AttributeSchema, "template", "template must be a string")
	}
	a.Value = s
	return nil
}
func (a *TemplateAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *TemplateAttr) Merge(other Attribute) error {
	if o, ok := other.(*TemplateAttr); ok {
		a.Value = o.Value
	}
	return nil
}
func (a *TemplateAttr) Override(other Attribute) { a.Merge(other) }
func (a *TemplateAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *TemplateAttr) Clone() Attribute {
	c := *a
	return &c
}

// SizeAttr restricts the number of keys a Selector instance may carry.
type SizeAttr struct {
	base
	Value arity.Arity
}

func NewSize(v arity.Arity) *SizeAttr { return &SizeAttr{base: base{name: "size", optional: true}, Value: v} }
func (a *SizeAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	s, err := v.Str()
	if err != nil {
		return errs.New(errs.AttributeSchema, "size", "size must be a string")
	}
	parsed, ok := arity.Parse(s)
	if !ok {
		return errs.New(errs.ArityMismatch, "size", fmt.Sprintf("malformed size %q", s))
	}
	a.Value = parsed
	return nil
}
func (a *SizeAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *SizeAttr) Merge(other Attribute) error {
	if o, ok := other.(*SizeAttr); ok {
		a.Value = arity.Intersect(a.Value, o.Value)
	}
	return nil
}
func (a *SizeAttr) Override(other Attribute) {
	if o, ok := other.(*SizeAttr); ok {
		a.Value = o.Value
	}
}
func (a *SizeAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *SizeAttr) Clone() Attribute {
	c := *a
	return &c
}

// DepsAttr carries the cross-option dependency list.
type DepsAttr struct {
	base
	Deps []*dependency.Dependency
}

func NewDeps(deps ...*dependency.Dependency) *DepsAttr {
	return &DepsAttr{base: base{name: "deps", optional: true}, Deps: deps}
}
func (a *DepsAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return nil
	}
	if v.Kind() != tree.Array {
		return errs.New(errs.AttributeSchema, "deps", "deps must be a list")
	}
	var out []*dependency.Dependency
	var firstErr error
	v.Each(func(c *tree.Value) {
		if firstErr != nil {
			return
		}
		d, err := dependency.FromTree(c)
		if err != nil {
			firstErr = err
			return
		}
		out = append(out, d)
	})
	if firstErr != nil {
		return firstErr
	}
	a.Deps = out
	return nil
}
func (a *DepsAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *DepsAttr) Merge(other Attribute) error {
	if o, ok := other.(*DepsAttr); ok {
		a.Deps = append(a.Deps, o.Deps...)
	}
	return nil
}
func (a *DepsAttr) Override(other Attribute) {
	if o, ok := other.(*DepsAttr); ok {
		a.Deps = o.Deps
	}
}
func (a *DepsAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *DepsAttr) Clone() Attribute {
	c := *a
	c.Deps = append([]*dependency.Dependency(nil), a.Deps...)
	return &c
}

// BindAttr carries symbolic bindings for Enum: name -> integer tag.
type BindAttr struct {
	base
	Entries map[string]int64
	Keys    []string
}

func NewBind() *BindAttr {
	return &BindAttr{base: base{name: "bind"}, Entries: map[string]int64{}}
}
func (a *BindAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		return errs.New(errs.AttributeSchema, "bind", "missing required attribute")
	}
	if v.Kind() != tree.Object {
		return errs.New(errs.AttributeSchema, "bind", "bind must be an object")
	}
	a.Entries = map[string]int64{}
	a.Keys = v.Keys()
	for _, k := range a.Keys {
		c, _ := v.Get1(mustNamed(k))
		n, err := c.Int()
		if err != nil {
			return errs.New(errs.AttributeSchema, "bind", fmt.Sprintf("bind.%s must be an integer", k))
		}
		a.Entries[k] = n
	}
	return nil
}
func (a *BindAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *BindAttr) Merge(other Attribute) error {
	if o, ok := other.(*BindAttr); ok {
		for _, k := range o.Keys {
			if _, exists := a.Entries[k]; !exists {
				a.Keys = append(a.Keys, k)
			}
			a.Entries[k] = o.Entries[k]
		}
	}
	return nil
}
func (a *BindAttr) Override(other Attribute) {
	if o, ok := other.(*BindAttr); ok {
		a.Entries = o.Entries
		a.Keys = o.Keys
	}
}
func (a *BindAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *BindAttr) Clone() Attribute {
	c := *a
	c.Entries = map[string]int64{}
	for k, v := range a.Entries {
		c.Entries[k] = v
	}
	c.Keys = append([]string(nil), a.Keys...)
	return &c
}

// ModeAttr carries the file open mode for a File-kind type.
type ModeAttr struct {
	base
	Value string
}

var validModes = map[string]bool{"r": true, "r+": true, "w": true, "w+": true, "a": true, "a+": true}

func NewMode(v string) *ModeAttr { return &ModeAttr{base: base{name: "mode", optional: true}, Value: v} }
func (a *ModeAttr) CheckModel(v *tree.Value) error {
	if v == nil {
		a.Value = "r"
		return nil
	}
	s, err := v.Str()
	if err != nil || !validModes[s] {
		return errs.New(errs.AttributeSchema, "mode", fmt.Sprintf("invalid file mode %q", s))
	}
	a.Value = s
	return nil
}
func (a *ModeAttr) LoadModel(v *tree.Value) error { return a.CheckModel(v) }
func (a *ModeAttr) Merge(other Attribute) error {
	if o, ok := other.(*ModeAttr); ok {
		a.Value = o.Value
	}
	return nil
}
func (a *ModeAttr) Override(other Attribute) { a.Merge(other) }
func (a *ModeAttr) Validate(root, instance *tree.Value) error { return nil }
func (a *ModeAttr) Clone() Attribute {
	c := *a
	return &c
}
