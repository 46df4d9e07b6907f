// Package tree implements the polymorphic configuration-tree IR from
// spec.md §3.1/§4.2: a tagged-union Value (primitive / array / object)
// with path-based query, merge, and erase, addressed through the path
// sub-language in internal/path.
package tree

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
)

// Kind tags the union discriminant of a Value.
type Kind int

const (
	Undefined Kind = iota
	Boolean
	Integer
	Float
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "undefined"
	}
}

// Value is a single node of the tree. The root is uniquely owned by its
// creator; every child is owned by exactly one container (its parent) at
// a time. parent is a non-owning back-link: it never extends lifetime and
// must be kept in sync by every mutating operation.
type Value struct {
	kind   Kind
	name   string
	parent *Value

	b   bool
	i   int64
	f   float64
	s   string
	arr []*Value
	obj map[string]*Value
	// keys preserves object insertion order for formats that need it;
	// semantic operations never depend on this order.
	keys []string
}

func NewUndefined(name string) *Value { return &Value{kind: Undefined, name: name} }
func NewBoolean(name string, b bool) *Value {
	return &Value{kind: Boolean, name: name, b: b}
}
func NewInteger(name string, i int64) *Value {
	return &Value{kind: Integer, name: name, i: i}
}
func NewFloat(name string, f float64) *Value {
	return &Value{kind: Float, name: name, f: f}
}
func NewString(name string, s string) *Value {
	return &Value{kind: String, name: name, s: s}
}
func NewArray(name string) *Value {
	return &Value{kind: Array, name: name}
}
func NewObject(name string) *Value {
	return &Value{kind: Object, name: name, obj: map[string]*Value{}}
}

// Kind, Name, Parent are O(1) introspection.
func (v *Value) Kind() Kind     { return v.kind }
func (v *Value) Name() string   { return v.name }
func (v *Value) Parent() *Value { return v.parent }

// Root walks parent links to the tree root.
func (v *Value) Root() *Value {
	r := v
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Bool returns the stored boolean, or an error if v is not a Boolean.
func (v *Value) Bool() (bool, error) {
	if v.kind != Boolean {
		return false, errs.New(errs.ValueConstraint, v.name, fmt.Sprintf("not a boolean: %s", v.kind))
	}
	return v.b, nil
}

// Int returns the stored integer, or an error if v is not an Integer.
func (v *Value) Int() (int64, error) {
	if v.kind != Integer {
		return 0, errs.New(errs.ValueConstraint, v.name, fmt.Sprintf("not an integer: %s", v.kind))
	}
	return v.i, nil
}

// Float returns the stored float. Per the Open Question policy recorded
// in DESIGN.md, this does NOT silently upcast an Integer: requesting a
// Float from an Integer-kind value is an error. Use Number for
// kind-agnostic numeric access.
func (v *Value) Float() (float64, error) {
	if v.kind != Float {
		return 0, errs.New(errs.ValueConstraint, v.name, fmt.Sprintf("not a float: %s", v.kind))
	}
	return v.f, nil
}

// Number returns v's value widened to float64, accepting either Integer
// or Float. Used by range-checking code that legitimately treats both
// numeric kinds uniformly.
func (v *Value) Number() (float64, error) {
	switch v.kind {
	case Integer:
		return float64(v.i), nil
	case Float:
		return v.f, nil
	default:
		return 0, errs.New(errs.ValueConstraint, v.name, fmt.Sprintf("not numeric: %s", v.kind))
	}
}

// Str returns the stored string, or an error if v is not a String.
func (v *Value) Str() (string, error) {
	if v.kind != String {
		return "", errs.New(errs.ValueConstraint, v.name, fmt.Sprintf("not a string: %s", v.kind))
	}
	return v.s, nil
}

// Len returns the number of children of an Array or Object, 0 otherwise.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.keys)
	default:
		return 0
	}
}

// Each iterates immediate children; a scalar value invokes cb once with
// itself, matching spec.md §4.2.
func (v *Value) Each(cb func(*Value)) {
	switch v.kind {
	case Array:
		for _, c := range v.arr {
			cb(c)
		}
	case Object:
		for _, k := range v.keys {
			cb(v.obj[k])
		}
	default:
		cb(v)
	}
}

// Clone deep-copies v, detaching it from any parent.
func (v *Value) Clone() *Value {
	out := &Value{kind: v.kind, name: v.name, b: v.b, i: v.i, f: v.f, s: v.s}
	switch v.kind {
	case Array:
		out.arr = make([]*Value, len(v.arr))
		for i, c := range v.arr {
			cc := c.Clone()
			cc.parent = out
			out.arr[i] = cc
		}
	case Object:
		out.obj = map[string]*Value{}
		out.keys = append([]string(nil), v.keys...)
		for _, k := range out.keys {
			cc := v.obj[k].Clone()
			cc.parent = out
			out.obj[k] = cc
		}
	}
	return out
}

// AppendArray appends c as the next element of v, which must be an Array.
// It is the constructor-side counterpart used by scanners building a tree
// from parsed input.
func (v *Value) AppendArray(c *Value) {
	if v.kind != Array {
		return
	}
	v.appendArray(c)
}

// SetKey sets key to c on v, which must be an Object. It is the
// constructor-side counterpart used by scanners building a tree from
// parsed input.
func (v *Value) SetKey(key string, c *Value) {
	if v.kind != Object {
		return
	}
	v.setObjectKey(key, c)
}

func (v *Value) appendArray(c *Value) {
	c.parent = v
	c.name = strconv.Itoa(len(v.arr))
	v.arr = append(v.arr, c)
}

func (v *Value) setObjectKey(key string, c *Value) {
	c.parent = v
	c.name = key
	if _, exists := v.obj[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.obj[key] = c
}

// renumberArray reassigns "0".."n-1" names after an erase.
func (v *Value) renumberArray() {
	for i, c := range v.arr {
		c.name = strconv.Itoa(i)
	}
}

// eraseObjectKey removes key and keeps keys/obj consistent.
func (v *Value) eraseObjectKey(key string) {
	delete(v.obj, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
}

// Has reports whether path resolves to at least one value under v.
func (v *Value) Has(p path.Path) bool {
	return len(v.Get(p)) > 0
}

// Get resolves path against v. A non-generative path returns at most one
// result; a generative path may return any number. A Global-rooted path
// evaluated on a non-root value forwards to the root by walking parent
// links first.
func (v *Value) Get(p path.Path) []*Value {
	items := p.Items
	start := v
	if len(items) > 0 {
		switch items[0].Kind {
		case path.Global:
			start = v.Root()
			items = items[1:]
		case path.Local:
			items = items[1:]
		}
	}
	return resolve(start, items)
}

func resolve(cur *Value, items []path.Item) []*Value {
	if len(items) == 0 {
		return []*Value{cur}
	}
	head := items[0]
	rest := items[1:]

	if head.Recursive {
		var out []*Value
		out = append(out, resolveStep(cur, head, rest)...)
		// re-enter at every descendant too.
		cur.Each(func(c *Value) {
			if c == cur {
				return // scalar self-call guard
			}
			out = append(out, resolve(c, items)...)
		})
		return out
	}
	return resolveStep(cur, head, rest)
}

func resolveStep(cur *Value, head path.Item, rest []path.Item) []*Value {
	switch head.Kind {
	case path.Any:
		var out []*Value
		cur.Each(func(c *Value) {
			if c == cur {
				return
			}
			out = append(out, resolve(c, rest)...)
		})
		return out
	case path.Named:
		if cur.kind != Object {
			return nil
		}
		child, ok := cur.obj[head.Name]
		if !ok {
			return nil
		}
		return resolve(child, rest)
	case path.Indexed:
		if cur.kind != Array {
			return nil
		}
		var out []*Value
		for _, idx := range head.Indices {
			if idx < 0 || idx >= len(cur.arr) {
				continue
			}
			out = append(out, resolve(cur.arr[idx], rest)...)
		}
		return out
	case path.Ranged:
		if cur.kind != Array {
			return nil
		}
		var out []*Value
		step := head.Step
		if step == 0 {
			step = 1
		}
		lo, hi := 0, len(cur.arr)
		if head.Lo != nil {
			lo = *head.Lo
		}
		if head.Hi != nil {
			hi = *head.Hi
		}
		for i := lo; i < hi && i < len(cur.arr); i += step {
			if i < 0 {
				continue
			}
			out = append(out, resolve(cur.arr[i], rest)...)
		}
		return out
	default:
		return nil
	}
}

// Put writes value at path under v. Only legal on an Object receiver.
// Intermediate objects are created along Named path items as needed. If
// the path leads to an existing scalar key, the key is promoted to an
// Array and both the existing and new values are appended. Fails with an
// InvalidPath error if any item in the path is not Named.
func (v *Value) Put(p path.Path, value *Value) error {
	if v.kind != Object {
		return errs.New(errs.InvalidPath, p.String(), "put target is not an object")
	}
	items := p.Items
	if len(items) > 0 && (items[0].Kind == path.Global || items[0].Kind == path.Local) {
		items = items[1:]
	}
	if len(items) == 0 {
		return errs.New(errs.InvalidPath, p.String(), "empty put path")
	}
	cur := v
	for i, it := range items {
		if it.Kind != path.Named {
			return errs.New(errs.InvalidPath, p.String(), "unsupported path item for put")
		}
		last := i == len(items)-1
		existing, ok := cur.obj[it.Name]
		if last {
			if !ok {
				cur.setObjectKey(it.Name, value)
				return nil
			}
			if existing.kind == Array {
				existing.appendArray(value)
				return nil
			}
			// promote scalar/object key to an array holding both values.
			promoted := NewArray(it.Name)
			old := existing
			cur.eraseObjectKey(it.Name)
			cur.setObjectKey(it.Name, promoted)
			promoted.appendArray(old)
			promoted.appendArray(value)
			return nil
		}
		if !ok || existing.kind != Object {
			next := NewObject(it.Name)
			cur.setObjectKey(it.Name, next)
			cur = next
			continue
		}
		cur = existing
	}
	return nil
}

// Erase removes every target matched by p from v, reindexing arrays.
func (v *Value) Erase(p path.Path) error {
	targets := v.Get(p)
	for _, t := range targets {
		parent := t.parent
		if parent == nil {
			continue
		}
		switch parent.kind {
		case Object:
			parent.eraseObjectKey(t.name)
		case Array:
			idx, err := strconv.Atoi(t.name)
			if err != nil {
				continue
			}
			if idx < 0 || idx >= len(parent.arr) {
				continue
			}
			parent.arr = append(parent.arr[:idx], parent.arr[idx+1:]...)
			parent.renumberArray()
		}
	}
	return nil
}

// Merge merges other into v, recursively: objects merge key-wise, arrays
// concatenate, primitives overwrite.
func (v *Value) Merge(other *Value) error {
	if other == nil {
		return nil
	}
	switch {
	case v.kind == Object && other.kind == Object:
		for _, k := range other.keys {
			oc := other.obj[k]
			if ec, ok := v.obj[k]; ok {
				if ec.kind == Object && oc.kind == Object {
					if err := ec.Merge(oc); err != nil {
						return err
					}
					continue
				}
				if ec.kind == Array && oc.kind == Array {
					if err := ec.Merge(oc); err != nil {
						return err
					}
					continue
				}
				v.setObjectKey(k, oc.Clone())
				continue
			}
			v.setObjectKey(k, oc.Clone())
		}
		return nil
	case v.kind == Array && other.kind == Array:
		for _, c := range other.arr {
			v.appendArray(c.Clone())
		}
		return nil
	default:
		*v = *other.Clone()
		return nil
	}
}

// Keys returns the ordered object keys of v, or nil if v is not an Object.
func (v *Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// SortedKeys returns v's object keys sorted lexicographically, useful for
// deterministic emission/iteration independent of insertion order.
func (v *Value) SortedKeys() []string {
	out := v.Keys()
	sort.Strings(out)
	return out
}

// Get1 is a convenience for callers that know p is non-generative and
// expect at most one result.
func (v *Value) Get1(p path.Path) (*Value, bool) {
	res := v.Get(p)
	if len(res) == 0 {
		return nil, false
	}
	return res[0], true
}
