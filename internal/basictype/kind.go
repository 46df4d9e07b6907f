// Package basictype implements the polymorphic option definition from
// spec.md §3.4/§4.6: a kind, an arity, attributes, and dependencies,
// specialized over the thirteen concrete kinds. Following the teacher's
// own yang.Entry/YangType convention (one flat struct switched on a Kind
// field, not deep inheritance), BasicType is a single struct whose
// methods dispatch internally on KindValue — the "tagged variant plus
// capability trait" shape spec.md §9 recommends, realized here as one
// struct implementing the TypeOps surface directly rather than as
// thirteen separate Go types, since the kinds share the overwhelming
// majority of their state (arity, attributes, dependencies).
package basictype

import (
	"github.com/openconfig/aceconf/internal/arity"
)

// Kind is one of the thirteen concrete option kinds spec.md §3.4 lists.
type Kind int

const (
	Boolean Kind = iota
	Integer
	Float
	String
	Enum
	File
	IPv4
	MAC
	URI
	CPUID
	Class
	Plugin
	Selector
)

var kindNames = map[Kind]string{
	Boolean:  "boolean",
	Integer:  "integer",
	Float:    "float",
	String:   "string",
	Enum:     "enum",
	File:     "file",
	IPv4:     "ipv4",
	MAC:      "mac",
	URI:      "uri",
	CPUID:    "cpuid",
	Class:    "class",
	Plugin:   "plugin",
	Selector: "select",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps a model-file "kind" string onto a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return Boolean, false
}

// allowedArities restricts the arity.Kind patterns each BasicType kind
// permits. A kind absent from this map permits any arity.Kind. Per
// spec.md §4.4, Selector accepts only "?"/"1".
var allowedArities = map[Kind]map[arity.Kind]bool{
	Selector: {arity.UpToOne: true, arity.One: true},
}

// arityAllowed reports whether a is a legal arity for kind k.
func arityAllowed(k Kind, a arity.Arity) bool {
	allowed, restricted := allowedArities[k]
	if !restricted {
		return a.Kind != arity.Undefined
	}
	return allowed[a.Kind]
}

// IsObject reports whether k's instances are Object-kind tree values:
// Class, Plugin, and Selector all hold named children.
func (k Kind) IsObject() bool {
	return k == Class || k == Plugin || k == Selector
}
