// Package errs implements the kind-tagged error taxonomy used across the
// core: every phase failure is reported by kind, not by exception type.
package errs

import (
	"errors"
	"fmt"
)

// Kind enumerates the failure categories a pipeline phase can surface.
type Kind int

const (
	Unknown Kind = iota
	InvalidPath
	AttributeSchema
	ArityMismatch
	ValueConstraint
	DependencyUnresolved
	DependencyConstraint
	CircularInclude
	UnsupportedFormat
	ModelNotFound
	DisabledOptionUsed
	Deprecated
	Unexpected
	// UnboundValueExpansion is raised when a dependency path contains the
	// '%' placeholder but the owning type is not a bounded string (it
	// must carry an either attribute), per spec.md §4.5.
	UnboundValueExpansion
)

func (k Kind) String() string {
	switch k {
	case InvalidPath:
		return "InvalidPath"
	case AttributeSchema:
		return "AttributeSchema"
	case ArityMismatch:
		return "ArityMismatch"
	case ValueConstraint:
		return "ValueConstraint"
	case DependencyUnresolved:
		return "DependencyUnresolved"
	case DependencyConstraint:
		return "DependencyConstraint"
	case CircularInclude:
		return "CircularInclude"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case ModelNotFound:
		return "ModelNotFound"
	case DisabledOptionUsed:
		return "DisabledOptionUsed"
	case Deprecated:
		return "Deprecated"
	case Unexpected:
		return "Unexpected"
	case UnboundValueExpansion:
		return "UnboundValueExpansion"
	default:
		return "Unknown"
	}
}

// Recoverable reports whether k is locally recovered: the pipeline keeps
// running and the resolved instance is adjusted accordingly, per spec §7.
func (k Kind) Recoverable() bool {
	switch k {
	case DisabledOptionUsed, Deprecated, Unexpected:
		return true
	default:
		return false
	}
}

// E is a single kind-tagged error, optionally anchored to a path.
type E struct {
	Kind   Kind
	Path   string
	Detail string
}

// New returns an *E for kind k anchored at path, with a formatted detail.
func New(k Kind, path, detail string) *E {
	return &E{Kind: k, Path: path, Detail: detail}
}

func (e *E) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Detail)
}

// List is a slice of error, mirroring the teacher's util.Errors shape.
type List []error

func (l List) Error() string  { return ToString(l) }
func (l List) String() string { return l.Error() }

// NewList returns a List with a single element err, or nil if err is nil.
func NewList(err error) List {
	if err == nil {
		return nil
	}
	return List{err}
}

// Append appends err to list if it is not nil.
func Append(list []error, err error) List {
	if err == nil {
		return list
	}
	return append(list, err)
}

// AppendAll appends every non-nil error in more to list.
func AppendAll(list []error, more []error) List {
	if len(more) == 0 {
		return list
	}
	for _, e := range more {
		list = Append(list, e)
	}
	return list
}

// ToString renders errors as a comma-separated string, skipping nils.
func ToString(errors []error) string {
	var out string
	first := true
	for _, e := range errors {
		if e == nil {
			continue
		}
		if !first {
			out += ", "
		}
		out += e.Error()
		first = false
	}
	return out
}

// KindOf extracts the Kind of err if it (or something it wraps) is an *E.
func KindOf(err error) (Kind, bool) {
	var e *E
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return Unknown, false
}
