// Package scanner defines the format-scanner contract of spec.md §6.
// Concrete scanners live in the json, yaml, and toml subpackages; lookup
// by name or file extension is done by internal/registry.
package scanner

import (
	"io"

	"github.com/openconfig/aceconf/internal/tree"
)

// Layout selects the textual layout a Dump call renders.
type Layout int

const (
	Compact Layout = iota
	Default
	Inlined
)

// Scanner is the external collaborator spec.md §6 describes: a format
// plugin that reads/writes a tree.Value from/to a concrete textual
// representation. The core never inspects format idiosyncrasies (stream
// framing, comments, multi-document support) beyond this interface.
type Scanner interface {
	// Name is the canonical short name used for command-line lookup
	// (e.g. "json").
	Name() string
	// Extension is the canonical file extension used for path-based
	// lookup (e.g. "json").
	Extension() string
	// Open reads a file at path into a tree.Value.
	Open(path string) (*tree.Value, error)
	// Parse parses an in-memory string into a tree.Value.
	Parse(name, src string) (*tree.Value, error)
	// Dump writes value to sink in the requested layout.
	Dump(value *tree.Value, layout Layout, sink io.Writer) error
	// OpenAll reads path as a multi-document stream, if the format
	// supports one, returning one Value per document.
	OpenAll(path string) ([]*tree.Value, error)
	// ParseAll parses src as a multi-document stream.
	ParseAll(name, src string) ([]*tree.Value, error)
}
