// Package testutil collects shared test fixtures and comparison helpers
// for the configuration-schema core's own test suites: golden model and
// instance documents, and diff-rendering wrappers around go-cmp,
// godebug/pretty, and go-difflib so a failing assertion prints a
// readable diff the way ytypes' own tests do (pretty.Compare) and the
// way testify's require package renders failures.
package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
)

// DiffTrees renders a go-cmp diff of two tree.Values compared by their
// exported accessors, matching ytypes' own pretty.Compare idiom for
// structural test failures: empty string means equal.
func DiffTrees(got, want *tree.Value) string {
	return cmp.Diff(pretty.Sprint(Snapshot(want)), pretty.Sprint(Snapshot(got)))
}

func named(key string) path.Path {
	p, _ := path.Parse("$." + key)
	return p
}

// Snapshot flattens a tree.Value into a plain Go value (bool/int64/
// float64/string/[]interface{}/map[string]interface{}) suitable for
// pretty.Sprint or go-cmp, independent of tree.Value's internal
// representation.
func Snapshot(v *tree.Value) interface{} {
	if v == nil {
		return nil
	}
	switch v.Kind() {
	case tree.Boolean:
		b, _ := v.Bool()
		return b
	case tree.Integer:
		i, _ := v.Int()
		return i
	case tree.Float:
		f, _ := v.Float()
		return f
	case tree.String:
		s, _ := v.Str()
		return s
	case tree.Array:
		out := []interface{}{}
		v.Each(func(c *tree.Value) { out = append(out, Snapshot(c)) })
		return out
	case tree.Object:
		out := map[string]interface{}{}
		for _, k := range v.Keys() {
			c, _ := v.Get1(named(k))
			out[k] = Snapshot(c)
		}
		return out
	default:
		return nil
	}
}

// UnifiedDiff renders a standard unified diff between two rendered
// documents (e.g. two golden-file JSON blobs), used when a whole-file
// comparison reads better than a structural one.
func UnifiedDiff(fromName, from, toName, to string) (string, error) {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(from),
		B:        difflib.SplitLines(to),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(d)
}

// ErrKind returns the failure Kind carried by err if err is (or contains)
// an *errs.E, for tests that only care about the failure category, not
// the full message text.
func ErrKind(err error) (errs.Kind, bool) {
	switch e := err.(type) {
	case errs.List:
		for _, inner := range e {
			if k, ok := ErrKind(inner); ok {
				return k, true
			}
		}
		return errs.Unknown, false
	case *errs.E:
		return e.Kind, true
	default:
		return errs.Unknown, false
	}
}
