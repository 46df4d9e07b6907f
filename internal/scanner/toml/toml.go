// Package toml implements the TOML scanner plugin via BurntSushi/toml.
// TOML has no native multi-document stream convention, so OpenAll/
// ParseAll always return a single-element slice.
package toml

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/scanner"
	"github.com/openconfig/aceconf/internal/tree"
)

// Scanner implements scanner.Scanner for TOML documents.
type Scanner struct{}

// New returns a TOML Scanner.
func New() *Scanner { return &Scanner{} }

func (Scanner) Name() string      { return "toml" }
func (Scanner) Extension() string { return "toml" }

func (s Scanner) Open(p string) (*tree.Value, error) {
	var v map[string]interface{}
	if _, err := toml.DecodeFile(p, &v); err != nil {
		return nil, errs.New(errs.UnsupportedFormat, p, err.Error())
	}
	return fromInterface(p, v), nil
}

func (Scanner) Parse(name, src string) (*tree.Value, error) {
	var v map[string]interface{}
	if _, err := toml.Decode(src, &v); err != nil {
		return nil, errs.New(errs.UnsupportedFormat, name, err.Error())
	}
	return fromInterface(name, v), nil
}

func (s Scanner) OpenAll(p string) ([]*tree.Value, error) {
	v, err := s.Open(p)
	if err != nil {
		return nil, err
	}
	return []*tree.Value{v}, nil
}

func (s Scanner) ParseAll(name, src string) ([]*tree.Value, error) {
	v, err := s.Parse(name, src)
	if err != nil {
		return nil, err
	}
	return []*tree.Value{v}, nil
}

func (Scanner) Dump(value *tree.Value, layout scanner.Layout, sink io.Writer) error {
	enc := toml.NewEncoder(sink)
	if layout != scanner.Compact {
		enc.Indent = "  "
	} else {
		enc.Indent = ""
	}
	if err := enc.Encode(toInterface(value)); err != nil {
		return errs.New(errs.UnsupportedFormat, value.Name(), err.Error())
	}
	return nil
}

func fromInterface(name string, v interface{}) *tree.Value {
	switch t := v.(type) {
	case nil:
		return tree.NewUndefined(name)
	case bool:
		return tree.NewBoolean(name, t)
	case int64:
		return tree.NewInteger(name, t)
	case float64:
		return tree.NewFloat(name, t)
	case string:
		return tree.NewString(name, t)
	case []interface{}:
		arr := tree.NewArray(name)
		for _, c := range t {
			arr.AppendArray(fromInterface("", c))
		}
		return arr
	case map[string]interface{}:
		obj := tree.NewObject(name)
		for k, c := range t {
			obj.SetKey(k, fromInterface(k, c))
		}
		return obj
	default:
		return tree.NewUndefined(name)
	}
}

func named(key string) path.Path {
	p, _ := path.Parse("$." + key)
	return p
}

func toInterface(v *tree.Value) interface{} {
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
		v.Each(func(c *tree.Value) { out = append(out, toInterface(c)) })
		return out
	case tree.Object:
		out := map[string]interface{}{}
		for _, k := range v.Keys() {
			c, _ := v.Get1(named(k))
			out[k] = toInterface(c)
		}
		return out
	default:
		return nil
	}
}
