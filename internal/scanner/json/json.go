// Package json implements the JSON scanner plugin: reads JSON text into
// a tree.Value and renders a tree.Value back out as JSON, using the
// standard encoding/json decoder/encoder the way the teacher's own
// render.go emits JSON from a schema-shaped tree.
package json

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/scanner"
	"github.com/openconfig/aceconf/internal/tree"
)

// Scanner implements scanner.Scanner for JSON documents.
type Scanner struct{}

// New returns a JSON Scanner.
func New() *Scanner { return &Scanner{} }

func (Scanner) Name() string      { return "json" }
func (Scanner) Extension() string { return "json" }

func (s Scanner) Open(p string) (*tree.Value, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, errs.New(errs.UnsupportedFormat, p, err.Error())
	}
	return s.Parse(p, string(data))
}

func (Scanner) Parse(name, src string) (*tree.Value, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		return nil, errs.New(errs.UnsupportedFormat, name, err.Error())
	}
	return fromInterface(name, v), nil
}

func (s Scanner) OpenAll(p string) ([]*tree.Value, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, errs.New(errs.UnsupportedFormat, p, err.Error())
	}
	return s.ParseAll(p, string(data))
}

func (Scanner) ParseAll(name, src string) ([]*tree.Value, error) {
	dec := json.NewDecoder(strings.NewReader(src))
	var out []*tree.Value
	for {
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errs.New(errs.UnsupportedFormat, name, err.Error())
		}
		out = append(out, fromInterface(name, v))
	}
	return out, nil
}

func (Scanner) Dump(value *tree.Value, layout scanner.Layout, sink io.Writer) error {
	enc := json.NewEncoder(sink)
	if layout != scanner.Compact {
		enc.SetIndent("", "  ")
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
	case float64:
		if t == float64(int64(t)) {
			return tree.NewInteger(name, int64(t))
		}
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
