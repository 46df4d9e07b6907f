// Package yaml implements the YAML scanner plugin via gopkg.in/yaml.v3,
// including its native multi-document stream support for OpenAll/ParseAll.
package yaml

import (
	"io"
	"os"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/scanner"
	"github.com/openconfig/aceconf/internal/tree"
)

// Scanner implements scanner.Scanner for YAML documents.
type Scanner struct{}

// New returns a YAML Scanner.
func New() *Scanner { return &Scanner{} }

func (Scanner) Name() string      { return "yaml" }
func (Scanner) Extension() string { return "yaml" }

func (s Scanner) Open(p string) (*tree.Value, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, errs.New(errs.UnsupportedFormat, p, err.Error())
	}
	return s.Parse(p, string(data))
}

func (Scanner) Parse(name, src string) (*tree.Value, error) {
	var v interface{}
	if err := yamlv3.Unmarshal([]byte(src), &v); err != nil {
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
	dec := yamlv3.NewDecoder(strings.NewReader(src))
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
	enc := yamlv3.NewEncoder(sink)
	if layout == scanner.Compact {
		enc.SetIndent(0)
	} else {
		enc.SetIndent(2)
	}
	defer enc.Close()
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
	case int:
		return tree.NewInteger(name, int64(t))
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
	// yaml.v3 decodes mapping keys read as generic interface{} into
	// map[string]interface{} when the target is interface{}, but guard
	// the less common map[interface{}]interface{} shape too.
	case map[interface{}]interface{}:
		obj := tree.NewObject(name)
		for k, c := range t {
			ks, _ := k.(string)
			obj.SetKey(ks, fromInterface(ks, c))
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
