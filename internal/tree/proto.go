package tree

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/openconfig/aceconf/internal/path"
)

func named(key string) path.Path {
	p, _ := path.Parse("$." + key)
	return p
}

// ToProto renders v as a structpb.Value, the protobuf well-known-type
// tagged union spec.md's own Tree design mirrors (Null/Bool/Number/
// String/List/Struct). Used where a caller needs to hand a parsed
// document to a protobuf-based transport without inventing a second
// encoding, the way ygot's own generated code exchanges values as
// structpb.Struct with gNMI.
func (v *Value) ToProto() (*structpb.Value, error) {
	if v == nil {
		return structpb.NewNullValue(), nil
	}
	switch v.Kind() {
	case Undefined:
		return structpb.NewNullValue(), nil
	case Boolean:
		b, _ := v.Bool()
		return structpb.NewBoolValue(b), nil
	case Integer:
		i, _ := v.Int()
		return structpb.NewNumberValue(float64(i)), nil
	case Float:
		f, _ := v.Float()
		return structpb.NewNumberValue(f), nil
	case String:
		s, _ := v.Str()
		return structpb.NewStringValue(s), nil
	case Array:
		list := &structpb.ListValue{}
		var convErr error
		v.Each(func(c *Value) {
			if convErr != nil {
				return
			}
			pv, err := c.ToProto()
			if err != nil {
				convErr = err
				return
			}
			list.Values = append(list.Values, pv)
		})
		if convErr != nil {
			return nil, convErr
		}
		return structpb.NewListValue(list), nil
	case Object:
		fields := map[string]*structpb.Value{}
		for _, k := range v.Keys() {
			c, ok := v.Get1(named(k))
			if !ok {
				continue
			}
			pv, err := c.ToProto()
			if err != nil {
				return nil, err
			}
			fields[k] = pv
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	default:
		return structpb.NewNullValue(), nil
	}
}

// FromProto builds a tree.Value named name from a structpb.Value,
// inverting ToProto.
func FromProto(name string, pv *structpb.Value) *Value {
	if pv == nil {
		return NewUndefined(name)
	}
	switch k := pv.GetKind().(type) {
	case *structpb.Value_NullValue:
		return NewUndefined(name)
	case *structpb.Value_BoolValue:
		return NewBoolean(name, k.BoolValue)
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n == float64(int64(n)) {
			return NewInteger(name, int64(n))
		}
		return NewFloat(name, n)
	case *structpb.Value_StringValue:
		return NewString(name, k.StringValue)
	case *structpb.Value_ListValue:
		arr := NewArray(name)
		for _, c := range k.ListValue.GetValues() {
			arr.AppendArray(FromProto("", c))
		}
		return arr
	case *structpb.Value_StructValue:
		obj := NewObject(name)
		for field, c := range k.StructValue.GetFields() {
			obj.SetKey(field, FromProto(field, c))
		}
		return obj
	default:
		return NewUndefined(name)
	}
}
