package tree

import "testing"

func TestProtoRoundTripObject(t *testing.T) {
	obj := NewObject("doc")
	obj.SetKey("name", NewString("name", "svc"))
	obj.SetKey("count", NewInteger("count", 3))
	obj.SetKey("ratio", NewFloat("ratio", 1.5))
	obj.SetKey("on", NewBoolean("on", true))
	arr := NewArray("tags")
	arr.AppendArray(NewString("", "a"))
	arr.AppendArray(NewString("", "b"))
	obj.SetKey("tags", arr)

	pv, err := obj.ToProto()
	if err != nil {
		t.Fatalf("ToProto: %v", err)
	}
	back := FromProto("doc", pv)

	name, ok := back.Get1(named("name"))
	if !ok {
		t.Fatalf("missing name after round trip")
	}
	s, err := name.Str()
	if err != nil || s != "svc" {
		t.Fatalf("name = %v, %v, want svc", s, err)
	}

	count, ok := back.Get1(named("count"))
	if !ok {
		t.Fatalf("missing count after round trip")
	}
	n, err := count.Int()
	if err != nil || n != 3 {
		t.Fatalf("count = %v, %v, want 3", n, err)
	}
}
