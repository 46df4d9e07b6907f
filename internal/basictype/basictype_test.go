package basictype

import (
	"testing"

	"github.com/openconfig/aceconf/internal/arity"
	"github.com/openconfig/aceconf/internal/tree"
)

func integerDef(name string) *tree.Value {
	o := tree.NewObject(name)
	o.SetKey("kind", tree.NewString("kind", "integer"))
	o.SetKey("arity", tree.NewString("arity", "?"))
	o.SetKey("doc", tree.NewString("doc", "an integer option"))
	return o
}

func TestFromTreeInteger(t *testing.T) {
	bt, err := FromTree("count", integerDef("count"))
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if bt.Kind() != Integer {
		t.Fatalf("Kind = %v, want Integer", bt.Kind())
	}
	if bt.ArityValue.String() != "?" {
		t.Fatalf("Arity = %v, want ?", bt.ArityValue)
	}
}

func TestFromTreeMissingKind(t *testing.T) {
	o := tree.NewObject("x")
	o.SetKey("arity", tree.NewString("arity", "?"))
	if _, err := FromTree("x", o); err == nil {
		t.Fatal("expected error for missing kind")
	}
}

func TestFromTreeMissingDoc(t *testing.T) {
	o := tree.NewObject("x")
	o.SetKey("kind", tree.NewString("kind", "boolean"))
	o.SetKey("arity", tree.NewString("arity", "1"))
	if _, err := FromTree("x", o); err == nil {
		t.Fatal("expected error for missing doc")
	}
}

func TestFromTreeEnumRequiresBind(t *testing.T) {
	o := tree.NewObject("x")
	o.SetKey("kind", tree.NewString("kind", "enum"))
	o.SetKey("arity", tree.NewString("arity", "1"))
	o.SetKey("doc", tree.NewString("doc", "an enum"))
	if _, err := FromTree("x", o); err == nil {
		t.Fatal("expected error for enum without bind")
	}
}

func TestFromTreeEnumWithBind(t *testing.T) {
	o := tree.NewObject("x")
	o.SetKey("kind", tree.NewString("kind", "enum"))
	o.SetKey("arity", tree.NewString("arity", "1"))
	o.SetKey("doc", tree.NewString("doc", "an enum"))
	bind := tree.NewObject("bind")
	bind.SetKey("low", tree.NewInteger("low", 0))
	bind.SetKey("high", tree.NewInteger("high", 1))
	o.SetKey("bind", bind)

	bt, err := FromTree("x", o)
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if err := bt.CheckInstance(nil, tree.NewString("x", "low")); err != nil {
		t.Fatalf("CheckInstance on bound tag: %v", err)
	}
	if err := bt.CheckInstance(nil, tree.NewString("x", "nope")); err == nil {
		t.Fatal("expected error for unbound enum tag")
	}
}

func TestCheckModelArityRejectedForSelector(t *testing.T) {
	bt := New(Selector, "pool")
	parsed, ok := arity.Parse("+")
	if !ok {
		t.Fatal("arity.Parse(\"+\") failed")
	}
	bt.ArityValue = parsed
	if err := bt.CheckModel(); err == nil {
		t.Fatal("expected arity error for selector with '+'")
	}
}

func TestCheckInstanceInteger(t *testing.T) {
	bt, err := FromTree("count", integerDef("count"))
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if err := bt.CheckInstance(nil, tree.NewInteger("count", 5)); err != nil {
		t.Fatalf("CheckInstance: %v", err)
	}
	if err := bt.CheckInstance(nil, tree.NewString("count", "nope")); err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestCloneDeepCopiesAttrs(t *testing.T) {
	bt := New(String, "name")
	clone := bt.Clone("name2")
	if clone.DeclaredName != "name2" {
		t.Fatalf("DeclaredName = %q, want name2", clone.DeclaredName)
	}
	if clone.Attrs == bt.Attrs {
		t.Fatal("expected attribute set to be deep-copied")
	}
}

func TestClassRequiresResolver(t *testing.T) {
	bt := New(Class, "child")
	bt.ModelPath = "some.model"
	if err := bt.CheckInstance(nil, tree.NewObject("child")); err == nil {
		t.Fatal("expected ModelNotFound without a resolver")
	}
}
