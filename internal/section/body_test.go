package section

import (
	"testing"

	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/tree"
)

func mustSection(t *testing.T, root *tree.Value) *Section {
	t.Helper()
	s, err := FromTree(root)
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	return s
}

// TestResolveInstanceMissingRequired checks that resolve_instance fails
// with ArityMismatch when a required option is absent from the instance.
func TestResolveInstanceMissingRequired(t *testing.T) {
	root := tree.NewObject("body")
	root.SetKey("x", optionDef("integer", "1", "required"))
	body := NewBody(mustSection(t, root))

	instance := tree.NewObject("instance")
	err := body.ResolveInstance(instance)
	if err == nil {
		t.Fatal("expected ArityMismatch for missing required option")
	}
	if k, ok := errs.KindOf(firstErr(err)); !ok || k != errs.ArityMismatch {
		t.Fatalf("error kind = %v, want ArityMismatch", err)
	}
}

// TestExpandInstanceDefaultInjection covers spec.md §8's "default
// injection" scenario: an absent optional option with a default gets the
// default value injected by expand_instance.
func TestExpandInstanceDefaultInjection(t *testing.T) {
	root := tree.NewObject("body")
	opt := optionDef("integer", "?", "has a default")
	opt.SetKey("default", tree.NewInteger("default", 7))
	root.SetKey("x", opt)
	body := NewBody(mustSection(t, root))

	instance := tree.NewObject("instance")
	if err := body.ExpandInstance(instance); err != nil {
		t.Fatalf("ExpandInstance: %v", err)
	}
	x, ok := instance.Get1(named("x"))
	if !ok {
		t.Fatal("expected x to be injected")
	}
	v, err := x.Int()
	if err != nil || v != 7 {
		t.Fatalf("x = %v, %v, want 7", v, err)
	}
}

// TestExpandInstanceInheritRequiresAttr verifies that an absent option
// without inherit=true does not adopt an enclosing instance's sibling
// value even when one happens to be reachable via the parent link.
func TestExpandInstanceInheritRequiresAttr(t *testing.T) {
	root := tree.NewObject("body")
	root.SetKey("x", optionDef("integer", "?", "no inherit"))
	body := NewBody(mustSection(t, root))

	parent := tree.NewObject("parent")
	parent.SetKey("x", tree.NewInteger("x", 9))
	child := tree.NewObject("child")
	parent.SetKey("child", child)

	if err := body.ExpandInstance(child); err != nil {
		t.Fatalf("ExpandInstance: %v", err)
	}
	if child.Has(named("x")) {
		t.Fatal("did not expect x to be inherited without inherit=true")
	}
}

// TestExpandInstanceInherits verifies that inherit=true adopts the
// enclosing instance's sibling value one level up.
func TestExpandInstanceInherits(t *testing.T) {
	root := tree.NewObject("body")
	opt := optionDef("integer", "?", "inherits")
	opt.SetKey("inherit", tree.NewBoolean("inherit", true))
	root.SetKey("x", opt)
	body := NewBody(mustSection(t, root))

	parent := tree.NewObject("parent")
	parent.SetKey("x", tree.NewInteger("x", 9))
	child := tree.NewObject("child")
	parent.SetKey("child", child)

	if err := body.ExpandInstance(child); err != nil {
		t.Fatalf("ExpandInstance: %v", err)
	}
	x, ok := child.Get1(named("x"))
	if !ok {
		t.Fatal("expected x to be inherited")
	}
	v, _ := x.Int()
	if v != 9 {
		t.Fatalf("x = %d, want 9", v)
	}
}

// TestCheckInstanceUnexpectedStrict covers the strict-mode Unexpected-key
// failure path of spec.md §6.
func TestCheckInstanceUnexpectedStrict(t *testing.T) {
	root := tree.NewObject("body")
	root.SetKey("x", optionDef("integer", "?", "known"))
	body := NewBody(mustSection(t, root))

	instance := tree.NewObject("instance")
	instance.SetKey("y", tree.NewInteger("y", 1))

	if err := body.CheckInstance(instance, nil, false); err != nil {
		t.Fatalf("non-strict CheckInstance should tolerate unexpected keys: %v", err)
	}
	if err := body.CheckInstance(instance, nil, true); err == nil {
		t.Fatal("expected strict CheckInstance to reject unexpected key 'y'")
	}
}

// TestResolveInstanceDependencyRequireFailure covers spec.md §8's
// "dependency require failure" scenario.
func TestResolveInstanceDependencyRequireFailure(t *testing.T) {
	root := tree.NewObject("body")
	opt := optionDef("boolean", "?", "gate")
	deps := tree.NewArray("deps")
	dep := tree.NewObject("")
	reqs := tree.NewArray("require")
	reqs.AppendArray(tree.NewString("", "@.y"))
	dep.SetKey("require", reqs)
	deps.AppendArray(dep)
	opt.SetKey("deps", deps)
	root.SetKey("x", opt)
	root.SetKey("y", optionDef("integer", "?", "required target"))
	body := NewBody(mustSection(t, root))

	instance := tree.NewObject("instance")
	instance.SetKey("x", tree.NewBoolean("x", true))

	err := body.ResolveInstance(instance)
	if err == nil {
		t.Fatal("expected DependencyUnresolved when required target is absent")
	}
	if k, ok := errs.KindOf(firstErr(err)); !ok || k != errs.DependencyUnresolved {
		t.Fatalf("error kind = %v, want DependencyUnresolved", err)
	}
}

// TestFlattenInstanceErasesDisabled verifies that an option whose arity
// has been disabled is erased from the instance during flatten_instance.
func TestFlattenInstanceErasesDisabled(t *testing.T) {
	root := tree.NewObject("body")
	root.SetKey("x", optionDef("integer", "?", "will be disabled"))
	s := mustSection(t, root)
	xt, _ := s.Get("x")
	if err := s.Disable(nil, named("x")); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	_ = xt
	body := NewBody(s)

	instance := tree.NewObject("instance")
	instance.SetKey("x", tree.NewInteger("x", 1))

	if err := body.FlattenInstance(instance, nil); err != nil {
		t.Fatalf("FlattenInstance: %v", err)
	}
	if instance.Has(named("x")) {
		t.Fatal("expected disabled option to be erased from instance")
	}
}

func firstErr(err error) error {
	if list, ok := err.(errs.List); ok && len(list) > 0 {
		return list[0]
	}
	return err
}
