package dependency

import (
	"sort"
	"testing"

	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
)

func stringArray(ss ...string) *tree.Value {
	a := tree.NewArray("")
	for _, s := range ss {
		a.AppendArray(tree.NewString("", s))
	}
	return a
}

func TestFromTreeRequire(t *testing.T) {
	a := tree.NewObject("")
	a.SetKey("require", stringArray("b"))

	d, err := FromTree(a)
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if d.Kind != Require {
		t.Fatalf("Kind = %v, want Require", d.Kind)
	}
	if len(d.Paths) != 1 || d.Paths[0].String() != "@.b" {
		t.Fatalf("Paths = %v", d.Paths)
	}
}

func TestFromTreeDisableWithWhen(t *testing.T) {
	a := tree.NewObject("")
	a.SetKey("disable", stringArray("c"))
	a.SetKey("when", stringArray("x"))

	d, err := FromTree(a)
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if d.Kind != Disable {
		t.Fatalf("Kind = %v, want Disable", d.Kind)
	}
	if len(d.When) != 1 {
		t.Fatalf("When = %v, want 1 entry", d.When)
	}
}

func TestFromTreeRejectsBothRequireAndDisable(t *testing.T) {
	a := tree.NewObject("")
	a.SetKey("require", stringArray("b"))
	a.SetKey("disable", stringArray("c"))
	if _, err := FromTree(a); err == nil {
		t.Fatal("expected error for both require and disable")
	}
}

func TestPriorityOrdering(t *testing.T) {
	deps := []*Dependency{
		{Kind: Require},
		{Kind: Disable},
	}
	sort.Sort(ByPriority(deps))
	if deps[0].Kind != Disable || deps[1].Kind != Require {
		t.Fatalf("expected Disable before Require, got %v, %v", deps[0].Kind, deps[1].Kind)
	}
}

func TestGuardActiveEmptyAlwaysActive(t *testing.T) {
	d := &Dependency{}
	if !d.GuardActive(tree.NewBoolean("", true)) {
		t.Fatal("empty guard should always be active")
	}
}

func TestGuardActiveMatch(t *testing.T) {
	d := &Dependency{When: []*tree.Value{tree.NewString("", "x")}}
	if !d.GuardActive(tree.NewString("", "x")) {
		t.Fatal("expected guard to match equal string")
	}
	if d.GuardActive(tree.NewString("", "y")) {
		t.Fatal("expected guard to not match different string")
	}
}

func TestGuardActiveArrayFlattening(t *testing.T) {
	d := &Dependency{When: []*tree.Value{tree.NewString("", "x")}}
	owner := stringArray("y", "x", "z")
	if !d.GuardActive(owner) {
		t.Fatal("expected guard to match an element of the array")
	}
}

func TestExpandPaths(t *testing.T) {
	p, err := path.Parse("@.prefix_%")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := &Dependency{Paths: []path.Path{p}}
	out := d.ExpandPaths("abc")
	if out[0].String() != "@.prefix_abc" {
		t.Fatalf("got %q", out[0].String())
	}
}

func TestCheckModelRejectsGlobalPath(t *testing.T) {
	p, _ := path.Parse("$.a")
	d := &Dependency{Paths: []path.Path{p}}
	if err := d.CheckModel(false); err == nil {
		t.Fatal("expected error for globally-rooted dependency path")
	}
}

func TestCheckModelRejectsUnboundPercent(t *testing.T) {
	p, _ := path.Parse("@.prefix_%")
	d := &Dependency{Paths: []path.Path{p}}
	if err := d.CheckModel(false); err == nil {
		t.Fatal("expected UnboundValueExpansion when owner is not a bounded string")
	}
	if err := d.CheckModel(true); err != nil {
		t.Fatalf("expected success when owner is a bounded string, got %v", err)
	}
}
