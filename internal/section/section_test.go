package section

import (
	"testing"

	"github.com/openconfig/aceconf/internal/basictype"
	"github.com/openconfig/aceconf/internal/tree"
)

func optionDef(kind, arityStr, doc string) *tree.Value {
	o := tree.NewObject("")
	o.SetKey("kind", tree.NewString("kind", kind))
	o.SetKey("arity", tree.NewString("arity", arityStr))
	o.SetKey("doc", tree.NewString("doc", doc))
	return o
}

func bodyTree() *tree.Value {
	root := tree.NewObject("body")
	root.SetKey("count", optionDef("integer", "?", "a count"))
	root.SetKey("name", optionDef("string", "1", "a name"))
	return root
}

func TestFromTreeSection(t *testing.T) {
	s, err := FromTree(bodyTree())
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if got := s.Names(); got[0] != "count" || got[1] != "name" {
		t.Fatalf("Names = %v, want [count name]", got)
	}
	ct, ok := s.Get("count")
	if !ok || ct.Kind() != basictype.Integer {
		t.Fatalf("count: got %v, %v", ct, ok)
	}
}

func TestFromTreeSectionRejectsNonObject(t *testing.T) {
	if _, err := FromTree(tree.NewInteger("x", 1)); err == nil {
		t.Fatal("expected error for non-object section")
	}
}

func TestSectionMergeInsertsNewAndMergesExisting(t *testing.T) {
	a, err := FromTree(bodyTree())
	if err != nil {
		t.Fatalf("FromTree a: %v", err)
	}
	other := tree.NewObject("body")
	other.SetKey("extra", optionDef("boolean", "?", "an extra flag"))
	b, err := FromTree(other)
	if err != nil {
		t.Fatalf("FromTree b: %v", err)
	}
	if err := a.Merge(b); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", a.Len())
	}
	if _, ok := a.Get("extra"); !ok {
		t.Fatal("expected merged-in 'extra' option")
	}
}

func TestSectionGetPathNamed(t *testing.T) {
	s, err := FromTree(bodyTree())
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	p := named("count")
	got := s.Get2(nil, p)
	if len(got) != 1 || got[0].Name() != "count" {
		t.Fatalf("Get2(count) = %v", got)
	}
}

func TestSectionPromoteArityNoMatch(t *testing.T) {
	s, err := FromTree(bodyTree())
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if err := s.PromoteArity(nil, named("missing")); err == nil {
		t.Fatal("expected error for promoting a non-existent option")
	}
}
