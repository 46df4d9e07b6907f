package model

import (
	"testing"

	"github.com/openconfig/aceconf/internal/tree"
)

func optionDef(kind, arityStr, doc string) *tree.Value {
	o := tree.NewObject("")
	o.SetKey("kind", tree.NewString("kind", kind))
	o.SetKey("arity", tree.NewString("arity", arityStr))
	o.SetKey("doc", tree.NewString("doc", doc))
	return o
}

func headerTree(author, doc, version string) *tree.Value {
	h := tree.NewObject("header")
	h.SetKey("author", tree.NewString("author", author))
	h.SetKey("doc", tree.NewString("doc", doc))
	h.SetKey("version", tree.NewString("version", version))
	return h
}

func modelTree() *tree.Value {
	root := tree.NewObject("")
	root.SetKey("header", headerTree("jdoe", "a model", "1.0"))
	body := tree.NewObject("body")
	body.SetKey("x", optionDef("integer", "?", "an x"))
	root.SetKey("body", body)
	return root
}

func TestHeaderFromTreeRequiresAuthorDocVersion(t *testing.T) {
	h := tree.NewObject("header")
	h.SetKey("doc", tree.NewString("doc", "d"))
	h.SetKey("version", tree.NewString("version", "1.0"))
	if _, err := HeaderFromTree(h); err == nil {
		t.Fatal("expected error for missing author")
	}
}

func TestFromTreeBuildsModel(t *testing.T) {
	m, err := FromTree(modelTree())
	if err != nil {
		t.Fatalf("FromTree: %v", err)
	}
	if m.Header.Author != "jdoe" {
		t.Fatalf("Author = %q, want jdoe", m.Header.Author)
	}
	if m.Body.Len() != 1 {
		t.Fatalf("Body.Len() = %d, want 1", m.Body.Len())
	}
	if _, ok := m.Body.Get("x"); !ok {
		t.Fatal("expected body option 'x'")
	}
}

func TestFromTreeRequiresHeaderAndBody(t *testing.T) {
	root := tree.NewObject("")
	root.SetKey("header", headerTree("jdoe", "d", "1.0"))
	if _, err := FromTree(root); err == nil {
		t.Fatal("expected error for missing body")
	}
}

func TestComposeMergesIncludesThenOverrides(t *testing.T) {
	base, err := FromTree(modelTree())
	if err != nil {
		t.Fatalf("FromTree base: %v", err)
	}

	incRoot := tree.NewObject("")
	incRoot.SetKey("header", headerTree("jdoe", "included", "1.0"))
	incBody := tree.NewObject("body")
	incBody.SetKey("y", optionDef("string", "1", "a y"))
	incRoot.SetKey("body", incBody)
	included, err := FromTree(incRoot)
	if err != nil {
		t.Fatalf("FromTree included: %v", err)
	}

	if err := base.Compose([]*Model{included}); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if base.Body.Len() != 2 {
		t.Fatalf("Body.Len() after compose = %d, want 2", base.Body.Len())
	}
	if _, ok := base.Body.Get("x"); !ok {
		t.Fatal("expected own option 'x' to survive composition")
	}
	if _, ok := base.Body.Get("y"); !ok {
		t.Fatal("expected included option 'y' to be merged in")
	}
}
