package tree

import (
	"testing"

	"github.com/openconfig/aceconf/internal/path"
)

func mustPath(t *testing.T, s string) path.Path {
	t.Helper()
	p, err := path.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return p
}

func TestPutGetScalar(t *testing.T) {
	root := NewObject("")
	if err := root.Put(mustPath(t, "$.a.b"), NewInteger("", 7)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := root.Get1(mustPath(t, "$.a.b"))
	if !ok {
		t.Fatal("Get1 found nothing")
	}
	n, err := got.Int()
	if err != nil || n != 7 {
		t.Fatalf("Int() = %d, %v, want 7", n, err)
	}
}

func TestPutPromotesToArray(t *testing.T) {
	root := NewObject("")
	root.Put(mustPath(t, "$.x"), NewInteger("", 1))
	root.Put(mustPath(t, "$.x"), NewInteger("", 2))
	got, ok := root.Get1(mustPath(t, "$.x"))
	if !ok || got.Kind() != Array {
		t.Fatalf("expected array after second put, got %v", got.Kind())
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
}

func TestEraseReindexesArray(t *testing.T) {
	root := NewObject("")
	arr := NewArray("xs")
	arr.appendArray(NewInteger("", 1))
	arr.appendArray(NewInteger("", 2))
	arr.appendArray(NewInteger("", 3))
	root.setObjectKey("xs", arr)

	if err := root.Erase(mustPath(t, "$.xs[0]")); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if arr.Len() != 2 {
		t.Fatalf("Len() after erase = %d, want 2", arr.Len())
	}
	if arr.arr[0].Name() != "0" || arr.arr[1].Name() != "1" {
		t.Fatalf("names not renumbered: %q %q", arr.arr[0].Name(), arr.arr[1].Name())
	}
}

func TestMergeNeutrality(t *testing.T) {
	a := NewObject("")
	a.Put(mustPath(t, "$.a"), NewInteger("", 1))
	empty := NewObject("")

	clone := a.Clone()
	if err := clone.Merge(empty); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	v, _ := clone.Get1(mustPath(t, "$.a"))
	n, _ := v.Int()
	if n != 1 {
		t.Fatalf("merge(a, empty) changed a: got %d", n)
	}

	empty2 := NewObject("")
	if err := empty2.Merge(a); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	v2, ok := empty2.Get1(mustPath(t, "$.a"))
	if !ok {
		t.Fatal("merge(empty, a) lost key a")
	}
	n2, _ := v2.Int()
	if n2 != 1 {
		t.Fatalf("merge(empty, a).a = %d, want 1", n2)
	}
}

func TestMergeObjectsRecursive(t *testing.T) {
	a := NewObject("")
	a.Put(mustPath(t, "$.a.x"), NewInteger("", 1))
	b := NewObject("")
	b.Put(mustPath(t, "$.a.y"), NewInteger("", 2))

	if err := a.Merge(b); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	vx, ok := a.Get1(mustPath(t, "$.a.x"))
	if !ok {
		t.Fatal("lost a.x")
	}
	vy, ok := a.Get1(mustPath(t, "$.a.y"))
	if !ok {
		t.Fatal("lost a.y")
	}
	nx, _ := vx.Int()
	ny, _ := vy.Int()
	if nx != 1 || ny != 2 {
		t.Fatalf("got a.x=%d a.y=%d", nx, ny)
	}
}

func TestGlobalForwardsToRoot(t *testing.T) {
	root := NewObject("")
	root.Put(mustPath(t, "$.a.b"), NewInteger("", 42))
	leaf, ok := root.Get1(mustPath(t, "$.a.b"))
	if !ok {
		t.Fatal("setup failed")
	}
	// From a non-root node, a Global-rooted path forwards to the root.
	res, ok := leaf.Get1(mustPath(t, "$.a.b"))
	if !ok {
		t.Fatal("Global path from leaf did not resolve")
	}
	n, _ := res.Int()
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}

func TestWildcardGet(t *testing.T) {
	root := NewObject("")
	root.Put(mustPath(t, "$.a"), NewInteger("", 1))
	root.Put(mustPath(t, "$.b"), NewInteger("", 2))
	res := root.Get(mustPath(t, "$.*"))
	if len(res) != 2 {
		t.Fatalf("got %d results, want 2", len(res))
	}
}

func TestFloatDoesNotUpcastInteger(t *testing.T) {
	v := NewInteger("n", 3)
	if _, err := v.Float(); err == nil {
		t.Fatal("expected Float() on an Integer to error")
	}
	n, err := v.Number()
	if err != nil || n != 3 {
		t.Fatalf("Number() = %v, %v, want 3", n, err)
	}
}
