package path

import "testing"

func TestParsePrintRoundTrip(t *testing.T) {
	cases := []string{
		"$.a.b",
		"$.a[0,1,2]",
		"@.x",
		"$.*",
		"$.a.*",
	}
	for _, s := range cases {
		p, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if got := p.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "$.", "$.1abc", "$[unterminated"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}

func TestGlobalLocal(t *testing.T) {
	p, _ := Parse("$.a")
	if !p.Global() {
		t.Error("expected Global() true for $.a")
	}
	p2, _ := Parse("@.a")
	if p2.Global() {
		t.Error("expected Global() false for @.a")
	}
}

func TestGenerative(t *testing.T) {
	p, _ := Parse("$.a.*")
	if !p.Generative() {
		t.Error("expected generative for $.a.*")
	}
	p2, _ := Parse("$.a.b")
	if p2.Generative() {
		t.Error("expected non-generative for $.a.b")
	}
}

func TestMatchWildcard(t *testing.T) {
	pattern, _ := Parse("$.a.*")
	concrete, _ := Parse("$.a.b")
	if !Match(pattern, concrete) {
		t.Error("expected $.a.* to match $.a.b")
	}
	concrete2, _ := Parse("$.x.b")
	if Match(pattern, concrete2) {
		t.Error("expected $.a.* to not match $.x.b")
	}
}

func TestMatchRecursive(t *testing.T) {
	pattern, _ := Parse("$..a")
	concrete, _ := Parse("$.x.y.a")
	if !Match(pattern, concrete) {
		t.Error("expected $..a to match $.x.y.a")
	}
	concrete2, _ := Parse("$.a")
	if !Match(pattern, concrete2) {
		t.Error("expected $..a to match $.a itself")
	}
}

func TestIndexedOrderMatters(t *testing.T) {
	pattern, _ := Parse("$.a[0,1]")
	same, _ := Parse("$.a[0,1]")
	permuted, _ := Parse("$.a[1,0]")
	if !Match(pattern, same) {
		t.Error("identical index lists should match")
	}
	if Match(pattern, permuted) {
		t.Error("permuted index lists should not match")
	}
}

func TestPushSubMerge(t *testing.T) {
	base, _ := Parse("$.a")
	pushed := base.PushNamed("b")
	if pushed.String() != "$.a.b" {
		t.Errorf("Push = %q, want $.a.b", pushed.String())
	}
	sub := pushed.Sub(0, 1)
	if sub.String() != "$" {
		t.Errorf("Sub(0,1) = %q, want $", sub.String())
	}
	other, _ := Parse("@.c")
	merged := base.Merge(other)
	if merged.String() != "$.a.c" {
		t.Errorf("Merge = %q, want $.a.c", merged.String())
	}
}
