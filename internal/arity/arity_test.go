package arity

import "testing"

func TestParseShortForms(t *testing.T) {
	cases := map[string]Kind{
		"0": Disabled,
		"?": UpToOne,
		"1": One,
		"+": AtLeastOne,
		"*": Any,
	}
	for s, want := range cases {
		a, ok := Parse(s)
		if !ok {
			t.Errorf("Parse(%q) failed, want success", s)
			continue
		}
		if a.Kind != want {
			t.Errorf("Parse(%q).Kind = %v, want %v", s, a.Kind, want)
		}
	}
}

func TestParseMinMax(t *testing.T) {
	a, ok := Parse("2:5")
	if !ok || a.Min != 2 || a.Max != 5 {
		t.Fatalf("Parse(2:5) = %+v, %v", a, ok)
	}
	a, ok = Parse("2:")
	if !ok || a.Min != 2 || a.Max != Unbounded {
		t.Fatalf("Parse(2:) = %+v, %v", a, ok)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"bogus", "5:2", "-1", "a:b"} {
		if a, ok := Parse(s); ok {
			t.Errorf("Parse(%q) = %+v, want failure", s, a)
		}
	}
}

func TestIntersectCommutative(t *testing.T) {
	all := []Arity{disabledArity, upToOneArity, oneArity, atLeastOneArity, anyArity, make(Any, 2, 5)}
	for _, a := range all {
		for _, b := range all {
			if Intersect(a, b) != Intersect(b, a) {
				t.Errorf("Intersect(%v,%v) != Intersect(%v,%v)", a, b, b, a)
			}
		}
	}
}

func TestIntersectDisabledAny(t *testing.T) {
	if got := Intersect(disabledArity, anyArity); got.Kind != Undefined {
		t.Errorf("Intersect(Disabled, Any) = %v, want Undefined", got)
	}
}

func TestPromote(t *testing.T) {
	if a, ok := Promote(upToOneArity); !ok || a.Kind != One {
		t.Errorf("Promote(UpToOne) = %v, %v", a, ok)
	}
	if a, ok := Promote(anyArity); !ok || a.Kind != AtLeastOne {
		t.Errorf("Promote(Any) = %v, %v", a, ok)
	}
	if _, ok := Promote(oneArity); ok {
		t.Errorf("Promote(One) reported change, want none")
	}
}

func TestDisable(t *testing.T) {
	if a, ok := Disable(upToOneArity); !ok || a.Kind != Disabled {
		t.Errorf("Disable(UpToOne) = %v, %v", a, ok)
	}
	if _, ok := Disable(oneArity); ok {
		t.Errorf("Disable(One) should be a no-op")
	}
}

func TestLessEq(t *testing.T) {
	if !LessEq(oneArity, upToOneArity) {
		t.Error("One <= UpToOne should hold")
	}
	if !LessEq(upToOneArity, anyArity) {
		t.Error("UpToOne <= Any should hold")
	}
	if LessEq(anyArity, oneArity) {
		t.Error("Any <= One should not hold")
	}
}

func TestCheck(t *testing.T) {
	if !atLeastOneArity.Check(3) {
		t.Error("AtLeastOne should accept 3")
	}
	if atLeastOneArity.Check(0) {
		t.Error("AtLeastOne should reject 0")
	}
	if !disabledArity.Check(0) {
		t.Error("Disabled should accept 0")
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "?", "1", "+", "*"} {
		a, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(%q) failed", s)
		}
		if a.String() != s {
			t.Errorf("Parse(%q).String() = %q", s, a.String())
		}
	}
}
