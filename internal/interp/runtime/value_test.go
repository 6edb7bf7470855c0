package runtime

import "testing"

func TestIsNone(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil value", nil, true},
		{"NoneValue", NoneValue{}, true},
		{"zero Number", Number(0), false},
		{"empty String", String(""), false},
		{"false Bool", Bool(false), false},
	}
	for _, tt := range tests {
		if got := IsNone(tt.v); got != tt.want {
			t.Errorf("%s: IsNone() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTypeProbe(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{nil, "None"},
		{NoneValue{}, "None"},
		{Number(3), "Number"},
		{String("hi"), "String"},
		{Bool(true), "Bool"},
		{NewClassInfo("C", nil), "Class"},
		{NewObjectInstance(NewClassInfo("C", nil)), "Instance"},
	}
	for _, tt := range tests {
		if !TypeProbe(tt.v, tt.want) {
			t.Errorf("TypeProbe(%#v, %q) = false, want true", tt.v, tt.want)
		}
		if TypeProbe(tt.v, "bogus") {
			t.Errorf("TypeProbe(%#v, %q) = true, want false", tt.v, "bogus")
		}
	}
}

func TestTypeName(t *testing.T) {
	if got := TypeName(Number(1)); got != "Number" {
		t.Errorf("TypeName(Number) = %q", got)
	}
	if got := TypeName(nil); got != "None" {
		t.Errorf("TypeName(nil) = %q", got)
	}
}

func TestIsTrue(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"None is falsy", NoneValue{}, false},
		{"nil is falsy", nil, false},
		{"zero Number is falsy", Number(0), false},
		{"nonzero Number is truthy", Number(5), true},
		{"negative Number is truthy", Number(-1), true},
		{"empty String is falsy", String(""), false},
		{"nonempty String is truthy", String("x"), true},
		{"Bool true", Bool(true), true},
		{"Bool false", Bool(false), false},
		{"instances are never truthy", NewObjectInstance(NewClassInfo("C", nil)), false},
		{"classes are never truthy", NewClassInfo("C", nil), false},
	}
	for _, tt := range tests {
		if got := IsTrue(tt.v); got != tt.want {
			t.Errorf("%s: IsTrue() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
