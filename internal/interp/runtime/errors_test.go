package runtime

import (
	"errors"
	"testing"
)

func TestNameErrorMessage(t *testing.T) {
	err := &NameError{Name: "x"}
	want := "NameError: name 'x' is not defined"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !IsNameError(err) {
		t.Error("expected IsNameError to be true")
	}
	if IsNameError(errors.New("other")) {
		t.Error("expected IsNameError to be false for an unrelated error")
	}
}

func TestAttributeErrorMessage(t *testing.T) {
	err := &AttributeError{Receiver: "p", Attr: "z"}
	want := "AttributeError: 'p' has no attribute 'z'"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !IsAttributeError(err) {
		t.Error("expected IsAttributeError to be true")
	}
}

func TestTypeErrorMessage(t *testing.T) {
	err := &TypeError{Message: "unsupported operand types for +: String and Number"}
	want := "TypeError: unsupported operand types for +: String and Number"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !IsTypeError(err) {
		t.Error("expected IsTypeError to be true")
	}
}

func TestMethodNotFoundErrorMessage(t *testing.T) {
	err := &MethodNotFoundError{ClassName: "Dog", MethodName: "fly"}
	want := "MethodNotFound: Dog has no method 'fly' matching the given arguments"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !IsMethodNotFoundError(err) {
		t.Error("expected IsMethodNotFoundError to be true")
	}
}

func TestZeroDivisionErrorMessage(t *testing.T) {
	err := &ZeroDivisionError{}
	want := "ZeroDivisionError: division by zero"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !IsZeroDivisionError(err) {
		t.Error("expected IsZeroDivisionError to be true")
	}
}

func TestUnboundReturnErrorMessage(t *testing.T) {
	err := &UnboundReturnError{}
	want := "UnboundReturn: return statement executed outside any method call"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !IsUnboundReturnError(err) {
		t.Error("expected IsUnboundReturnError to be true")
	}
}

func TestErrorPredicatesAreDisjoint(t *testing.T) {
	nameErr := &NameError{Name: "x"}
	if IsAttributeError(nameErr) || IsTypeError(nameErr) || IsMethodNotFoundError(nameErr) ||
		IsZeroDivisionError(nameErr) || IsUnboundReturnError(nameErr) {
		t.Error("expected a NameError to match only IsNameError")
	}
}
