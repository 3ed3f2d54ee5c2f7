package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNotFound(t *testing.T) {
	err := NewNotFound("habit", "abc-123")

	if err.Error() != "habit abc-123 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false for NotFoundError")
	}
	if !IsNotFound(fmt.Errorf("loading: %w", err)) {
		t.Error("IsNotFound() = false for wrapped NotFoundError")
	}
	if IsNotFound(stderrors.New("plain")) {
		t.Error("IsNotFound() = true for unrelated error")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) = true")
	}
}

func TestValidation(t *testing.T) {
	err := NewValidation("date", "expected YYYY-MM-DD format")

	if err.Error() != "invalid date: expected YYYY-MM-DD format" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsValidation(err) {
		t.Error("IsValidation() = false for ValidationError")
	}
	if !IsValidation(fmt.Errorf("add habit: %w", err)) {
		t.Error("IsValidation() = false for wrapped ValidationError")
	}
	if IsValidation(NewNotFound("habit", "x")) {
		t.Error("IsValidation() = true for NotFoundError")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("Format() = %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Formatf("bad %s", "input"); got != "Error: bad input" {
		t.Errorf("Formatf() = %q", got)
	}
}
