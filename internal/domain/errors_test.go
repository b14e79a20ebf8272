package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("organizer not found"), KindNotFound},
		{"forbidden", Forbidden("not the organizer"), KindForbidden},
		{"validation", Validation(map[string]string{"title": "too short"}), KindValidation},
		{"upload", Upload("no url returned"), KindUpload},
		{"unhandled wrap", Unhandled(errors.New("boom")), KindUnhandled},
		{"plain error", errors.New("boom"), KindUnhandled},
		{"nil-ish wrapped", fmt.Errorf("action failed: %w", NotFound("event not found")), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	fields := map[string]string{"title": "Title must be larger than 3 characters!"}
	err := Validation(fields)

	got := FieldErrors(err)
	if got == nil {
		t.Fatal("Expected field errors, got nil")
	}
	if got["title"] != fields["title"] {
		t.Errorf("FieldErrors()[title] = %q", got["title"])
	}

	if FieldErrors(errors.New("boom")) != nil {
		t.Error("Expected nil field errors for plain error")
	}
	if FieldErrors(NotFound("x")) != nil {
		t.Error("Expected nil field errors for not-found error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("pgx: connection refused")
	err := Unhandled(cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
}
