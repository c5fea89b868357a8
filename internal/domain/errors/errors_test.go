package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"invalid email", ErrInvalidEmail},
		{"weak password", ErrWeakPassword},
		{"email taken", ErrEmailTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	cases := map[error]string{
		ErrInvalidEmail: "E-mail inválido",
		ErrWeakPassword: "Senha fraca",
		ErrEmailTaken:   "E-mail já cadastrado",
	}
	for err, msg := range cases {
		if err.Error() != msg {
			t.Fatalf("expected %q, got %q", msg, err.Error())
		}
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(ErrWeakPassword) {
		t.Fatal("expected weak password to be a validation error")
	}
	if !IsValidation(fmt.Errorf("register: %w", ErrEmailTaken)) {
		t.Fatal("expected wrapped validation error to be detected")
	}
	if IsValidation(ErrNotFound) {
		t.Fatal("did not expect not found to be a validation error")
	}
	if IsValidation(nil) {
		t.Fatal("did not expect nil to be a validation error")
	}
	if stdErrors.Is(ErrInvalidEmail, ErrWeakPassword) {
		t.Fatal("distinct validation errors must not match each other")
	}
}
