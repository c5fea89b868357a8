package validation

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"max=3"`
	Skip  string `json:"-"`
}

func TestToDetailsValidationErrors(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	err := v.Struct(sample{Email: "nope", Note: "long"})
	details := ToDetails(err)

	if details["name"] != "is required" {
		t.Fatalf("unexpected name detail %q", details["name"])
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if details["note"] != "must be at most 3 characters long" {
		t.Fatalf("unexpected note detail %q", details["note"])
	}
}

func TestToDetailsJSONErrors(t *testing.T) {
	var target map[string]string
	err := json.Unmarshal([]byte("{"), &target)
	if got := ToDetails(err)["payload"]; got != "invalid json" {
		t.Fatalf("expected invalid json, got %q", got)
	}
	if got := ToDetails(io.EOF)["payload"]; got != "invalid json" {
		t.Fatalf("expected invalid json for empty body, got %q", got)
	}
	if got := ToDetails(errors.New("boom"))["payload"]; got != "invalid payload" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if ToDetails(nil) != nil {
		t.Fatal("expected nil details for nil error")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()
}
