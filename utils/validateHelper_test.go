package utils

import (
	"errors"
	"testing"
)

type validateInput struct {
	Name string `validate:"required"`
}

func TestProcessValidationErrors_FieldMap(t *testing.T) {
	err := ValidateStruct(&validateInput{})
	if err == nil {
		t.Fatal("expected a validation error for missing Name")
	}
	failures := ProcessValidationErrors(err)
	if failures["Name"] != "failed on required" {
		t.Fatalf("expected Name failure, got %v", failures)
	}
}

func TestProcessValidationErrors_PlainError(t *testing.T) {
	failures := ProcessValidationErrors(errors.New("boom"))
	if failures["_"] != "boom" {
		t.Fatalf("plain errors should map under _, got %v", failures)
	}
}

func TestProcessValidationErrors_NilError(t *testing.T) {
	if failures := ProcessValidationErrors(nil); len(failures) != 0 {
		t.Fatalf("nil error should yield an empty map, got %v", failures)
	}
}
