package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrInvalidFillFactor_Message(t *testing.T) {
	if ErrInvalidFillFactor == nil {
		t.Fatal("ErrInvalidFillFactor must not be nil")
	}
	if ErrInvalidFillFactor.Error() != "invalid fill factor" {
		t.Fatalf("unexpected message: %q", ErrInvalidFillFactor.Error())
	}
}

func TestErrInvalidFillFactor_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("%w: 1.5 is above 1", ErrInvalidFillFactor)
	if !errors.Is(wrapped, ErrInvalidFillFactor) {
		t.Fatal("errors.Is must match wrapped ErrInvalidFillFactor")
	}

	twice := fmt.Errorf("handle item added: %w", wrapped)
	if !errors.Is(twice, ErrInvalidFillFactor) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidFillFactor")
	}
}
