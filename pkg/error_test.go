package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorSentinelIdentity(t *testing.T) {
	err := ErrFileNotFound.Wrapf("%q", ".env.example")

	if !errors.Is(err, ErrFileNotFound) {
		t.Error("wrapped sentinel lost its identity")
	}

	if errors.Is(err, ErrCheckFailed) {
		t.Error("wrapped sentinel matches an unrelated sentinel")
	}
}

func TestErrorMessageChain(t *testing.T) {
	err := ErrVariableNotFound.
		Wrapf("%q", "DB_POOL").
		Wrapf("did you mean %q?", "DB_POOL_SIZE")

	want := `variable not found: "DB_POOL": did you mean "DB_POOL_SIZE"?`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMakeError(t *testing.T) {
	if MakeError() != nil {
		t.Error("MakeError() with no arguments is not nil")
	}

	inner := errors.New("inner")
	outer := fmt.Errorf("outer: %w", inner)

	err := MakeError(outer)
	if !errors.Is(err, inner) {
		t.Error("flattened chain lost the innermost error")
	}
}

func TestErrorWrapStandardError(t *testing.T) {
	cause := errors.New("permission denied")
	err := ErrReadInput.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not found by errors.Is")
	}

	if !errors.Is(err, ErrReadInput) {
		t.Error("sentinel not found after wrapping a cause")
	}
}
