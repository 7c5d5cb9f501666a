package fault

import (
	"errors"
	"os"
	"testing"
)

var errSentinel = errors.New("operation failed")

func TestWrap(t *testing.T) {
	err := Wrap(errSentinel, os.ErrNotExist)

	if !errors.Is(err, errSentinel) {
		t.Error("wrapped error does not match sentinel")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("wrapped error does not match cause")
	}
	if err.Error() != "operation failed: file does not exist" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errSentinel, "step %d: %w", 3, os.ErrPermission)

	if !errors.Is(err, errSentinel) {
		t.Error("wrapped error does not match sentinel")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("wrapped error does not match chained cause")
	}
	if err.Error() != "operation failed: step 3: permission denied" {
		t.Errorf("message = %q", err.Error())
	}
}
