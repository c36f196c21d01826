package storageerr

import (
	"errors"
	"strings"
	"testing"
)

func TestClassification(t *testing.T) {
	t.Parallel()
	base := errors.New("unexpected end of JSON input")

	dec := NewDecodeError("load user_settings", base)
	if !IsIrrecoverable(dec) {
		t.Fatal("decode errors must be irrecoverable")
	}
	if !errors.Is(dec, base) {
		t.Fatal("Unwrap chain broken")
	}
	if !strings.Contains(dec.Error(), "Irrecoverable") || !strings.Contains(dec.Error(), "load user_settings") {
		t.Fatalf("unexpected message: %s", dec.Error())
	}

	io := NewStoreError("set daily_stats", errors.New("disk I/O error"))
	if IsIrrecoverable(io) {
		t.Fatal("store errors must be recoverable")
	}
}

func TestIsIrrecoverable_PlainError(t *testing.T) {
	t.Parallel()
	if IsIrrecoverable(errors.New("plain")) {
		t.Fatal("unclassified errors default to recoverable")
	}
}
