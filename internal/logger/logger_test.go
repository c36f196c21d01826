package logger

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs f with os.Stdout redirected to a pipe and returns the output.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	f()

	_ = w.Close()
	b, _ := io.ReadAll(r)
	_ = r.Close()
	return string(b)
}

func TestLogger_IncludesServiceAndStackOnError(t *testing.T) {
	out := captureStdout(t, func() {
		log := New("devwell-test")
		log.Error().Stack().Err(errors.New("boom")).Msg("failed")
	})

	line := strings.TrimSpace(out)
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, line)
	}
	if payload["service"] != "devwell-test" {
		t.Fatalf("service = %v", payload["service"])
	}
	if payload["error"] != "boom" {
		t.Fatalf("error = %v", payload["error"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Fatal("expected a stack field on error events")
	}
}
