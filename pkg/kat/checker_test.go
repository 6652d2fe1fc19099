package kat

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pion/logging"
)

func TestChecker_Builtin(t *testing.T) {
	if testing.Short() {
		t.Skip("built-in catalogue includes 1,000,000 byte messages")
	}

	vectors, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	results, err := NewChecker(Config{}).Check(vectors)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(results) != len(vectors) {
		t.Fatalf("got %d results, want %d", len(results), len(vectors))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Vector.Name, r.Err)
		}
	}
}

func TestChecker_Mismatch(t *testing.T) {
	var buf bytes.Buffer
	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = &buf
	factory.DefaultLogLevel = logging.LogLevelDebug

	vectors := []Vector{
		{
			Name:      "good",
			Algorithm: "sha256",
			Message:   "abc",
			Digest:    "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			Name:      "bad",
			Algorithm: "sha256",
			Message:   "abd",
			Digest:    "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	results, err := NewChecker(Config{LoggerFactory: factory}).Check(vectors)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Check() error = %v, want ErrMismatch", err)
	}
	if results[0].Err != nil {
		t.Errorf("good vector failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, ErrMismatch) {
		t.Errorf("bad vector error = %v, want ErrMismatch", results[1].Err)
	}
	if len(results[1].Got) != 32 {
		t.Errorf("bad vector Got length = %d, want 32", len(results[1].Got))
	}

	logs := buf.String()
	if !strings.Contains(logs, "good: ok") {
		t.Errorf("expected debug line for good vector, got %q", logs)
	}
	if !strings.Contains(logs, "bad: got") {
		t.Errorf("expected warning for bad vector, got %q", logs)
	}
}

func TestChecker_InvalidVector(t *testing.T) {
	results, err := NewChecker(Config{}).Check([]Vector{{Name: "x", Algorithm: "md5"}})
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Check() error = %v, want ErrMismatch", err)
	}
	if !errors.Is(results[0].Err, ErrUnknownAlgorithm) {
		t.Errorf("result error = %v, want ErrUnknownAlgorithm", results[0].Err)
	}
}
