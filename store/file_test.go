package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "amelia"))
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	var missing payload
	if err := s.Load("absent", &missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(absent) error = %v, want ErrNotFound", err)
	}

	want := payload{Name: "lápices", Count: 3}
	if err := s.Save("slot", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var got payload
	if err := s.Load("slot", &got); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestFileStore_WritesReadableJSON(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := s.Save("slot", payload{Name: "x", Count: 1}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "slot.json"))
	if err != nil {
		t.Fatalf("slot file missing: %v", err)
	}
	// Pretty-printed, so the file is diffable and hand-editable.
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("slot file is not indented:\n%s", data)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slot.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	var got payload
	loadErr := s.Load("slot", &got)
	if loadErr == nil || errors.Is(loadErr, ErrNotFound) {
		t.Fatalf("Load(corrupt) error = %v, want a parse error", loadErr)
	}
}
