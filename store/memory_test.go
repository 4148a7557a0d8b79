package store

import (
	"errors"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	var missing payload
	if err := s.Load("absent", &missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(absent) error = %v, want ErrNotFound", err)
	}

	want := payload{Name: "cuadernos", Count: 12}
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

func TestMemStore_Corrupt(t *testing.T) {
	s := NewMemStore()
	s.Save("slot", payload{Name: "x"})
	s.Corrupt("slot")

	var got payload
	err := s.Load("slot", &got)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(corrupt) error = %v, want a parse error", err)
	}
}

func TestGet(t *testing.T) {
	s := NewMemStore()

	def := []string{"fallback"}
	if got := Get(s, "absent", def); len(got) != 1 || got[0] != "fallback" {
		t.Errorf("Get(absent) = %v, want the default", got)
	}

	s.Save("slot", []string{"a", "b"})
	if got := Get(s, "slot", def); len(got) != 2 || got[0] != "a" {
		t.Errorf("Get(present) = %v, want the stored value", got)
	}

	// A corrupt slot degrades to the default, it never fails.
	s.Corrupt("slot")
	if got := Get(s, "slot", def); len(got) != 1 || got[0] != "fallback" {
		t.Errorf("Get(corrupt) = %v, want the default", got)
	}
}
