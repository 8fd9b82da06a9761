package domain

import (
	"errors"
	"testing"
)

func TestPriceMatrixLookup(t *testing.T) {
	m := NewPriceMatrix()
	m.SetPrice("milk", "a", 3.49)
	m.SetUnavailable("eggs", "a")

	entry, ok := m.Lookup("milk", "a")
	if !ok || !entry.Available || entry.Price != 3.49 {
		t.Fatalf("milk@a = %+v ok=%v, want available at 3.49", entry, ok)
	}

	entry, ok = m.Lookup("eggs", "a")
	if !ok || entry.Available {
		t.Fatalf("eggs@a = %+v ok=%v, want explicit unavailable entry", entry, ok)
	}

	// Absence of a key is equivalent to available=false.
	if _, ok := m.Lookup("milk", "b"); ok {
		t.Fatal("milk@b should have no entry")
	}
}

func TestPriceMatrixValidateRejectsNegativePrice(t *testing.T) {
	m := NewPriceMatrix()
	m.SetPrice("milk", "a", -1)

	err := m.Validate()
	var shapeErr *InputShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected InputShapeError, got %v", err)
	}
}
