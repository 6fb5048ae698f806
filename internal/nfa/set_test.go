package nfa

import (
	"reflect"
	"testing"
)

func TestSet(t *testing.T) {
	s := NewSet(3, 1, 3)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(1) || !s.Contains(3) || s.Contains(2) {
		t.Errorf("unexpected membership: %v", s.Sorted())
	}

	c := s.Clone()
	c.Insert(2)
	if s.Contains(2) {
		t.Error("Clone shares storage with the original")
	}
	if s.Equal(c) {
		t.Error("Equal() = true for different sets")
	}
	if !c.Equal(NewSet(1, 2, 3)) {
		t.Error("Equal() = false for identical sets")
	}

	if got := c.Sorted(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Sorted() = %v, want [1 2 3]", got)
	}
}

func TestNilSetClone(t *testing.T) {
	var s Set
	c := s.Clone()
	c.Insert(1)
	if !c.Contains(1) {
		t.Error("clone of nil set is not writable")
	}
}
