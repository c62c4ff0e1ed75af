package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/sortlab/internal/playback"
	"github.com/san-kum/sortlab/internal/step"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"bubble", "selection", "insertion", "merge", "quick"} {
		a, err := r.Get(name)
		if err != nil {
			t.Errorf("get %s: %v", name, err)
			continue
		}
		if a.Meta().Name == "" {
			t.Errorf("%s has empty metadata", name)
		}
	}

	if _, err := r.Get("bogo"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	got := NewRegistry().List()
	want := []string{"bubble", "insertion", "merge", "quick", "selection"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("list = %v, want %v", got, want)
	}
}

func TestSession_New(t *testing.T) {
	r := NewRegistry()
	a, err := r.Get("quick")
	if err != nil {
		t.Fatal(err)
	}

	input := []int{3, 1, 2}
	s, err := New(a, input)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if s.Driver.State() != playback.Idle {
		t.Errorf("fresh session state = %v, want idle", s.Driver.State())
	}
	if s.Log.Len() < 2 {
		t.Errorf("log too short: %d", s.Log.Len())
	}

	// The session keeps its own input copy.
	input[0] = 99
	if s.Input[0] != 3 {
		t.Error("session aliases caller input")
	}
}

func TestSession_InvalidInput(t *testing.T) {
	a, err := NewRegistry().Get("bubble")
	if err != nil {
		t.Fatal(err)
	}

	s, err := New(a, nil)
	if !errors.Is(err, step.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if s != nil {
		t.Error("expected no session on invalid input")
	}
}

func TestSession_ReplacementIsTotal(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Get("bubble")

	first, err := New(a, []int{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Driver.Start(); err != nil {
		t.Fatal(err)
	}

	second, err := New(a, []int{3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}

	if first.Driver == second.Driver || first.Log == second.Log {
		t.Error("sessions share playback state")
	}
	if second.Driver.State() != playback.Idle {
		t.Errorf("replacement session state = %v, want idle", second.Driver.State())
	}
}
