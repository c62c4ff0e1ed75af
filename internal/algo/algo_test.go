package algo

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/san-kum/sortlab/internal/step"
)

func adapters() []Adapter {
	return []Adapter{NewBubble(), NewSelection(), NewInsertion(), NewMerge(), NewQuick()}
}

func TestAdapters_FinalStepSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, a := range adapters() {
		t.Run(a.Meta().Name, func(t *testing.T) {
			for _, size := range []int{1, 2, 3, 8, 16, 31} {
				input := make([]int, size)
				for i := range input {
					input[i] = rng.Intn(100)
				}

				log, err := a.Run(input)
				if err != nil {
					t.Fatalf("run failed for size %d: %v", size, err)
				}

				want := append([]int(nil), input...)
				sort.Ints(want)
				if !reflect.DeepEqual(log.Final().Values, want) {
					t.Errorf("size %d: final = %v, want %v", size, log.Final().Values, want)
				}
			}
		})
	}
}

func TestAdapters_FirstStepIsInput(t *testing.T) {
	input := []int{9, 3, 7, 1, 5}

	for _, a := range adapters() {
		t.Run(a.Meta().Name, func(t *testing.T) {
			log, err := a.Run(input)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if !reflect.DeepEqual(log.Initial().Values, input) {
				t.Errorf("first step = %v, want unmodified input %v", log.Initial().Values, input)
			}
		})
	}
}

func TestAdapters_InputNotMutated(t *testing.T) {
	input := []int{4, 2, 6, 1}
	original := append([]int(nil), input...)

	for _, a := range adapters() {
		if _, err := a.Run(input); err != nil {
			t.Fatalf("%s: %v", a.Meta().Name, err)
		}
		if !reflect.DeepEqual(input, original) {
			t.Fatalf("%s mutated caller array: %v", a.Meta().Name, input)
		}
	}
}

func TestAdapters_EmptyInput(t *testing.T) {
	for _, a := range adapters() {
		t.Run(a.Meta().Name, func(t *testing.T) {
			log, err := a.Run(nil)
			if !errors.Is(err, step.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if log != nil {
				t.Error("expected no partial log on invalid input")
			}
		})
	}
}

func TestAdapters_Deterministic(t *testing.T) {
	input := []int{5, 3, 8, 1, 9, 2, 7}

	for _, a := range adapters() {
		t.Run(a.Meta().Name, func(t *testing.T) {
			first, err := a.Run(input)
			if err != nil {
				t.Fatal(err)
			}
			second, err := a.Run(input)
			if err != nil {
				t.Fatal(err)
			}

			if first.Len() != second.Len() {
				t.Fatalf("log lengths differ: %d vs %d", first.Len(), second.Len())
			}
			for i := 0; i < first.Len(); i++ {
				if !reflect.DeepEqual(first.At(i), second.At(i)) {
					t.Fatalf("step %d differs between runs", i)
				}
			}
		})
	}
}

func TestAdapters_LogInvariants(t *testing.T) {
	input := []int{6, 4, 8, 2, 5}

	for _, a := range adapters() {
		t.Run(a.Meta().Name, func(t *testing.T) {
			log, err := a.Run(input)
			if err != nil {
				t.Fatal(err)
			}
			if log.Len() < 2 {
				t.Fatalf("expected at least initial and final steps, got %d", log.Len())
			}
			for i := 0; i < log.Len(); i++ {
				s := log.At(i)
				if len(s.Values) != len(input) {
					t.Errorf("step %d has %d values, want %d", i, len(s.Values), len(input))
				}
				if s.Seq != i {
					t.Errorf("step %d has seq %d", i, s.Seq)
				}
			}
			final := log.Final()
			if !reflect.DeepEqual(final.Highlights[step.RoleSorted], step.Span(0, len(input)-1)) {
				t.Errorf("final step highlights = %v, want all sorted", final.Highlights)
			}
		})
	}
}

func TestMetadata_Populated(t *testing.T) {
	for _, a := range adapters() {
		m := a.Meta()
		if m.Name == "" || m.Best == "" || m.Average == "" || m.Worst == "" || m.Space == "" {
			t.Errorf("incomplete metadata: %+v", m)
		}
	}
}
