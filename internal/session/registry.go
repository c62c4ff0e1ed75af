package session

import (
	"fmt"
	"sort"

	"github.com/san-kum/sortlab/internal/algo"
)

// Registry supplies algorithm adapters by name.
type Registry struct {
	algorithms map[string]func() algo.Adapter
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]func() algo.Adapter)}

	r.algorithms["bubble"] = func() algo.Adapter { return algo.NewBubble() }
	r.algorithms["selection"] = func() algo.Adapter { return algo.NewSelection() }
	r.algorithms["insertion"] = func() algo.Adapter { return algo.NewInsertion() }
	r.algorithms["merge"] = func() algo.Adapter { return algo.NewMerge() }
	r.algorithms["quick"] = func() algo.Adapter { return algo.NewQuick() }

	return r
}

// Get returns a fresh adapter instance for the named algorithm.
func (r *Registry) Get(name string) (algo.Adapter, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return fn(), nil
}

// List returns the registered algorithm names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
