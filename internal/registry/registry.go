package registry

import (
	"fmt"
	"iter"

	"patternlab/pkg/patterntypes"
)

// Registry is an ordered collection of examples keyed by unique name.
// It is not safe for concurrent registration; all Register calls must
// complete before the registry is read.
type Registry struct {
	order  []string
	byName map[string]patterntypes.Example
	sealed bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]patterntypes.Example),
	}
}

// Register appends an example. It fails with *DuplicateNameError if the
// name is already taken, leaving the registry untouched.
func (r *Registry) Register(example patterntypes.Example) error {
	if r.sealed {
		return fmt.Errorf("register %s: %w", example.Name, ErrSealed)
	}
	if example.Name == "" {
		return fmt.Errorf("%w: example name cannot be empty", ErrInvalidExample)
	}
	if example.Action == nil {
		return fmt.Errorf("%w: example %s has no action", ErrInvalidExample, example.Name)
	}
	if _, exists := r.byName[example.Name]; exists {
		return &DuplicateNameError{Name: example.Name}
	}

	r.order = append(r.order, example.Name)
	r.byName[example.Name] = example
	return nil
}

// MustRegister panics on registration error. Useful for static catalogs.
func MustRegister(r *Registry, examples ...patterntypes.Example) {
	for _, example := range examples {
		if err := r.Register(example); err != nil {
			panic(err)
		}
	}
}

// Get returns the example registered under name or a *NotFoundError.
func (r *Registry) Get(name string) (patterntypes.Example, error) {
	example, exists := r.byName[name]
	if !exists {
		return patterntypes.Example{}, &NotFoundError{Name: name}
	}
	return example, nil
}

// All yields every example in registration order.
func (r *Registry) All() iter.Seq[patterntypes.Example] {
	return func(yield func(patterntypes.Example) bool) {
		for _, name := range r.order {
			if !yield(r.byName[name]) {
				return
			}
		}
	}
}

// ListByCategory yields the examples of one category in registration order.
// A category without examples yields nothing.
func (r *Registry) ListByCategory(category patterntypes.Category) iter.Seq[patterntypes.Example] {
	return func(yield func(patterntypes.Example) bool) {
		for example := range r.All() {
			if example.Category != category {
				continue
			}
			if !yield(example) {
				return
			}
		}
	}
}

// Names returns the registered names in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	return len(r.order)
}

// Seal ends the setup phase. Subsequent Register calls fail with ErrSealed.
// Returns true if this call changed the state.
func (r *Registry) Seal() bool {
	changed := !r.sealed
	r.sealed = true
	return changed
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	return r.sealed
}
