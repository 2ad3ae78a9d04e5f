// Package examples assembles the built-in pattern catalog.
package examples

import (
	"fmt"

	"patternlab/internal/examples/behavioral"
	"patternlab/internal/examples/creational"
	"patternlab/internal/examples/solid"
	"patternlab/internal/examples/structural"
	"patternlab/internal/registry"
)

// Register adds every built-in example to reg, category by category in
// declaration order.
func Register(reg *registry.Registry) error {
	for _, register := range []func(*registry.Registry) error{
		creational.Register,
		structural.Register,
		behavioral.Register,
		solid.Register,
	} {
		if err := register(reg); err != nil {
			return err
		}
	}
	return nil
}

// NewCatalog returns a sealed registry holding the built-in examples.
func NewCatalog() (*registry.Registry, error) {
	reg := registry.New()
	if err := Register(reg); err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	reg.Seal()
	return reg, nil
}
