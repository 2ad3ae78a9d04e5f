// Package patterntypes defines the shared types of the pattern catalog.
// This file contains the Category enumeration used to group examples.
package patterntypes

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups examples by the family of pattern or principle they illustrate.
type Category int

const (
	// Creational covers object construction patterns (Singleton, Builder, ...).
	Creational Category = iota + 1
	// Structural covers composition patterns (Adapter, Decorator, ...).
	Structural
	// Behavioral covers interaction patterns (Observer, Strategy, ...).
	Behavioral
	// Solid covers the five SOLID design principles.
	Solid
)

// ErrUnknownCategory is returned by ParseCategory for unrecognized names.
var ErrUnknownCategory = errors.New("unknown category")

var categoryNames = map[Category]string{
	Creational: "creational",
	Structural: "structural",
	Behavioral: "behavioral",
	Solid:      "solid",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Creational, Structural, Behavioral, Solid}
}

// String returns the lowercase category name used on the command line.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Title returns the display name, e.g. "Creational".
func (c Category) Title() string {
	name := c.String()
	if !c.Valid() {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// MarshalText implements encoding.TextMarshaler so categories serialize by name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory converts a case-insensitive category name into a Category.
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories() {
		if categoryNames[c] == normalized {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownCategory, name, strings.Join(CategoryNames(), ", "))
}

// CategoryNames returns the accepted category names in declaration order.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryNames))
	for _, c := range Categories() {
		names = append(names, c.String())
	}
	return names
}
