package registry

import (
	"errors"
	"fmt"

	"patternlab/pkg/patterntypes"
)

var (
	// ErrDuplicateName matches any *DuplicateNameError via errors.Is.
	ErrDuplicateName = errors.New("registry: duplicate example name")
	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("registry: example not found")
	// ErrSealed indicates an attempt to register into a sealed registry.
	ErrSealed = errors.New("registry: sealed registry")
	// ErrInvalidExample indicates an example without a name or action.
	ErrInvalidExample = errors.New("registry: invalid example")
)

// DuplicateNameError reports a second registration under an existing name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("example %s already registered", e.Name)
}

// Is lets errors.Is match ErrDuplicateName.
func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }

// Kind returns the catalog error kind.
func (e *DuplicateNameError) Kind() patterntypes.ErrorKind { return patterntypes.DuplicateNameError }

// NotFoundError reports a lookup of an unregistered name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("example %s not found", e.Name)
}

// Is lets errors.Is match ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Kind returns the catalog error kind.
func (e *NotFoundError) Kind() patterntypes.ErrorKind { return patterntypes.NotFoundError }
