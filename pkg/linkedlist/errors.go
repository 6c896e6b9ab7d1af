package linkedlist

import (
	"errors"
	"fmt"
)

// ErrEmptyList reports a mutation that requires at least one node.
var ErrEmptyList = errors.New("list is empty")

// ErrValueNotFound is the kind matched by errors.Is for a NotFoundError.
var ErrValueNotFound = errors.New("value not found")

// NotFoundError reports that no node in the chain carries the target value.
type NotFoundError[T comparable] struct {
	Value T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("node with value '%v' not found", e.Value)
}

func (e *NotFoundError[T]) Is(target error) bool {
	return target == ErrValueNotFound
}
