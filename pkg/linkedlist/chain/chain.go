package chain

import (
	"github.com/silviolleite/go-data-structures/pkg/linkedlist"
)

// Chain wraps a List together with the first edit error to enable fluent
// chaining of mutations.
type Chain[T comparable] struct {
	list *linkedlist.List[T]
	err  error
}

// Start begins a chain over an existing list.
func Start[T comparable](list *linkedlist.List[T]) Chain[T] {
	return Chain[T]{list: list}
}

// FromValues begins a chain over a fresh list built from values.
func FromValues[T comparable](values ...T) Chain[T] {
	return Chain[T]{list: linkedlist.NewFromValues(values...)}
}

// List returns the underlying list.
func (c Chain[T]) List() *linkedlist.List[T] {
	return c.list
}

// Err returns the first edit error, or nil.
func (c Chain[T]) Err() error {
	return c.err
}

// AddFirst prepends value. Skipped once the chain has failed.
func (c Chain[T]) AddFirst(value T) Chain[T] {
	if c.err != nil {
		return c
	}
	c.list.AddFirst(linkedlist.NewNode(value))
	return c
}

// AddLast appends value. Skipped once the chain has failed.
func (c Chain[T]) AddLast(value T) Chain[T] {
	if c.err != nil {
		return c
	}
	c.list.AddLast(linkedlist.NewNode(value))
	return c
}

// AddAfter splices value in after the first node matching target.
func (c Chain[T]) AddAfter(target, value T) Chain[T] {
	if c.err != nil {
		return c
	}
	return Chain[T]{list: c.list, err: c.list.AddAfter(target, linkedlist.NewNode(value))}
}

// RemoveNode unlinks the first node matching target.
func (c Chain[T]) RemoveNode(target T) Chain[T] {
	if c.err != nil {
		return c
	}
	return Chain[T]{list: c.list, err: c.list.RemoveNode(target)}
}

// Ensure triggers side effects for the current state without changing it.
func (c Chain[T]) Ensure(onSuccess func(*linkedlist.List[T]), onFailure func(error)) Chain[T] {
	if c.err != nil {
		if onFailure != nil {
			onFailure(c.err)
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.list)
	}
	return c
}

// Finally collapses the chain to a final value via the matching handler.
func Finally[T comparable, U any](c Chain[T],
	onSuccess func(*linkedlist.List[T]) U,
	onFailure func(error) U) U {

	if c.err != nil {
		return onFailure(c.err)
	}
	return onSuccess(c.list)
}
