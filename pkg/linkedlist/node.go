package linkedlist

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Node is a single cell of a singly-linked list: a value plus a link to
// its successor. A freshly constructed node stands alone; linking it into
// a List hands ownership of the node to its predecessor (or to the list
// itself for the head).
type Node[T comparable] struct {
	value     T
	next      *Node[T]
	id        uuid.UUID
	createdAt time.Time
}

// NewNode creates a standalone node holding value, with no successor.
func NewNode[T comparable](value T) *Node[T] {
	return &Node[T]{
		value:     value,
		next:      nil,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Value returns the stored value. Safe on a nil node.
func (n *Node[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

// Next returns the successor node, or nil for the terminal node.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *Node[T]) Id() uuid.UUID {
	return n.id
}

// CreatedAt time creation (UTC)
func (n *Node[T]) CreatedAt() time.Time {
	return n.createdAt
}

// String renders the value's own textual form, not the node structure.
func (n *Node[T]) String() string {
	return fmt.Sprint(n.value)
}
