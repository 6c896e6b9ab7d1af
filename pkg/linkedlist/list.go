package linkedlist

import (
	"iter"
	"strings"
)

// nilMarker stands in for the nil tail in renderings.
const nilMarker = "None"

// List is a singly-linked chain of nodes. The list owns its head node and
// each node owns its successor, so the chain is linear and acyclic by
// construction. The zero value is an empty list ready to use.
//
// A List is not safe for concurrent use, nor for mutation while a
// traversal is in progress; callers must serialize access.
type List[T comparable] struct {
	head *Node[T]
	len  int
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	return new(List[T])
}

// NewFromValues creates a list whose chain order matches values exactly.
// No values yields an empty list.
func NewFromValues[T comparable](values ...T) *List[T] {
	l := New[T]()
	if len(values) == 0 {
		return l
	}
	node := NewNode(values[0])
	l.head = node
	for _, v := range values[1:] {
		node.next = NewNode(v)
		node = node.next
	}
	l.len = len(values)
	return l
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.len
}

// All yields every node in link order. Each call starts fresh from the
// head and stops at the nil terminator.
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node) {
				return
			}
		}
	}
}

// Values yields every value in link order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// AddFirst links node in as the new head. The list takes ownership of node.
func (l *List[T]) AddFirst(node *Node[T]) {
	node.next = l.head
	l.head = node
	l.len++
}

// AddLast links node in as the new terminal node. On an empty list the
// node becomes the head.
func (l *List[T]) AddLast(node *Node[T]) {
	if l.head == nil {
		l.head = node
		l.len++
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = node
	l.len++
}

// AddAfter splices node in immediately after the first node whose value
// equals target. It returns ErrEmptyList on an empty list and a
// NotFoundError when target is absent; on failure the chain is untouched.
func (l *List[T]) AddAfter(target T, node *Node[T]) error {
	if l.head == nil {
		return ErrEmptyList
	}

	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == target {
			node.next = cur.next
			cur.next = node
			l.len++
			return nil
		}
	}

	return &NotFoundError[T]{Value: target}
}

// RemoveNode unlinks the first node whose value equals target. It returns
// ErrEmptyList on an empty list and a NotFoundError when target is absent;
// on failure the chain is untouched.
func (l *List[T]) RemoveNode(target T) error {
	if l.head == nil {
		return ErrEmptyList
	}

	if l.head.value == target {
		head := l.head
		l.head = head.next
		head.next = nil
		l.len--
		return nil
	}

	prev := l.head
	for cur := l.head.next; cur != nil; cur = cur.next {
		if cur.value == target {
			prev.next = cur.next
			cur.next = nil
			l.len--
			return nil
		}
		prev = cur
	}

	return &NotFoundError[T]{Value: target}
}

// String renders the chain as a bracketed sequence of each value's own
// textual form followed by the terminal marker, e.g. [23, 35, 10, None].
// The empty list renders as [None].
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for node := l.head; node != nil; node = node.next {
		b.WriteString(node.String())
		b.WriteString(", ")
	}
	b.WriteString(nilMarker)
	b.WriteByte(']')
	return b.String()
}
