// Package linkedlist provides a generic singly-linked list: a head-owning
// chain of value-carrying nodes with head, tail, and after-value insertion
// plus removal by value.
//
// Key operations:
// - New/NewFromValues: build an empty list or one from an ordered sequence
// - AddFirst/AddLast: O(1) head insertion, O(n) tail insertion
// - AddAfter/RemoveNode: splice relative to the first node matching a
//   value, failing with ErrEmptyList or NotFoundError
// - All/Values: restartable lazy traversal stopping at the nil terminator
// - String: renders the chain as [v1, v2, ..., vn, None]
//
// The list is single-threaded by design: it is not safe for concurrent
// mutation or for mutation during traversal.
//
// For fluent, short-circuiting edit sequences, see the chain subpackage.
package linkedlist
