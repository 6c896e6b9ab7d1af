// Package chain provides a fluent wrapper around linkedlist.List for
// building short-circuiting edit sequences.
//
// It composes the list mutations behind a convenient Chain[T] type: once
// an edit fails (empty list, value not found), later edits are skipped and
// the error is carried to the end of the chain.
//
// Key operations:
// - Start/FromValues: begin a chain from a list or an ordered sequence
// - AddFirst/AddLast/AddAfter/RemoveNode: apply an edit on success
// - Ensure: run side effects without changing the chain
// - Err/List: inspect the outcome
// - Finally: collapse the chain into a final value via handlers
package chain
