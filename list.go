// Package statecoll implements small in-memory generic containers meant to
// back UI state: singly and doubly linked lists, a priority queue with a
// fixed set of levels, and bounded stacks and queues.
//
// None of the containers are safe for concurrent use. Each instance should
// have a single owner, and callers that share an instance must serialize
// access themselves.
package statecoll

import "iter"

// A List is the operation set shared by SinglyLinkedList and
// DoublyLinkedList.
type List[T any] interface {
	InsertFirst(value T)
	InsertLast(value T)

	// DeleteFirst and DeleteLast return the removed value, or false if the
	// list was empty.
	DeleteFirst() (T, bool)
	DeleteLast() (T, bool)

	Front() (T, bool)
	Back() (T, bool)
	Clear()
	Len() int
	IsEmpty() bool
	ToSlice() []T
	All() iter.Seq[T]
	Snapshot() ListState[T]
}

// ListState is a projection of a list which shares no storage with it.
type ListState[T any] struct {
	Values []T `json:"values"`
	Size   int `json:"size"`
}

var (
	_ List[int] = (*SinglyLinkedList[int])(nil)
	_ List[int] = (*DoublyLinkedList[int])(nil)
)
