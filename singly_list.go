package statecoll

import "iter"

type singlyNode[T any] struct {
	value T
	next  *singlyNode[T]
}

// A SinglyLinkedList is a chain of nodes reachable from a head pointer.
//
// No tail pointer is kept, so InsertLast, DeleteLast, and Back walk the
// whole chain. Use a DoublyLinkedList when those need to be O(1).
//
// The zero value is an empty list.
type SinglyLinkedList[T any] struct {
	head *singlyNode[T]
	size int
}

// NewSinglyLinkedList creates a list holding initial in order.
func NewSinglyLinkedList[T any](initial ...T) *SinglyLinkedList[T] {
	l := &SinglyLinkedList[T]{}
	var last *singlyNode[T]
	for _, v := range initial {
		node := &singlyNode[T]{value: v}
		if last == nil {
			l.head = node
		} else {
			last.next = node
		}
		last = node
		l.size++
	}
	return l
}

// InsertFirst adds a value before the current head.
func (l *SinglyLinkedList[T]) InsertFirst(value T) {
	l.head = &singlyNode[T]{value: value, next: l.head}
	l.size++
}

// InsertLast adds a value after the last node.
func (l *SinglyLinkedList[T]) InsertLast(value T) {
	node := &singlyNode[T]{value: value}
	if l.head == nil {
		l.head = node
	} else {
		l.lastNode().next = node
	}
	l.size++
}

// DeleteFirst unlinks the head node and returns its value.
func (l *SinglyLinkedList[T]) DeleteFirst() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	old := l.head
	l.head = old.next
	old.next = nil
	l.size--
	return old.value, true
}

// DeleteLast unlinks the last node and returns its value.
func (l *SinglyLinkedList[T]) DeleteLast() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	if l.head.next == nil {
		value = l.head.value
		l.head = nil
		l.size--
		return value, true
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	value = prev.next.value
	prev.next = nil
	l.size--
	return value, true
}

// Front returns the head value.
func (l *SinglyLinkedList[T]) Front() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

// Back returns the last value. It walks the list.
func (l *SinglyLinkedList[T]) Back() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.lastNode().value, true
}

// Clear drops the whole chain at once.
func (l *SinglyLinkedList[T]) Clear() {
	l.head = nil
	l.size = 0
}

// Len returns the number of values in the list.
func (l *SinglyLinkedList[T]) Len() int {
	return l.size
}

// IsEmpty is equivalent to l.Len() == 0.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// ToSlice copies the values from head to end.
func (l *SinglyLinkedList[T]) ToSlice() []T {
	res := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.value)
	}
	return res
}

// All yields the values from head to end.
//
// The list must not be modified while the sequence is being consumed.
func (l *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the list's current state.
func (l *SinglyLinkedList[T]) Snapshot() ListState[T] {
	return ListState[T]{Values: l.ToSlice(), Size: l.size}
}

func (l *SinglyLinkedList[T]) lastNode() *singlyNode[T] {
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n
}
