package statecoll

import "iter"

// A nodeRef is a 1-based index into a DoublyLinkedList's node table.
// The zero nodeRef refers to no node.
type nodeRef int

const noNode nodeRef = 0

type doublyNode[T any] struct {
	value T

	// prev is only used to find a predecessor; it never releases a slot.
	prev nodeRef

	// next links the following node, or the next free slot when the node
	// is not in use.
	next  nodeRef
	inUse bool
}

// A DoublyLinkedList tracks both ends of its chain, making every insertion
// and deletion at either end O(1).
//
// Nodes are stored in a table owned by the list and linked by index, so
// there are no pointer cycles between neighbors. Slots freed by deletions
// are reused by later insertions.
//
// The zero value is an empty list.
type DoublyLinkedList[T any] struct {
	nodes    []doublyNode[T]
	freeHead nodeRef

	head nodeRef
	tail nodeRef
	size int
}

// NewDoublyLinkedList creates a list holding initial in order.
func NewDoublyLinkedList[T any](initial ...T) *DoublyLinkedList[T] {
	l := &DoublyLinkedList[T]{nodes: make([]doublyNode[T], 0, len(initial))}
	for _, v := range initial {
		l.InsertLast(v)
	}
	return l
}

// InsertFirst adds a value before the current head.
func (l *DoublyLinkedList[T]) InsertFirst(value T) {
	ref := l.alloc(value)
	node := l.node(ref)
	node.next = l.head
	if l.head == noNode {
		l.tail = ref
	} else {
		l.node(l.head).prev = ref
	}
	l.head = ref
	l.size++
}

// InsertLast adds a value after the current tail.
func (l *DoublyLinkedList[T]) InsertLast(value T) {
	ref := l.alloc(value)
	node := l.node(ref)
	node.prev = l.tail
	if l.tail == noNode {
		l.head = ref
	} else {
		l.node(l.tail).next = ref
	}
	l.tail = ref
	l.size++
}

// DeleteFirst unlinks the head node and returns its value.
func (l *DoublyLinkedList[T]) DeleteFirst() (value T, ok bool) {
	if l.head == noNode {
		return value, false
	}
	old := l.head
	if old == l.tail {
		l.head, l.tail = noNode, noNode
	} else {
		next := l.node(old).next
		nextNode := l.node(next)
		if nextNode.prev != old {
			panic("statecoll: prev link out of sync with head")
		}
		nextNode.prev = noNode
		l.head = next
	}
	l.size--
	return l.release(old), true
}

// DeleteLast unlinks the tail node and returns its value.
func (l *DoublyLinkedList[T]) DeleteLast() (value T, ok bool) {
	if l.tail == noNode {
		return value, false
	}
	old := l.tail
	if old == l.head {
		l.head, l.tail = noNode, noNode
	} else {
		prev := l.node(old).prev
		prevNode := l.node(prev)
		if prevNode.next != old {
			panic("statecoll: next link out of sync with tail")
		}
		prevNode.next = noNode
		l.tail = prev
	}
	l.size--
	return l.release(old), true
}

// Front returns the head value.
func (l *DoublyLinkedList[T]) Front() (value T, ok bool) {
	if l.head == noNode {
		return value, false
	}
	return l.node(l.head).value, true
}

// Back returns the tail value.
func (l *DoublyLinkedList[T]) Back() (value T, ok bool) {
	if l.tail == noNode {
		return value, false
	}
	return l.node(l.tail).value, true
}

// Clear releases every node, including the free slots.
func (l *DoublyLinkedList[T]) Clear() {
	l.nodes = nil
	l.freeHead = noNode
	l.head = noNode
	l.tail = noNode
	l.size = 0
}

// Len returns the number of values in the list.
func (l *DoublyLinkedList[T]) Len() int {
	return l.size
}

// IsEmpty is equivalent to l.Len() == 0.
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// ToSlice copies the values from head to tail.
func (l *DoublyLinkedList[T]) ToSlice() []T {
	res := make([]T, 0, l.size)
	for ref := l.head; ref != noNode; ref = l.node(ref).next {
		res = append(res, l.node(ref).value)
	}
	return res
}

// All yields the values from head to tail.
//
// The list must not be modified while the sequence is being consumed.
func (l *DoublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ref := l.head; ref != noNode; ref = l.node(ref).next {
			if !yield(l.node(ref).value) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head by following prev links.
func (l *DoublyLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ref := l.tail; ref != noNode; ref = l.node(ref).prev {
			if !yield(l.node(ref).value) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the list's current state.
func (l *DoublyLinkedList[T]) Snapshot() ListState[T] {
	return ListState[T]{Values: l.ToSlice(), Size: l.size}
}

func (l *DoublyLinkedList[T]) node(ref nodeRef) *doublyNode[T] {
	return &l.nodes[ref-1]
}

// alloc takes a slot from the free list, or grows the table if there are no
// free slots.
func (l *DoublyLinkedList[T]) alloc(value T) nodeRef {
	if l.freeHead != noNode {
		ref := l.freeHead
		node := l.node(ref)
		l.freeHead = node.next
		*node = doublyNode[T]{value: value, inUse: true}
		return ref
	}
	l.nodes = append(l.nodes, doublyNode[T]{value: value, inUse: true})
	return nodeRef(len(l.nodes))
}

func (l *DoublyLinkedList[T]) release(ref nodeRef) T {
	node := l.node(ref)
	if !node.inUse {
		panic("statecoll: node released twice")
	}
	value := node.value
	*node = doublyNode[T]{next: l.freeHead}
	l.freeHead = ref
	return value
}
