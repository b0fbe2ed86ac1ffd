package statecoll

import "github.com/pkg/errors"

// A Queue is a FIFO sequence, optionally bounded.
type Queue[T any] struct {
	items    []T
	capacity int
}

// NewQueue creates a queue with the initial items, the first of which is at
// the front.
//
// A capacity of 0 means the queue is unbounded.
func NewQueue[T any](capacity int, initial ...T) (*Queue[T], error) {
	if err := checkCapacity(capacity, len(initial)); err != nil {
		return nil, errors.Wrap(err, "new queue")
	}
	return &Queue[T]{items: append([]T{}, initial...), capacity: capacity}, nil
}

// Enqueue adds a value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) error {
	if q.capacity > 0 && len(q.items) >= q.capacity {
		return errors.Wrapf(ErrFull, "enqueue onto queue of capacity %d", q.capacity)
	}
	q.items = append(q.items, value)
	return nil
}

// Dequeue removes and returns the front value.
func (q *Queue[T]) Dequeue() (value T, ok bool) {
	if len(q.items) == 0 {
		return value, false
	}
	value = q.items[0]
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return value, true
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (value T, ok bool) {
	if len(q.items) == 0 {
		return value, false
	}
	return q.items[0], true
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *Queue[T]) Clear() {
	q.items = nil
}

// ToSlice copies the values from front to back.
func (q *Queue[T]) ToSlice() []T {
	return append([]T{}, q.items...)
}

func (q *Queue[T]) Snapshot() []T {
	return q.ToSlice()
}
