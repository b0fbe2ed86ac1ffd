package statecoll

import "github.com/pkg/errors"

// A Stack is a LIFO sequence, optionally bounded.
type Stack[T any] struct {
	items    []T
	capacity int
}

// NewStack creates a stack with the initial items, the last of which is
// the top.
//
// A capacity of 0 means the stack is unbounded.
func NewStack[T any](capacity int, initial ...T) (*Stack[T], error) {
	if err := checkCapacity(capacity, len(initial)); err != nil {
		return nil, errors.Wrap(err, "new stack")
	}
	return &Stack[T]{items: append([]T{}, initial...), capacity: capacity}, nil
}

// Push adds a value to the top of the stack.
func (s *Stack[T]) Push(value T) error {
	if s.capacity > 0 && len(s.items) >= s.capacity {
		return errors.Wrapf(ErrFull, "push onto stack of capacity %d", s.capacity)
	}
	s.items = append(s.items, value)
	return nil
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (value T, ok bool) {
	if len(s.items) == 0 {
		return value, false
	}
	last := len(s.items) - 1
	value = s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if len(s.items) == 0 {
		return value, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Clear() {
	s.items = nil
}

// ToSlice copies the values from bottom to top.
func (s *Stack[T]) ToSlice() []T {
	return append([]T{}, s.items...)
}

func (s *Stack[T]) Snapshot() []T {
	return s.ToSlice()
}

func checkCapacity(capacity, initial int) error {
	if capacity < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative capacity %d", capacity)
	}
	if capacity > 0 && initial > capacity {
		return errors.Wrapf(ErrInvalidArgument, "%d initial items exceed capacity %d",
			initial, capacity)
	}
	return nil
}
