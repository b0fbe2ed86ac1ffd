package statecoll

import (
	"sort"

	"github.com/pkg/errors"
)

// A Priority is one of a fixed set of levels. Lower values are dequeued
// first.
type Priority int

const (
	PriorityUrgent Priority = iota
	PriorityHigh
	PriorityNormal
	PriorityLow

	MaxPriority = PriorityLow
)

// Valid checks if p is one of the defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityUrgent && p <= MaxPriority
}

func (p Priority) check() error {
	if !p.Valid() {
		return errors.Wrapf(ErrInvalidArgument, "priority %d not in [0, %d]", p, MaxPriority)
	}
	return nil
}

// An Item is a value stored in a PriorityQueue.
type Item[T any] struct {
	Value    T        `json:"value"`
	Priority Priority `json:"priority"`
}

// A PriorityQueue keeps its items sorted by priority. Items with equal
// priority come out in the order they were enqueued.
//
// The zero value is an empty queue.
type PriorityQueue[T any] struct {
	items []Item[T]
}

// NewPriorityQueue creates a queue and enqueues the initial items in order.
//
// If any item has an invalid priority, no queue is created.
func NewPriorityQueue[T any](initial ...Item[T]) (*PriorityQueue[T], error) {
	p := &PriorityQueue[T]{items: make([]Item[T], 0, len(initial))}
	for i, item := range initial {
		if err := item.Priority.check(); err != nil {
			return nil, errors.Wrapf(err, "initial item %d", i)
		}
		p.insert(item)
	}
	return p, nil
}

// Enqueue inserts value after every item whose priority is at least as
// high.
func (p *PriorityQueue[T]) Enqueue(value T, priority Priority) error {
	if err := priority.check(); err != nil {
		return errors.Wrap(err, "enqueue")
	}
	p.insert(Item[T]{Value: value, Priority: priority})
	return nil
}

// Dequeue removes and returns the first value.
func (p *PriorityQueue[T]) Dequeue() (value T, ok bool) {
	if len(p.items) == 0 {
		return value, false
	}
	value = p.items[0].Value
	p.items[0] = Item[T]{}
	p.items = p.items[1:]
	if len(p.items) == 0 {
		p.items = nil
	}
	return value, true
}

// Peek returns the first value without removing it.
func (p *PriorityQueue[T]) Peek() (value T, ok bool) {
	if len(p.items) == 0 {
		return value, false
	}
	return p.items[0].Value, true
}

// Len returns the number of queued items.
func (p *PriorityQueue[T]) Len() int {
	return len(p.items)
}

// IsEmpty is equivalent to p.Len() == 0.
func (p *PriorityQueue[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Clear removes all of the items.
func (p *PriorityQueue[T]) Clear() {
	p.items = nil
}

// Items copies the queue in dequeue order.
func (p *PriorityQueue[T]) Items() []Item[T] {
	return append([]Item[T]{}, p.items...)
}

// Snapshot is equivalent to Items.
func (p *PriorityQueue[T]) Snapshot() []Item[T] {
	return p.Items()
}

func (p *PriorityQueue[T]) insert(item Item[T]) {
	idx := sort.Search(len(p.items), func(i int) bool {
		return p.items[i].Priority > item.Priority
	})
	p.items = append(p.items, Item[T]{})
	copy(p.items[idx+1:], p.items[idx:])
	p.items[idx] = item
}
