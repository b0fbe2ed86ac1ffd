package statecoll

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestBindingNotifies(t *testing.T) {
	list := NewDoublyLinkedList[int]()
	b := Bind[ListState[int]](list)

	var states []ListState[int]
	var order []string
	id1 := b.Subscribe(func(s ListState[int]) {
		states = append(states, s)
		order = append(order, "first")
	})
	b.Subscribe(func(s ListState[int]) {
		s.Values = append(s.Values, 1000)
		order = append(order, "second")
	})

	b.Update(func() {
		list.InsertLast(1)
		list.InsertLast(2)
	})
	b.Update(func() {
		list.DeleteFirst()
	})
	expected := []ListState[int]{
		{Values: []int{1, 2}, Size: 2},
		{Values: []int{2}, Size: 1},
	}
	if !reflect.DeepEqual(states, expected) {
		t.Fatalf("bad states: %v", states)
	}
	if !reflect.DeepEqual(order, []string{"first", "second", "first", "second"}) {
		t.Fatalf("bad order: %v", order)
	}
	if s := list.ToSlice(); !reflect.DeepEqual(s, []int{2}) {
		t.Fatalf("listener altered the list: %v", s)
	}

	if !b.Unsubscribe(id1) {
		t.Fatal("unsubscribe failed")
	}
	if b.Unsubscribe(id1) {
		t.Fatal("second unsubscribe should fail")
	}
	b.Update(func() {
		list.Clear()
	})
	if len(states) != 2 {
		t.Fatal("unsubscribed listener was called")
	}
}

func TestBindingMutateError(t *testing.T) {
	pq, _ := NewPriorityQueue[string]()
	b := Bind[[]Item[string]](pq)
	calls := 0
	b.Subscribe(func([]Item[string]) {
		calls++
	})
	err := b.Mutate(func() error {
		return pq.Enqueue("x", 17)
	})
	if errors.Cause(err) != ErrInvalidArgument {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Fatal("listener called after failed mutation")
	}
	if err := b.Mutate(func() error {
		return pq.Enqueue("x", PriorityNormal)
	}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("expected one call but got %d", calls)
	}
}

func TestBindingReentry(t *testing.T) {
	s, _ := NewStack[int](0)
	b := Bind[[]int](s)
	b.Subscribe(func([]int) {
		b.Update(func() {
			s.Push(1)
		})
	})
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
		if b.notifying {
			t.Fatal("binding stuck in notifying state")
		}
	}()
	b.Update(func() {
		s.Push(0)
	})
}
