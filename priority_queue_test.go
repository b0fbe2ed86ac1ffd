package statecoll

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/pkg/errors"
)

func TestPriorityQueueStableTies(t *testing.T) {
	pq, err := NewPriorityQueue[string]()
	if err != nil {
		t.Fatal(err)
	}
	pq.Enqueue("a", 1)
	pq.Enqueue("b", 0)
	pq.Enqueue("c", 1)
	if pq.Len() != 3 {
		t.Fatalf("bad length: %d", pq.Len())
	}
	if v, ok := pq.Peek(); !ok || v != "b" {
		t.Fatalf("bad peek: %q %v", v, ok)
	}
	for _, expected := range []string{"b", "a", "c"} {
		if v, ok := pq.Dequeue(); !ok || v != expected {
			t.Fatalf("expected %q but got %q (%v)", expected, v, ok)
		}
	}
	if !pq.IsEmpty() {
		t.Fatal("queue should be empty")
	}
	if _, ok := pq.Dequeue(); ok {
		t.Fatal("Dequeue on empty queue should fail")
	}
	if _, ok := pq.Peek(); ok {
		t.Fatal("Peek on empty queue should fail")
	}
}

func TestPriorityQueueInvalidPriority(t *testing.T) {
	var pq PriorityQueue[int]
	for _, p := range []Priority{-1, 4, 100} {
		err := pq.Enqueue(1, p)
		if err == nil {
			t.Fatalf("priority %d should be rejected", p)
		}
		if errors.Cause(err) != ErrInvalidArgument {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if pq.Len() != 0 {
		t.Fatal("rejected items were enqueued")
	}

	_, err := NewPriorityQueue(Item[int]{Value: 1, Priority: 2}, Item[int]{Value: 2, Priority: 9})
	if errors.Cause(err) != ErrInvalidArgument {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPriorityQueueInitial(t *testing.T) {
	pq, err := NewPriorityQueue(
		Item[string]{Value: "x", Priority: PriorityLow},
		Item[string]{Value: "y", Priority: PriorityUrgent},
		Item[string]{Value: "z", Priority: PriorityLow},
	)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Item[string]{
		{Value: "y", Priority: PriorityUrgent},
		{Value: "x", Priority: PriorityLow},
		{Value: "z", Priority: PriorityLow},
	}
	items := pq.Items()
	if !reflect.DeepEqual(items, expected) {
		t.Fatalf("bad items: %v", items)
	}
	items[0].Value = "changed"
	if v, _ := pq.Peek(); v != "y" {
		t.Fatal("Items aliases queue storage")
	}

	pq.Clear()
	pq.Clear()
	if pq.Len() != 0 || len(pq.Snapshot()) != 0 {
		t.Fatal("clear left items behind")
	}
}

func TestPriorityQueueRandom(t *testing.T) {
	gen := rand.New(rand.NewSource(42))
	var pq PriorityQueue[int]
	var expected []Item[int]
	for i := 0; i < 3000; i++ {
		if gen.Intn(3) == 0 {
			v, ok := pq.Dequeue()
			if ok != (len(expected) > 0) {
				t.Fatalf("step %d: bad Dequeue status", i)
			}
			if ok {
				if v != expected[0].Value {
					t.Fatalf("step %d: got %d expected %d", i, v, expected[0].Value)
				}
				expected = expected[1:]
			}
		} else {
			p := Priority(gen.Intn(int(MaxPriority) + 1))
			if err := pq.Enqueue(i, p); err != nil {
				t.Fatal(err)
			}
			expected = append(expected, Item[int]{Value: i, Priority: p})
			sort.SliceStable(expected, func(a, b int) bool {
				return expected[a].Priority < expected[b].Priority
			})
		}
		if pq.Len() != len(expected) {
			t.Fatalf("step %d: bad length %d", i, pq.Len())
		}
		if len(expected) > 0 && !reflect.DeepEqual(pq.Items(), expected) {
			t.Fatalf("step %d: items out of order", i)
		}
	}
}
