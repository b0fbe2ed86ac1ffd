package main

import (
	"log"
	"sort"
	"sync"

	"github.com/unixpickle/statecoll"
)

// RecentWindow is the number of seconds covered by
// statecoll.ContainerStats.RecentMutations.
const RecentWindow = 60

// A Container is a statecoll container that can be hosted by a
// ContainerMux.
type Container[S any] interface {
	statecoll.Snapshotter[S]
	Len() int
}

// A Slot holds one named container, the Binding through which it is
// mutated, and its mutation statistics.
//
// A Slot is only valid inside the callback passed to ContainerMux.Get.
type Slot[S any, C Container[S]] struct {
	Container C
	Binding   *statecoll.Binding[S]

	lock      sync.Mutex
	mutations int64
	rate      *RateTracker
}

// Update applies a mutation and notifies the container's listeners.
func (s *Slot[S, C]) Update(f func()) {
	s.Binding.Update(f)
}

// Mutate is like Update, but nothing is notified if f fails.
func (s *Slot[S, C]) Mutate(f func() error) error {
	return s.Binding.Mutate(f)
}

// ContainerMux manages multiple named containers of one kind.
//
// Operations on a single container are serialized, so the containers
// themselves never see concurrent callers.
type ContainerMux[S any, C Container[S]] struct {
	Kind string

	// Verbose causes every mutation to be logged.
	Verbose bool

	newContainer func() C

	lock  sync.Mutex
	slots map[string]*Slot[S, C]
	users map[string]int
}

// NewContainerMux creates a ContainerMux which creates containers on demand
// using newContainer.
func NewContainerMux[S any, C Container[S]](kind string, newContainer func() C) *ContainerMux[S, C] {
	return &ContainerMux[S, C]{
		Kind:         kind,
		newContainer: newContainer,
		slots:        map[string]*Slot[S, C]{},
		users:        map[string]int{},
	}
}

// Get calls f with the Slot for the given name. One is created if
// necessary, and will be destroyed once it is empty and unused.
//
// The Slot is locked for the duration of f, and f should not store a
// reference to it anywhere outside of its scope.
func (m *ContainerMux[S, C]) Get(name string, f func(*Slot[S, C])) {
	m.lock.Lock()
	slot, ok := m.slots[name]
	if !ok {
		slot = m.newSlot(name)
		m.slots[name] = slot
	}
	m.users[name]++
	m.lock.Unlock()

	defer func() {
		m.lock.Lock()
		defer m.lock.Unlock()
		m.users[name]--
		if m.users[name] == 0 && slot.empty() {
			// Garbage collect unused containers.
			delete(m.users, name)
			delete(m.slots, name)
		}
	}()

	slot.lock.Lock()
	defer slot.lock.Unlock()
	f(slot)
}

// Iterate calls f with every live container, sorted by name.
func (m *ContainerMux[S, C]) Iterate(f func(string, *Slot[S, C])) {
	m.lock.Lock()
	names := make([]string, 0, len(m.slots))
	for name := range m.slots {
		names = append(names, name)
	}
	m.lock.Unlock()
	sort.Strings(names)
	for _, name := range names {
		m.Get(name, func(slot *Slot[S, C]) {
			f(name, slot)
		})
	}
}

// Stats gets the statistics for every non-empty container.
func (m *ContainerMux[S, C]) Stats() []*statecoll.ContainerStats {
	var res []*statecoll.ContainerStats
	m.Iterate(func(name string, slot *Slot[S, C]) {
		if slot.Container.Len() == 0 {
			return
		}
		res = append(res, &statecoll.ContainerStats{
			Kind:            m.Kind,
			Name:            name,
			Size:            slot.Container.Len(),
			Mutations:       slot.mutations,
			RecentMutations: slot.rate.Count(RecentWindow),
		})
	})
	return res
}

func (m *ContainerMux[S, C]) newSlot(name string) *Slot[S, C] {
	container := m.newContainer()
	slot := &Slot[S, C]{
		Container: container,
		Binding:   statecoll.Bind[S](container),
		rate:      NewRateTracker(RecentWindow),
	}
	slot.Binding.Subscribe(func(S) {
		slot.mutations++
		slot.rate.Add(1)
	})
	if m.Verbose {
		kind := m.Kind
		slot.Binding.Subscribe(func(state S) {
			log.Printf("%s %q: %v", kind, name, state)
		})
	}
	return slot
}

func (s *Slot[S, C]) empty() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.Container.Len() == 0
}
