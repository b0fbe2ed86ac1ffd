package statecoll

import "github.com/pborman/uuid"

// A Snapshotter produces a copy of a container's state.
//
// Every container in this package is a Snapshotter.
type Snapshotter[S any] interface {
	Snapshot() S
}

// A Binding notifies listeners with a fresh snapshot of a container after
// each mutation made through it.
//
// The container itself knows nothing about the Binding, and may still be
// used directly, in which case no listeners are notified.
//
// Listeners are called synchronously, in the order they subscribed. A
// listener must not mutate the container through the Binding that is
// notifying it; doing so panics.
type Binding[S any] struct {
	source    Snapshotter[S]
	ids       []string
	listeners map[string]func(S)
	notifying bool
}

// Bind creates a Binding with no listeners.
func Bind[S any](source Snapshotter[S]) *Binding[S] {
	return &Binding[S]{
		source:    source,
		listeners: map[string]func(S){},
	}
}

// Source returns the bound container.
func (b *Binding[S]) Source() Snapshotter[S] {
	return b.source
}

// Subscribe registers f and returns an ID which can be passed to
// Unsubscribe.
func (b *Binding[S]) Subscribe(f func(S)) string {
	id := uuid.New()
	b.ids = append(b.ids, id)
	b.listeners[id] = f
	return id
}

// Unsubscribe removes a listener, returning false if the ID was not
// subscribed.
func (b *Binding[S]) Unsubscribe(id string) bool {
	if _, ok := b.listeners[id]; !ok {
		return false
	}
	delete(b.listeners, id)
	for i, x := range b.ids {
		if x == id {
			b.ids = append(b.ids[:i], b.ids[i+1:]...)
			break
		}
	}
	return true
}

// Update runs f, which should mutate the container, and then notifies all
// listeners.
func (b *Binding[S]) Update(f func()) {
	b.checkReentry()
	f()
	b.Notify()
}

// Mutate is like Update, but listeners are only notified if f succeeds.
func (b *Binding[S]) Mutate(f func() error) error {
	b.checkReentry()
	if err := f(); err != nil {
		return err
	}
	b.Notify()
	return nil
}

// Notify sends the current snapshot to every listener.
func (b *Binding[S]) Notify() {
	b.checkReentry()
	if len(b.ids) == 0 {
		return
	}
	b.notifying = true
	defer func() {
		b.notifying = false
	}()
	ids := append([]string{}, b.ids...)
	for _, id := range ids {
		if f, ok := b.listeners[id]; ok {
			// Listeners get separate copies.
			f(b.source.Snapshot())
		}
	}
}

func (b *Binding[S]) checkReentry() {
	if b.notifying {
		panic("statecoll: binding used from within its own listener")
	}
}
