package statecoll

import (
	"reflect"
	"sync"
	"time"
)

// A Watch polls a remote container in the background and reports every
// change to its contents, much like a Binding does for a local container.
//
// Call Cancel() to stop polling.
type Watch struct {
	cancelLock sync.Mutex
	cancelled  bool
	cancelChan chan struct{}
}

// Watch starts polling the list every interval.
//
// f is called with the first successful result, with every result that
// differs from the last one reported, and with every error.
func (r *RemoteList) Watch(interval time.Duration, f func(*ListState[string], error)) *Watch {
	return startWatch(interval, r.Items, f)
}

// Watch starts polling the queue every interval, like RemoteList.Watch.
func (r *RemotePriorityQueue) Watch(interval time.Duration, f func([]Item[string], error)) *Watch {
	return startWatch(interval, r.Items, f)
}

// Cancel stops the polling loop.
//
// This may be called any number of times, in which case it will have no
// effect after the first cancellation. A poll already in progress may still
// report its result.
func (w *Watch) Cancel() {
	w.cancelLock.Lock()
	defer w.cancelLock.Unlock()
	if !w.cancelled {
		w.cancelled = true
		close(w.cancelChan)
	}
}

func startWatch[S any](interval time.Duration, fetch func() (S, error), f func(S, error)) *Watch {
	w := &Watch{cancelChan: make(chan struct{})}
	go watchLoop(w, interval, fetch, f)
	return w
}

func watchLoop[S any](w *Watch, interval time.Duration, fetch func() (S, error),
	f func(S, error)) {
	var last S
	reported := false
	for {
		state, err := fetch()
		select {
		case <-w.cancelChan:
			return
		default:
		}
		if err != nil {
			f(state, err)
		} else if !reported || !reflect.DeepEqual(state, last) {
			reported = true
			last = state
			f(state, nil)
		}
		select {
		case <-time.After(interval):
		case <-w.cancelChan:
			return
		}
	}
}
