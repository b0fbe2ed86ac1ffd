package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/unixpickle/statecoll"
)

// ListHandlers serves the endpoints of one kind of list.
type ListHandlers[C statecoll.List[string]] struct {
	Lists *ContainerMux[statecoll.ListState[string], C]
}

// Register adds every list endpoint to mux under prefix.
func (l *ListHandlers[C]) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc(prefix+"insert_first", l.ServeInsertFirst)
	mux.HandleFunc(prefix+"insert_last", l.ServeInsertLast)
	mux.HandleFunc(prefix+"insert_last_batch", l.ServeInsertLastBatch)
	mux.HandleFunc(prefix+"delete_first", l.ServeDeleteFirst)
	mux.HandleFunc(prefix+"delete_last", l.ServeDeleteLast)
	mux.HandleFunc(prefix+"clear", l.ServeClear)
	mux.HandleFunc(prefix+"items", l.ServeItems)
}

func (l *ListHandlers[C]) ServeInsertFirst(w http.ResponseWriter, r *http.Request) {
	l.serveInsert(w, r, func(list C, value string) {
		list.InsertFirst(value)
	})
}

func (l *ListHandlers[C]) ServeInsertLast(w http.ResponseWriter, r *http.Request) {
	l.serveInsert(w, r, func(list C, value string) {
		list.InsertLast(value)
	})
}

func (l *ListHandlers[C]) ServeInsertLastBatch(w http.ResponseWriter, r *http.Request) {
	values, err := readStringArray(r)
	if err != nil {
		serveError(w, err.Error())
		return
	}
	var size int
	l.Lists.Get(containerName(r), func(slot *Slot[statecoll.ListState[string], C]) {
		slot.Update(func() {
			for _, v := range values {
				slot.Container.InsertLast(v)
			}
		})
		size = slot.Container.Len()
	})
	serveObject(w, size)
}

func (l *ListHandlers[C]) ServeDeleteFirst(w http.ResponseWriter, r *http.Request) {
	l.serveDelete(w, r, func(list C) (string, bool) {
		return list.DeleteFirst()
	})
}

func (l *ListHandlers[C]) ServeDeleteLast(w http.ResponseWriter, r *http.Request) {
	l.serveDelete(w, r, func(list C) (string, bool) {
		return list.DeleteLast()
	})
}

func (l *ListHandlers[C]) ServeClear(w http.ResponseWriter, r *http.Request) {
	l.Lists.Get(containerName(r), func(slot *Slot[statecoll.ListState[string], C]) {
		slot.Update(slot.Container.Clear)
	})
	serveObject(w, true)
}

func (l *ListHandlers[C]) ServeItems(w http.ResponseWriter, r *http.Request) {
	var state statecoll.ListState[string]
	l.Lists.Get(containerName(r), func(slot *Slot[statecoll.ListState[string], C]) {
		state = slot.Container.Snapshot()
	})
	serveObject(w, map[string]interface{}{
		"size":   state.Size,
		"values": EncodedList[string](state.Values),
	})
}

func (l *ListHandlers[C]) serveInsert(w http.ResponseWriter, r *http.Request,
	insert func(C, string)) {
	value, ok := formValue(r, "value")
	if !ok {
		serveError(w, "must specify `value` parameter")
		return
	}
	var size int
	l.Lists.Get(containerName(r), func(slot *Slot[statecoll.ListState[string], C]) {
		slot.Update(func() {
			insert(slot.Container, value)
		})
		size = slot.Container.Len()
	})
	serveObject(w, size)
}

func (l *ListHandlers[C]) serveDelete(w http.ResponseWriter, r *http.Request,
	remove func(C) (string, bool)) {
	var value string
	var ok bool
	l.Lists.Get(containerName(r), func(slot *Slot[statecoll.ListState[string], C]) {
		if slot.Container.IsEmpty() {
			return
		}
		slot.Update(func() {
			value, ok = remove(slot.Container)
		})
	})
	serveValue(w, value, ok)
}

// PriorityQueueHandlers serves the priority queue endpoints.
type PriorityQueueHandlers struct {
	Queues *pqueueMux
}

// Register adds every priority queue endpoint to mux under prefix.
func (p *PriorityQueueHandlers) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc(prefix+"enqueue", p.ServeEnqueue)
	mux.HandleFunc(prefix+"enqueue_batch", p.ServeEnqueueBatch)
	mux.HandleFunc(prefix+"dequeue", p.ServeDequeue)
	mux.HandleFunc(prefix+"peek", p.ServePeek)
	mux.HandleFunc(prefix+"clear", p.ServeClear)
	mux.HandleFunc(prefix+"items", p.ServeItems)
}

func (p *PriorityQueueHandlers) ServeEnqueue(w http.ResponseWriter, r *http.Request) {
	value, ok := formValue(r, "value")
	if !ok {
		serveError(w, "must specify `value` parameter")
		return
	}
	priority, err := strconv.Atoi(r.FormValue("priority"))
	if err != nil {
		serveError(w, "invalid `priority` parameter: "+err.Error())
		return
	}
	var size int
	p.Queues.Get(containerName(r), func(slot *Slot[[]statecoll.Item[string], *statecoll.PriorityQueue[string]]) {
		err = slot.Mutate(func() error {
			return slot.Container.Enqueue(value, statecoll.Priority(priority))
		})
		size = slot.Container.Len()
	})
	if err != nil {
		serveError(w, err.Error())
	} else {
		serveObject(w, size)
	}
}

func (p *PriorityQueueHandlers) ServeEnqueueBatch(w http.ResponseWriter, r *http.Request) {
	priority, err := strconv.Atoi(r.URL.Query().Get("priority"))
	if err != nil {
		serveError(w, "invalid `priority` parameter: "+err.Error())
		return
	} else if !statecoll.Priority(priority).Valid() {
		serveError(w, "invalid `priority` requested")
		return
	}
	values, err := readStringArray(r)
	if err != nil {
		serveError(w, err.Error())
		return
	}
	var size int
	p.Queues.Get(containerName(r), func(slot *Slot[[]statecoll.Item[string], *statecoll.PriorityQueue[string]]) {
		err = slot.Mutate(func() error {
			for _, v := range values {
				if err := slot.Container.Enqueue(v, statecoll.Priority(priority)); err != nil {
					return err
				}
			}
			return nil
		})
		size = slot.Container.Len()
	})
	if err != nil {
		serveError(w, err.Error())
	} else {
		serveObject(w, size)
	}
}

func (p *PriorityQueueHandlers) ServeDequeue(w http.ResponseWriter, r *http.Request) {
	var value string
	var ok bool
	p.Queues.Get(containerName(r), func(slot *Slot[[]statecoll.Item[string], *statecoll.PriorityQueue[string]]) {
		if slot.Container.IsEmpty() {
			return
		}
		slot.Update(func() {
			value, ok = slot.Container.Dequeue()
		})
	})
	serveValue(w, value, ok)
}

func (p *PriorityQueueHandlers) ServePeek(w http.ResponseWriter, r *http.Request) {
	var value string
	var ok bool
	p.Queues.Get(containerName(r), func(slot *Slot[[]statecoll.Item[string], *statecoll.PriorityQueue[string]]) {
		value, ok = slot.Container.Peek()
	})
	serveValue(w, value, ok)
}

func (p *PriorityQueueHandlers) ServeClear(w http.ResponseWriter, r *http.Request) {
	p.Queues.Get(containerName(r), func(slot *Slot[[]statecoll.Item[string], *statecoll.PriorityQueue[string]]) {
		slot.Update(slot.Container.Clear)
	})
	serveObject(w, true)
}

func (p *PriorityQueueHandlers) ServeItems(w http.ResponseWriter, r *http.Request) {
	var items []statecoll.Item[string]
	p.Queues.Get(containerName(r), func(slot *Slot[[]statecoll.Item[string], *statecoll.PriorityQueue[string]]) {
		items = slot.Container.Items()
	})
	serveObject(w, EncodedList[statecoll.Item[string]](items))
}

func containerName(r *http.Request) string {
	return r.URL.Query().Get("name")
}

func formValue(r *http.Request, key string) (string, bool) {
	if err := r.ParseForm(); err != nil {
		return "", false
	}
	values, ok := r.Form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func readStringArray(r *http.Request) ([]string, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func serveValue(w http.ResponseWriter, value string, ok bool) {
	if ok {
		serveObject(w, map[string]interface{}{"value": value})
	} else {
		serveObject(w, map[string]interface{}{"done": true})
	}
}
