package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/statecoll"
)

func main() {
	var addr string
	var pathPrefix string
	var verbose bool
	flag.StringVar(&addr, "addr", ":8080", "address to listen on")
	flag.StringVar(&pathPrefix, "path-prefix", "/", "prefix for URL paths")
	flag.BoolVar(&verbose, "verbose", false, "log every mutation")
	flag.Parse()

	if !strings.HasSuffix(pathPrefix, "/") || !strings.HasPrefix(pathPrefix, "/") {
		essentials.Die("path prefix must start and end with a '/' character")
	}

	s := NewServer(pathPrefix, verbose)
	essentials.Must(http.ListenAndServe(addr, s.Handler()))
}

type (
	singlyMux = ContainerMux[statecoll.ListState[string], *statecoll.SinglyLinkedList[string]]
	doublyMux = ContainerMux[statecoll.ListState[string], *statecoll.DoublyLinkedList[string]]
	pqueueMux = ContainerMux[[]statecoll.Item[string], *statecoll.PriorityQueue[string]]
)

type Server struct {
	PathPrefix string
	Singly     *singlyMux
	Doubly     *doublyMux
	PQueues    *pqueueMux
}

// NewServer creates a Server with no containers.
func NewServer(pathPrefix string, verbose bool) *Server {
	s := &Server{
		PathPrefix: pathPrefix,
		Singly: NewContainerMux[statecoll.ListState[string]]("singly",
			func() *statecoll.SinglyLinkedList[string] {
				return statecoll.NewSinglyLinkedList[string]()
			}),
		Doubly: NewContainerMux[statecoll.ListState[string]]("doubly",
			func() *statecoll.DoublyLinkedList[string] {
				return statecoll.NewDoublyLinkedList[string]()
			}),
		PQueues: NewContainerMux[[]statecoll.Item[string]]("pqueue",
			func() *statecoll.PriorityQueue[string] {
				return &statecoll.PriorityQueue[string]{}
			}),
	}
	s.Singly.Verbose = verbose
	s.Doubly.Verbose = verbose
	s.PQueues.Verbose = verbose
	return s
}

// Handler routes every endpoint under s.PathPrefix.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.PathPrefix, s.ServeIndex)
	mux.HandleFunc(s.PathPrefix+"stats", s.ServeStats)
	(&ListHandlers[*statecoll.SinglyLinkedList[string]]{Lists: s.Singly}).
		Register(mux, s.PathPrefix+"singly/")
	(&ListHandlers[*statecoll.DoublyLinkedList[string]]{Lists: s.Doubly}).
		Register(mux, s.PathPrefix+"doubly/")
	(&PriorityQueueHandlers{Queues: s.PQueues}).Register(mux, s.PathPrefix+"pqueue/")
	return mux
}

func (s *Server) ServeIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == s.PathPrefix || r.URL.Path+"/" == s.PathPrefix {
		w.Header().Set("content-type", "text/plain")
		stats := s.Stats()
		for _, st := range stats {
			if st.Name == "" {
				fmt.Fprintf(w, "---- %s (default) ----\n", st.Kind)
			} else {
				fmt.Fprintf(w, "---- %s: %s ----\n", st.Kind, st.Name)
			}
			fmt.Fprintf(w, "     Size: %d\n", st.Size)
			fmt.Fprintf(w, "Mutations: %d\n", st.Mutations)
			fmt.Fprintf(w, "   Recent: %d\n", st.RecentMutations)
		}
		if len(stats) == 0 {
			fmt.Fprint(w, "No active containers.")
		}
	} else {
		w.Header().Set("content-type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintln(w, "<html><body>Page not found</body></html>")
	}
}

func (s *Server) ServeStats(w http.ResponseWriter, r *http.Request) {
	serveObject(w, EncodedList[*statecoll.ContainerStats](s.Stats()))
}

// Stats gets the statistics of every live container of every kind.
func (s *Server) Stats() []*statecoll.ContainerStats {
	res := []*statecoll.ContainerStats{}
	res = append(res, s.Singly.Stats()...)
	res = append(res, s.Doubly.Stats()...)
	res = append(res, s.PQueues.Stats()...)
	return res
}

func serveObject(w http.ResponseWriter, obj interface{}) {
	w.Header().Set("content-type", "application/json")
	WriteJSONObject(w, map[string]interface{}{"data": obj})
}

func serveError(w http.ResponseWriter, err string) {
	w.Header().Set("content-type", "application/json")
	WriteJSONObject(w, map[string]interface{}{"error": err})
}
