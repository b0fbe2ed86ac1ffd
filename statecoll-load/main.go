// Command statecoll-load appends newline-separated values from standard
// input to a list or priority queue on a statecoll server.
//
// Values are sent in batches, and each batch is applied atomically, so an
// interrupted load leaves a prefix of the input in the container.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/statecoll"
)

func main() {
	var host string
	var kind string
	var name string
	var priority int
	var bufferSize int
	flag.StringVar(&host, "host", "", "server URL")
	flag.StringVar(&kind, "kind", "doubly", "container kind (singly, doubly, or pqueue)")
	flag.StringVar(&name, "name", "", "container name")
	flag.IntVar(&priority, "priority", int(statecoll.PriorityNormal),
		"priority of loaded values (pqueue only)")
	flag.IntVar(&bufferSize, "buffer-size", 4096, "values per batch")
	flag.Parse()

	if host == "" {
		essentials.Die("Must provide -host. See -help.")
	}
	if bufferSize <= 0 {
		essentials.Die("Buffer size must be positive.")
	}

	client, err := statecoll.NewClient(host)
	essentials.Must(err)

	var pushBatch func([]string) (int, error)
	switch kind {
	case string(statecoll.SinglyList), string(statecoll.DoublyList):
		pushBatch = client.List(statecoll.ListKind(kind), name).InsertLastBatch
	case "pqueue":
		if !statecoll.Priority(priority).Valid() {
			essentials.Die("Priority must be between 0 and", int(statecoll.MaxPriority))
		}
		queue := client.PriorityQueue(name)
		pushBatch = func(values []string) (int, error) {
			return queue.EnqueueBatch(values, statecoll.Priority(priority))
		}
	default:
		essentials.Die("Unknown container kind:", kind)
	}

	loaded := 0
	batch := make([]string, 0, bufferSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		size, err := pushBatch(batch)
		if err != nil {
			log.Fatalln("ERROR pushing batch:", err)
		}
		loaded += len(batch)
		batch = batch[:0]
		log.Printf("Current status: loaded %d values (container size %d)", loaded, size)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		batch = append(batch, scanner.Text())
		if len(batch) == bufferSize {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalln("ERROR reading input:", err)
	}
	flush()
	log.Println("Input has been exhausted.")
}
