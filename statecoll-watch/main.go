// Command statecoll-watch logs every change to a container on a statecoll
// server, and periodically logs the server's overall mutation rate.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/statecoll"
)

func main() {
	var host string
	var kind string
	var name string
	var interval time.Duration
	var rateInterval time.Duration
	flag.StringVar(&host, "host", "", "server URL")
	flag.StringVar(&kind, "kind", "doubly", "container kind (singly, doubly, or pqueue)")
	flag.StringVar(&name, "name", "", "container name")
	flag.DurationVar(&interval, "interval", time.Second, "time between polls")
	flag.DurationVar(&rateInterval, "rate-interval", time.Minute, "time between rate reports")
	flag.Parse()

	if host == "" {
		essentials.Die("Must provide -host argument. See -help.")
	}

	client, err := statecoll.NewClient(host)
	essentials.Must(err)

	var watch *statecoll.Watch
	switch kind {
	case string(statecoll.SinglyList), string(statecoll.DoublyList):
		list := client.List(statecoll.ListKind(kind), name)
		watch = list.Watch(interval, func(s *statecoll.ListState[string], err error) {
			if err != nil {
				log.Println("ERROR polling list:", err)
			} else {
				log.Printf("list (%d): %q", s.Size, s.Values)
			}
		})
	case "pqueue":
		queue := client.PriorityQueue(name)
		watch = queue.Watch(interval, func(items []statecoll.Item[string], err error) {
			if err != nil {
				log.Println("ERROR polling queue:", err)
			} else {
				log.Printf("queue (%d): %v", len(items), items)
			}
		})
	default:
		essentials.Die("Unknown container kind:", kind)
	}
	defer watch.Cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case <-interrupt:
			return
		case <-time.After(rateInterval):
		}
		stats, err := client.Stats()
		if err != nil {
			log.Println("ERROR fetching stats:", err)
			continue
		}
		var recent int64
		for _, s := range stats {
			recent += s.RecentMutations
		}
		log.Printf("mutation rate: %.03f mutations/second over the last minute",
			float64(recent)/60)
	}
}
