package main

import (
	"time"
)

// A RateTracker counts events over a sliding window of the last N seconds.
//
// Bins are reused in a ring: each bin remembers which second it currently
// counts, and is reset the first time a new second maps onto it.
type RateTracker struct {
	binTimes []int64
	counts   []int64
}

// NewRateTracker creates a RateTracker which keeps event counts up to
// historySize seconds in the past.
func NewRateTracker(historySize int) *RateTracker {
	if historySize <= 0 {
		panic("history size must be positive")
	}
	r := &RateTracker{
		binTimes: make([]int64, historySize),
		counts:   make([]int64, historySize),
	}
	for i := range r.binTimes {
		r.binTimes[i] = -1
	}
	return r
}

// HistorySize returns the number of time bins.
func (r *RateTracker) HistorySize() int {
	return len(r.counts)
}

// Add adds the count n to the current second.
func (r *RateTracker) Add(n int64) {
	r.AddAt(time.Now().Unix(), n)
}

// AddAt is like Add, but allows the caller to specify the current time.
func (r *RateTracker) AddAt(curTime, n int64) {
	idx := r.index(curTime)
	if r.binTimes[idx] != curTime {
		r.binTimes[idx] = curTime
		r.counts[idx] = 0
	}
	r.counts[idx] += n
}

// Count retrieves the count over the last t seconds, including the current
// one. The t argument must be at most the history size.
func (r *RateTracker) Count(t int) int64 {
	return r.CountAt(time.Now().Unix(), t)
}

// CountAt is like Count, but allows the caller to specify the current time.
func (r *RateTracker) CountAt(curTime int64, t int) int64 {
	if t > len(r.counts) {
		panic("too many seconds requested")
	}
	var res int64
	for sec := curTime - int64(t) + 1; sec <= curTime; sec++ {
		idx := r.index(sec)
		if r.binTimes[idx] == sec {
			res += r.counts[idx]
		}
	}
	return res
}

// Reset zeros out the counters.
func (r *RateTracker) Reset() {
	for i := range r.counts {
		r.binTimes[i] = -1
		r.counts[i] = 0
	}
}

func (r *RateTracker) index(sec int64) int {
	n := int64(len(r.counts))
	return int(((sec % n) + n) % n)
}
