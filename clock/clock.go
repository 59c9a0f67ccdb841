// Package clock is a small frame loop: callbacks registered by id run once
// per tick, highest priority first, with the tick's delta in milliseconds.
package clock

import (
	"context"
	"sort"
	"time"
)

// Callback receives the tick delta in milliseconds.
type Callback func(delta float64)

type entry struct {
	id       string
	priority int
	seq      int
	cb       Callback
}

// Loop is not safe for concurrent use; drive it from one goroutine.
type Loop struct {
	entries []entry
	seq     int
	running bool
	elapsed float64
}

func New() *Loop {
	return &Loop{}
}

// Add registers cb under id. Re-adding an id replaces the previous callback.
// Higher priorities run first; equal priorities keep insertion order.
func (l *Loop) Add(cb Callback, id string, priority int) {
	l.Remove(id)
	l.seq++
	entries := make([]entry, len(l.entries), len(l.entries)+1)
	copy(entries, l.entries)
	entries = append(entries, entry{id: id, priority: priority, seq: l.seq, cb: cb})
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})
	l.entries = entries
}

// Remove drops the callback registered under id and reports whether it existed.
func (l *Loop) Remove(id string) bool {
	for i, e := range l.entries {
		if e.id != id {
			continue
		}
		entries := make([]entry, 0, len(l.entries)-1)
		entries = append(entries, l.entries[:i]...)
		entries = append(entries, l.entries[i+1:]...)
		l.entries = entries
		return true
	}
	return false
}

func (l *Loop) Start() {
	l.running = true
}

func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) Len() int {
	return len(l.entries)
}

// Elapsed is the sum of all ticked deltas.
func (l *Loop) Elapsed() float64 {
	return l.elapsed
}

// Tick runs every callback once. Negative deltas are treated as zero. A
// stopped loop ignores ticks. Callbacks added or removed during a tick take
// effect on the next one.
func (l *Loop) Tick(delta float64) {
	if !l.running {
		return
	}
	if delta < 0 {
		delta = 0
	}
	l.elapsed += delta
	for _, e := range l.entries {
		e.cb(delta)
	}
}

// Run ticks on interval until ctx is done, measuring real elapsed time
// between ticks. All callbacks run on the calling goroutine.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	l.Start()
	defer l.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.Tick(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now
		}
	}
}
