package kv

import (
	"sync"
	"time"
)

// Event reports that a key's raw value changed in another process.
type Event struct {
	Key string
	Raw string
}

// Watcher polls one key and emits an Event whenever the stored value
// differs from the last value this process saw. Own writes are
// announced via Mark so they do not echo back as external changes.
type Watcher struct {
	kv       KV
	key      string
	interval time.Duration

	mu   sync.Mutex
	last string
	seen bool

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

// Watch starts polling key on kv every interval. baseline is the value
// the caller last read (seen reports whether a value existed); the
// watcher does not read one itself, so a write landing between the
// caller's read and Watch is still reported.
func Watch(kv KV, key string, interval time.Duration, baseline string, seen bool) *Watcher {
	w := &Watcher{
		kv:       kv,
		key:      key,
		interval: interval,
		last:     baseline,
		seen:     seen,
		events:   make(chan Event, 4),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

// Events delivers external changes. The channel is closed on Close.
func (w *Watcher) Events() <-chan Event { return w.events }

// Mark records raw as the latest value written by this process.
func (w *Watcher) Mark(raw string) {
	w.mu.Lock()
	w.last, w.seen = raw, true
	w.mu.Unlock()
}

// Close stops polling and waits for the poll goroutine to exit.
func (w *Watcher) Close() {
	close(w.done)
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer close(w.events)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-t.C:
		}

		raw, ok, err := w.kv.Get(w.key)
		if err != nil || !ok {
			continue
		}
		w.mu.Lock()
		changed := !w.seen || raw != w.last
		if changed {
			w.last, w.seen = raw, true
		}
		w.mu.Unlock()
		if !changed {
			continue
		}

		select {
		case w.events <- Event{Key: w.key, Raw: raw}:
		case <-w.done:
			return
		}
	}
}
