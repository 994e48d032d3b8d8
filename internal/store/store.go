// Package store is the persistence adapter between the in-memory
// checklist collection and a kv backend. It owns one storage key:
// values are serialized to JSON on write (timestamps become ISO-8601
// strings) and revived on read, unreadable state degrades to a fallback
// value instead of failing, and writes from other processes are adopted
// wholesale through a change subscription (last writer wins, no merge).
package store

import (
	"encoding/json"
	"sync"
	"time"

	"listo/internal/kv"
	"listo/internal/model"
)

// DefaultKey is the storage key the checklist collection lives under.
const DefaultKey = "checklists"

// DefaultPollInterval paces the cross-process change watcher.
const DefaultPollInterval = 500 * time.Millisecond

type Store struct {
	db      kv.KV
	key     string
	watcher *kv.Watcher

	mu    sync.RWMutex
	raw   string
	lists model.Collection
	subs  map[int]func(model.Collection)
	next  int

	closed bool
	done   chan struct{}
}

// Open reads the collection stored under key, falling back to initial
// when the key is absent or its value cannot be parsed, and starts
// watching the key for writes from other processes.
func Open(db kv.KV, key string, initial model.Collection, pollEvery time.Duration) *Store {
	if pollEvery <= 0 {
		pollEvery = DefaultPollInterval
	}
	s := &Store{
		db:   db,
		key:  key,
		subs: make(map[int]func(model.Collection)),
		done: make(chan struct{}),
	}

	s.lists = initial
	raw, ok, err := db.Get(key)
	seen := err == nil && ok
	if seen {
		var lists model.Collection
		if jsonErr := json.Unmarshal([]byte(raw), &lists); jsonErr == nil {
			s.raw = raw
			s.lists = lists
		}
	}

	// The watcher's baseline is the exact value read above, so a write
	// landing in between is reported rather than silently absorbed.
	s.watcher = kv.Watch(db, key, pollEvery, raw, seen)
	go s.dispatch()
	return s
}

// Lists returns the current collection. Callers must treat it as
// read-only; mutations go through Set or Update.
func (s *Store) Lists() model.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lists
}

// Set persists lists as the new current collection.
func (s *Store) Set(lists model.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.commit(lists)
}

// Update applies a pure function to the current collection and
// persists the result. Reading and writing happen under one lock, so
// the function never sees a stale value.
func (s *Store) Update(fn func(model.Collection) model.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.commit(fn(s.lists))
}

// Subscribe registers fn to run whenever another process replaces the
// stored collection. The returned cancel releases the subscription.
func (s *Store) Subscribe(fn func(model.Collection)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close stops the change watcher and waits for in-flight notifications
// to finish. The store must not be used afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.watcher.Close()
	<-s.done
}

// commit serializes and stores lists, then adopts them in memory.
// Callers hold the write lock.
func (s *Store) commit(lists model.Collection) error {
	if lists == nil {
		lists = model.Collection{} // persist "[]", not "null"
	}
	b, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return err
	}
	raw := string(b)

	// Mark before writing so the watcher never mistakes our own write
	// for an external one.
	s.watcher.Mark(raw)
	if err := s.db.Set(s.key, raw); err != nil {
		s.watcher.Mark(s.raw)
		return err
	}

	s.raw = raw
	s.lists = lists
	return nil
}

// dispatch adopts externally written values. An unparsable external
// value is swallowed and the current value retained.
func (s *Store) dispatch() {
	defer close(s.done)
	for ev := range s.watcher.Events() {
		var lists model.Collection
		if err := json.Unmarshal([]byte(ev.Raw), &lists); err != nil {
			continue
		}

		s.mu.Lock()
		s.raw = ev.Raw
		s.lists = lists
		subs := make([]func(model.Collection), 0, len(s.subs))
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
		s.mu.Unlock()

		for _, fn := range subs {
			fn(lists)
		}
	}
}

func (s *Store) mustBeOpen() {
	if s.closed {
		panic("store: use after Close")
	}
}
