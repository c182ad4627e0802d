package config

import (
	"sync"
	"sync/atomic"
)

// Watcher is notified after a config update has been committed. The changed
// map carries the keys that differ from the previous snapshot.
type Watcher func(newCfg *Config, changed map[string]bool)

// Validator inspects a pending update before it is committed. A non-nil
// error rejects the whole update.
type Validator func(newCfg *Config, changed map[string]bool) error

// Store holds the live configuration snapshot. Reads are lock-free; updates
// go through UpdateValidated so a bad remote push can never half-apply.
type Store struct {
	v  atomic.Value // *Config
	mu sync.Mutex

	watchers   map[int]Watcher
	validators map[int]Validator
	nextID     int
}

func NewStore(cfg *Config) *Store {
	s := &Store{
		watchers:   make(map[int]Watcher),
		validators: make(map[int]Validator),
	}
	s.v.Store(cfg)
	return s
}

// Get returns the current snapshot. Callers must not mutate it.
func (s *Store) Get() *Config {
	return s.v.Load().(*Config)
}

// Update commits newCfg unconditionally and notifies every watcher.
// Notification order is unspecified. Prefer UpdateValidated.
func (s *Store) Update(newCfg *Config, changed map[string]bool) {
	s.v.Store(newCfg)
	for _, w := range s.snapshotWatchers() {
		w(newCfg, changed)
	}
}

// Watch registers w and returns a cancel func that unregisters it.
func (s *Store) Watch(w Watcher) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = w
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// AddValidator registers v and returns a cancel func that unregisters it.
func (s *Store) AddValidator(v Validator) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.validators[id] = v
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.validators, id)
		s.mu.Unlock()
	}
}

// UpdateValidated runs every validator against the pending config and commits
// only when all pass. Returns whether the update was applied.
func (s *Store) UpdateValidated(newCfg *Config, changed map[string]bool) bool {
	s.mu.Lock()
	vals := make([]Validator, 0, len(s.validators))
	for _, v := range s.validators {
		vals = append(vals, v)
	}
	s.mu.Unlock()

	for _, v := range vals {
		if err := v(newCfg, changed); err != nil {
			return false
		}
	}
	s.Update(newCfg, changed)
	return true
}

func (s *Store) snapshotWatchers() []Watcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws := make([]Watcher, 0, len(s.watchers))
	for _, w := range s.watchers {
		ws = append(ws, w)
	}
	return ws
}

// cloneConfig shallow-copies a snapshot so a watcher-driven update never
// mutates the config other goroutines are reading.
func cloneConfig(in *Config) *Config {
	out := *in
	return &out
}
