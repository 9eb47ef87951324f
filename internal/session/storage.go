// Package session holds processed tables in memory so a later call in the
// same session can ask for the statistics portion via an opaque handle.
package session

import (
	"sync"

	"csvprof/domain/core"
	"csvprof/ports"
)

// DefaultMaxEntries bounds the store; the oldest entry is evicted first.
const DefaultMaxEntries = 128

// Storage is an in-memory TableStore. Handles are uuid-based and never reused.
type Storage struct {
	mu      sync.RWMutex
	entries map[core.TableHandle]*ports.ProcessingContext
	order   []core.TableHandle
	max     int
}

// NewStorage creates a store bounded to DefaultMaxEntries
func NewStorage() *Storage {
	return NewStorageWithLimit(DefaultMaxEntries)
}

// NewStorageWithLimit creates a store with a custom entry bound
func NewStorageWithLimit(max int) *Storage {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Storage{
		entries: make(map[core.TableHandle]*ports.ProcessingContext),
		max:     max,
	}
}

// Put stores a processing context and returns its new handle
func (s *Storage) Put(pc *ports.ProcessingContext) core.TableHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.order) >= s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}

	handle := core.NewTableHandle()
	s.entries[handle] = pc
	s.order = append(s.order, handle)
	return handle
}

// Get returns the context for a handle
func (s *Storage) Get(handle core.TableHandle) (*ports.ProcessingContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pc, ok := s.entries[handle]
	return pc, ok
}

// Delete removes a stored context
func (s *Storage) Delete(handle core.TableHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[handle]; !ok {
		return
	}
	delete(s.entries, handle)
	for i, h := range s.order {
		if h == handle {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored contexts
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
