package pipeline

import "sync"

// CancellationSet holds the ids of jobs asked to stop. A job only ever adds
// or removes its own id.
type CancellationSet struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewCancellationSet() *CancellationSet {
	return &CancellationSet{
		ids: make(map[string]struct{}),
	}
}

func (s *CancellationSet) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids[id] = struct{}{}
}

func (s *CancellationSet) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ids, id)
}

func (s *CancellationSet) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[id]
	return ok
}

func (s *CancellationSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}
