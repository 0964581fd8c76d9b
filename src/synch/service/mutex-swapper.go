package synch_service

import "sync"

// MutexSwapper hands out one mutex per key so unrelated keys never contend.
// Used to serialize status callbacks racing on the same wa_message_id and
// channel creation per tenant scope.
type MutexSwapper[K comparable] struct {
	mutexes map[K]*keyedMutex
	mu      sync.Mutex
}

type keyedMutex struct {
	mu   sync.Mutex
	refs int
}

func CreateMutexSwapper[K comparable]() *MutexSwapper[K] {
	return &MutexSwapper[K]{
		mutexes: make(map[K]*keyedMutex),
	}
}

// Lock acquires the mutex for key, creating it on first use.
func (s *MutexSwapper[K]) Lock(key K) {
	s.mu.Lock()
	m, ok := s.mutexes[key]
	if !ok {
		m = &keyedMutex{}
		s.mutexes[key] = m
	}
	m.refs++
	s.mu.Unlock()

	m.mu.Lock()
}

// Unlock releases the mutex for key and drops it once nobody waits on it.
func (s *MutexSwapper[K]) Unlock(key K) {
	s.mu.Lock()
	m, ok := s.mutexes[key]
	if ok {
		m.refs--
		if m.refs == 0 {
			delete(s.mutexes, key)
		}
	}
	s.mu.Unlock()

	if ok {
		m.mu.Unlock()
	}
}
