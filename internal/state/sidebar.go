package state

import "sync"

type SidebarStore interface {
	Open() bool
	SetOpen(bool)
	Toggle()
}

type sidebarStore struct {
	mu   sync.Mutex
	open bool
}

func NewSidebarStore() SidebarStore {
	return &sidebarStore{}
}

func (s *sidebarStore) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *sidebarStore) SetOpen(open bool) {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
}

func (s *sidebarStore) Toggle() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}
