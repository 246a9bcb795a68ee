package preview

import "sync"

// StorySelector tracks which project's story panel is expanded. At most one
// panel is open at a time.
type StorySelector struct {
	mu     sync.Mutex
	active string
}

// Toggle collapses the panel of id when it is open, otherwise opens it and
// closes any other. It returns the expanded id, or "" when none is.
func (s *StorySelector) Toggle(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == id {
		s.active = ""
	} else {
		s.active = id
	}
	return s.active
}

// Collapse closes any open panel.
func (s *StorySelector) Collapse() {
	s.mu.Lock()
	s.active = ""
	s.mu.Unlock()
}

// Expanded returns the id of the open panel, or "".
func (s *StorySelector) Expanded() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
