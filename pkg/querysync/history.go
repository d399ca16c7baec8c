package querysync

import "sync"

// History is an in-memory location stack.
type History struct {
	mu      sync.Mutex
	entries []string
}

// NewHistory creates a History positioned at initial.
func NewHistory(initial string) *History {
	return &History{entries: []string{initial}}
}

// Push adds a new entry.
func (h *History) Push(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, url)
}

// Replace overwrites the current entry.
func (h *History) Replace(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		h.entries = append(h.entries, url)
		return
	}
	h.entries[len(h.entries)-1] = url
}

// Back drops the current entry and returns the previous one. The first entry is never dropped.
func (h *History) Back() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) > 1 {
		h.entries = h.entries[:len(h.entries)-1]
	}
	return h.currentLocked()
}

// Current returns the current entry.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentLocked()
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) currentLocked() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}
