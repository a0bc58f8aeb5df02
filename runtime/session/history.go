package session

import "sync"

// History is a fixed capacity ring buffer of raw command lines; once full, the
// oldest entry is evicted first.
type History struct {
	entries []string
	start   int
	size    int
	mu      sync.RWMutex
}

// NewHistory creates a history with the supplied capacity (minimum 1)
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{entries: make([]string, capacity)}
}

// Push appends raw, evicting the oldest entry when full
func (h *History) Push(raw string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	capacity := len(h.entries)
	if h.size < capacity {
		h.entries[(h.start+h.size)%capacity] = raw
		h.size++
		return
	}
	h.entries[h.start] = raw
	h.start = (h.start + 1) % capacity
}

// Entries returns a copy ordered oldest first, most recent last
func (h *History) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ret := make([]string, h.size)
	for i := 0; i < h.size; i++ {
		ret[i] = h.entries[(h.start+i)%len(h.entries)]
	}
	return ret
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.size
}

func (h *History) Cap() int {
	return len(h.entries)
}
