package progress

import (
	"sync"
	"time"

	"github.com/viant/pixelterm/internal/clock"
)

// Delta represents an incremental counter change emitted by the executor.
type Delta struct {
	Executed int
	Failed   int
	Signals  int
	Timeouts int
	Unknown  int
}

// Counters is a point in time copy of session counters
type Counters struct {
	SessionID string    `json:"sessionId"`
	StartedAt time.Time `json:"startedAt"`
	LastAt    time.Time `json:"lastAt,omitempty"`
	Executed  int       `json:"executed"`
	Failed    int       `json:"failed"`
	Signals   int       `json:"signals"`
	Timeouts  int       `json:"timeouts"`
	Unknown   int       `json:"unknown"`
}

// Progress keeps aggregated command counters of a single session. It is safe
// for concurrent use.
type Progress struct {
	mux      sync.Mutex
	counters Counters
}

// New creates a tracker
func New(sessionID string) *Progress {
	return &Progress{counters: Counters{SessionID: sessionID, StartedAt: clock.Now()}}
}

// Update applies the supplied delta
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	p.counters.Executed += d.Executed
	p.counters.Failed += d.Failed
	p.counters.Signals += d.Signals
	p.counters.Timeouts += d.Timeouts
	p.counters.Unknown += d.Unknown
	p.counters.LastAt = clock.Now()
}

// Snapshot returns a copy of the counters
func (p *Progress) Snapshot() Counters {
	if p == nil {
		return Counters{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.counters
}
