package types

import "time"

// Record describes one executed command; it is published as an event and
// persisted by the journal.
type Record struct {
	SessionID  string        `json:"sessionId"`
	User       string        `json:"user,omitempty"`
	Line       string        `json:"line"`
	Verb       string        `json:"verb"`
	Service    string        `json:"service,omitempty"`
	Outcome    string        `json:"outcome"`
	Output     string        `json:"output,omitempty"`
	Directory  string        `json:"directory"`
	Duration   time.Duration `json:"duration"`
	ExecutedAt time.Time     `json:"executedAt"`
}
