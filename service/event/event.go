package event

import (
	"time"

	"github.com/viant/pixelterm/internal/clock"
)

const (
	// TypeExecuted is emitted after a command completes
	TypeExecuted = "executed"
	// TypeOpened is emitted when a session is opened
	TypeOpened = "opened"
	// TypeClosed is emitted when a session is closed
	TypeClosed = "closed"
)

// Context describes where an event originated
type Context struct {
	SessionID   string `json:"sessionID"`
	EventType   string `json:"eventType"`
	Service     string `json:"service,omitempty"`
	Verb        string `json:"verb,omitempty"`
	TimeTakenMs int    `json:"timeTakenMs,omitempty"`
}

type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
