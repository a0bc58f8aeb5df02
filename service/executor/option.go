package executor

import (
	"log/slog"
	"time"

	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/service/event"
)

// Option is used to customise the executor instance.
type Option func(*Service)

// WithPolicy sets the default verb policy; a policy attached to ctx takes precedence
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithEvents sets the event service receiving a record per executed command
func WithEvents(events *event.Service) Option {
	return func(s *Service) {
		s.events = events
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeouts sets handler deadlines for regular and network verbs
func WithTimeouts(command, network time.Duration) Option {
	return func(s *Service) {
		if command > 0 {
			s.commandTimeout = command
		}
		if network > 0 {
			s.networkTimeout = network
		}
	}
}
