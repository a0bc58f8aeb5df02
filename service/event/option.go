package event

import (
	"log/slog"

	"github.com/viant/pixelterm/service/messaging/memory"
)

type Option func(s *Service)

// WithQueueConfig sets the memory queue configuration per queue name
func WithQueueConfig(newConfig func(name string) memory.Config) Option {
	return func(s *Service) {
		s.newQueueConfig = newConfig
	}
}

// WithLogger sets the logger used by listeners
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
