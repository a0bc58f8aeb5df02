package pixelterm

import (
	"log/slog"
	"net/http"

	"github.com/viant/afs"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/service/action/system"
	"github.com/viant/pixelterm/service/event"
)

// Option customises the Service
type Option func(s *Service)

// WithConfig sets the configuration, DefaultConfig is used otherwise
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
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

// WithEventService sets the event service receiving command records; the
// caller owns it and closes it.
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.events = service
	}
}

// WithHostRunner sets the runner used for the process list
func WithHostRunner(runner system.Runner) Option {
	return func(s *Service) {
		s.runner = runner
	}
}

// WithHost sets the host information source
func WithHost(host system.Host) Option {
	return func(s *Service) {
		s.host = host
	}
}

// WithHTTPClient sets the client used by curl; it bypasses the private address guard
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

// WithFileSystem sets the afs service backing fs verbs
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithAsk sets the approval function used when the policy mode is ask
func WithAsk(ask policy.AskFunc) Option {
	return func(s *Service) {
		s.ask = ask
	}
}

// WithTracing enables OpenTelemetry spans written to outputFile, or stderr
// when outputFile is empty.
func WithTracing(outputFile string) Option {
	return func(s *Service) {
		s.tracing = &TracingConfig{Enabled: true, File: outputFile}
	}
}

// WithExtensionServices registers additional verb groups; their verbs must not
// clash with built-in ones.
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = append(s.extensionServices, services...)
	}
}
