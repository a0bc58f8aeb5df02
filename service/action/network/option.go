package network

import (
	"net/http"
	"time"
)

// Option represents service option
type Option func(s *Service)

// WithAllowPrivate allows loopback and private destinations
func WithAllowPrivate(allow bool) Option {
	return func(s *Service) {
		s.allowPrivate = allow
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom http client; it bypasses the private address guard
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithDialer sets the dialer used by ping and the default http client
func WithDialer(dialer Dialer) Option {
	return func(s *Service) {
		s.dialer = dialer
	}
}

// WithProbes sets ping probe count and interval
func WithProbes(count int, interval time.Duration) Option {
	return func(s *Service) {
		if count > 0 {
			s.probes = count
		}
		if interval >= 0 {
			s.probeInterval = interval
		}
	}
}

// WithPreviewLimit sets the body truncation threshold in runes
func WithPreviewLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.previewLimit = limit
		}
	}
}
