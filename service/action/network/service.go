package network

import (
	"net/http"
	"strings"
	"time"

	"github.com/viant/pixelterm/model/types"
)

const (
	name = "network"

	// DefaultTimeout bounds a network verb
	DefaultTimeout = 10 * time.Second
	// DefaultProbes is the number of ping probes
	DefaultProbes = 4
	// DefaultProbeInterval separates ping probes
	DefaultProbeInterval = 200 * time.Millisecond
	// DefaultPreviewLimit is the number of body runes curl renders
	DefaultPreviewLimit = 2000

	maxBodySize  = 1 << 20
	maxRedirects = 5
)

// Service provides curl and ping verbs
type Service struct {
	client        *http.Client
	dialer        Dialer
	allowPrivate  bool
	timeout       time.Duration
	probes        int
	probeInterval time.Duration
	previewLimit  int
}

// New creates a network service
func New(options ...Option) *Service {
	ret := &Service{
		timeout:       DefaultTimeout,
		probes:        DefaultProbes,
		probeInterval: DefaultProbeInterval,
		previewLimit:  DefaultPreviewLimit,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.dialer == nil {
		ret.dialer = NewDialer(ret.allowPrivate)
	}
	if ret.client == nil {
		ret.client = &http.Client{
			Timeout: ret.timeout,
			Transport: &http.Transport{
				DialContext:         ret.dialer.DialContext,
				TLSHandshakeTimeout: ret.timeout,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}
	}
	return ret
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{Name: "curl", Usage: "curl <url>", Description: "Fetch a URL", Network: true},
		{Name: "ping", Usage: "ping <host[:port]>", Description: "Probe TCP connectivity", Network: true},
	}
}

// Method returns the specified method
func (s *Service) Method(verb string) (types.Executable, error) {
	switch strings.ToLower(verb) {
	case "curl":
		return s.curl, nil
	case "ping":
		return s.ping, nil
	default:
		return nil, types.NewUnknownCommandError(verb)
	}
}
