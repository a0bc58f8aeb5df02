package system

import (
	"strings"

	"github.com/viant/pixelterm/model/types"
)

const name = "system"

// Service provides read only host and session information verbs
type Service struct {
	appName    string
	appVersion string
	runner     Runner
	host       Host
}

// New creates a system information service
func New(options ...Option) *Service {
	ret := &Service{
		appName:    "Pixel Pusher OS",
		appVersion: "2.0.0",
		host:       newHost(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.runner == nil {
		ret.runner = NewShellRunner()
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
		{Name: "sysinfo", Usage: "sysinfo", Description: "Show system information"},
		{Name: "uptime", Usage: "uptime", Description: "Show system and session uptime"},
		{Name: "ps", Usage: "ps", Description: "Show top processes by CPU"},
		{Name: "df", Usage: "df", Description: "Show disk usage"},
		{Name: "free", Usage: "free", Description: "Show memory usage"},
		{Name: "whoami", Usage: "whoami", Description: "Show current user"},
		{Name: "date", Usage: "date", Description: "Show current date and time"},
		{Name: "time", Usage: "time", Description: "Show current time"},
	}
}

// Method returns the specified method
func (s *Service) Method(verb string) (types.Executable, error) {
	switch strings.ToLower(verb) {
	case "sysinfo":
		return s.sysinfo, nil
	case "uptime":
		return s.uptime, nil
	case "ps":
		return s.processes, nil
	case "df":
		return s.diskFree, nil
	case "free":
		return s.memoryFree, nil
	case "whoami":
		return s.whoami, nil
	case "date":
		return s.date, nil
	case "time":
		return s.time, nil
	default:
		return nil, types.NewUnknownCommandError(verb)
	}
}

// Ensure Service implements types.Service
var _ types.Service = (*Service)(nil)

func unavailable(what string, err error) string {
	return what + " unavailable: " + err.Error()
}
