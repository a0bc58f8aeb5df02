package system

// Option represents service option
type Option func(s *Service)

// WithApp sets application name and version reported by sysinfo
func WithApp(name, version string) Option {
	return func(s *Service) {
		if name != "" {
			s.appName = name
		}
		if version != "" {
			s.appVersion = version
		}
	}
}

// WithRunner sets the shell runner used by ps
func WithRunner(runner Runner) Option {
	return func(s *Service) {
		s.runner = runner
	}
}

// WithHost sets host information source
func WithHost(host Host) Option {
	return func(s *Service) {
		if host != nil {
			s.host = host
		}
	}
}
