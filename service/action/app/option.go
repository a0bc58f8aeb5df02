package app

// Option represents service option
type Option func(s *Service)

// WithConfig sets app settings, empty fields keep their defaults
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config == nil {
			return
		}
		config.Merge(DefaultConfig())
		s.config = config
	}
}

// WithCatalog sets the help catalog source
func WithCatalog(catalog Catalog) Option {
	return func(s *Service) {
		s.catalog = catalog
	}
}
