package fs

import "github.com/viant/afs"

// Option represents service option
type Option func(s *Service)

// WithFileSystem sets the afs service
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithPreviewLimit sets the cat truncation threshold in runes
func WithPreviewLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.previewLimit = limit
		}
	}
}

// WithFindLimit sets the maximum number of find results
func WithFindLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.findLimit = limit
		}
	}
}

// WithMedia sets the media extension table
func WithMedia(media *Media) Option {
	return func(s *Service) {
		if media != nil {
			s.media = media
		}
	}
}
