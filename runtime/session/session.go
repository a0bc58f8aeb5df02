package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viant/pixelterm/internal/clock"
	"github.com/viant/pixelterm/internal/idgen"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/progress"
	"github.com/viant/pixelterm/service/sandbox"
)

// DefaultHistorySize is used when no capacity was configured
const DefaultHistorySize = 100

// DirListener is invoked after the current directory changes. It runs
// synchronously while the command that changed the directory is in flight.
type DirListener func(s *Session, oldDir, newDir string)

// Session represents one interactive terminal: a confined root, a current
// directory and a bounded history. Commands are serialized with Acquire/Release.
type Session struct {
	id          string
	user        string
	root        string
	currentDir  string
	startedAt   time.Time
	historySize int
	seed        bool
	history     *History
	stats       *progress.Progress
	listeners   []DirListener
	slot        chan struct{}
	mu          sync.RWMutex
}

var _ types.Terminal = (*Session)(nil)

// New creates a session confined to root; root must be an existing directory.
func New(root string, options ...Option) (*Session, error) {
	canonical, err := sandbox.Canonical(root)
	if err != nil {
		return nil, err
	}
	ret := &Session{
		root:        canonical,
		currentDir:  canonical,
		startedAt:   clock.Now(),
		historySize: DefaultHistorySize,
		slot:        make(chan struct{}, 1),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.id == "" {
		ret.id = idgen.New()
	}
	ret.history = NewHistory(ret.historySize)
	ret.stats = progress.New(ret.id)
	if ret.seed {
		if err = Seed(canonical); err != nil {
			return nil, fmt.Errorf("failed to seed %v: %w", canonical, err)
		}
	}
	return ret, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) User() string { return s.user }

func (s *Session) Root() string { return s.root }

func (s *Session) StartedAt() time.Time { return s.startedAt }

// CurrentDir returns absolute current directory
func (s *Session) CurrentDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDir
}

// SetCurrentDir changes the current directory; dir must come from the sandbox resolver.
func (s *Session) SetCurrentDir(dir string) {
	if !sandbox.Contains(s.root, dir) {
		return
	}
	s.mu.Lock()
	old := s.currentDir
	s.currentDir = dir
	s.mu.Unlock()
	for _, fn := range s.listeners {
		fn(s, old, dir)
	}
}

// PushHistory records a raw command line
func (s *Session) PushHistory(raw string) {
	s.history.Push(raw)
}

// History returns the recorded commands, most recent last
func (s *Session) History() []string {
	return s.history.Entries()
}

// Stats returns the session command counters
func (s *Session) Stats() *progress.Progress {
	return s.stats
}

// Acquire reserves the session for one command; it blocks until the session
// is free or ctx is done.
func (s *Session) Acquire(ctx context.Context) error {
	select {
	case s.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees the session reserved by Acquire
func (s *Session) Release() {
	select {
	case <-s.slot:
	default:
	}
}
