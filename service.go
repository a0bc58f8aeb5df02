package pixelterm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/viant/afs"
	"github.com/viant/pixelterm/internal/clock"
	"github.com/viant/pixelterm/internal/logs"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/progress"
	"github.com/viant/pixelterm/runtime/session"
	"github.com/viant/pixelterm/service/action/app"
	"github.com/viant/pixelterm/service/action/fs"
	"github.com/viant/pixelterm/service/action/network"
	"github.com/viant/pixelterm/service/action/system"
	"github.com/viant/pixelterm/service/dao"
	"github.com/viant/pixelterm/service/dao/criteria"
	"github.com/viant/pixelterm/service/dao/store"
	"github.com/viant/pixelterm/service/event"
	"github.com/viant/pixelterm/service/executor"
	"github.com/viant/pixelterm/service/registry"
	"github.com/viant/pixelterm/service/sandbox"
	"github.com/viant/pixelterm/tracing"
)

const tracingServiceName = "pixelterm"

// ErrUnknownSession is returned for session ids that were never opened or were closed
var ErrUnknownSession = errors.New("unknown session")

// Service is the interpreter façade: it owns the verb registry, the executor
// and the open sessions.
type Service struct {
	config            *Config
	fs                afs.Service
	logger            *slog.Logger
	events            *event.Service
	ownEvents         bool
	runner            system.Runner
	host              system.Host
	httpClient        *http.Client
	ask               policy.AskFunc
	tracing           *TracingConfig
	extensionServices []types.Service
	registry          *registry.Registry
	executor          *executor.Service
	sessions          *store.MemoryStore[string, session.Session]
}

func (s *Service) init() error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.tracing == nil && s.config.Tracing.Enabled {
		s.tracing = &s.config.Tracing
	}
	if s.tracing != nil && s.tracing.Enabled {
		if err := tracing.Init(tracingServiceName, s.appConfig().Version, s.tracing.File); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	if s.events == nil {
		s.events = event.New(event.WithLogger(s.logger))
		s.ownEvents = true
	}

	services := []types.Service{
		fs.New(
			fs.WithFileSystem(s.fs),
			fs.WithPreviewLimit(s.config.PreviewLimit),
			fs.WithFindLimit(s.config.FindLimit),
			fs.WithMedia(s.config.Media),
		),
		system.New(s.systemOptions()...),
		app.New(
			app.WithConfig(s.appConfig()),
			app.WithCatalog(func() []*registry.Group { return s.registry.Groups() }),
		),
		network.New(s.networkOptions()...),
	}
	services = append(services, s.extensionServices...)
	var err error
	if s.registry, err = registry.New(services...); err != nil {
		return err
	}

	verbPolicy := policy.FromConfig(s.config.Policy)
	if verbPolicy != nil {
		verbPolicy.Ask = s.ask
	}
	s.executor = executor.New(s.registry,
		executor.WithPolicy(verbPolicy),
		executor.WithEvents(s.events),
		executor.WithLogger(s.logger),
		executor.WithTimeouts(s.config.CommandTimeout, s.config.Network.Timeout),
	)
	s.sessions = store.NewMemoryStore[string, session.Session](
		func(sess *session.Session) string { return sess.ID() },
		func(sess *session.Session, parameters []*dao.Parameter) bool {
			return criteria.Match("User", sess.User(), parameters)
		})
	return nil
}

func (s *Service) appConfig() *app.Config {
	if s.config.App == nil {
		s.config.App = app.DefaultConfig()
	}
	return s.config.App
}

func (s *Service) systemOptions() []system.Option {
	config := s.appConfig()
	options := []system.Option{system.WithApp(config.Name, config.Version)}
	if s.runner != nil {
		options = append(options, system.WithRunner(s.runner))
	}
	if s.host != nil {
		options = append(options, system.WithHost(s.host))
	}
	return options
}

func (s *Service) networkOptions() []network.Option {
	options := []network.Option{
		network.WithAllowPrivate(s.config.Network.AllowPrivate),
		network.WithTimeout(s.config.Network.Timeout),
		network.WithPreviewLimit(s.config.PreviewLimit),
		network.WithProbes(s.config.Network.Probes, network.DefaultProbeInterval),
	}
	if s.httpClient != nil {
		options = append(options, network.WithHTTPClient(s.httpClient))
	}
	return options
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Registry returns the verb registry
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// Open creates a session confined to rootDir, the configured root when empty.
func (s *Service) Open(ctx context.Context, rootDir string, opts ...session.Option) (*session.Session, error) {
	if rootDir == "" {
		rootDir = s.config.RootDir
	}
	if rootDir == "" {
		return nil, fmt.Errorf("root directory was empty")
	}
	options := []session.Option{
		session.WithHistorySize(s.config.HistorySize),
		session.WithSeed(s.config.Seed),
		session.WithListeners(s.directoryChanged),
	}
	if s.config.User != "" {
		options = append(options, session.WithUser(s.config.User))
	}
	sess, err := session.New(rootDir, append(options, opts...)...)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.InfoContext(logs.WithSession(ctx, sess.ID()), "session opened", "root", sess.Root(), "user", sess.User())
	s.notify(ctx, sess, event.TypeOpened)
	return sess, nil
}

func (s *Service) directoryChanged(sess *session.Session, oldDir, newDir string) {
	s.logger.Debug("directory changed", "session", sess.ID(),
		"from", sandbox.Virtual(sess.Root(), oldDir), "to", sandbox.Virtual(sess.Root(), newDir))
}

// Session returns an open session
func (s *Service) Session(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSession, sessionID)
		}
		return nil, err
	}
	return sess, nil
}

// Sessions lists open sessions, optionally limited to the given users
func (s *Service) Sessions(ctx context.Context, users ...string) ([]*session.Session, error) {
	if len(users) == 0 {
		return s.sessions.List(ctx)
	}
	return s.sessions.List(ctx, dao.NewParameter("User", users...))
}

// Execute runs one input line in the session and returns the wire encoded output
func (s *Service) Execute(ctx context.Context, sessionID, line string) (string, error) {
	resp, err := s.Run(ctx, sessionID, line)
	if err != nil {
		return "", err
	}
	return response.Encode(resp), nil
}

// Run runs one input line in the session and returns the structured response
func (s *Service) Run(ctx context.Context, sessionID, line string) (*response.Response, error) {
	sess, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.executor.Run(ctx, sess, line), nil
}

// History returns the session history, most recent last
func (s *Service) History(ctx context.Context, sessionID string) ([]string, error) {
	sess, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.History(), nil
}

// Stats returns a snapshot of the session command counters
func (s *Service) Stats(ctx context.Context, sessionID string) (progress.Counters, error) {
	sess, err := s.Session(ctx, sessionID)
	if err != nil {
		return progress.Counters{}, err
	}
	return sess.Stats().Snapshot(), nil
}

// Close forgets the session; the root directory is left untouched.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	sess, err := s.Session(ctx, sessionID)
	if err != nil {
		return err
	}
	if err = s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	stats := sess.Stats().Snapshot()
	s.logger.InfoContext(logs.WithSession(ctx, sessionID), "session closed", "executed", stats.Executed, "failed", stats.Failed)
	s.notify(ctx, sess, event.TypeClosed)
	return nil
}

// Shutdown closes every session, stops owned listeners and flushes spans
func (s *Service) Shutdown(ctx context.Context) error {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return err
	}
	for _, sess := range sessions {
		if err = s.Close(ctx, sess.ID()); err != nil && !errors.Is(err, ErrUnknownSession) {
			return err
		}
	}
	if s.ownEvents {
		s.events.Close()
	}
	if s.tracing != nil && s.tracing.Enabled {
		return tracing.Shutdown(ctx)
	}
	return nil
}

func (s *Service) notify(ctx context.Context, sess *session.Session, eventType string) {
	record := &types.Record{
		SessionID:  sess.ID(),
		User:       sess.User(),
		Outcome:    eventType,
		Directory:  sess.Root(),
		ExecutedAt: clock.Now(),
	}
	publisher := event.PublisherOf[*types.Record](s.events)
	if err := publisher.Publish(ctx, event.NewEvent(&event.Context{SessionID: sess.ID(), EventType: eventType}, record)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish session event", "type", eventType, "error", err)
	}
}

// New creates a Service
func New(options ...Option) (*Service, error) {
	ret := &Service{
		config: DefaultConfig(),
		fs:     afs.New(),
		logger: logs.Discard(),
	}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(); err != nil {
		return nil, err
	}
	return ret, nil
}
