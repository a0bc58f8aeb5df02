package executor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/viant/pixelterm/internal/clock"
	"github.com/viant/pixelterm/internal/logs"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/progress"
	"github.com/viant/pixelterm/service/event"
	"github.com/viant/pixelterm/service/parser"
	"github.com/viant/pixelterm/service/registry"
	"github.com/viant/pixelterm/tracing"
)

const (
	// DefaultCommandTimeout bounds file system, system and app verbs
	DefaultCommandTimeout = 5 * time.Second
	// DefaultNetworkTimeout bounds network verbs
	DefaultNetworkTimeout = 10 * time.Second
)

// Session is the state the executor needs from an interpreter session
type Session interface {
	types.Terminal
	PushHistory(raw string)
	Stats() *progress.Progress
	Acquire(ctx context.Context) error
	Release()
}

// Service executes command lines against sessions
type Service struct {
	registry       *registry.Registry
	policy         *policy.Policy
	events         *event.Service
	logger         *slog.Logger
	commandTimeout time.Duration
	networkTimeout time.Duration
}

// Execute runs line and returns its wire encoded output
func (s *Service) Execute(ctx context.Context, session Session, line string) string {
	return response.Encode(s.Run(ctx, session, line))
}

// Run runs line and returns the structured response. Blank lines yield an
// empty text response and are not recorded.
func (s *Service) Run(ctx context.Context, session Session, line string) *response.Response {
	cmd := parser.Parse(line)
	if cmd.IsEmpty() {
		return response.Text("")
	}
	if err := session.Acquire(ctx); err != nil {
		return response.Error(response.KindBusy, "Session is busy")
	}
	ctx = logs.WithSession(ctx, session.ID())
	started := clock.Now()
	session.PushHistory(cmd.Raw)

	ctx, span := tracing.StartSpan(ctx, "command", "INTERNAL")
	resp := s.run(ctx, session, cmd)
	elapsed := clock.Now().Sub(started)

	span.WithAttributes(map[string]string{
		"session.id": session.ID(),
		"verb":       cmd.Verb,
		"outcome":    resp.Outcome(),
	})
	var spanErr error
	if resp.IsError() {
		spanErr = errors.New(resp.Text)
	}
	tracing.EndSpan(span, spanErr)

	session.Stats().Update(deltaOf(resp))
	s.logger.DebugContext(ctx, "command executed", "verb", cmd.Verb, "outcome", resp.Outcome(), "duration", elapsed)
	s.publish(ctx, session, cmd, resp, started, elapsed)
	return resp
}

// run dispatches cmd; session is released once the handler really returns
func (s *Service) run(ctx context.Context, session Session, cmd *types.Command) *response.Response {
	method, signature, err := s.registry.Lookup(cmd.Verb)
	if err != nil {
		session.Release()
		return response.Errorf(response.KindUnknownCommand, "Command '%v' not found. Type 'help' for available commands.", cmd.Verb)
	}
	verbPolicy := policy.FromContext(ctx)
	if verbPolicy == nil {
		verbPolicy = s.policy
	}
	if !verbPolicy.IsAllowed(cmd.Verb) {
		session.Release()
		return response.Errorf(response.KindAccessDenied, "Command '%v' is not allowed", cmd.Verb)
	}
	if !verbPolicy.Approve(ctx, cmd.Verb, cmd.Argument) {
		session.Release()
		return response.Errorf(response.KindAccessDenied, "Command '%v' was not approved", cmd.Verb)
	}

	timeout := s.commandTimeout
	if signature.Network {
		timeout = s.networkTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := make(chan *response.Response, 1)
	go func() {
		defer session.Release()
		defer func() {
			if r := recover(); r != nil {
				s.logger.WarnContext(ctx, "recovered handler panic", "verb", cmd.Verb, "panic", r)
				result <- response.Errorf(response.KindInternal, "Internal error: %v", r)
			}
		}()
		resp := method(runCtx, session, cmd)
		if resp == nil {
			resp = response.Text("")
		}
		result <- resp
	}()

	select {
	case resp := <-result:
		return resp
	case <-runCtx.Done():
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			s.logger.WarnContext(ctx, "command timed out", "verb", cmd.Verb, "timeout", timeout)
			return response.Errorf(response.KindTimeout, "Command timed out after %v", timeout)
		}
		return response.Error(response.KindTimeout, "Command canceled")
	}
}

func (s *Service) publish(ctx context.Context, session Session, cmd *types.Command, resp *response.Response, started time.Time, elapsed time.Duration) {
	if s.events == nil {
		return
	}
	service := s.registry.ServiceOf(cmd.Verb)
	record := &types.Record{
		SessionID:  session.ID(),
		User:       session.User(),
		Line:       cmd.Raw,
		Verb:       cmd.Verb,
		Service:    service,
		Outcome:    resp.Outcome(),
		Output:     response.Encode(resp),
		Directory:  session.CurrentDir(),
		Duration:   elapsed,
		ExecutedAt: started,
	}
	eventContext := &event.Context{
		SessionID:   session.ID(),
		EventType:   event.TypeExecuted,
		Service:     service,
		Verb:        cmd.Verb,
		TimeTakenMs: int(elapsed.Milliseconds()),
	}
	publisher := event.PublisherOf[*types.Record](s.events)
	if err := publisher.Publish(context.WithoutCancel(ctx), event.NewEvent(eventContext, record)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish command event", "verb", cmd.Verb, "error", err)
	}
}

func deltaOf(resp *response.Response) progress.Delta {
	delta := progress.Delta{Executed: 1}
	switch {
	case resp.IsSignal():
		delta.Signals = 1
	case resp.IsError():
		delta.Failed = 1
		switch resp.ErrorKind {
		case response.KindTimeout:
			delta.Timeouts = 1
		case response.KindUnknownCommand:
			delta.Unknown = 1
		}
	}
	return delta
}

// New creates an executor over an immutable registry
func New(reg *registry.Registry, opts ...Option) *Service {
	if reg == nil {
		panic("executor: registry was nil")
	}
	s := &Service{
		registry:       reg,
		logger:         logs.Discard(),
		commandTimeout: DefaultCommandTimeout,
		networkTimeout: DefaultNetworkTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
