package system

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
)

// DefaultRunTimeout bounds a single shell query
const DefaultRunTimeout = 5 * time.Second

// Runner runs a fixed host query and returns its output and exit status
type Runner interface {
	Run(ctx context.Context, command string) (string, int, error)
}

// ShellRunner runs queries in a lazily started local shell session
type ShellRunner struct {
	service *gosh.Service
	timeout time.Duration
	mux     sync.Mutex
}

// Run runs a command; calls are serialized since the shell session is shared
func (r *ShellRunner) Run(ctx context.Context, command string) (string, int, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if r.service == nil {
		service, err := gosh.New(ctx, local.New())
		if err != nil {
			return "", -1, fmt.Errorf("failed to start shell: %w", err)
		}
		r.service = service
	}
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return "", -1, context.DeadlineExceeded
	}
	started := time.Now()
	stdout, status, err := r.service.Run(ctx, command, runner.WithTimeout(int(timeout.Milliseconds())))
	if elapsed := time.Since(started); elapsed > timeout && err == nil {
		err = fmt.Errorf("command %v timed out after: %s", command, elapsed)
	}
	return stdout, status, err
}

// NewShellRunner creates a shell runner
func NewShellRunner() *ShellRunner {
	return &ShellRunner{timeout: DefaultRunTimeout}
}
