package types

import (
	"context"
	"time"

	"github.com/viant/pixelterm/model/response"
)

// Service groups related verbs; it is the unit the verb registry is built from.
type Service interface {
	Name() string
	Methods() Signatures
	Method(verb string) (Executable, error)
}

// Executable handles a single command. It never returns an error: every failure
// mode is rendered as an error response.
type Executable func(ctx context.Context, term Terminal, cmd *Command) *response.Response

// Terminal exposes the session state a handler is allowed to see and change.
type Terminal interface {
	ID() string
	User() string
	Root() string
	CurrentDir() string
	// SetCurrentDir must only be called with a path returned by the sandbox resolver.
	SetCurrentDir(dir string)
	History() []string
	StartedAt() time.Time
}

type Signatures []Signature

// Lookup returns signature by verb or nil
func (s Signatures) Lookup(verb string) *Signature {
	for i := range s {
		sig := &s[i]
		if sig.Name == verb {
			return sig
		}
	}
	return nil
}

// Signature describes a verb for help rendering
type Signature struct {
	Name        string
	Usage       string
	Description string
	// Network verbs run with the network timeout instead of the command timeout.
	Network bool
}
