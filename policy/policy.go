package policy

import (
	"context"
	"strings"
)

// Execution modes
const (
	ModeAsk  = "ask"  // ask before every allowed verb
	ModeAuto = "auto" // execute allowed verbs (default)
	ModeDeny = "deny" // block every verb
)

// AskFunc is invoked when Mode==ask. Returning true approves the command.
type AskFunc func(ctx context.Context, verb, argument string, p *Policy) bool

// Policy restricts verbs. A nil *Policy allows everything.
//
//   - Mode controls the high-level behaviour (ask / auto / deny).
//   - AllowList, BlockList filter verbs regardless of Mode.
//   - Ask is only used when Mode==ask.
type Policy struct {
	Mode      string
	AllowList []string
	BlockList []string
	// AskVerbs limits asking to the listed verbs, empty means every verb
	AskVerbs []string
	Ask      AskFunc
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
	AskVerbs  []string `json:"ask,omitempty" yaml:"ask,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
		AskVerbs:  append([]string(nil), p.AskVerbs...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy (without AskFunc).
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
		AskVerbs:  append([]string(nil), c.AskVerbs...),
	}
}

// IsAllowed evaluates Mode, AllowList and BlockList; verbs match case-insensitively.
func (p *Policy) IsAllowed(verb string) bool {
	if p == nil {
		return true
	}
	if p.Mode == ModeDeny {
		return false
	}
	// BlockList has priority.
	if contains(p.BlockList, verb) {
		return false
	}
	if len(p.AllowList) == 0 {
		return true
	}
	return contains(p.AllowList, verb)
}

// Approve returns true when verb does not need asking or the AskFunc approves it
func (p *Policy) Approve(ctx context.Context, verb, argument string) bool {
	if p == nil || p.Mode != ModeAsk || p.Ask == nil {
		return true
	}
	if len(p.AskVerbs) > 0 && !contains(p.AskVerbs, verb) {
		return true
	}
	return p.Ask(ctx, verb, argument, p)
}

func contains(list []string, verb string) bool {
	for _, candidate := range list {
		if strings.EqualFold(candidate, verb) {
			return true
		}
	}
	return false
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy attached to ctx, or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
