package pixelterm

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/pixelterm/internal/logs"
	"github.com/viant/pixelterm/policy"
	"github.com/viant/pixelterm/runtime/session"
	"github.com/viant/pixelterm/service/action/app"
	"github.com/viant/pixelterm/service/action/fs"
	"github.com/viant/pixelterm/service/action/network"
	"github.com/viant/pixelterm/service/executor"
	"github.com/viant/pixelterm/service/meta"
)

// Config is a serialisable representation of the interpreter configuration.
// Zero values of nested fields inherit package defaults.
type Config struct {
	RootDir        string         `json:"rootDir,omitempty" yaml:"rootDir,omitempty"`
	User           string         `json:"user,omitempty" yaml:"user,omitempty"`
	Seed           bool           `json:"seed,omitempty" yaml:"seed,omitempty"`
	HistorySize    int            `json:"historySize,omitempty" yaml:"historySize,omitempty"`
	PreviewLimit   int            `json:"previewLimit,omitempty" yaml:"previewLimit,omitempty"`
	FindLimit      int            `json:"findLimit,omitempty" yaml:"findLimit,omitempty"`
	CommandTimeout time.Duration  `json:"commandTimeout,omitempty" yaml:"commandTimeout,omitempty"`
	Network        NetworkConfig  `json:"network" yaml:"network"`
	App            *app.Config    `json:"app,omitempty" yaml:"app,omitempty"`
	Media          *fs.Media      `json:"media,omitempty" yaml:"media,omitempty"`
	Policy         *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	Log            logs.Config    `json:"log" yaml:"log"`
	Tracing        TracingConfig  `json:"tracing" yaml:"tracing"`
	Journal        string         `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// NetworkConfig represents curl and ping settings
type NetworkConfig struct {
	Timeout      time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	AllowPrivate bool          `json:"allowPrivate,omitempty" yaml:"allowPrivate,omitempty"`
	Probes       int           `json:"probes,omitempty" yaml:"probes,omitempty"`
}

// TracingConfig enables OpenTelemetry spans; an empty File writes to stderr
type TracingConfig struct {
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
}

// DefaultConfig returns a Config populated with package defaults. Callers may
// modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		HistorySize:    session.DefaultHistorySize,
		PreviewLimit:   fs.DefaultPreviewLimit,
		FindLimit:      fs.DefaultFindLimit,
		CommandTimeout: executor.DefaultCommandTimeout,
		Network: NetworkConfig{
			Timeout: network.DefaultTimeout,
			Probes:  network.DefaultProbes,
		},
		App:    app.DefaultConfig(),
		Media:  fs.DefaultMedia(),
		Policy: &policy.Config{Mode: policy.ModeAuto},
		Log:    logs.Config{Level: "info"},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("historySize must be > 0")
	}
	if c.PreviewLimit <= 0 {
		return fmt.Errorf("previewLimit must be > 0")
	}
	if c.FindLimit <= 0 {
		return fmt.Errorf("findLimit must be > 0")
	}
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("commandTimeout must be > 0")
	}
	if c.Network.Timeout <= 0 {
		return fmt.Errorf("network.timeout must be > 0")
	}
	if c.Network.Probes <= 0 {
		return fmt.Errorf("network.probes must be > 0")
	}
	if c.Policy != nil {
		switch c.Policy.Mode {
		case "", policy.ModeAuto, policy.ModeAsk, policy.ModeDeny:
		default:
			return fmt.Errorf("unsupported policy.mode: %v", c.Policy.Mode)
		}
	}
	if _, err := logs.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LoadConfig decodes the YAML document at URL on top of DefaultConfig
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	ret := DefaultConfig()
	if err := meta.Load(ctx, afs.New(), URL, ret); err != nil {
		return nil, err
	}
	if ret.App != nil {
		ret.App.Merge(app.DefaultConfig())
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}
