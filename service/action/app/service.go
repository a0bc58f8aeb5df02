package app

import (
	"strings"

	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/registry"
)

const name = "app"

// Catalog returns verb signatures grouped by service for help rendering
type Catalog func() []*registry.Group

// Service provides cosmetic and informational verbs
type Service struct {
	config  *Config
	catalog Catalog
}

// New creates an app service
func New(options ...Option) *Service {
	ret := &Service{config: DefaultConfig()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{Name: "help", Usage: "help", Description: "Show this help message"},
		{Name: "clear", Usage: "clear", Description: "Clear the terminal"},
		{Name: "echo", Usage: "echo <text>", Description: "Echo text"},
		{Name: "history", Usage: "history", Description: "Show command history"},
		{Name: "color", Usage: "color <theme>", Description: "Change color theme"},
		{Name: "effect", Usage: "effect <name>", Description: "Start visual effect"},
		{Name: "wallpaper", Usage: "wallpaper <name>", Description: "Set wallpaper"},
		{Name: "explorer", Usage: "explorer", Description: "Open file explorer"},
		{Name: "game", Usage: "game <name>", Description: "Start game"},
		{Name: "about", Usage: "about", Description: "About " + s.config.Name},
		{Name: "contact", Usage: "contact", Description: "Show contact information"},
	}
}

// Method returns the specified method
func (s *Service) Method(verb string) (types.Executable, error) {
	switch strings.ToLower(verb) {
	case "help":
		return s.help, nil
	case "clear":
		return s.clear, nil
	case "echo":
		return s.echo, nil
	case "history":
		return s.history, nil
	case "color":
		return s.color, nil
	case "effect":
		return s.effect, nil
	case "wallpaper":
		return s.wallpaper, nil
	case "explorer":
		return s.explorer, nil
	case "game":
		return s.game, nil
	case "about":
		return s.about, nil
	case "contact":
		return s.contact, nil
	default:
		return nil, types.NewUnknownCommandError(verb)
	}
}
