package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
)

// choice validates an argument against an allow-list before emitting a signal
type choice struct {
	verb    string
	thing   string
	plural  string
	allowed func(c *Config) []string
	kind    response.SignalKind
}

var (
	themeChoice     = &choice{verb: "color", thing: "theme", plural: "themes", kind: response.ColorTheme, allowed: func(c *Config) []string { return c.Themes }}
	effectChoice    = &choice{verb: "effect", thing: "effect", plural: "effects", kind: response.Effect, allowed: func(c *Config) []string { return c.Effects }}
	wallpaperChoice = &choice{verb: "wallpaper", thing: "wallpaper", plural: "wallpapers", kind: response.Wallpaper, allowed: func(c *Config) []string { return c.Wallpapers }}
	gameChoice      = &choice{verb: "game", thing: "game", plural: "games", kind: response.GameStart, allowed: func(c *Config) []string { return c.Games }}
)

func (s *Service) choose(c *choice, cmd *types.Command) *response.Response {
	argument := strings.TrimSpace(cmd.Argument)
	allowed := c.allowed(s.config)
	available := fmt.Sprintf("Available %v: %v", c.plural, strings.Join(allowed, ", "))
	if argument == "" {
		return response.Errorf(response.KindInvalidArgument, "Usage: %v <%v>\n%v", c.verb, c.thing, available)
	}
	for _, candidate := range allowed {
		if candidate == argument {
			return response.Emit(c.kind, argument)
		}
	}
	return response.Errorf(response.KindInvalidArgument, "Unknown %v: %v\n%v", c.thing, argument, available)
}

func (s *Service) color(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return s.choose(themeChoice, cmd)
}

func (s *Service) effect(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return s.choose(effectChoice, cmd)
}

func (s *Service) wallpaper(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return s.choose(wallpaperChoice, cmd)
}

func (s *Service) game(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return s.choose(gameChoice, cmd)
}

func (s *Service) clear(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Emit(response.Clear, "")
}

func (s *Service) explorer(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Emit(response.Explorer, "")
}
