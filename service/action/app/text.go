package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
)

func (s *Service) echo(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Text(cmd.Argument)
}

func (s *Service) history(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	entries := term.History()
	if len(entries) == 0 {
		return response.Text("No commands in history")
	}
	var lines = make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%4d  %s", i+1, entry)
	}
	return response.Text(strings.Join(lines, "\n"))
}

func (s *Service) help(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	builder := strings.Builder{}
	builder.WriteString("Available Commands:\n")
	builder.WriteString("==================\n")
	if s.catalog == nil {
		return response.Text(strings.TrimSpace(builder.String()))
	}
	groups := s.catalog()
	width := 0
	for _, group := range groups {
		for _, sig := range group.Signatures {
			if len(sig.Usage) > width {
				width = len(sig.Usage)
			}
		}
	}
	for i, group := range groups {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("[" + group.Service + "]\n")
		for _, sig := range group.Signatures {
			usage := sig.Usage
			if usage == "" {
				usage = sig.Name
			}
			builder.WriteString(fmt.Sprintf("%-*s - %s\n", width, usage, sig.Description))
		}
	}
	builder.WriteString("\nType any command to execute it.")
	return response.Text(builder.String())
}

func (s *Service) about(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("🎨 %v v%v\n\n", s.config.Name, s.config.Version))
	builder.WriteString("A web-based desktop environment with a sandboxed terminal.\n")
	if len(s.config.Features) > 0 {
		builder.WriteString("\nFeatures:\n")
		for _, feature := range s.config.Features {
			builder.WriteString("• " + feature + "\n")
		}
	}
	return response.Text(strings.TrimRight(builder.String(), "\n"))
}

func (s *Service) contact(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Text(s.config.Contact)
}
