package fs

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/sandbox"
)

func (s *Service) properties(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	if token == "" {
		return usage("properties", "<name>")
	}
	location, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	asset, err := s.object(ctx, location)
	if err != nil {
		return failure(term, "reading properties", token, err)
	}
	if asset == nil {
		return response.Errorf(response.KindNotFound, "Not found: %v", token)
	}
	name := asset.Name
	if sandbox.Equal(location, term.Root()) {
		name = sandbox.RootMarker
	}
	var lines []string
	add := func(label, value string) {
		lines = append(lines, fmt.Sprintf("%-14s %s", label+":", value))
	}
	add("Name", name)
	if asset.IsDir {
		add("Type", "Directory")
	} else {
		add("Type", "File")
	}
	add("Location", sandbox.Virtual(term.Root(), location))
	if asset.IsDir {
		assets, err := s.List(ctx, location)
		if err != nil {
			add("Items", "unavailable")
		} else {
			add("Items", fmt.Sprintf("%d", len(assets)))
		}
	} else {
		add("Size", fmt.Sprintf("%s (%d bytes)", HumanSize(asset.Size), asset.Size))
		add("Content type", asset.ContentType)
		if asset.Media != "" {
			add("Media", asset.Media)
		}
	}
	add("Mode", asset.Mode.String())
	add("Modified", asset.ModTime.Format("2006-01-02 15:04:05"))
	return response.Text(strings.Join(lines, "\n"))
}
