package fs

import (
	"context"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/sandbox"
)

func (s *Service) changeDir(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	if token == "" {
		token = sandbox.HomeMarker
	}
	dir, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	asset, err := s.object(ctx, dir)
	if err != nil {
		return failure(term, "changing directory", token, err)
	}
	if asset == nil {
		return response.Errorf(response.KindNotFound, "Directory not found: %v", token)
	}
	if !asset.IsDir {
		return response.Errorf(response.KindNotADirectory, "Not a directory: %v", token)
	}
	term.SetCurrentDir(dir)
	return response.Textf("Changed directory to: %v", sandbox.Virtual(term.Root(), dir))
}

func (s *Service) workingDir(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	return response.Text(sandbox.Virtual(term.Root(), term.CurrentDir()))
}
