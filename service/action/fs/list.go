package fs

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/sandbox"
)

const timeLayout = "2006-01-02 15:04"

// List returns the entries of dir sorted by name, without dir itself
func (s *Service) List(ctx context.Context, dir string) ([]*Asset, error) {
	objects, err := s.fs.List(ctx, fileURL(dir))
	if err != nil {
		return nil, err
	}
	assets := make([]*Asset, 0, len(objects))
	for _, object := range objects {
		objectPath := url.Path(object.URL())
		if sandbox.Equal(objectPath, dir) {
			continue
		}
		assets = append(assets, newAsset(objectPath, object, s.media))
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Name < assets[j].Name
	})
	return assets, nil
}

// visible drops links leaving the sandbox or dangling; links inside it are
// reported with their target's type and size.
func (s *Service) visible(ctx context.Context, term types.Terminal, assets []*Asset) []*Asset {
	ret := assets[:0]
	for _, asset := range assets {
		if asset.Mode&os.ModeSymlink == 0 {
			ret = append(ret, asset)
			continue
		}
		target, err := sandbox.Resolve(term.Root(), term.Root(), sandbox.Virtual(term.Root(), asset.Path))
		if err != nil {
			continue
		}
		resolved, err := s.object(ctx, target)
		if err != nil || resolved == nil {
			continue
		}
		resolved.Path, resolved.Name = asset.Path, asset.Name
		ret = append(ret, resolved)
	}
	return ret
}

func (s *Service) list(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	dir, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	if token == "" {
		token = sandbox.Virtual(term.Root(), dir)
	}
	asset, err := s.object(ctx, dir)
	if err != nil {
		return failure(term, "listing directory", token, err)
	}
	if asset == nil {
		return response.Errorf(response.KindNotFound, "Directory not found: %v", token)
	}
	if !asset.IsDir {
		return response.Errorf(response.KindNotADirectory, "Not a directory: %v", token)
	}
	assets, err := s.List(ctx, dir)
	if err != nil {
		return failure(term, "listing directory", token, err)
	}
	assets = s.visible(ctx, term, assets)
	if len(assets) == 0 {
		return response.Text("Directory is empty")
	}
	nameWidth := 0
	for _, item := range assets {
		if width := len([]rune(item.DisplayName())); width > nameWidth {
			nameWidth = width
		}
	}
	var lines = make([]string, 0, len(assets))
	for _, item := range assets {
		lines = append(lines, fmt.Sprintf("%s %-*s  %10s  %s", item.Icon(), nameWidth, item.DisplayName(), item.DisplaySize(), item.ModTime.Format(timeLayout)))
	}
	return response.Text(strings.Join(lines, "\n"))
}
