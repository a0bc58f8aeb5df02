package fs

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/sandbox"
)

// Matcher returns a name predicate; patterns with wildcard characters use
// path.Match, others match as a case insensitive substring.
func Matcher(pattern string) (func(name string) bool, error) {
	if strings.ContainsAny(pattern, "*?[") {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, err
		}
		return func(name string) bool {
			matched, _ := path.Match(pattern, name)
			return matched
		}, nil
	}
	lower := strings.ToLower(pattern)
	return func(name string) bool {
		return strings.Contains(strings.ToLower(name), lower)
	}, nil
}

func (s *Service) find(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	pattern := pathArgument(cmd)
	if pattern == "" {
		return usage("find", "<pattern>")
	}
	match, err := Matcher(pattern)
	if err != nil {
		return response.Errorf(response.KindInvalidArgument, "Invalid pattern: %v", pattern)
	}
	var found []string
	if err = s.walk(ctx, term, term.CurrentDir(), func(asset *Asset) {
		if match(asset.Name) {
			found = append(found, sandbox.Virtual(term.Root(), asset.Path))
		}
	}); err != nil {
		if ctx.Err() != nil {
			return response.Errorf(response.KindTimeout, "Search interrupted: %v", ctx.Err())
		}
		return failure(term, "searching", pattern, err)
	}
	if len(found) == 0 {
		return response.Textf("No matches found for: %v", pattern)
	}
	sort.Strings(found)
	if len(found) > s.findLimit {
		more := len(found) - s.findLimit
		found = append(found[:s.findLimit], fmt.Sprintf("... and %d more", more))
	}
	return response.Text(strings.Join(found, "\n"))
}

// walk visits every entry below dir; it never descends into a directory whose
// real location leaves the sandbox.
func (s *Service) walk(ctx context.Context, term types.Terminal, dir string, visit func(asset *Asset)) error {
	assets, err := s.List(ctx, dir)
	if err != nil {
		return err
	}
	for _, asset := range assets {
		if err = ctx.Err(); err != nil {
			return err
		}
		if _, err := sandbox.Resolve(term.Root(), term.Root(), sandbox.Virtual(term.Root(), asset.Path)); err != nil {
			continue
		}
		visit(asset)
		if !asset.IsDir {
			continue
		}
		if err = s.walk(ctx, term, asset.Path, visit); err != nil {
			if ctx.Err() != nil {
				return err
			}
			// unreadable subdirectories are skipped
			continue
		}
	}
	return nil
}
