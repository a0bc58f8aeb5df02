package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs/file"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/parser"
	"github.com/viant/pixelterm/service/sandbox"
)

func (s *Service) makeDir(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	if token == "" {
		return usage("mkdir", "<directory_name>")
	}
	dir, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	asset, err := s.object(ctx, dir)
	if err != nil {
		return failure(term, "creating directory", token, err)
	}
	if asset != nil {
		if !asset.IsDir {
			return response.Errorf(response.KindNotADirectory, "Not a directory: %v (a file with that name exists)", token)
		}
		return response.Textf("Directory already exists: %v", token)
	}
	if err = s.fs.Create(ctx, fileURL(dir), file.DefaultDirOsMode, true); err != nil {
		return failure(term, "creating directory", token, err)
	}
	return response.Textf("Directory created: %v", token)
}

func (s *Service) removeDir(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	if token == "" {
		return usage("rmdir", "<directory_name>")
	}
	dir, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	if sandbox.Equal(dir, term.Root()) {
		return response.Error(response.KindUnsupportedOperation, "Cannot remove your home directory")
	}
	if sandbox.Contains(dir, term.CurrentDir()) {
		return response.Errorf(response.KindUnsupportedOperation, "Cannot remove the current directory: %v", token)
	}
	asset, err := s.object(ctx, dir)
	if err != nil {
		return failure(term, "removing directory", token, err)
	}
	if asset == nil {
		return response.Errorf(response.KindNotFound, "Directory not found: %v", token)
	}
	if !asset.IsDir {
		return response.Errorf(response.KindNotADirectory, "Not a directory: %v", token)
	}
	// afs deletes recursively, rmdir must only ever remove an empty directory
	if err = os.Remove(dir); err != nil {
		if os.IsPermission(err) {
			return failure(term, "removing directory", token, err)
		}
		return response.Errorf(response.KindUnsupportedOperation, "Error removing directory: %v", scrub(term.Root(), err.Error()))
	}
	return response.Textf("Directory removed: %v", token)
}

func (s *Service) touch(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	if token == "" {
		return usage("touch", "<filename>")
	}
	location, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	asset, err := s.object(ctx, location)
	if err != nil {
		return failure(term, "creating file", token, err)
	}
	if asset != nil {
		if asset.IsDir {
			return response.Errorf(response.KindNotAFile, "Is a directory: %v", token)
		}
		return response.Textf("File already exists: %v", token)
	}
	parent, err := s.object(ctx, filepath.Dir(location))
	if err != nil {
		return failure(term, "creating file", token, err)
	}
	if parent == nil || !parent.IsDir {
		return response.Errorf(response.KindNotFound, "Directory not found: %v", filepath.ToSlash(filepath.Dir(token)))
	}
	if err = s.fs.Upload(ctx, fileURL(location), file.DefaultFileOsMode, strings.NewReader("")); err != nil {
		return failure(term, "creating file", token, err)
	}
	return response.Textf("File created: %v", token)
}

func (s *Service) remove(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	if token == "" {
		return usage(cmd.Verb, "<filename>")
	}
	location, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	asset, err := s.object(ctx, location)
	if err != nil {
		return failure(term, "removing file", token, err)
	}
	if asset == nil {
		return response.Errorf(response.KindNotFound, "File not found: %v", token)
	}
	if asset.IsDir {
		return response.Errorf(response.KindUnsupportedOperation, "Cannot remove directory with rm: %v (use rmdir)", token)
	}
	if err = s.fs.Delete(ctx, fileURL(location)); err != nil {
		return failure(term, "removing file", token, err)
	}
	return response.Textf("File removed: %v", token)
}

func (s *Service) rename(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	args := parser.Split(cmd.Argument)
	if len(args) != 2 {
		return usage(cmd.Verb, "<old_name> <new_name>")
	}
	oldName, newName := args[0], args[1]
	source, resp := s.resolve(term, oldName)
	if resp != nil {
		return resp
	}
	dest, resp := s.resolve(term, newName)
	if resp != nil {
		return resp
	}
	if sandbox.Contains(source, term.CurrentDir()) {
		return response.Errorf(response.KindUnsupportedOperation, "Cannot move the current directory: %v", oldName)
	}
	asset, err := s.object(ctx, source)
	if err != nil {
		return failure(term, "renaming", oldName, err)
	}
	if asset == nil {
		return response.Errorf(response.KindNotFound, "File not found: %v", oldName)
	}
	existing, err := s.object(ctx, dest)
	if err != nil {
		return failure(term, "renaming", newName, err)
	}
	if existing != nil {
		return response.Errorf(response.KindUnsupportedOperation, "Destination already exists: %v", newName)
	}
	if asset.IsDir && sandbox.Contains(source, dest) {
		return response.Errorf(response.KindUnsupportedOperation, "Cannot move a directory into itself: %v", newName)
	}
	if err = s.fs.Move(ctx, fileURL(source), fileURL(dest)); err != nil {
		return failure(term, "renaming", oldName, err)
	}
	return response.Textf("Renamed: %v -> %v", oldName, newName)
}
