package fs

import (
	"context"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/object"
	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/parser"
	"github.com/viant/pixelterm/service/sandbox"
)

const (
	name = "fs"

	// DefaultPreviewLimit is the number of runes cat renders before truncating
	DefaultPreviewLimit = 2000
	// DefaultFindLimit is the maximum number of find results
	DefaultFindLimit = 100
)

// Service provides sandboxed file system verbs using viant/afs
type Service struct {
	fs           afs.Service
	previewLimit int
	findLimit    int
	media        *Media
}

// New creates a new file system service
func New(options ...Option) *Service {
	ret := &Service{
		fs:           afs.New(),
		previewLimit: DefaultPreviewLimit,
		findLimit:    DefaultFindLimit,
		media:        DefaultMedia(),
	}
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
		{Name: "ls", Usage: "ls [path]", Description: "List directory contents"},
		{Name: "dir", Usage: "dir [path]", Description: "List directory contents"},
		{Name: "cd", Usage: "cd [path]", Description: "Change directory"},
		{Name: "pwd", Usage: "pwd", Description: "Show current directory"},
		{Name: "mkdir", Usage: "mkdir <name>", Description: "Create directory"},
		{Name: "rmdir", Usage: "rmdir <name>", Description: "Remove empty directory"},
		{Name: "touch", Usage: "touch <name>", Description: "Create empty file"},
		{Name: "rm", Usage: "rm <name>", Description: "Remove file"},
		{Name: "del", Usage: "del <name>", Description: "Remove file"},
		{Name: "cat", Usage: "cat <name>", Description: "Display file contents or preview media"},
		{Name: "rename", Usage: "rename <old> <new>", Description: "Rename file or directory"},
		{Name: "mv", Usage: "mv <old> <new>", Description: "Move file or directory"},
		{Name: "find", Usage: "find <pattern>", Description: "Search files below current directory"},
		{Name: "properties", Usage: "properties <name>", Description: "Show file or directory details"},
	}
}

// Method returns the specified method
func (s *Service) Method(verb string) (types.Executable, error) {
	switch strings.ToLower(verb) {
	case "ls", "dir":
		return s.list, nil
	case "cd":
		return s.changeDir, nil
	case "pwd":
		return s.workingDir, nil
	case "mkdir":
		return s.makeDir, nil
	case "rmdir":
		return s.removeDir, nil
	case "touch":
		return s.touch, nil
	case "rm", "del":
		return s.remove, nil
	case "cat":
		return s.cat, nil
	case "rename", "mv":
		return s.rename, nil
	case "find":
		return s.find, nil
	case "properties":
		return s.properties, nil
	default:
		return nil, types.NewUnknownCommandError(verb)
	}
}

// resolve maps a user token to an absolute sandbox path
func (s *Service) resolve(term types.Terminal, token string) (string, *response.Response) {
	abs, err := sandbox.Resolve(term.CurrentDir(), term.Root(), token)
	if err != nil {
		return "", response.Errorf(response.KindAccessDenied, "Access denied: %v is outside your home directory", token)
	}
	return abs, nil
}

// object returns the object at abs, or nil if it does not exist
func (s *Service) object(ctx context.Context, abs string) (*Asset, error) {
	URL := fileURL(abs)
	// afs opens the path to describe it, which blocks on a FIFO
	if info, err := os.Stat(abs); err == nil && !info.IsDir() && !info.Mode().IsRegular() {
		return newAsset(abs, object.New(URL, info, nil), s.media), nil
	}
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return nil, err
	}
	entry, err := s.fs.Object(ctx, URL)
	if err != nil {
		return nil, err
	}
	return newAsset(abs, entry, s.media), nil
}

// pathArgument returns a single path argument, unquoted
func pathArgument(cmd *types.Command) string {
	return parser.Unquote(strings.TrimSpace(cmd.Argument))
}

func usage(verb, text string) *response.Response {
	return response.Errorf(response.KindInvalidArgument, "Usage: %v %v", verb, text)
}
