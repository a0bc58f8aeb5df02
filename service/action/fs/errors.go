package fs

import (
	"errors"
	"os"
	"strings"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/sandbox"
)

// failure renders an OS or storage error as an error response; real paths are
// replaced with their virtual form so that the host layout never leaks.
func failure(term types.Terminal, action, name string, err error) *response.Response {
	message := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, os.ErrPermission) || strings.Contains(message, "permission denied"):
		return response.Errorf(response.KindPermissionDenied, "Permission denied: %v", name)
	case errors.Is(err, os.ErrNotExist) || strings.Contains(message, "no such file"):
		return response.Errorf(response.KindNotFound, "Not found: %v", name)
	case strings.Contains(message, "not a directory"):
		return response.Errorf(response.KindNotADirectory, "Not a directory: %v", name)
	}
	return response.Errorf(response.KindUnsupportedOperation, "Error %v: %v", action, scrub(term.Root(), err.Error()))
}

// scrub substitutes virtual paths for real paths below root
func scrub(root, text string) string {
	if root == "" || !strings.Contains(text, root) {
		return text
	}
	var out strings.Builder
	for {
		index := strings.Index(text, root)
		if index == -1 {
			out.WriteString(text)
			break
		}
		out.WriteString(text[:index])
		text = text[index:]
		end := strings.IndexAny(text, " :\t\n'\"")
		if end == -1 {
			end = len(text)
		}
		candidate := text[:end]
		if sandbox.Contains(root, candidate) {
			out.WriteString(sandbox.Virtual(root, candidate))
		} else {
			out.WriteString(candidate)
		}
		text = text[end:]
	}
	return out.String()
}
