package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/pixelterm/model/types"
)

const (
	// RootMarker starts a token resolved from the sandbox root
	RootMarker = "/"
	// HomeMarker is an alias for the sandbox root
	HomeMarker = "~"
	parentDir  = ".."
)

// Resolve resolves token against currentDir within rootDir. rootDir and
// currentDir are expected to be absolute and clean.
func Resolve(currentDir, rootDir, token string) (string, error) {
	var candidate string
	switch {
	case token == "":
		candidate = currentDir
	case token == parentDir:
		if Equal(currentDir, rootDir) {
			return rootDir, nil
		}
		candidate = filepath.Dir(currentDir)
	case isRooted(token):
		candidate = filepath.Join(rootDir, stripRootMarker(token))
	default:
		candidate = filepath.Join(currentDir, token)
	}
	candidate = filepath.Clean(candidate)
	if !Contains(rootDir, candidate) {
		return "", fmt.Errorf("%w: %v", types.ErrAccessDenied, token)
	}
	if !containsReal(rootDir, candidate) {
		return "", fmt.Errorf("%w: %v", types.ErrAccessDenied, token)
	}
	return candidate, nil
}

// Contains returns true when candidate equals root or is its descendant, by
// path components.
func Contains(root, candidate string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(candidate))
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if filepath.IsAbs(rel) || rel == parentDir || strings.HasPrefix(rel, parentDir+string(filepath.Separator)) {
		return false
	}
	return true
}

// Equal compares two paths after cleaning
func Equal(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// Virtual renders abs as a "/" rooted path relative to root
func Virtual(root, abs string) string {
	return RootMarker + Relative(root, abs)
}

// Relative renders abs relative to root using "/" separators, without a leading slash
func Relative(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// Canonical returns the absolute, symlink free form of a root directory and
// verifies it is an existing directory.
func Canonical(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("root directory was empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %v: %w", root, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("invalid root %v: %w", root, err)
	}
	info, err := os.Stat(real)
	if err != nil {
		return "", fmt.Errorf("invalid root %v: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid root %v: not a directory", root)
	}
	return real, nil
}

// containsReal checks where the longest existing prefix of candidate really lives.
func containsReal(rootDir, candidate string) bool {
	realRoot, err := filepath.EvalSymlinks(rootDir)
	if err != nil {
		realRoot = rootDir
	}
	for p := candidate; ; p = filepath.Dir(p) {
		real, err := filepath.EvalSymlinks(p)
		if err == nil {
			return Contains(realRoot, real)
		}
		if info, lErr := os.Lstat(p); lErr == nil && info.Mode()&os.ModeSymlink != 0 {
			return false // dangling link
		}
		if Equal(p, rootDir) || filepath.Dir(p) == p {
			return true
		}
	}
}

func isRooted(token string) bool {
	return strings.HasPrefix(token, RootMarker) || token == HomeMarker || strings.HasPrefix(token, HomeMarker+"/")
}

func stripRootMarker(token string) string {
	if strings.HasPrefix(token, HomeMarker) {
		token = token[len(HomeMarker):]
	}
	return strings.TrimLeft(token, RootMarker)
}
