package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/viant/afs/storage"
)

// Asset represents a file or directory inside the sandbox
type Asset struct {
	Path        string
	Name        string
	IsDir       bool
	Mode        os.FileMode
	Size        int64
	ModTime     time.Time
	ContentType string
	Media       string
}

// Icon returns the listing type indicator
func (a *Asset) Icon() string {
	return Icon(a.Name, a.IsDir)
}

// DisplayName returns name with "/" suffix for directories
func (a *Asset) DisplayName() string {
	if a.IsDir {
		return a.Name + "/"
	}
	return a.Name
}

// DisplaySize returns human readable size, "-" for directories
func (a *Asset) DisplaySize() string {
	if a.IsDir {
		return "-"
	}
	return HumanSize(a.Size)
}

func newAsset(abs string, object storage.Object, media *Media) *Asset {
	ret := &Asset{
		Path:    abs,
		Name:    filepath.Base(abs),
		IsDir:   object.IsDir(),
		Mode:    object.Mode(),
		Size:    object.Size(),
		ModTime: object.ModTime(),
	}
	if !ret.IsDir {
		ret.ContentType = GetContentType(ret.Name)
		if kind, ok := media.Kind(ret.Name); ok {
			ret.Media = kind.String()
		}
	}
	return ret
}

func fileURL(path string) string {
	return "file://" + filepath.ToSlash(path)
}
