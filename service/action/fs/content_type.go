package fs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/pixelterm/model/response"
)

// Media lists file extensions rendered as previews instead of text
type Media struct {
	Image []string `yaml:"image,omitempty" json:"image,omitempty"`
	Video []string `yaml:"video,omitempty" json:"video,omitempty"`
	Audio []string `yaml:"audio,omitempty" json:"audio,omitempty"`
}

// DefaultMedia returns default media table
func DefaultMedia() *Media {
	return &Media{
		Image: []string{".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp"},
		Video: []string{".mp4", ".avi", ".mov", ".mkv", ".webm"},
		Audio: []string{".mp3", ".wav", ".ogg", ".flac", ".m4a"},
	}
}

// Kind returns preview signal kind for a file name
func (m *Media) Kind(name string) (response.SignalKind, bool) {
	if m == nil {
		return 0, false
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return 0, false
	}
	switch {
	case hasExt(m.Image, ext):
		return response.ImagePreview, true
	case hasExt(m.Video, ext):
		return response.VideoPreview, true
	case hasExt(m.Audio, ext):
		return response.AudioPreview, true
	}
	return 0, false
}

func hasExt(list []string, ext string) bool {
	for _, candidate := range list {
		candidate = strings.ToLower(candidate)
		if !strings.HasPrefix(candidate, ".") {
			candidate = "." + candidate
		}
		if candidate == ext {
			return true
		}
	}
	return false
}

// GetContentType tries to determine the content type of a file based on extension
func GetContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".md":
		return "text/markdown"
	case ".csv":
		return "text/csv"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".xml":
		return "application/xml"
	case ".zip":
		return "application/zip"
	case ".gz":
		return "application/gzip"
	default:
		return "application/octet-stream"
	}
}

const (
	dirIcon  = "📁"
	fileIcon = "📄"
)

var icons = map[string]string{
	"txt": "📄", "md": "📝", "pdf": "📕", "doc": "📄", "docx": "📄",
	"jpg": "🖼️", "jpeg": "🖼️", "png": "🖼️", "gif": "🖼️", "svg": "🖼️", "webp": "🖼️",
	"mp3": "🎵", "wav": "🎵", "ogg": "🎵", "flac": "🎵", "m4a": "🎵", "aac": "🎵",
	"mp4": "🎥", "avi": "🎥", "mov": "🎥", "mkv": "🎥", "webm": "🎥",
	"zip": "📦", "rar": "📦", "7z": "📦", "tar": "📦", "gz": "📦",
	"json": "📋", "xml": "📋", "csv": "📊", "xlsx": "📊", "xls": "📊",
	"py": "🐍", "js": "📜", "go": "🐹", "html": "🌐", "css": "🎨", "php": "🐘",
	"java": "☕", "cpp": "⚙️", "c": "⚙️", "h": "⚙️",
	"ppt": "📽️", "pptx": "📽️", "odp": "📽️",
}

// Icon returns type indicator for a listing entry
func Icon(name string, isDir bool) string {
	if isDir {
		return dirIcon
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if icon, ok := icons[ext]; ok {
		return icon
	}
	return fileIcon
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// HumanSize formats size with one decimal, e.g. "1.5 KB"
func HumanSize(size int64) string {
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
