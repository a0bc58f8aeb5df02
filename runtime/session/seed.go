package session

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

var seedDirs = []string{"documents", "pictures", "music", "videos", "downloads", "desktop"}

var seedFiles = map[string]string{
	"README.txt": `Welcome to Pixel Pusher OS!

This is your personal file space. You can:

- Create, edit, and manage files
- Use the terminal to navigate
- Play games and use applications
- Customize your desktop environment

Sample files are located in the subdirectories:
documents/ pictures/ music/ videos/ downloads/
`,
	filepath.Join("documents", "sample_document.txt"): `Sample Document

This is a sample text document to demonstrate the file system.
Use 'cat', 'ls' and 'cd' to explore your files from the terminal.
`,
}

// Seed creates the sample directory tree under root; existing entries are kept.
func Seed(root string) error {
	ctx := context.Background()
	fs := afs.New()
	for _, name := range seedDirs {
		URL := fileURL(filepath.Join(root, name))
		if ok, _ := fs.Exists(ctx, URL); ok {
			continue
		}
		if err := fs.Create(ctx, URL, file.DefaultDirOsMode, true); err != nil {
			return err
		}
	}
	for name, content := range seedFiles {
		URL := fileURL(filepath.Join(root, name))
		if ok, _ := fs.Exists(ctx, URL); ok {
			continue
		}
		if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
			return err
		}
	}
	return nil
}

func fileURL(path string) string {
	return "file://" + filepath.ToSlash(path)
}
