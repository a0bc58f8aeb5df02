package meta

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Load downloads URL and decodes it into target; fields missing in the
// document keep the values target already holds.
func Load(ctx context.Context, fs afs.Service, URL string, target interface{}) error {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to download %v: %w", URL, err)
	}
	if err = yaml.Unmarshal([]byte(ExpandEnv(string(data))), target); err != nil {
		return fmt.Errorf("failed to decode %v: %w", URL, err)
	}
	return nil
}
