package loader

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/xuning888/safedict/pkg/datastruct/dict"
	"github.com/xuning888/safedict/pkg/logger"
)

type Loader struct {
	fs afs.Service
}

func New() *Loader {
	return &Loader{fs: afs.New()}
}

// Load builds a SafeDict from the YAML or JSON mapping stored at URL.
// A plain path is treated as a local file.
func (l *Loader) Load(ctx context.Context, URL string) (*dict.SafeDict, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", URL, err)
	}
	d, err := dict.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", URL, err)
	}
	logger.DebugF("loaded %d entries from %s", d.Len(), URL)
	return d, nil
}

func Load(ctx context.Context, URL string) (*dict.SafeDict, error) {
	return New().Load(ctx, URL)
}
