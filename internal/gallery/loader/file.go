package loader

import (
	"context"
	"os"

	"github.com/louisbranch/portfolio/internal/gallery"
)

type fileSource struct {
	path string
}

func (s fileSource) load(ctx context.Context) ([]gallery.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatOf(s.path))
}
