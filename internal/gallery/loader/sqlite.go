package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/gallery/storage/sqlite"
)

type sqliteSource struct {
	path string
}

func (s sqliteSource) load(ctx context.Context) ([]gallery.Project, error) {
	// Opening would create an empty database; a missing store is a load failure.
	if _, err := os.Stat(s.path); err != nil {
		return nil, err
	}
	store, err := sqlite.OpenReadOnly(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	defer store.Close()
	return store.ListProjects(ctx)
}
