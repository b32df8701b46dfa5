// Package storage defines persistence contracts for the project catalog.
package storage

import (
	"context"

	"github.com/louisbranch/portfolio/internal/gallery"
)

// Store persists the project catalog.
type Store interface {
	// ListProjects returns every project in catalog order.
	ListProjects(ctx context.Context) ([]gallery.Project, error)
	// ReplaceProjects swaps the whole catalog for projects.
	ReplaceProjects(ctx context.Context, projects []gallery.Project) error
	Close() error
}
