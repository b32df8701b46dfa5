// Package portfolio serves the gallery page, its category fragments, and the
// carousel controls.
package portfolio

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/gallery/module"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
)

// Module provides the browser-facing gallery routes.
type Module struct {
	presenter SlidePresenter
}

// New returns a gallery module that answers carousel moves with JSON patches.
func New() Module { return Module{} }

// NewWithPresenter returns a gallery module using presenter for carousel
// responses.
func NewWithPresenter(presenter SlidePresenter) Module {
	return Module{presenter: presenter}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "portfolio" }

// Mount wires gallery route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Controller == nil {
		return module.Mount{}, errors.New("gallery controller is required")
	}
	if deps.Locales == nil {
		return module.Mount{}, errors.New("locale bundle is required")
	}
	presenter := m.presenter
	if presenter == nil {
		presenter = JSONPresenter{PhotoURL: deps.PhotoURL}
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps, presenter))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
