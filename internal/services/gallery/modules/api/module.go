// Package api serves the loaded catalog as JSON.
package api

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/portfolio/internal/services/gallery/module"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
)

// Module provides read-only catalog API routes.
type Module struct{}

// New returns an API module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires API route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Controller == nil {
		return module.Mount{}, errors.New("gallery controller is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{deps: deps})
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
