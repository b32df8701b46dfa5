// Package module defines the contract between gallery feature modules and the
// root handler.
package module

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/platform/assets/imagecdn"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
)

// PhotoWidthPX is the delivery width requested for card photos.
const PhotoWidthPX = 960

// Dependencies carries shared state into feature modules.
type Dependencies struct {
	Controller *gallery.Controller
	Locales    *i18n.Bundle
	Assets     imagecdn.CDN
}

// PhotoURL resolves a catalog photo through the configured asset CDN.
func (d Dependencies) PhotoURL(photo string) string {
	return d.Assets.PhotoURL(photo, PhotoWidthPX)
}

// Mount is one module's mounted handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one mountable HTTP feature.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
