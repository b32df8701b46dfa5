package portfolio

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/gallery/templates"
)

// SlidePresenter applies a carousel move to the HTTP response.
type SlidePresenter interface {
	Present(w http.ResponseWriter, r *http.Request, slide gallery.Slide) error
}

// Patch describes the single style change a carousel move makes on the page.
type Patch struct {
	Element    string `json:"element"`
	Index      int    `json:"index"`
	Photo      string `json:"photo"`
	Background string `json:"background"`
	Style      string `json:"style"`
}

// NewPatch builds the patch for slide with photo already resolved.
func NewPatch(slide gallery.Slide, photo string) Patch {
	return Patch{
		Element:    slide.Element(),
		Index:      slide.Index,
		Photo:      photo,
		Background: templates.BackgroundImage(photo),
		Style:      templates.BackgroundStyle(photo),
	}
}

// JSONPresenter writes carousel moves as JSON.
type JSONPresenter struct {
	PhotoURL func(string) string
}

// Present writes the patch for slide.
func (p JSONPresenter) Present(w http.ResponseWriter, _ *http.Request, slide gallery.Slide) error {
	photo := slide.Photo
	if p.PhotoURL != nil {
		photo = p.PhotoURL(photo)
	}
	return httpx.WriteJSON(w, http.StatusOK, NewPatch(slide, photo))
}
