package portfolio

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Gallery, h.handleGallery)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)

	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectNextPattern, h.handleNext)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectNextPattern, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectPrevPattern, h.handlePrev)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectPrevPattern, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
