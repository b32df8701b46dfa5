package api

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIProjects, h.handleProjects)
	mux.HandleFunc(http.MethodGet+" "+routepath.APICategories, h.handleCategories)
	mux.HandleFunc(routepath.APIPrefix+"{rest...}", h.handleNotFound)
}
