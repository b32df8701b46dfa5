package api

import (
	"net/http"

	"github.com/louisbranch/portfolio/internal/gallery"
	apperrors "github.com/louisbranch/portfolio/internal/platform/errors"
	"github.com/louisbranch/portfolio/internal/platform/httpx"
	module "github.com/louisbranch/portfolio/internal/services/gallery/module"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
)

type handlers struct {
	deps module.Dependencies
}

type projectsResponse struct {
	Category string            `json:"category"`
	Projects []gallery.Project `json:"projects"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

func (h handlers) handleProjects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get(routepath.CategoryParam)
	if gallery.IsAll(category) {
		category = gallery.AllCategory
	}
	_ = httpx.WriteJSON(w, http.StatusOK, projectsResponse{
		Category: category,
		Projects: h.deps.Controller.Render(category),
	})
}

func (h handlers) handleCategories(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, categoriesResponse{
		Categories: h.deps.Controller.Categories(),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "route not found"))
}
