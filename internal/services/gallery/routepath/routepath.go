// Package routepath owns the gallery service's URL layout.
package routepath

import (
	"net/url"
	"strconv"

	"github.com/louisbranch/portfolio/internal/platform/i18n"
)

const (
	Root           = "/"
	Gallery        = "/gallery"
	Health         = "/up"
	StaticPrefix   = "/static/"
	APIPrefix      = "/api/"
	APIProjects    = "/api/projects"
	APICategories  = "/api/categories"
	ProjectsPrefix = "/projects/"

	ProjectNextPattern = "/projects/{id}/next"
	ProjectPrevPattern = "/projects/{id}/prev"

	CategoryParam = "category"
	LangParam     = i18n.LangParam
)

// GalleryFor returns the gallery fragment URL for category.
func GalleryFor(category string) string {
	return withCategory(Gallery, category)
}

// RootFor returns the full page URL for category in lang. Empty values are
// left out of the query.
func RootFor(category, lang string) string {
	query := url.Values{}
	if category != "" {
		query.Set(CategoryParam, category)
	}
	if lang != "" {
		query.Set(LangParam, lang)
	}
	if len(query) == 0 {
		return Root
	}
	return Root + "?" + query.Encode()
}

// ProjectNext returns the advance URL for project id.
func ProjectNext(id int) string {
	return ProjectsPrefix + strconv.Itoa(id) + "/next"
}

// ProjectPrev returns the retreat URL for project id.
func ProjectPrev(id int) string {
	return ProjectsPrefix + strconv.Itoa(id) + "/prev"
}

// Static returns the URL of an embedded static asset.
func Static(name string) string {
	return StaticPrefix + name
}

func withCategory(path, category string) string {
	if category == "" {
		return path
	}
	return path + "?" + url.Values{CategoryParam: {category}}.Encode()
}
