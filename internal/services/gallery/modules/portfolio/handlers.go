package portfolio

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/gallery"
	apperrors "github.com/louisbranch/portfolio/internal/platform/errors"
	"github.com/louisbranch/portfolio/internal/platform/httpx"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	module "github.com/louisbranch/portfolio/internal/services/gallery/module"
	"github.com/louisbranch/portfolio/internal/services/gallery/platform/sessioncookie"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
	"github.com/louisbranch/portfolio/internal/services/gallery/templates"
)

type handlers struct {
	deps      module.Dependencies
	presenter SlidePresenter
}

func newHandlers(deps module.Dependencies, presenter SlidePresenter) handlers {
	return handlers{deps: deps, presenter: presenter}
}

// handleRoot renders the full page. A full load starts the visitor's
// carousel over, like a browser reload.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.deps.Locales.Resolve(w, r)
	category := categoryParam(r)
	if httpx.IsHTMXRequest(r) {
		h.writeComponent(w, r, http.StatusOK, templates.GalleryContent(h.galleryView(loc, category)))
		return
	}

	session := sessioncookie.Ensure(w, r)
	h.deps.Controller.Reset(session)
	h.writeComponent(w, r, http.StatusOK, templates.Page(h.pageView(loc, tag.String(), category)))
}

// handleGallery renders the replacement content for the gallery container.
func (h handlers) handleGallery(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.deps.Locales.Resolve(w, r)
	h.writeComponent(w, r, http.StatusOK, templates.GalleryContent(h.galleryView(loc, categoryParam(r))))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"projects": len(h.deps.Controller.Projects()),
	})
}

func (h handlers) handleNext(w http.ResponseWriter, r *http.Request) {
	h.handleMove(w, r, h.deps.Controller.Advance)
}

func (h handlers) handlePrev(w http.ResponseWriter, r *http.Request) {
	h.handleMove(w, r, h.deps.Controller.Retreat)
}

func (h handlers) handleMove(w http.ResponseWriter, r *http.Request, move func(session string, id int) (gallery.Slide, bool)) {
	id, err := strconv.Atoi(strings.TrimSpace(r.PathValue("id")))
	if err != nil {
		loc, _ := h.deps.Locales.Resolve(w, r)
		h.writeJSONError(w, loc, apperrors.EK(apperrors.KindInvalidInput, "gallery.error.invalid_project_id", "project id must be a number"))
		return
	}
	// Only a page load issues a session; cookieless moves keep no state.
	session, _ := sessioncookie.Read(r)
	slide, ok := move(session, id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.presenter.Present(w, r, slide); err != nil {
		log.Printf("present slide project=%d err=%v", id, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.deps.Locales.Resolve(w, r)
	h.writeErrorPage(w, r, loc, tag.String(), http.StatusNotFound)
}

func (h handlers) writeComponent(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		log.Printf("render page path=%s err=%v", r.URL.Path, err)
		loc, tag := h.deps.Locales.Resolve(w, r)
		h.writeErrorPage(w, r, loc, tag.String(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h handlers) writeErrorPage(w http.ResponseWriter, r *http.Request, loc i18n.Localizer, lang string, status int) {
	view := templates.ErrorView{
		Lang:       lang,
		StatusCode: status,
		HomeURL:    routepath.Root,
		HomeLabel:  loc.Sprintf("gallery.error.home"),
	}
	if status == http.StatusNotFound {
		view.Title = loc.Sprintf("gallery.error.not_found.title")
		view.Body = loc.Sprintf("gallery.error.not_found.body")
	} else {
		view.Title = loc.Sprintf("gallery.error.internal.title")
		view.Body = loc.Sprintf("gallery.error.internal.body")
	}
	var buf bytes.Buffer
	if err := templates.ErrorPage(view).Render(httpx.RequestContext(r), &buf); err != nil {
		log.Printf("render error page status=%d err=%v", status, err)
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h handlers) writeJSONError(w http.ResponseWriter, loc i18n.Localizer, err error) {
	message := err.Error()
	if key := apperrors.LocalizationKey(err); key != "" && loc != nil {
		message = loc.Sprintf(key)
	}
	_ = httpx.WriteJSON(w, apperrors.HTTPStatus(err), map[string]any{"error": message})
}

func categoryParam(r *http.Request) string {
	return r.URL.Query().Get(routepath.CategoryParam)
}
