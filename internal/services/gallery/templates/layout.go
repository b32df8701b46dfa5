package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
)

// Page renders the full gallery document.
func Page(view PageView) templ.Component {
	return component(func(ctx context.Context, w *htmlWriter) {
		head(w, view.Lang, view.Title)
		w.raw(`<header class="page-header"><h1>`)
		w.text(view.Heading)
		w.raw(`</h1>`)
		if len(view.Languages) > 0 {
			w.raw(`<nav class="lang-switch">`)
			for _, lang := range view.Languages {
				w.raw(`<a class="`, activeClass("lang", lang.Active), `"`)
				w.attr("hreflang", lang.Tag)
				w.attr("href", lang.URL)
				w.raw(`>`)
				w.text(lang.Label)
				w.raw(`</a>`)
			}
			w.raw(`</nav>`)
		}
		w.raw(`</header><main><nav class="filters"`)
		w.attr("aria-label", view.FilterLabel)
		w.raw(`>`)
		for _, filter := range view.Filters {
			w.raw(`<button type="button" class="`, activeClass("filter", filter.Active), `"`)
			w.attr("data-category", filter.Category)
			w.attr("data-url", filter.URL)
			w.raw(`>`)
			w.text(filter.Label)
			w.raw(`</button>`)
		}
		w.raw(`</nav><section id="`, GalleryID, `" class="gallery">`)
		w.render(ctx, GalleryContent(view.Gallery))
		w.raw(`</section></main></body></html>`)
	})
}

// ErrorPage renders a standalone error document.
func ErrorPage(view ErrorView) templ.Component {
	return component(func(_ context.Context, w *htmlWriter) {
		head(w, view.Lang, view.Title)
		w.raw(`<main class="error-state" data-status="`, strconv.Itoa(view.StatusCode), `"><h1>`)
		w.text(view.Title)
		w.raw(`</h1><p>`)
		w.text(view.Body)
		w.raw(`</p>`)
		if view.HomeURL != "" {
			w.raw(`<a`)
			w.attr("href", view.HomeURL)
			w.raw(`>`)
			w.text(view.HomeLabel)
			w.raw(`</a>`)
		}
		w.raw(`</main></body></html>`)
	})
}

func head(w *htmlWriter, lang, title string) {
	w.raw(`<!DOCTYPE html><html`)
	w.attr("lang", lang)
	w.raw(`><head><meta charset="utf-8">`)
	w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	w.raw(`<title>`)
	w.text(title)
	w.raw(`</title>`)
	w.raw(`<link rel="stylesheet" href="`, routepath.Static("gallery.css"), `">`)
	w.raw(`<script src="`, routepath.Static("gallery.js"), `" defer></script>`)
	w.raw(`</head><body>`)
}

func activeClass(base string, active bool) string {
	if active {
		return base + " active"
	}
	return base
}
