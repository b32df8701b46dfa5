package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio/internal/platform/icons"
)

// GalleryID is the DOM id of the gallery container.
const GalleryID = "itens"

// GalleryContent renders the replaceable content of the gallery container.
func GalleryContent(view GalleryView) templ.Component {
	return component(func(ctx context.Context, w *htmlWriter) {
		if len(view.Cards) == 0 {
			w.raw(`<p class="gallery-empty">`)
			w.text(view.Empty)
			w.raw(`</p>`)
			return
		}
		for _, card := range view.Cards {
			w.render(ctx, Card(card))
		}
	})
}

// Card renders one project card.
func Card(card CardView) templ.Component {
	return component(func(_ context.Context, w *htmlWriter) {
		w.raw(`<article`)
		w.attr("id", card.ElementID)
		w.raw(` class="card" data-project="`, strconv.Itoa(card.ProjectID), `"`)
		w.attr("style", BackgroundStyle(card.Photo))
		w.raw(`><span class="card-name">`)
		w.text(card.Name)
		w.raw(`</span>`)
		if len(card.Tags) > 0 {
			w.raw(`<ul class="card-tags">`)
			for _, tag := range card.Tags {
				w.raw(`<li class="card-tag">`)
				w.text(tag)
				w.raw(`</li>`)
			}
			w.raw(`</ul>`)
		}
		carouselButton(w, "prev", card.PrevURL, card.PrevLabel, icons.IDPrevious)
		carouselButton(w, "next", card.NextURL, card.NextLabel, icons.IDNext)
		if card.Link != "" {
			w.raw(`<a class="card-link"`)
			w.attr("href", string(templ.URL(card.Link)))
			w.raw(` target="_blank" rel="noopener noreferrer"`)
			w.attr("aria-label", card.LinkLabel)
			w.raw(`>`, icons.SVG(icons.IDExternalLink), `</a>`)
		}
		w.raw(`</article>`)
	})
}

func carouselButton(w *htmlWriter, action, url, label string, icon icons.ID) {
	w.raw(`<button type="button" class="carousel-`, action, `" data-action="`, action, `"`)
	w.attr("data-url", url)
	w.attr("aria-label", label)
	w.raw(`>`, icons.SVG(icon), `</button>`)
}
