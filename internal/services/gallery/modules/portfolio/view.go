package portfolio

import (
	"github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
	"github.com/louisbranch/portfolio/internal/services/gallery/templates"
)

func (h handlers) pageView(loc i18n.Localizer, lang, category string) templates.PageView {
	return templates.PageView{
		Lang:        lang,
		Title:       loc.Sprintf("gallery.title"),
		Heading:     loc.Sprintf("gallery.heading"),
		FilterLabel: loc.Sprintf("gallery.filter.label"),
		Filters:     h.filterOptions(loc, category),
		Languages:   h.languageOptions(loc, lang, category),
		Gallery:     h.galleryView(loc, category),
	}
}

func (h handlers) filterOptions(loc i18n.Localizer, selected string) []templates.FilterOption {
	categories := h.deps.Controller.Categories()
	options := make([]templates.FilterOption, 0, len(categories)+1)
	options = append(options, templates.FilterOption{
		Category: gallery.AllCategory,
		Label:    loc.Sprintf("gallery.filter.all"),
		URL:      routepath.GalleryFor(gallery.AllCategory),
		Active:   gallery.IsAll(selected),
	})
	for _, category := range categories {
		options = append(options, templates.FilterOption{
			Category: category,
			Label:    category,
			URL:      routepath.GalleryFor(category),
			Active:   category == selected,
		})
	}
	return options
}

func (h handlers) languageOptions(loc i18n.Localizer, current, category string) []templates.LanguageOption {
	tags := h.deps.Locales.Tags()
	options := make([]templates.LanguageOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, templates.LanguageOption{
			Tag:    tag.String(),
			Label:  loc.Sprintf("gallery.lang." + tag.String()),
			URL:    routepath.RootFor(category, tag.String()),
			Active: tag.String() == current,
		})
	}
	return options
}

// galleryView renders the cards for category. Every render shows each card's
// first photo; carousel positions are kept but not redrawn.
func (h handlers) galleryView(loc i18n.Localizer, category string) templates.GalleryView {
	projects := h.deps.Controller.Render(category)
	view := templates.GalleryView{
		Cards: make([]templates.CardView, 0, len(projects)),
		Empty: loc.Sprintf("gallery.empty"),
	}
	for _, p := range projects {
		view.Cards = append(view.Cards, templates.CardView{
			ElementID: p.ElementID(),
			ProjectID: p.ID,
			Name:      p.Name,
			Link:      p.Link,
			LinkLabel: loc.Sprintf("gallery.link.open", p.Name),
			Photo:     h.deps.PhotoURL(p.CoverPhoto()),
			Tags:      p.Linguagems,
			PrevURL:   routepath.ProjectPrev(p.ID),
			NextURL:   routepath.ProjectNext(p.ID),
			PrevLabel: loc.Sprintf("gallery.carousel.prev"),
			NextLabel: loc.Sprintf("gallery.carousel.next"),
		})
	}
	return view
}
