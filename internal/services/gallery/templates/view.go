// Package templates renders the gallery's HTML with templ components.
package templates

// PageView provides data for the full gallery page.
type PageView struct {
	Lang        string
	Title       string
	Heading     string
	FilterLabel string
	Filters     []FilterOption
	Languages   []LanguageOption
	Gallery     GalleryView
}

// FilterOption is one category control.
type FilterOption struct {
	Category string
	Label    string
	URL      string
	Active   bool
}

// LanguageOption is one language switch link.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// GalleryView is the content of the gallery container.
type GalleryView struct {
	Cards []CardView
	Empty string
}

// CardView is one project card.
type CardView struct {
	ElementID string
	ProjectID int
	Name      string
	Link      string
	LinkLabel string
	Photo     string
	Tags      []string
	PrevURL   string
	NextURL   string
	PrevLabel string
	NextLabel string
}

// ErrorView provides data for the error page.
type ErrorView struct {
	Lang       string
	StatusCode int
	Title      string
	Body       string
	HomeURL    string
	HomeLabel  string
}
