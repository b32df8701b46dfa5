package templates

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func renderString(t *testing.T, render func(*strings.Builder) error) string {
	t.Helper()
	var b strings.Builder
	if err := render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestCardRendersProjectMarkup(t *testing.T) {
	t.Parallel()

	got := renderString(t, func(b *strings.Builder) error {
		return Card(CardView{
			ElementID: "article-1",
			ProjectID: 1,
			Name:      "Shop <beta>",
			Link:      "https://shop.example",
			LinkLabel: "Open Shop",
			Photo:     "a.png",
			Tags:      []string{"Go", "HTML"},
			PrevURL:   "/projects/1/prev",
			NextURL:   "/projects/1/next",
			PrevLabel: "Previous photo",
			NextLabel: "Next photo",
		}).Render(context.Background(), b)
	})

	for _, want := range []string{
		`<article id="article-1" class="card" data-project="1" style="background-image: url('a.png')">`,
		`<span class="card-name">Shop &lt;beta&gt;</span>`,
		`<li class="card-tag">Go</li><li class="card-tag">HTML</li>`,
		`data-action="prev" data-url="/projects/1/prev"`,
		`data-action="next" data-url="/projects/1/next"`,
		`href="https://shop.example"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestCardSanitizesLinkAndPhoto(t *testing.T) {
	t.Parallel()

	got := renderString(t, func(b *strings.Builder) error {
		return Card(CardView{
			ElementID: "article-2",
			ProjectID: 2,
			Link:      "javascript:alert(1)",
			Photo:     "x.png'); color: red; ('",
		}).Render(context.Background(), b)
	})
	if strings.Contains(got, "javascript:") {
		t.Fatalf("expected unsafe link to be sanitized, got %q", got)
	}
	if !strings.Contains(got, `url('x.png%27); color: red; (%27')`) {
		t.Fatalf("expected quotes in photo to be escaped, got %q", got)
	}
}

func TestGalleryContentEmptyState(t *testing.T) {
	t.Parallel()

	got := renderString(t, func(b *strings.Builder) error {
		return GalleryContent(GalleryView{Empty: "Nothing yet"}).Render(context.Background(), b)
	})
	if got != `<p class="gallery-empty">Nothing yet</p>` {
		t.Fatalf("GalleryContent() = %q", got)
	}
}

func TestPageWrapsGalleryContainer(t *testing.T) {
	t.Parallel()

	got := renderString(t, func(b *strings.Builder) error {
		return Page(PageView{
			Lang:    "pt-BR",
			Title:   "Portfólio",
			Heading: "Projetos",
			Filters: []FilterOption{
				{Category: "all", Label: "Todos", URL: "/gallery?category=all", Active: true},
				{Category: "web", Label: "web", URL: "/gallery?category=web"},
			},
			Languages: []LanguageOption{{Tag: "en-US", Label: "English", URL: "/?lang=en-US"}},
			Gallery:   GalleryView{Cards: []CardView{{ElementID: "article-1", ProjectID: 1, Photo: "a.png"}}},
		}).Render(context.Background(), b)
	})

	for _, want := range []string{
		`<html lang="pt-BR">`,
		`<title>Portfólio</title>`,
		`<button type="button" class="filter active" data-category="all" data-url="/gallery?category=all">Todos</button>`,
		`data-category="web"`,
		`<section id="itens" class="gallery"><article id="article-1"`,
		`src="/static/gallery.js"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	got := renderString(t, func(b *strings.Builder) error {
		return ErrorPage(ErrorView{Lang: "en-US", StatusCode: 404, Title: "Page not found", Body: "Missing", HomeURL: "/", HomeLabel: "Back"}).Render(context.Background(), b)
	})
	for _, want := range []string{`data-status="404"`, `<h1>Page not found</h1>`, `<a href="/">Back</a>`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestBackgroundStyle(t *testing.T) {
	t.Parallel()

	if got := BackgroundStyle("b.png"); got != "background-image: url('b.png')" {
		t.Fatalf("BackgroundStyle() = %q", got)
	}
	if got := BackgroundImage("it's\\x.png"); got != "url('it%27s%5Cx.png')" {
		t.Fatalf("BackgroundImage() = %q", got)
	}
}

func TestCardUsesLucideIcons(t *testing.T) {
	t.Parallel()

	got := renderString(t, func(b *strings.Builder) error {
		return Card(CardView{ElementID: "article-1", ProjectID: 1, Link: "https://x.example"}).Render(context.Background(), b)
	})
	for _, want := range []string{"lucide-chevron-left", "lucide-chevron-right", "lucide-external-link"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

type countingWriter struct {
	writes int
	b      strings.Builder
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.b.Write(p)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestGalleryContentFlushesNestedCardsOnce(t *testing.T) {
	t.Parallel()

	view := GalleryView{Cards: []CardView{
		{ElementID: "article-1", ProjectID: 1, Photo: "a.png"},
		{ElementID: "article-2", ProjectID: 2, Photo: "b.png"},
		{ElementID: "article-3", ProjectID: 3, Photo: "c.png"},
	}}
	var w countingWriter
	if err := GalleryContent(view).Render(context.Background(), &w); err != nil {
		t.Fatalf("render: %v", err)
	}
	if w.writes != 1 {
		t.Fatalf("writes = %d, want 1", w.writes)
	}
	if got := strings.Count(w.b.String(), `<article `); got != 3 {
		t.Fatalf("articles = %d, want 3", got)
	}
}

func TestRenderReportsWriterError(t *testing.T) {
	t.Parallel()

	err := Page(PageView{Lang: "en-US", Title: "Portfolio"}).Render(context.Background(), failingWriter{})
	if err == nil {
		t.Fatal("expected writer error")
	}
}

func TestRenderStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var w countingWriter
	if err := Card(CardView{ElementID: "article-1"}).Render(ctx, &w); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if w.writes != 0 {
		t.Fatalf("writes = %d, want 0", w.writes)
	}
}
