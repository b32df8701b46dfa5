package gallery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleProjects() []Project {
	return []Project{
		{ID: 1, Name: "Shop", Category: "web", Photos: []string{"a.png", "b.png"}},
		{ID: 2, Name: "Runner", Category: "mobile", Photos: []string{"c.png"}},
		{ID: 3, Name: "Blog", Category: "web", Photos: []string{"d.png", "e.png", "f.png"}},
		{ID: 4, Name: "Untagged", Photos: []string{"g.png"}},
	}
}

func ids(projects []Project) []int {
	out := make([]int, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterMatchesCategoryInSourceOrder(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	for _, category := range Categories(projects) {
		var want []int
		for _, p := range projects {
			if p.Category == category {
				want = append(want, p.ID)
			}
		}
		if diff := cmp.Diff(want, ids(Filter(projects, category))); diff != "" {
			t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", category, diff)
		}
	}
}

func TestFilterAllReturnsEverything(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	for _, category := range []string{AllCategory, ""} {
		if diff := cmp.Diff(projects, Filter(projects, category)); diff != "" {
			t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", category, diff)
		}
	}
}

func TestFilterIsExactMatch(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	for _, category := range []string{"Web", "web ", "desktop"} {
		if got := Filter(projects, category); len(got) != 0 {
			t.Fatalf("Filter(%q) = %v, want empty", category, ids(got))
		}
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	got := Filter(projects, AllCategory)
	got[0].Name = "changed"
	if projects[0].Name != "Shop" {
		t.Fatalf("source name = %q, want %q", projects[0].Name, "Shop")
	}
}

func TestCategoriesFirstAppearance(t *testing.T) {
	t.Parallel()

	want := []string{"web", "mobile"}
	if diff := cmp.Diff(want, Categories(sampleProjects())); diff != "" {
		t.Fatalf("Categories mismatch (-want +got):\n%s", diff)
	}
}
