package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/portfolio/internal/gallery"
	module "github.com/louisbranch/portfolio/internal/services/gallery/module"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{
		Controller: gallery.NewController([]gallery.Project{
			{ID: 1, Name: "Shop", Category: "web", Photos: []string{"a.png", "b.png"}},
			{ID: 2, Name: "Runner", Category: "mobile", Photos: []string{"c.png"}},
			{ID: 3, Name: "Blog", Category: "web", Photos: []string{"d.png"}},
		}),
	})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if mount.Prefix != "/api/" {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, "/api/")
	}
	return mount.Handler
}

func getJSON(t *testing.T, h http.Handler, target string, wantStatus int, out any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", target, rec.Code, wantStatus)
	}
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", target, err)
	}
}

func TestMountRequiresController(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("expected missing controller error")
	}
}

func TestProjectsFiltersByCategory(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	tests := []struct {
		target       string
		wantCategory string
		wantIDs      []int
	}{
		{target: "/api/projects", wantCategory: "all", wantIDs: []int{1, 2, 3}},
		{target: "/api/projects?category=all", wantCategory: "all", wantIDs: []int{1, 2, 3}},
		{target: "/api/projects?category=web", wantCategory: "web", wantIDs: []int{1, 3}},
		{target: "/api/projects?category=games", wantCategory: "games", wantIDs: []int{}},
	}
	for _, tc := range tests {
		var resp projectsResponse
		getJSON(t, h, tc.target, http.StatusOK, &resp)
		if resp.Category != tc.wantCategory {
			t.Fatalf("GET %s category = %q, want %q", tc.target, resp.Category, tc.wantCategory)
		}
		got := make([]int, 0, len(resp.Projects))
		for _, p := range resp.Projects {
			got = append(got, p.ID)
		}
		if diff := cmp.Diff(tc.wantIDs, got); diff != "" {
			t.Fatalf("GET %s ids mismatch (-want +got):\n%s", tc.target, diff)
		}
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	var resp categoriesResponse
	getJSON(t, newTestHandler(t), "/api/categories", http.StatusOK, &resp)
	if diff := cmp.Diff([]string{"web", "mobile"}, resp.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownAPIRouteIsJSONNotFound(t *testing.T) {
	t.Parallel()

	var resp map[string]string
	getJSON(t, newTestHandler(t), "/api/missing", http.StatusNotFound, &resp)
	if resp["error"] != "route not found" {
		t.Fatalf("error = %q", resp["error"])
	}
}
