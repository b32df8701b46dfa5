package gallery

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/platform/httpx"
)

func testConfig() Config {
	return Config{
		HTTPAddr: "127.0.0.1:0",
		Controller: domain.NewController([]domain.Project{
			{ID: 1, Name: "Shop", Category: "web", Photos: []string{"a.png", "b.png"}},
			{ID: 2, Name: "Runner", Category: "mobile", Photos: []string{"c.png"}},
		}),
	}
}

func TestNewHandlerRequiresController(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{}); err == nil {
		t.Fatal("expected missing controller error")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = " "
	if _, err := NewServer(context.Background(), cfg); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestHandlerServesModulesAndStatic(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(testConfig())
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	tests := []struct {
		path        string
		wantStatus  int
		wantContent string
	}{
		{path: "/", wantStatus: http.StatusOK, wantContent: `id="itens"`},
		{path: "/gallery?category=mobile", wantStatus: http.StatusOK, wantContent: "article-2"},
		{path: "/api/projects?category=web", wantStatus: http.StatusOK, wantContent: `"id":1`},
		{path: "/static/gallery.js", wantStatus: http.StatusOK, wantContent: "itens"},
		{path: "/static/gallery.css", wantStatus: http.StatusOK, wantContent: ".card"},
		{path: "/up", wantStatus: http.StatusOK, wantContent: `"status":"ok"`},
		{path: "/nope", wantStatus: http.StatusNotFound, wantContent: `data-status="404"`},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != tc.wantStatus {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rec.Code, tc.wantStatus)
		}
		if !strings.Contains(rec.Body.String(), tc.wantContent) {
			t.Fatalf("GET %s: expected %q in body", tc.path, tc.wantContent)
		}
		if rec.Header().Get(httpx.RequestIDHeader) == "" {
			t.Fatalf("GET %s: missing request id header", tc.path)
		}
	}
}

func TestHandlerRecoversZeroPhotoPanic(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Controller = domain.NewController([]domain.Project{{ID: 5, Name: "Empty", Category: "web"}})
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/projects/5/next", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()

	cfg := testConfig()
	cfg.HTTPAddr = addr
	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/up")
		if err == nil {
			_ = resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shutdown")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var srv *Server
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
	srv.Close()
	if srv.Addr() != "" {
		t.Fatal("expected empty addr")
	}
}
