package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestReadRejectsMalformedValues(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "  ", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: Name, Value: value})
		if _, ok := Read(req); ok {
			t.Fatalf("Read(%q) ok = true, want false", value)
		}
	}
	if _, ok := Read(nil); ok {
		t.Fatal("Read(nil) ok = true, want false")
	}
}

func TestEnsureReusesExistingSession(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: id})
	rec := httptest.NewRecorder()

	if got := Ensure(rec, req); got != id {
		t.Fatalf("Ensure() = %q, want %q", got, id)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("cookies = %v, want none", cookies)
	}
}

func TestEnsureIssuesNewSession(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://gallery.example/", nil)
	rec := httptest.NewRecorder()

	id := Ensure(rec, req)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("Ensure() = %q, want uuid: %v", id, err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %v, want one", cookies)
	}
	cookie := cookies[0]
	if cookie.Name != Name || cookie.Value != id {
		t.Fatalf("cookie = %s=%s, want %s=%s", cookie.Name, cookie.Value, Name, id)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Fatalf("cookie flags httpOnly=%v secure=%v, want both", cookie.HttpOnly, cookie.Secure)
	}
}
