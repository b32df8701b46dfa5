// Package sessioncookie centralizes gallery session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Name is the gallery session cookie name.
const Name = "portfolio_gallery"

// Read returns the session id when the request carries a well-formed one.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if _, err := uuid.Parse(value); err != nil {
		return "", false
	}
	return value, true
}

// Ensure returns the request's session id, issuing a new one when absent.
func Ensure(w http.ResponseWriter, r *http.Request) string {
	if id, ok := Read(r); ok {
		return id
	}
	id := uuid.NewString()
	Write(w, r, id)
	return id
}

// Write sets the session cookie.
func Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
