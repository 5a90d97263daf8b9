package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie identifies a browser's cart
const SessionCookie = "jupiter_session"

// SessionID returns the request's session id, issuing a new session cookie
// when the request has none. Call it before writing the response body.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// later reads within the same request see the new session
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	return id
}
