package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSessionID(t *testing.T) {
	t.Run("issues a cookie for a new visitor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		id := SessionID(w, req)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected a uuid, got %q", id)
		}

		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].Value != id {
			t.Fatalf("expected session cookie %q, got %v", id, cookies)
		}
		if !cookies[0].HttpOnly {
			t.Error("expected an HttpOnly cookie")
		}

		if again := SessionID(w, req); again != id {
			t.Errorf("expected the same session within a request, got %q and %q", id, again)
		}
	})

	t.Run("keeps an existing session", func(t *testing.T) {
		existing := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: existing})
		w := httptest.NewRecorder()

		if id := SessionID(w, req); id != existing {
			t.Errorf("expected %q, got %q", existing, id)
		}
		if len(w.Result().Cookies()) != 0 {
			t.Error("expected no new cookie")
		}
	})

	t.Run("replaces a malformed session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})
		w := httptest.NewRecorder()

		id := SessionID(w, req)
		if id == "not-a-uuid" {
			t.Fatal("expected a fresh session id")
		}
		if len(w.Result().Cookies()) != 1 {
			t.Error("expected a new cookie")
		}
	})
}
