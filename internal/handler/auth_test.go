package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookrack/bookrack-go/internal/middleware"
	"github.com/bookrack/bookrack-go/internal/view"
)

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error: %v", err)
	}
	return NewAuthHandler(nil, renderer)
}

func TestHandleLoginForm(t *testing.T) {
	h := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	h.HandleLoginForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `action="/login"`) {
		t.Error("login page missing the login form")
	}
}

func TestHandleSignupForm(t *testing.T) {
	h := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	rec := httptest.NewRecorder()
	h.HandleSignupForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `action="/signup"`) {
		t.Error("signup page missing the signup form")
	}
}

func TestHandleSignoutClearsCookie(t *testing.T) {
	h := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	rec := httptest.NewRecorder()
	h.HandleSignout(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("signout did not set the session cookie")
	}
	if sessionCookie.Value != "" || sessionCookie.MaxAge >= 0 {
		t.Errorf("signout cookie = %q maxage=%d, want cleared", sessionCookie.Value, sessionCookie.MaxAge)
	}
}
