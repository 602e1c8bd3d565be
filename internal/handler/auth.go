package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bookrack/bookrack-go/internal/middleware"
	"github.com/bookrack/bookrack-go/internal/model"
	"github.com/bookrack/bookrack-go/internal/service"
	"github.com/bookrack/bookrack-go/internal/view"
)

// AuthHandler handles the signup, login and signout pages.
type AuthHandler struct {
	service  *service.AuthService
	renderer *view.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, renderer *view.Renderer) *AuthHandler {
	return &AuthHandler{service: svc, renderer: renderer}
}

// HandleSignupForm handles GET /signup requests.
func (h *AuthHandler) HandleSignupForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.renderer, "signup.gohtml", view.FormPage{})
}

// HandleSignup handles POST /signup requests. Validation failures re-render
// the form with inline messages; success redirects to the login page.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, h.renderer, "signup.gohtml", view.FormPage{
			Errors: []string{"Invalid form submission"},
		})
		return
	}

	form := model.SignupForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	msgs, err := h.service.Signup(r.Context(), form)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(msgs) > 0 {
		renderPage(w, h.renderer, "signup.gohtml", view.FormPage{Errors: msgs})
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// HandleLoginForm handles GET /login requests.
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.renderer, "login.gohtml", view.FormPage{})
}

// HandleLogin handles POST /login requests. On success the session token is
// set as an http-only cookie; on failure the page shows a generic message
// regardless of whether the username or the password was wrong.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, h.renderer, "login.gohtml", view.FormPage{
			Errors: []string{"Invalid form submission"},
		})
		return
	}

	form := model.LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	token, err := h.service.Login(r.Context(), form)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			renderPage(w, h.renderer, "login.gohtml", view.FormPage{
				Errors: []string{"Invalid credentials"},
			})
			return
		}
		internalError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// HandleSignout handles POST /signout requests by clearing the session cookie.
func (h *AuthHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}
