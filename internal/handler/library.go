package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bookrack/bookrack-go/internal/middleware"
	"github.com/bookrack/bookrack-go/internal/model"
	"github.com/bookrack/bookrack-go/internal/service"
	"github.com/bookrack/bookrack-go/internal/view"
)

// LibraryHandler handles the dashboard, genre browsing and reading-list pages.
type LibraryHandler struct {
	catalog  *service.CatalogService
	list     *service.ReadingListService
	renderer *view.Renderer
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(catalog *service.CatalogService, list *service.ReadingListService, renderer *view.Renderer) *LibraryHandler {
	return &LibraryHandler{catalog: catalog, list: list, renderer: renderer}
}

// HandleDashboard handles GET /dashboard requests.
func (h *LibraryHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	genres, err := h.catalog.ListGenres(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	entries, err := h.list.List(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	renderPage(w, h.renderer, "dashboard.gohtml", view.DashboardPage{
		Genres:      genres,
		ReadingList: entries,
	})
}

// HandleSelectGenre handles POST /select-genre requests, rendering the
// chosen genre's recommendations. An unknown genre goes back to the dashboard.
func (h *LibraryHandler) HandleSelectGenre(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	genre, err := h.catalog.Recommendations(r.Context(), r.PostFormValue("genre"))
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		internalError(w, err)
		return
	}

	renderPage(w, h.renderer, "recommendations.gohtml", view.RecommendationsPage{
		Genre: *genre,
	})
}

// HandleAddToList handles POST /add-to-list requests.
func (h *LibraryHandler) HandleAddToList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	err := h.list.Add(r.Context(), userID, r.PostFormValue("bookTitle"))
	if err != nil && !errors.Is(err, service.ErrBookTitleRequired) {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// HandleRemoveFromList handles POST /remove-from-list requests. Removing a
// book that is not on the list still redirects to the dashboard.
func (h *LibraryHandler) HandleRemoveFromList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	err := h.list.Remove(r.Context(), userID, r.PostFormValue("bookTitle"))
	if err != nil && !errors.Is(err, service.ErrBookTitleRequired) {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// HandleAddReview handles POST /add-review requests. The review only lands
// on an entry that already exists; invalid input redirects without writing.
func (h *LibraryHandler) HandleAddReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	form := model.ReviewForm{
		BookTitle: r.PostFormValue("bookTitle"),
		Comment:   r.PostFormValue("comment"),
		Rating:    rating,
	}

	err := h.list.Review(r.Context(), userID, form)
	if err != nil &&
		!errors.Is(err, service.ErrBookTitleRequired) &&
		!errors.Is(err, service.ErrRatingOutOfRange) {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
