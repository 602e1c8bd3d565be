package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bookrack/bookrack-go/internal/model"
	"github.com/bookrack/bookrack-go/internal/repository"
)

var (
	ErrBookTitleRequired = errors.New("book title is required")
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
)

// ReadingListService handles reading-list business logic.
type ReadingListService struct {
	repo *repository.ReadingListRepository
}

// NewReadingListService creates a new ReadingListService.
func NewReadingListService(repo *repository.ReadingListRepository) *ReadingListService {
	return &ReadingListService{repo: repo}
}

// List returns the user's reading list in the order books were added.
func (s *ReadingListService) List(ctx context.Context, userID int64) ([]model.ReadingListEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add puts a book on the user's reading list. Adding a book that is already
// on the list leaves the existing entry untouched.
func (s *ReadingListService) Add(ctx context.Context, userID int64, bookTitle string) error {
	bookTitle = strings.TrimSpace(bookTitle)
	if bookTitle == "" {
		return ErrBookTitleRequired
	}
	return s.repo.Add(ctx, userID, bookTitle)
}

// Remove takes a book off the user's reading list. Removing a book that is
// not on the list is a silent no-op.
func (s *ReadingListService) Remove(ctx context.Context, userID int64, bookTitle string) error {
	bookTitle = strings.TrimSpace(bookTitle)
	if bookTitle == "" {
		return ErrBookTitleRequired
	}
	return s.repo.Remove(ctx, userID, bookTitle)
}

// Review sets the comment and rating on an existing entry. A zero rating
// means unrated; anything else must fall within 1-5. Reviewing a book that
// is not on the list silently changes nothing.
func (s *ReadingListService) Review(ctx context.Context, userID int64, form model.ReviewForm) error {
	bookTitle := strings.TrimSpace(form.BookTitle)
	if bookTitle == "" {
		return ErrBookTitleRequired
	}
	if form.Rating != 0 && (form.Rating < 1 || form.Rating > 5) {
		return ErrRatingOutOfRange
	}
	return s.repo.SetReview(ctx, userID, bookTitle, form.Comment, form.Rating)
}
