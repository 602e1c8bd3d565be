package service

import (
	"context"
	"errors"

	"github.com/bookrack/bookrack-go/internal/model"
	"github.com/bookrack/bookrack-go/internal/repository"
)

var ErrGenreNotFound = errors.New("genre not found")

const coverPlaceholder = "/static/covers/placeholder.svg"

// seedGenres is the fixed reference catalog inserted on first start.
var seedGenres = []model.Genre{
	{Name: "Fiction", Books: []model.Book{
		{Title: "The Great Gatsby", ImageRef: coverPlaceholder},
		{Title: "1984", ImageRef: coverPlaceholder},
	}},
	{Name: "Mystery", Books: []model.Book{
		{Title: "The Da Vinci Code", ImageRef: coverPlaceholder},
		{Title: "Gone Girl", ImageRef: coverPlaceholder},
	}},
	{Name: "Romance", Books: []model.Book{
		{Title: "Pride and Prejudice", ImageRef: coverPlaceholder},
		{Title: "Me Before You", ImageRef: coverPlaceholder},
	}},
	{Name: "Drama", Books: []model.Book{
		{Title: "Death of a Salesman", ImageRef: coverPlaceholder},
		{Title: "A Streetcar Named Desire", ImageRef: coverPlaceholder},
	}},
	{Name: "Sci-Fi", Books: []model.Book{
		{Title: "Dune", ImageRef: coverPlaceholder},
		{Title: "Ender's Game", ImageRef: coverPlaceholder},
	}},
}

// CatalogService handles genre browsing and seeding business logic.
type CatalogService struct {
	repo *repository.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Seed inserts the reference catalog if the store is empty.
func (s *CatalogService) Seed(ctx context.Context) error {
	return s.repo.SeedIfEmpty(ctx, seedGenres)
}

// ListGenres returns all genres with their books.
func (s *CatalogService) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.repo.ListGenres(ctx)
}

// Recommendations returns the books of the named genre.
func (s *CatalogService) Recommendations(ctx context.Context, name string) (*model.Genre, error) {
	genre, err := s.repo.FindGenre(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return genre, nil
}
