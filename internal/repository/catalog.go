package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bookrack/bookrack-go/internal/model"
)

var ErrGenreNotFound = errors.New("genre not found")

// CatalogRepository handles genre and book persistence operations.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// SeedIfEmpty inserts the reference genre set only when the catalog is
// currently empty. Existing data is never overwritten, so running it on
// every startup is safe.
func (r *CatalogRepository) SeedIfEmpty(ctx context.Context, genres []model.Genre) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, g := range genres {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO genres (name, position) VALUES (?, ?)`, g.Name, i)
		if err != nil {
			return err
		}

		genreID, err := result.LastInsertId()
		if err != nil {
			return err
		}

		for j, b := range g.Books {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO books (genre_id, title, image_ref, position) VALUES (?, ?, ?, ?)`,
				genreID, b.Title, b.ImageRef, j); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// ListGenres retrieves all genres with their books, both in seed order.
func (r *CatalogRepository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []model.Genre
	index := make(map[int64]int)
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		index[g.ID] = len(genres)
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	bookRows, err := r.db.QueryContext(ctx,
		`SELECT id, genre_id, title, image_ref FROM books ORDER BY genre_id, position`)
	if err != nil {
		return nil, err
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var b model.Book
		if err := bookRows.Scan(&b.ID, &b.GenreID, &b.Title, &b.ImageRef); err != nil {
			return nil, err
		}
		if i, ok := index[b.GenreID]; ok {
			genres[i].Books = append(genres[i].Books, b)
		}
	}

	return genres, bookRows.Err()
}

// FindGenre retrieves a single genre by name, with its books in seed order.
func (r *CatalogRepository) FindGenre(ctx context.Context, name string) (*model.Genre, error) {
	genre := &model.Genre{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM genres WHERE name = ?`, name).Scan(&genre.ID, &genre.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, genre_id, title, image_ref FROM books WHERE genre_id = ? ORDER BY position`,
		genre.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.GenreID, &b.Title, &b.ImageRef); err != nil {
			return nil, err
		}
		genre.Books = append(genre.Books, b)
	}

	return genre, rows.Err()
}
