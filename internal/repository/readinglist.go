package repository

import (
	"context"
	"database/sql"

	"github.com/bookrack/bookrack-go/internal/model"
)

// ReadingListRepository handles reading-list entry persistence operations.
type ReadingListRepository struct {
	db *sql.DB
}

// NewReadingListRepository creates a new ReadingListRepository.
func NewReadingListRepository(db *sql.DB) *ReadingListRepository {
	return &ReadingListRepository{db: db}
}

// ListByUser retrieves a user's reading list in the order books were added.
func (r *ReadingListRepository) ListByUser(ctx context.Context, userID int64) ([]model.ReadingListEntry, error) {
	query := `SELECT id, user_id, book_title, comment, rating, created_at, updated_at
		FROM reading_list_entries WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.ReadingListEntry
	for rows.Next() {
		var e model.ReadingListEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.BookTitle, &e.Comment,
			&e.Rating, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Add inserts an entry for the (user, book title) pair. The pair is unique
// in the store; adding a book already on the list leaves the existing entry
// untouched, review included.
func (r *ReadingListRepository) Add(ctx context.Context, userID int64, bookTitle string) error {
	query := `INSERT INTO reading_list_entries (user_id, book_title, comment)
		VALUES (?, ?, '')
		ON DUPLICATE KEY UPDATE id = id`

	_, err := r.db.ExecContext(ctx, query, userID, bookTitle)
	return err
}

// Remove deletes the entry for the (user, book title) pair. An absent entry
// is a silent no-op, not an error.
func (r *ReadingListRepository) Remove(ctx context.Context, userID int64, bookTitle string) error {
	query := `DELETE FROM reading_list_entries WHERE user_id = ? AND book_title = ?`

	_, err := r.db.ExecContext(ctx, query, userID, bookTitle)
	return err
}

// SetReview updates the comment and rating of an existing entry in place.
// If no entry exists for the pair the update silently has no effect; a
// review never creates an entry.
func (r *ReadingListRepository) SetReview(ctx context.Context, userID int64, bookTitle, comment string, rating int) error {
	query := `UPDATE reading_list_entries SET comment = ?, rating = ?
		WHERE user_id = ? AND book_title = ?`

	_, err := r.db.ExecContext(ctx, query, comment, rating, userID, bookTitle)
	return err
}
