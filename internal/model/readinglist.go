package model

import "time"

// ReadingListEntry is one book on a user's reading list. Comment and Rating
// are empty until the user reviews the entry; a zero rating means unrated.
type ReadingListEntry struct {
	ID        int64
	UserID    int64
	BookTitle string
	Comment   string
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewForm carries the submitted review fields for an existing entry.
type ReviewForm struct {
	BookTitle string
	Comment   string
	Rating    int
}
