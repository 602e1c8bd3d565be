package model

// Book is a single recommendation inside a genre.
type Book struct {
	ID       int64
	GenreID  int64
	Title    string
	ImageRef string
}

// Genre groups an ordered list of books. Genres are seeded once at startup
// and treated as read-only reference data afterwards.
type Genre struct {
	ID    int64
	Name  string
	Books []Book
}
