package view

import "github.com/bookrack/bookrack-go/internal/model"

// FormPage is the data for the signup and login pages.
type FormPage struct {
	Errors []string
}

// DashboardPage is the data for the dashboard page.
type DashboardPage struct {
	Genres      []model.Genre
	ReadingList []model.ReadingListEntry
}

// RecommendationsPage is the data for the genre recommendations page.
type RecommendationsPage struct {
	Genre model.Genre
}
