package service

import (
	"strings"
	"testing"
)

func TestSeedGenresShape(t *testing.T) {
	if len(seedGenres) != 5 {
		t.Fatalf("seedGenres has %d genres, want 5", len(seedGenres))
	}

	seen := make(map[string]bool)
	for _, g := range seedGenres {
		if g.Name == "" {
			t.Error("seed genre with empty name")
		}
		if seen[g.Name] {
			t.Errorf("duplicate seed genre %q", g.Name)
		}
		seen[g.Name] = true

		if len(g.Books) != 2 {
			t.Errorf("genre %q has %d books, want 2", g.Name, len(g.Books))
		}
		for _, b := range g.Books {
			if b.Title == "" {
				t.Errorf("genre %q has a book with empty title", g.Name)
			}
			if !strings.HasPrefix(b.ImageRef, "/static/") {
				t.Errorf("book %q image ref %q is not a portable static path", b.Title, b.ImageRef)
			}
		}
	}
}
