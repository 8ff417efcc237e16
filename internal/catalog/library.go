package catalog

import (
	"slices"

	"movielib/internal/textutil"
)

// ratingFloor is the starting threshold for HighestRated. Only ratings
// strictly above it can win, so a library where every rating is <= 0
// reports no movie.
const ratingFloor = 0.0

// Library is an ordered, mutable sequence of movies. The zero value is an
// empty library ready for use.
type Library struct {
	movies []Movie
}

// NewLibrary returns a library holding movies in the given order. Duplicate
// identities are kept as given; Add is the only path that rejects them.
func NewLibrary(movies ...Movie) *Library {
	return &Library{movies: slices.Clone(movies)}
}

// Len returns the number of movies held.
func (l *Library) Len() int {
	return len(l.movies)
}

// Movies returns a snapshot of the library in insertion order.
func (l *Library) Movies() []Movie {
	return slices.Clone(l.movies)
}

// Titles lists every title in insertion order.
func (l *Library) Titles() []string {
	titles := make([]string, 0, len(l.movies))
	for _, movie := range l.movies {
		titles = append(titles, movie.title)
	}
	return titles
}

// FindByTitle returns the first movie whose title matches after trimming and
// case folding both sides.
func (l *Library) FindByTitle(title string) (Movie, bool) {
	for _, movie := range l.movies {
		if textutil.SameTitle(movie.title, title) {
			return movie, true
		}
	}
	return Movie{}, false
}

// FindByActor lists, in insertion order, the titles of movies whose cast
// contains actor exactly. Matching is case-sensitive and untrimmed.
func (l *Library) FindByActor(actor string) []string {
	titles := make([]string, 0)
	for _, movie := range l.movies {
		if movie.HasActor(actor) {
			titles = append(titles, movie.title)
		}
	}
	return titles
}

// HighestRated returns the title of the movie with the greatest rating.
// Ties keep the earliest movie. The running maximum starts at zero, so the
// boolean is false both for an empty library and for one whose ratings are
// all zero or negative.
func (l *Library) HighestRated() (string, bool) {
	best := ratingFloor
	title := ""
	found := false
	for _, movie := range l.movies {
		if movie.rating > best {
			best = movie.rating
			title = movie.title
			found = true
		}
	}
	return title, found
}

// Add appends movie unless one with the same exact title and year exists.
func (l *Library) Add(movie Movie) AddResult {
	if l.indexOf(movie.title, movie.year) >= 0 {
		return DuplicateExists
	}
	l.movies = append(l.movies, movie)
	return Added
}

// Remove deletes the first movie with exactly this title and year.
func (l *Library) Remove(title string, year int) RemoveResult {
	idx := l.indexOf(title, year)
	if idx < 0 {
		return NotFound
	}
	l.movies = slices.Delete(l.movies, idx, idx+1)
	return Removed
}

// Replace swaps the whole contents of l for those of other, as a
// successful load does.
func (l *Library) Replace(other *Library) {
	if other == nil {
		l.movies = nil
		return
	}
	l.movies = slices.Clone(other.movies)
}

func (l *Library) indexOf(title string, year int) int {
	return slices.IndexFunc(l.movies, func(m Movie) bool {
		return m.SameIdentity(title, year)
	})
}
