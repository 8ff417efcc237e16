package catalog

import "slices"

// Movie is a single catalog record. Values are immutable once built.
type Movie struct {
	title    string
	year     int
	director string
	actors   []string
	rating   float64
}

// NewMovie builds a Movie. No validation is applied; malformed values such
// as a negative year are stored as given.
func NewMovie(title string, year int, director string, actors []string, rating float64) Movie {
	return Movie{
		title:    title,
		year:     year,
		director: director,
		actors:   slices.Clone(actors),
		rating:   rating,
	}
}

func (m Movie) Title() string    { return m.title }
func (m Movie) Year() int        { return m.year }
func (m Movie) Director() string { return m.director }
func (m Movie) Rating() float64  { return m.rating }

// Actors returns a copy of the cast in stored order.
func (m Movie) Actors() []string {
	return slices.Clone(m.actors)
}

// HasActor reports whether name appears verbatim in the cast.
func (m Movie) HasActor(name string) bool {
	return slices.Contains(m.actors, name)
}

// SameIdentity reports whether m is the movie identified by title and year.
// Both must match exactly; no other field participates.
func (m Movie) SameIdentity(title string, year int) bool {
	return m.title == title && m.year == year
}

// Equal reports whether every field of m and other matches.
func (m Movie) Equal(other Movie) bool {
	return m.title == other.title &&
		m.year == other.year &&
		m.director == other.director &&
		m.rating == other.rating &&
		slices.Equal(m.actors, other.actors)
}
