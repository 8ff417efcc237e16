package catalogfile

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"movielib/internal/catalog"
)

const (
	// FieldDelimiter separates the five fields of a record.
	FieldDelimiter = ";"
	// ActorDelimiter separates actor names inside the actors field.
	ActorDelimiter = ","

	fieldCount = 5
)

// ErrFieldCount reports a line that does not split into exactly five fields.
var ErrFieldCount = errors.New("wrong field count")

// ErrDelimiterInField reports a value that would not survive an encode and
// decode because it contains a delimiter.
var ErrDelimiterInField = errors.New("field contains a delimiter")

// ParseError describes a catalog line that could not be decoded.
type ParseError struct {
	// Line is the 1-based line number, or 0 when decoding a standalone line.
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: parse movie %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("parse movie %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode parses one catalog line. On failure the returned error is a
// *ParseError and the Movie is the zero value.
//
// The actors field is split on ',' as-is, so an empty field decodes to a
// single empty actor name rather than an empty cast.
func Decode(line string) (catalog.Movie, error) {
	return decodeLine(0, line)
}

func decodeLine(lineNo int, line string) (catalog.Movie, error) {
	fail := func(err error) (catalog.Movie, error) {
		return catalog.Movie{}, &ParseError{Line: lineNo, Text: line, Err: err}
	}

	fields := strings.Split(line, FieldDelimiter)
	if len(fields) != fieldCount {
		return fail(fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), fieldCount))
	}

	title := strings.TrimSpace(fields[0])
	year, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return fail(fmt.Errorf("year: %w", err))
	}
	director := strings.TrimSpace(fields[2])

	rawActors := strings.Split(fields[3], ActorDelimiter)
	actors := make([]string, 0, len(rawActors))
	for _, actor := range rawActors {
		actors = append(actors, strings.TrimSpace(actor))
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return fail(fmt.Errorf("rating: %w", err))
	}

	return catalog.NewMovie(title, year, director, actors, rating), nil
}

// Encode renders movie as a single catalog line without a trailing newline.
func Encode(movie catalog.Movie) string {
	var b strings.Builder
	b.WriteString(movie.Title())
	b.WriteString(FieldDelimiter)
	b.WriteString(strconv.Itoa(movie.Year()))
	b.WriteString(FieldDelimiter)
	b.WriteString(movie.Director())
	b.WriteString(FieldDelimiter)
	b.WriteString(strings.Join(movie.Actors(), ActorDelimiter))
	b.WriteString(FieldDelimiter)
	b.WriteString(FormatRating(movie.Rating()))
	return b.String()
}

// CheckFields reports which text field of movie would be split apart by
// Encode. The format has no escaping, so such a movie cannot be stored.
func CheckFields(movie catalog.Movie) error {
	if strings.Contains(movie.Title(), FieldDelimiter) {
		return fmt.Errorf("title %q: %w", movie.Title(), ErrDelimiterInField)
	}
	if strings.Contains(movie.Director(), FieldDelimiter) {
		return fmt.Errorf("director %q: %w", movie.Director(), ErrDelimiterInField)
	}
	for _, actor := range movie.Actors() {
		if strings.ContainsAny(actor, FieldDelimiter+ActorDelimiter) {
			return fmt.Errorf("actor %q: %w", actor, ErrDelimiterInField)
		}
	}
	return nil
}

// FormatRating renders a rating in plain decimal notation. Whole numbers keep
// a ".0" suffix so files stay readable by tools that expect a decimal point.
func FormatRating(rating float64) string {
	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
