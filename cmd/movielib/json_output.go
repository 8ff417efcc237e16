package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"movielib/internal/catalog"
)

// movieJSON is the machine-readable form of a catalog entry.
type movieJSON struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Actors   []string `json:"actors"`
	Rating   float64  `json:"rating"`
}

func toMovieJSON(movie catalog.Movie) movieJSON {
	actors := movie.Actors()
	if actors == nil {
		actors = []string{}
	}
	return movieJSON{
		Title:    movie.Title(),
		Year:     movie.Year(),
		Director: movie.Director(),
		Actors:   actors,
		Rating:   movie.Rating(),
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	return encodeJSON(cmd.OutOrStdout(), v)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
