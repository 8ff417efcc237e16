package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"movielib/internal/catalog"
	"movielib/internal/catalogfile"
	"movielib/internal/logging"
)

func newCatalogCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newListCommand(ctx),
		newShowCommand(ctx),
		newActorCommand(ctx),
		newTopCommand(ctx),
		newAddCommand(ctx),
		newRemoveCommand(ctx),
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var titlesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.loadLibrary(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if jsonOutput {
				movies := make([]movieJSON, 0, lib.Len())
				for _, movie := range lib.Movies() {
					movies = append(movies, toMovieJSON(movie))
				}
				return writeJSON(cmd, movies)
			}
			if titlesOnly {
				for _, title := range lib.Titles() {
					fmt.Fprintln(out, title)
				}
				return nil
			}
			if lib.Len() == 0 {
				fmt.Fprintln(out, "No movies in library")
				return nil
			}
			fmt.Fprintln(out, renderMovieTable(lib.Movies()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	cmd.Flags().BoolVar(&titlesOnly, "titles", false, "Print only titles, one per line")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Look up a movie by title (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			lib, err := ctx.loadLibrary(cmd)
			if err != nil {
				return err
			}
			movie, ok := lib.FindByTitle(title)
			if !ok {
				return fmt.Errorf("movie %q not found in library", strings.TrimSpace(title))
			}
			if jsonOutput {
				return writeJSON(cmd, toMovieJSON(movie))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMovieDetail(movie))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newActorCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "actor <name>",
		Short: "List movies featuring an actor (exact, case-sensitive match)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.loadLibrary(cmd)
			if err != nil {
				return err
			}
			titles := lib.FindByActor(args[0])
			if jsonOutput {
				return writeJSON(cmd, titles)
			}
			out := cmd.OutOrStdout()
			if len(titles) == 0 {
				fmt.Fprintf(out, "No movies featuring %s\n", args[0])
				return nil
			}
			for _, title := range titles {
				fmt.Fprintln(out, title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON array of titles")
	return cmd
}

func newTopCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the highest rated movie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.loadLibrary(cmd)
			if err != nil {
				return err
			}
			title, ok := lib.HighestRated()
			if jsonOutput {
				return writeJSON(cmd, struct {
					Title string `json:"title"`
					Found bool   `json:"found"`
				}{Title: title, Found: ok})
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No rated movies in library")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var title, director, actors string
	var year int
	var rating float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie to the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title = strings.TrimSpace(title)
			if title == "" {
				return errors.New("--title must not be empty")
			}
			movie := catalog.NewMovie(title, year, strings.TrimSpace(director), parseActors(actors), rating)
			if err := catalogfile.CheckFields(movie); err != nil {
				return err
			}

			var outcome catalog.AddResult
			err := ctx.updateLibrary(cmd, func(lib *catalog.Library) (bool, error) {
				outcome = lib.Add(movie)
				return outcome == catalog.Added, nil
			})
			if err != nil {
				return err
			}
			logAddOutcome(ctx, cmd, movie, outcome)
			fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(statusInfo, addMessage(outcome), false))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Movie title")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year")
	cmd.Flags().StringVarP(&director, "director", "d", "", "Director")
	cmd.Flags().StringVarP(&actors, "actors", "a", "", "Comma-separated actor names")
	cmd.Flags().Float64VarP(&rating, "rating", "r", 0, "Rating (0-10)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var title string
	var year int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a movie identified by exact title and year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var outcome catalog.RemoveResult
			err := ctx.updateLibrary(cmd, func(lib *catalog.Library) (bool, error) {
				outcome = lib.Remove(title, year)
				return outcome == catalog.Removed, nil
			})
			if err != nil {
				return err
			}
			if logger, err := ctx.commandLogger(cmd); err == nil {
				logger.Info("remove movie",
					logging.String("title", title),
					logging.Int("year", year),
					logging.String("result", outcome.String()),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(statusInfo, removeMessage(outcome), false))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Exact movie title")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func logAddOutcome(ctx *commandContext, cmd *cobra.Command, movie catalog.Movie, outcome catalog.AddResult) {
	logger, err := ctx.commandLogger(cmd)
	if err != nil {
		return
	}
	logger.Info("add movie",
		logging.String("title", movie.Title()),
		logging.Int("year", movie.Year()),
		logging.Float64("rating", movie.Rating()),
		logging.String("result", outcome.String()),
	)
}

func addMessage(outcome catalog.AddResult) string {
	if outcome == catalog.DuplicateExists {
		return "Movie already exists in library."
	}
	return "Movie added to library."
}

func removeMessage(outcome catalog.RemoveResult) string {
	if outcome == catalog.NotFound {
		return "Movie does not exist in library."
	}
	return "Movie removed from library."
}

// parseActors splits comma-separated input into trimmed names. Empty input
// yields an empty cast.
func parseActors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, catalogfile.ActorDelimiter)
	actors := make([]string, 0, len(parts))
	for _, part := range parts {
		actors = append(actors, strings.TrimSpace(part))
	}
	return actors
}

// writeMovieDetail prints the plain console detail block used by the menu.
func writeMovieDetail(out io.Writer, movie catalog.Movie) {
	fmt.Fprintf(out, "%-15s %s\n", "Title:", movie.Title())
	fmt.Fprintf(out, "%-15s %d\n", "Year:", movie.Year())
	fmt.Fprintf(out, "%-15s %s\n", "Director:", movie.Director())
	fmt.Fprintf(out, "%-15s %s\n", "Actors:", joinActors(movie.Actors()))
	fmt.Fprintf(out, "%-15s %s\n\n", "Rating:", catalogfile.FormatRating(movie.Rating()))
}
