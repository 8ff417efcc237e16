package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"movielib/internal/catalog"
	"movielib/internal/catalogfile"
	"movielib/internal/logging"
)

type menuOption int

const (
	optionList menuOption = iota + 1
	optionFindTitle
	optionFindActor
	optionHighestRated
	optionAdd
	optionRemove
	optionLoad
	optionSave
	optionExit
)

const exitKeyword = "exit"

var menuLabels = []string{
	"List movies in library",
	"Look up a movie by title",
	"Look up movies by actor",
	"Look up highest rated film",
	"Add a movie to the library",
	"Remove a movie from the library",
	"Load a library from a file",
	"Save movie library to a file",
	"Exit system",
}

var menuBanners = map[menuOption]string{
	optionList:         "LIST OF MOVIES IN LIBRARY",
	optionFindTitle:    "MOVIE DETAILS",
	optionFindActor:    "MOVIES BY ACTOR",
	optionHighestRated: "HIGHEST RATED MOVIE",
	optionAdd:          "ADD NEW MOVIE",
	optionRemove:       "REMOVE MOVIE",
}

// parseMenuSelection accepts a 1-based option number or the exit keyword.
func parseMenuSelection(input string) (menuOption, bool) {
	trimmed := strings.TrimSpace(input)
	if strings.EqualFold(trimmed, exitKeyword) {
		return optionExit, true
	}
	if trimmed == "" || strings.TrimLeft(trimmed, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > len(menuLabels) {
		return 0, false
	}
	return menuOption(n), true
}

func newMenuCommand(ctx *commandContext) *cobra.Command {
	var loadOnStart bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive console menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, logger, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			session := &menuSession{
				ctx:      cmd.Context(),
				library:  catalog.NewLibrary(),
				store:    store,
				input:    bufio.NewScanner(cmd.InOrStdin()),
				out:      out,
				errOut:   cmd.ErrOrStderr(),
				screen:   newScreen(out, cfg.Display.ClearScreen),
				colorize: shouldColorize(out, cfg.Display.Color),
				logger:   logging.NewComponentLogger(logger, "menu"),
			}
			if loadOnStart {
				session.load()
			}
			return session.run()
		},
	}

	cmd.Flags().BoolVar(&loadOnStart, "load", false, "Load the catalog file before showing the menu")
	return cmd
}

// menuSession is the state one interactive session works on. The library
// is in memory only until the user saves it.
type menuSession struct {
	ctx      context.Context
	library  *catalog.Library
	store    *catalogfile.Store
	input    *bufio.Scanner
	out      io.Writer
	errOut   io.Writer
	screen   screen
	colorize bool
	logger   *slog.Logger
}

func (m *menuSession) run() error {
	m.screen.Clear()
	for {
		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			return m.input.Err()
		}
		option, valid := parseMenuSelection(line)
		if !valid {
			continue
		}
		if option == optionExit {
			m.logger.Debug("menu exit requested")
			return nil
		}
		m.screen.Clear()
		m.perform(option)
	}
}

func (m *menuSession) printMenu() {
	fmt.Fprintln(m.out, "Welcome to the movie library.")
	fmt.Fprintln(m.out, "Select an option: ")
	for i, label := range menuLabels {
		fmt.Fprintf(m.out, "\t%d. %s\n", i+1, label)
	}
}

func (m *menuSession) perform(option menuOption) {
	m.printBanner(option)

	switch option {
	case optionList:
		m.listTitles()
	case optionFindTitle:
		m.findTitle()
	case optionFindActor:
		m.findActor()
	case optionHighestRated:
		m.highestRated()
	case optionAdd:
		m.addMovie()
	case optionRemove:
		m.removeMovie()
	case optionLoad:
		m.load()
	case optionSave:
		m.save()
	}
}

func (m *menuSession) printBanner(option menuOption) {
	title, ok := menuBanners[option]
	if !ok {
		return
	}
	for _, line := range renderBanner(title, m.colorize) {
		fmt.Fprintln(m.out, line)
	}
}

func (m *menuSession) listTitles() {
	titles := m.library.Titles()
	if len(titles) == 0 {
		fmt.Fprintln(m.out, "No movies in library")
	}
	for _, title := range titles {
		fmt.Fprintln(m.out, title)
	}
	fmt.Fprintln(m.out)
}

func (m *menuSession) findTitle() {
	fmt.Fprintln(m.out)
	title, ok := m.prompt("Movie Title: ")
	if !ok {
		return
	}
	m.screen.Clear()
	m.printBanner(optionFindTitle)

	movie, found := m.library.FindByTitle(title)
	if !found {
		m.status(statusInfo, "Movie not found in library.")
		return
	}
	writeMovieDetail(m.out, movie)
}

func (m *menuSession) findActor() {
	fmt.Fprintln(m.out)
	actor, ok := m.prompt("Actor: ")
	if !ok {
		return
	}
	m.screen.Clear()
	m.printBanner(optionFindActor)

	for _, title := range m.library.FindByActor(actor) {
		fmt.Fprintln(m.out, title)
	}
	fmt.Fprintln(m.out)
}

func (m *menuSession) highestRated() {
	title, ok := m.library.HighestRated()
	if !ok {
		fmt.Fprintln(m.out, "No rated movies in library")
		fmt.Fprintln(m.out)
		return
	}
	fmt.Fprintf(m.out, "%s\n\n", title)
}

func (m *menuSession) addMovie() {
	title, ok := m.prompt("Movie Title: ")
	if !ok {
		return
	}
	year, ok := m.promptInt("Year: ")
	if !ok {
		return
	}
	director, ok := m.prompt("Director: ")
	if !ok {
		return
	}
	actors, ok := m.prompt("Actors: ")
	if !ok {
		return
	}
	rating, ok := m.promptFloat("Rating: ")
	if !ok {
		return
	}

	movie := catalog.NewMovie(strings.TrimSpace(title), year, strings.TrimSpace(director), parseActors(actors), rating)
	if err := catalogfile.CheckFields(movie); err != nil {
		m.status(statusWarn, "Movie not added: "+err.Error())
		return
	}
	outcome := m.library.Add(movie)
	m.logger.Info("add movie",
		logging.String("title", movie.Title()),
		logging.Int("year", year),
		logging.Float64("rating", rating),
		logging.String("result", outcome.String()),
	)
	m.status(statusInfo, addMessage(outcome))
}

func (m *menuSession) removeMovie() {
	title, ok := m.prompt("Movie Title: ")
	if !ok {
		return
	}
	year, ok := m.promptInt("Year: ")
	if !ok {
		return
	}

	outcome := m.library.Remove(strings.TrimSpace(title), year)
	m.logger.Info("remove movie",
		logging.String("title", title),
		logging.Int("year", year),
		logging.String("result", outcome.String()),
	)
	m.status(statusInfo, removeMessage(outcome))
}

// load replaces the session library with the catalog file contents. On any
// failure the current library is kept.
func (m *menuSession) load() {
	result, err := m.store.Load(m.ctx)
	if errors.Is(err, fs.ErrNotExist) {
		m.status(statusWarn, fmt.Sprintf("Catalog file %s does not exist.", m.store.Path()))
		return
	}
	if err != nil {
		logging.ErrorWithContext(m.logger, "menu load failed", "catalog_load_failed",
			logging.String("path", m.store.Path()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the catalog path and permissions"),
		)
		m.status(statusError, err.Error())
		return
	}
	reportSkipped(m.errOut, result.Skipped)
	m.library.Replace(result.Library)
	m.status(statusInfo, "Movie library loaded in.")
}

func (m *menuSession) save() {
	if err := m.store.Save(m.ctx, m.library); err != nil {
		logging.ErrorWithContext(m.logger, "menu save failed", "catalog_save_failed",
			logging.String("path", m.store.Path()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the catalog directory is writable"),
		)
		m.status(statusError, err.Error())
		return
	}
	m.status(statusInfo, "Movie library saved to "+m.store.Path())
}

func (m *menuSession) status(kind statusKind, message string) {
	fmt.Fprintf(m.out, "\n%s\n\n", renderStatusLine(kind, message, m.colorize))
}

func (m *menuSession) readLine() (string, bool) {
	if !m.input.Scan() {
		return "", false
	}
	return m.input.Text(), true
}

func (m *menuSession) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

// promptInt re-prompts until the answer parses as an integer.
func (m *menuSession) promptInt(label string) (int, bool) {
	for {
		answer, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return n, true
		}
		fmt.Fprintln(m.out, "Please enter a whole number.")
	}
}

func (m *menuSession) promptFloat(label string) (float64, bool) {
	for {
		answer, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
		if err == nil {
			return f, true
		}
		fmt.Fprintln(m.out, "Please enter a number.")
	}
}
