package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"movielib/internal/config"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"

	ansiClearScreen = "\x1b[H\x1b[2J"
)

// bannerPadding is how much wider than the title a menu banner rule is.
const bannerPadding = 15

// renderStatusLine formats a one-line outcome message such as
// "INFO: Movie added to library.".
func renderStatusLine(kind statusKind, message string, colorize bool) string {
	line := statusKindLabel(kind) + ": " + message
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + line + ansiReset
		}
	}
	return line
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// renderBanner frames a menu option title between two '=' rules.
func renderBanner(title string, colorize bool) []string {
	rule := strings.Repeat("=", len(title)+bannerPadding)
	line := "\t" + title
	if colorize {
		rule = ansiBlue + rule + ansiReset
	}
	return []string{rule, line, rule}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// shouldColorize resolves display.color against the destination writer.
func shouldColorize(writer io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(writer)
	}
}

// screen is the display capability the menu needs beyond plain writes.
type screen interface {
	Clear()
}

type terminalScreen struct {
	out     io.Writer
	enabled bool
}

// newScreen returns a screen that clears only when enabled and out is a
// terminal, so piped output never receives escape sequences.
func newScreen(out io.Writer, enabled bool) screen {
	return &terminalScreen{out: out, enabled: enabled && isTerminal(out)}
}

func (s *terminalScreen) Clear() {
	if !s.enabled {
		return
	}
	fmt.Fprint(s.out, ansiClearScreen)
}
