package catalogfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"movielib/internal/catalog"
)

// maxLineBytes bounds a single catalog line. Longer lines are skipped like
// any other malformed line.
const maxLineBytes = 1 << 20

// previewBytes is how much of an oversized line is kept for diagnostics.
const previewBytes = 64

// ErrLineTooLong reports a line longer than the reader accepts.
var ErrLineTooLong = errors.New("line too long")

// LoadResult is the outcome of reading a catalog: the movies that decoded,
// in file order, and a ParseError for every line that did not.
type LoadResult struct {
	Library *catalog.Library
	Skipped []*ParseError
}

// Read decodes every line from r. Malformed and oversized lines are
// collected in Skipped; only a read failure on r itself is returned as an
// error.
func Read(r io.Reader) (*LoadResult, error) {
	result := &LoadResult{}
	var movies []catalog.Movie

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, tooLong, readErr := readLine(br)
		if len(raw) > 0 {
			lineNo++
			text := strings.TrimSuffix(strings.TrimSuffix(string(raw), "\n"), "\r")
			if tooLong {
				result.Skipped = append(result.Skipped, &ParseError{
					Line: lineNo,
					Text: text + "...",
					Err:  fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, maxLineBytes),
				})
			} else if movie, err := decodeLine(lineNo, text); err != nil {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					return nil, err
				}
				result.Skipped = append(result.Skipped, parseErr)
			} else {
				movies = append(movies, movie)
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read catalog: %w", readErr)
		}
	}
	// Files edited by hand may repeat an identity; keep them as they are.
	result.Library = catalog.NewLibrary(movies...)
	return result, nil
}

// readLine returns the next line including its newline. A line longer than
// maxLineBytes is consumed to its end but only a short prefix is returned,
// with tooLong set.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, readErr := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineBytes {
				tooLong = true
				line = line[:previewBytes]
			}
		}
		if errors.Is(readErr, bufio.ErrBufferFull) {
			continue
		}
		return line, tooLong, readErr
	}
}

// Write encodes every movie in lib to w, one per line, in library order.
func Write(w io.Writer, lib *catalog.Library) error {
	bw := bufio.NewWriter(w)
	if lib != nil {
		for _, movie := range lib.Movies() {
			if _, err := bw.WriteString(Encode(movie)); err != nil {
				return fmt.Errorf("write catalog: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("write catalog: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
