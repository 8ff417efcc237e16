// Package catalogfile converts movies to and from the flat catalog file.
//
// Each record is one line of five semicolon-separated fields:
//
//	title;year;director;actor1,actor2,...;rating
//
// There is no header and no escaping. A ';' in any text field, or a ',' in
// an actor name, corrupts that line. The format is kept as it is;
// CheckFields lets input paths refuse such values before they are stored.
//
// Decoding is tolerant per line: a malformed line yields a *ParseError and is
// skipped while its siblings still load. File I/O failures are returned to
// the caller unchanged in kind, so errors.Is(err, fs.ErrNotExist) holds for
// a missing catalog.
//
// Store adds a sidecar lock file (gofrs/flock) so that concurrent movielib
// processes serialize writes to the same catalog.
package catalogfile
