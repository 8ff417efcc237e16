package catalogfile_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"movielib/internal/catalog"
	"movielib/internal/catalogfile"
	"movielib/internal/testsupport"
)

func sampleLibrary() *catalog.Library {
	return catalog.NewLibrary(
		catalog.NewMovie("Big", 1988, "Penny Marshall", []string{"Tom Hanks", "Elizabeth Perkins"}, 7.3),
		catalog.NewMovie("Heat", 1995, "Michael Mann", []string{"Al Pacino", "Robert De Niro"}, 8.3),
		catalog.NewMovie("Alien", 1979, "Ridley Scott", []string{"Sigourney Weaver"}, 8),
	)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	testsupport.WriteCatalog(t, path,
		"Big;1988;Penny Marshall;Tom Hanks,Elizabeth Perkins;7.3",
		"Heat;1995;Michael Mann;Al Pacino,Robert De Niro;8.3",
		"Broken;1990;Nobody;8.0",
		"Alien;1979;Ridley Scott;Sigourney Weaver;8.0",
	)

	result, err := catalogfile.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := result.Library.Titles(); !slices.Equal(got, []string{"Big", "Heat", "Alien"}) {
		t.Fatalf("unexpected titles %v", got)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected one skipped line, got %d", len(result.Skipped))
	}
	skipped := result.Skipped[0]
	if skipped.Line != 3 || skipped.Text != "Broken;1990;Nobody;8.0" {
		t.Fatalf("unexpected skipped line %+v", skipped)
	}
	if !errors.Is(skipped, catalogfile.ErrFieldCount) {
		t.Fatalf("expected field count error, got %v", skipped.Err)
	}
}

func TestLoadSkipsOversizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	testsupport.WriteCatalog(t, path,
		"Heat;1995;Michael Mann;Al Pacino;8.3",
		strings.Repeat("x", 2<<20),
		"Alien;1979;Ridley Scott;Sigourney Weaver;8.0",
	)

	result, err := catalogfile.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := result.Library.Titles(); !slices.Equal(got, []string{"Heat", "Alien"}) {
		t.Fatalf("unexpected titles %v", got)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected one skipped line, got %d", len(result.Skipped))
	}
	skipped := result.Skipped[0]
	if skipped.Line != 2 || !errors.Is(skipped, catalogfile.ErrLineTooLong) {
		t.Fatalf("unexpected skipped line %d: %v", skipped.Line, skipped.Err)
	}
	if len(skipped.Text) > 100 {
		t.Fatalf("expected a short preview, got %d bytes", len(skipped.Text))
	}
}

func TestReadLastLineWithoutNewline(t *testing.T) {
	result, err := catalogfile.Read(strings.NewReader("Heat;1995;Michael Mann;Al Pacino;8.3\n\nAlien;1979;Ridley Scott;Sigourney Weaver;8"))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got := result.Library.Titles(); !slices.Equal(got, []string{"Heat", "Alien"}) {
		t.Fatalf("unexpected titles %v", got)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Line != 2 {
		t.Fatalf("expected blank line 2 skipped, got %+v", result.Skipped)
	}
}

func TestSaveThenLoadReproducesLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	want := sampleLibrary()

	if err := catalogfile.Save(want, path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	result, err := catalogfile.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(result.Skipped) != 0 {
		t.Fatalf("unexpected skipped lines %v", result.Skipped)
	}
	got := result.Library.Movies()
	wantMovies := want.Movies()
	if len(got) != len(wantMovies) {
		t.Fatalf("expected %d movies, got %d", len(wantMovies), len(got))
	}
	for i := range got {
		if !got[i].Equal(wantMovies[i]) {
			t.Fatalf("movie %d mismatch: got %+v want %+v", i, got[i], wantMovies[i])
		}
	}
}

func TestSaveWritesOneLinePerMovie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "movies.txt")
	if err := catalogfile.Save(sampleLibrary(), path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	want := []string{
		"Big;1988;Penny Marshall;Tom Hanks,Elizabeth Perkins;7.3",
		"Heat;1995;Michael Mann;Al Pacino,Robert De Niro;8.3",
		"Alien;1979;Ridley Scott;Sigourney Weaver;8.0",
	}
	if got := testsupport.ReadLines(t, path); !slices.Equal(got, want) {
		t.Fatalf("unexpected file contents:\n%s", strings.Join(got, "\n"))
	}
}

func TestSaveOverwritesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	testsupport.WriteCatalog(t, path, strings.Repeat("x", 500))

	lib := catalog.NewLibrary(catalog.NewMovie("Heat", 1995, "Michael Mann", []string{"Al Pacino"}, 8.3))
	if err := catalogfile.Save(lib, path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Heat;1995;Michael Mann;Al Pacino;8.3\n" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := catalogfile.Load(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	testsupport.WriteCatalog(t, path)

	result, err := catalogfile.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if result.Library.Len() != 0 || len(result.Skipped) != 0 {
		t.Fatalf("expected empty result, got %d movies %d skipped", result.Library.Len(), len(result.Skipped))
	}
}

func TestReadHandlesCRLF(t *testing.T) {
	input := "Heat;1995;Michael Mann;Al Pacino;8.3\r\nAlien;1979;Ridley Scott;Sigourney Weaver;8.0\r\n"
	result, err := catalogfile.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	movies := result.Library.Movies()
	if len(movies) != 2 || movies[0].Rating() != 8.3 || movies[1].Rating() != 8 {
		t.Fatalf("unexpected movies %+v", movies)
	}
}

func TestReadKeepsDuplicateIdentities(t *testing.T) {
	input := "A;2000;D;X;1.0\nA;2000;E;Y;2.0\n"
	result, err := catalogfile.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if result.Library.Len() != 2 {
		t.Fatalf("expected both records, got %d", result.Library.Len())
	}
}

func TestReadPropagatesReaderFailure(t *testing.T) {
	boom := errors.New("disk gone")
	if _, err := catalogfile.Read(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestWriteNilLibrary(t *testing.T) {
	var buf bytes.Buffer
	if err := catalogfile.Write(&buf, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
