package catalogfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"movielib/internal/catalog"
	"movielib/internal/fileutil"
	"movielib/internal/logging"
)

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 50 * time.Millisecond
	lockSuffix         = ".lock"
	backupSuffix       = ".bak"
)

// ErrLocked is returned when another process holds the catalog lock past
// the configured timeout.
var ErrLocked = errors.New("catalog file is locked by another process")

// Store is a catalog file guarded by a sidecar lock file. Reads take a
// shared lock and writes an exclusive one, so several movielib processes can
// work against the same file without interleaving a save with a load.
type Store struct {
	path        string
	lock        *flock.Flock
	logger      *slog.Logger
	backup      bool
	lockTimeout time.Duration
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithLogger routes parse diagnostics and save events to logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logging.NewComponentLogger(logger, "catalogfile")
	}
}

// WithBackup copies the existing file to <path>.bak before each overwrite.
func WithBackup(enabled bool) StoreOption {
	return func(s *Store) {
		s.backup = enabled
	}
}

// WithLockTimeout bounds how long Load, Save, and Update wait for the lock.
func WithLockTimeout(timeout time.Duration) StoreOption {
	return func(s *Store) {
		if timeout > 0 {
			s.lockTimeout = timeout
		}
	}
}

// NewStore returns a Store for the catalog at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:        path,
		lock:        flock.New(path + lockSuffix),
		logger:      logging.NewNop(),
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog under a shared lock. Skipped lines are logged and
// returned in the result.
func (s *Store) Load(ctx context.Context) (*LoadResult, error) {
	// No directory means no file; report it without creating a lock file.
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	unlock, err := s.acquire(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.load()
}

// Save overwrites the catalog with lib under an exclusive lock.
func (s *Store) Save(ctx context.Context, lib *catalog.Library) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	unlock, err := s.acquire(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()
	return s.save(lib)
}

// Update runs a load-modify-save cycle while holding the exclusive lock for
// the whole cycle. A missing file starts from an empty library. fn reports
// whether it changed the library; the file is only rewritten when it did.
func (s *Store) Update(ctx context.Context, fn func(*catalog.Library) (bool, error)) (*LoadResult, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}
	unlock, err := s.acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result, err := s.load()
	if errors.Is(err, fs.ErrNotExist) {
		result, err = &LoadResult{Library: catalog.NewLibrary()}, nil
	}
	if err != nil {
		return nil, err
	}

	changed, err := fn(result.Library)
	if err != nil {
		return result, err
	}
	if !changed {
		return result, nil
	}
	return result, s.save(result.Library)
}

func (s *Store) load() (*LoadResult, error) {
	result, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	for _, skipped := range result.Skipped {
		logging.WarnWithContext(s.logger, "skipped unparsable catalog line", "catalog_parse_failed",
			logging.String("path", s.path),
			logging.Int("line_number", skipped.Line),
			logging.String("line", skipped.Text),
			logging.Error(skipped.Err),
			logging.String(logging.FieldErrorHint, "fix or delete the line; it is dropped on the next save"),
			logging.String(logging.FieldImpact, "movie omitted from library"),
		)
	}
	s.logger.Debug("catalog loaded",
		logging.String("path", s.path),
		logging.Int("movies", result.Library.Len()),
		logging.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (s *Store) save(lib *catalog.Library) error {
	if s.backup {
		if err := s.writeBackup(); err != nil {
			return err
		}
	}
	if err := Save(lib, s.path); err != nil {
		return err
	}
	count := 0
	if lib != nil {
		count = lib.Len()
	}
	s.logger.Info("catalog saved", logging.String("path", s.path), logging.Int("movies", count))
	return nil
}

func (s *Store) writeBackup() error {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat catalog: %w", err)
	}
	target := s.path + backupSuffix
	if err := fileutil.CopyFile(s.path, target); err != nil {
		return fmt.Errorf("backup catalog: %w", err)
	}
	s.logger.Debug("catalog backup written", logging.String("backup", target))
	return nil
}

func (s *Store) acquire(ctx context.Context, exclusive bool) (func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	var ok bool
	var err error
	if exclusive {
		ok, err = s.lock.TryLockContext(lockCtx, lockRetryDelay)
	} else {
		ok, err = s.lock.TryRLockContext(lockCtx, lockRetryDelay)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %s", ErrLocked, s.lock.Path())
		}
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, s.lock.Path())
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("release catalog lock failed", logging.Error(err))
		}
	}, nil
}
