package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"anketa/internal/core"
	"anketa/internal/record"
	"anketa/pkg/schema"

	"golang.org/x/sync/errgroup"
)

// Repository stores one text record per survey in a single directory.
type Repository struct {
	baseDir     string
	clock       core.Clock
	logger      core.Logger
	concurrency int
	codec       *record.Codec
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock sets the clock used for "today" and for undated records.
func WithClock(clock core.Clock) Option {
	return func(r *Repository) { r.clock = clock }
}

// WithLogger sets the logger receiving per-file read failures.
func WithLogger(logger core.Logger) Option {
	return func(r *Repository) { r.logger = logger }
}

// WithConcurrency bounds the number of files read in parallel by GetAll.
func WithConcurrency(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRepository creates a repository rooted at baseDir. The directory is created on
// the first write or by EnsureStorageExists.
func NewRepository(baseDir string, opts ...Option) *Repository {
	r := &Repository{
		baseDir:     baseDir,
		clock:       core.SystemClock{},
		logger:      core.NopLogger(),
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.codec = record.NewCodec(r.clock)
	return r
}

// BaseDir returns the storage directory.
func (r *Repository) BaseDir() string {
	return r.baseDir
}

// EnsureStorageExists creates the storage directory if it is missing.
func (r *Repository) EnsureStorageExists() error {
	if err := os.MkdirAll(r.baseDir, 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	return nil
}

// Save writes s under a name derived from the respondent's name and returns that name.
// An existing record with the same name is overwritten.
func (r *Repository) Save(s *schema.Survey) (string, error) {
	if err := r.EnsureStorageExists(); err != nil {
		return "", err
	}

	fileName := record.FileName(record.ResolveName(s))
	path, err := r.Path(fileName)
	if err != nil {
		return "", fmt.Errorf("save record: %w", err)
	}

	if err := os.WriteFile(path, r.codec.EncodeSurvey(s), 0644); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}

	s.FileName = fileName
	r.logger.Info("record saved", "file", fileName)
	return fileName, nil
}

// Find reads one record. A missing file yields (nil, nil).
func (r *Repository) Find(fileName string) (*schema.Survey, error) {
	path, err := r.Path(fileName)
	if err != nil {
		return nil, fmt.Errorf("find record: %w", err)
	}

	s, err := r.readRecord(path, fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetAll reads every record in the directory. Files that cannot be read or decoded are
// logged and left out; they never fail the batch. Records come back in file name order.
func (r *Repository) GetAll() ([]*schema.Survey, error) {
	names, err := r.ListFileNames()
	if err != nil {
		return nil, err
	}

	results := make([]*schema.Survey, len(names))

	var eg errgroup.Group
	eg.SetLimit(r.concurrency)
	for i, name := range names {
		eg.Go(func() error {
			path, err := r.Path(name)
			if err != nil {
				r.logger.Warn("skipping record outside the allowed names", "file", name, "error", err)
				return nil
			}
			s, err := r.readRecord(path, name)
			if err != nil {
				r.logger.Error("skipping unreadable record", "file", name, "error", err)
				return nil
			}
			results[i] = s
			return nil
		})
	}
	_ = eg.Wait()

	surveys := make([]*schema.Survey, 0, len(results))
	for _, s := range results {
		if s != nil {
			surveys = append(surveys, s)
		}
	}
	return surveys, nil
}

// GetToday returns the records whose completion date is today.
func (r *Repository) GetToday() ([]*schema.Survey, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	y, m, d := now.Date()

	today := make([]*schema.Survey, 0, len(all))
	for _, s := range all {
		cy, cm, cd := s.CreatedAt.In(now.Location()).Date()
		if cy == y && cm == m && cd == d {
			today = append(today, s)
		}
	}
	return today, nil
}

// Delete removes a record and reports whether it existed.
func (r *Repository) Delete(fileName string) (bool, error) {
	path, err := r.Path(fileName)
	if err != nil {
		return false, fmt.Errorf("delete record: %w", err)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("delete record: %w", err)
	}

	r.logger.Info("record deleted", "file", fileName)
	return true, nil
}

// ListFileNames returns the record file names, sorted. A missing directory has none.
// Names that Find and Delete would reject are left out.
func (r *Repository) ListFileNames() ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list records: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, schema.RecordExtension) {
			continue
		}
		if !record.IsValidFileName(name) {
			r.logger.Warn("ignoring record with an unsupported file name", "file", name)
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Lock returns the session lock guarding the storage directory.
func (r *Repository) Lock(owner string) *FileLock {
	return NewFileLock(filepath.Join(r.baseDir, ".lock"), owner, r.logger)
}

func (r *Repository) readRecord(path, fileName string) (*schema.Survey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}

	s, err := r.codec.Decode(data)
	if err != nil {
		var parseErr *core.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Source = fileName
		}
		return nil, err
	}
	s.FileName = fileName
	return s, nil
}
