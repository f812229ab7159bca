// Package csvfile stores small tables as header-prefixed CSV files.
//
// Readers take a shared flock, writers take an exclusive one for the whole
// read-modify-write cycle and replace the file with an atomic rename, so several
// processes can share a data directory. Within a process a File serializes its
// callers with a mutex, since a flock handle does not exclude itself.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"
)

// ErrMalformed is wrapped by every parse failure. The message carries the line number.
var ErrMalformed = errors.New("malformed csv")

const lockRetryDelay = 25 * time.Millisecond

// Record is one data row and the file line it starts on.
type Record struct {
	Line   int
	Fields []string
}

// File is a CSV table guarded by a sidecar lock file.
type File struct {
	path   string
	header []string

	mu   sync.Mutex // held around every flock acquisition
	lock *flock.Flock
}

// Open prepares path for use, creating it with only the header row when absent.
func Open(ctx context.Context, path string, header []string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	f := &File{
		path:   path,
		header: slices.Clone(header),
		lock:   flock.New(path + ".lock"),
	}

	if err := f.withLock(ctx, true, func() error {
		if _, err := os.Stat(path); err == nil {
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return f.write(nil)
	}); err != nil {
		return nil, fmt.Errorf("initialize %s: %w", path, err)
	}
	return f, nil
}

// Path returns the table's file path.
func (f *File) Path() string { return f.path }

// ReadAll returns every data row under a shared lock.
func (f *File) ReadAll(ctx context.Context) ([]Record, error) {
	var records []Record
	err := f.withLock(ctx, false, func() error {
		var err error
		records, err = f.read()
		return err
	})
	return records, err
}

// Update holds the exclusive lock while fn turns the current rows into the new rows,
// then atomically replaces the file. When fn returns an error nothing is written.
func (f *File) Update(ctx context.Context, fn func(records []Record) ([][]string, error)) error {
	return f.withLock(ctx, true, func() error {
		records, err := f.read()
		if err != nil {
			return err
		}
		rows, err := fn(records)
		if err != nil {
			return err
		}
		return f.write(rows)
	})
}

func (f *File) withLock(ctx context.Context, exclusive bool, fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = f.lock.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = f.lock.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("lock %s: %w", f.path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: %w", f.path, ctx.Err())
	}
	defer f.lock.Unlock()

	return fn()
}

func (f *File) read() ([]Record, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, f.path, err)
	}
	if !slices.Equal(header, f.header) {
		return nil, fmt.Errorf("%w: %s line 1: unexpected header %v", ErrMalformed, f.path, header)
	}

	var records []Record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, f.path, err)
		}
		line, _ := r.FieldPos(0)
		if len(fields) != len(f.header) {
			return nil, fmt.Errorf("%w: %s line %d: expected %d fields, got %d",
				ErrMalformed, f.path, line, len(f.header), len(fields))
		}
		records = append(records, Record{Line: line, Fields: fields})
	}
	return records, nil
}

func (f *File) write(rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(f.header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return atomic.WriteFile(f.path, &buf)
}

// Malformed builds an ErrMalformed for a row whose fields failed to parse.
func (f *File) Malformed(rec Record, format string, args ...any) error {
	return fmt.Errorf("%w: %s line %d: %s", ErrMalformed, f.path, rec.Line, fmt.Sprintf(format, args...))
}
