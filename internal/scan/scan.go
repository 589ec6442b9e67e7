// Package scan finds duration settings in configuration files.
package scan

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/semaphore"

	"github.com/jparise/timespan/internal/logging"
)

// Result holds the entries found by Run along with per-file failures.
type Result struct {
	Files   []string
	Entries []Entry
	Errors  map[string]error // File read or decode failures, keyed by file
}

// Invalid returns the entries whose values failed to parse.
func (r *Result) Invalid() []Entry {
	var invalid []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			invalid = append(invalid, e)
		}
	}
	return invalid
}

// Files returns the files in fsys matching pattern and none of excludes,
// in lexical order.
func Files(fsys fs.FS, pattern string, excludes []string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, name := range matches {
		excluded, err := isExcluded(name, excludes)
		if err != nil {
			return nil, err
		}
		if !excluded {
			files = append(files, name)
		}
	}
	slices.Sort(files)
	return files, nil
}

// isExcluded matches excludes against both the full path and the base name.
func isExcluded(name string, excludes []string) (bool, error) {
	for _, pattern := range excludes {
		for _, candidate := range []string{name, path.Base(name)} {
			matched, err := doublestar.Match(pattern, candidate)
			if err != nil {
				return false, fmt.Errorf("exclude pattern %q failed to match path %q: %w", pattern, name, err)
			}
			if matched {
				return true, nil
			}
		}
	}
	return false, nil
}

// Run scans every matching file in fsys with bounded parallelism. Entries
// are ordered by file and line.
func Run(ctx context.Context, fsys fs.FS, opts *Options) (*Result, error) {
	log := logging.FromContext(ctx)

	files, err := Files(fsys, opts.Pattern, opts.Excludes)
	if err != nil {
		return nil, err
	}
	result := &Result{Files: files, Errors: make(map[string]error)}
	if len(files) == 0 {
		return result, nil
	}

	jobs := max(opts.Jobs, 1)
	m := newMatcher(opts)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		errorCount atomic.Int32
	)
	sem := semaphore.NewWeighted(int64(jobs))

	for _, name := range files {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer sem.Release(1)

			log.Debug("scanning file", "path", name)
			entries, err := scanFile(fsys, name, m)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errorCount.Add(1)
				result.Errors[name] = err
				return
			}
			result.Entries = append(result.Entries, entries...)
		}(name)
	}

	wg.Wait()

	slices.SortFunc(result.Entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.File, b.File), cmp.Compare(a.Line, b.Line))
	})
	log.Debug("scan complete", "files", len(files), "entries", len(result.Entries), "failed", errorCount.Load())

	if int(errorCount.Load()) == len(files) {
		return result, fmt.Errorf("failed to scan all %d files", len(files))
	}
	return result, nil
}

func scanFile(fsys fs.FS, name string, m *matcher) ([]Entry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return m.parseYAML(name, data)
	default:
		return m.parseProperties(name, data)
	}
}
