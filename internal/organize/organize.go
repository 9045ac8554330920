// Package organize performs one-shot categorization of a directory's files.
package organize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sweep/internal/category"
	"sweep/internal/mover"
)

// ErrNotDirectory is returned when the organize target does not exist
// or is not a directory.
var ErrNotDirectory = errors.New("target is not a directory")

// Summary counts files moved into each category during one run.
type Summary map[string]int

// Total returns the number of files moved across all categories.
func (s Summary) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Failure records a single file whose move failed. Failures never abort
// the surrounding batch.
type Failure struct {
	Path string
	Err  error
}

// Run moves every regular file sitting directly in dir into a category
// subfolder (dir/<category>), chosen by table from the file's extension.
// The listing is non-recursive: files already inside category subfolders
// are not enumerated, so re-running on an organized directory is a no-op.
// Directories and other non-regular entries are skipped silently.
//
// Moves proceed one at a time in directory listing order, which keeps
// collision numbering deterministic for files that collide within the
// same batch. A failed move is recorded and the batch continues; the
// summary reflects only files actually moved.
func Run(dir string, table category.Table) (Summary, []Failure, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrNotDirectory, dir, err)
	}

	summary := make(Summary)
	var failures []Failure
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		cat := table.CategoryFor(filepath.Ext(entry.Name()))
		src := filepath.Join(dir, entry.Name())
		if _, err := mover.Move(src, filepath.Join(dir, cat)); err != nil {
			failures = append(failures, Failure{Path: src, Err: err})
			continue
		}
		summary[cat]++
	}
	return summary, failures, nil
}
