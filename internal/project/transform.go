package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Transform rewrites file content. It returns the new content and notes
// describing what changed (empty notes means no change).
type Transform func(path, content string) (string, []string, error)

// FileError records a per-file failure that did not abort the run.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) String() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Result summarizes a transform pass over a file set.
type Result struct {
	Seen    int
	Changed int
	// Notes maps changed file paths to what was done to them.
	Notes  map[string][]string
	Errors []FileError
}

// ChangedFiles returns the changed paths in deterministic order.
func (r *Result) ChangedFiles() []string {
	paths := make([]string, 0, len(r.Notes))
	for p := range r.Notes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Apply runs fn over every file under root. Files are rewritten in place
// only when the content changed and dryRun is false. Read, transform, and
// write failures are recorded and processing continues.
func Apply(root string, files []string, dryRun bool, fn Transform) *Result {
	result := &Result{Notes: make(map[string][]string)}

	for _, rel := range files {
		result.Seen++
		abs := filepath.Join(root, filepath.FromSlash(rel))

		data, err := os.ReadFile(abs)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: rel, Err: err})
			continue
		}

		content := string(data)
		updated, notes, err := fn(rel, content)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: rel, Err: err})
			continue
		}
		if updated == content {
			continue
		}

		if !dryRun {
			if err := os.WriteFile(abs, []byte(updated), 0o644); err != nil {
				result.Errors = append(result.Errors, FileError{Path: rel, Err: err})
				continue
			}
		}

		result.Changed++
		if len(notes) == 0 {
			notes = []string{"rewritten"}
		}
		result.Notes[rel] = notes
	}

	return result
}
