// Package project walks a frontend source tree and drives per-file text
// transformations. Errors are collected per file; a bad file never aborts
// the rest of the run.
package project

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/webmend/webmend/internal/config"
)

// tsExtensions are the extensions collected by default.
var tsExtensions = map[string]bool{".ts": true, ".tsx": true}

// jsExtensions are additionally collected when include_js is set.
var jsExtensions = map[string]bool{".js": true, ".jsx": true}

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	".webmend":     true,
}

// CollectSources walks root inside fsys and returns the sorted list of
// source files, honoring the exclude prefixes from the rule config.
// Paths are slash-separated and relative to fsys.
func CollectSources(fsys fs.FS, root string, rules *config.Rules) ([]string, error) {
	if rules == nil {
		rules = config.DefaultRules()
	}

	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p == root {
				return nil
			}
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}

		ext := path.Ext(name)
		if !tsExtensions[ext] && !(rules.IncludeJS && jsExtensions[ext]) {
			return nil
		}
		// Declaration files are generated; never touch them.
		if strings.HasSuffix(name, ".d.ts") {
			return nil
		}
		if rules.Excluded(relTo(root, p)) {
			return nil
		}

		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// relTo strips the root prefix from a slash path.
func relTo(root, p string) string {
	if root == "." || root == "" {
		return p
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
}
