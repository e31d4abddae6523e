// Package typecheck runs the TypeScript compiler and feeds its diagnostics
// into targeted fix passes.
package typecheck

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Diagnostic is a single tsc error line.
type Diagnostic struct {
	File    string // path as reported by tsc, relative to the project root
	Line    int
	Col     int
	Code    string // e.g. "TS2304"
	Message string
}

// diagnosticRE matches tsc --pretty false output:
// src/App.tsx(10,5): error TS2304: Cannot find name 'useState'.
var diagnosticRE = regexp.MustCompile(`^(.+?)\((\d+),(\d+)\): error (TS\d+): (.+)$`)

// ParseDiagnostics extracts error diagnostics from tsc output. Non-matching
// lines (summaries, warnings, npm noise) are ignored.
func ParseDiagnostics(output string) []Diagnostic {
	var diags []Diagnostic
	for _, line := range strings.Split(output, "\n") {
		m := diagnosticRE.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		lineNo, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		diags = append(diags, Diagnostic{
			File:    filepath.ToSlash(m[1]),
			Line:    lineNo,
			Col:     col,
			Code:    m[4],
			Message: m[5],
		})
	}
	return diags
}

// GroupByFile buckets diagnostics by file, with files sorted.
func GroupByFile(diags []Diagnostic) (map[string][]Diagnostic, []string) {
	grouped := make(map[string][]Diagnostic)
	for _, d := range diags {
		grouped[d.File] = append(grouped[d.File], d)
	}
	files := make([]string, 0, len(grouped))
	for f := range grouped {
		files = append(files, f)
	}
	sort.Strings(files)
	return grouped, files
}

// identifierInMessage pulls the quoted identifier out of messages like
// "Cannot find name 'useState'." or "'Foo' is declared but its value is
// never read."
func identifierInMessage(msg string) string {
	start := strings.Index(msg, "'")
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], "'")
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
