package fixers

import (
	"fmt"
	"strings"

	"github.com/webmend/webmend/internal/config"
)

// All returns every fixer in application order. Import-shape fixers run
// before content fixers so later patterns see normalized imports.
func All() []Fixer {
	return []Fixer{
		{Name: "react-import", Description: "Import hooks from react when they are called but not imported", Apply: ReactImport},
		{Name: "unused-react-import", Description: "Drop default React imports the automatic JSX runtime made redundant", Apply: UnusedReactImport},
		{Name: "import-extension", Description: "Strip .js/.ts extensions from relative imports", Apply: ImportExtension},
		{Name: "import-quotes", Description: "Normalize import specifiers to single quotes", Apply: ImportQuotes},
		{Name: "no-var", Description: "Replace var declarations with let", Apply: VarToLet},
		{Name: "debugger-strip", Description: "Remove debugger statements", Apply: DebuggerStrip},
		{Name: "console-strip", Description: "Remove console.log calls (warn/error kept)", Apply: ConsoleStrip},
		{Name: "explicit-any", Description: "Rewrite Array<any> and any[] to unknown[]", Apply: ExplicitAny},
		{Name: "inline-style-tailwind", Description: "Convert simple style={{...}} props to Tailwind classes", Apply: InlineStyleTailwind},
	}
}

// Lookup resolves fixer names, failing on unknown names.
func Lookup(names []string) ([]Fixer, error) {
	byName := make(map[string]Fixer)
	for _, f := range All() {
		byName[f.Name] = f
	}

	var out []Fixer
	var unknown []string
	for _, name := range names {
		f, ok := byName[strings.TrimSpace(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		out = append(out, f)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown fixer(s): %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

// Enabled filters All() through the rule config.
func Enabled(rules *config.Rules) []Fixer {
	if rules == nil {
		return All()
	}
	var out []Fixer
	for _, f := range All() {
		if rules.FixerEnabled(f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// Chain combines fixers into a single transform, threading content through
// each in order and concatenating notes.
func Chain(fs []Fixer) func(content string) (string, []string) {
	return func(content string) (string, []string) {
		var notes []string
		for _, f := range fs {
			updated, n := f.Apply(content)
			if updated != content {
				for _, note := range n {
					notes = append(notes, f.Name+": "+note)
				}
				content = updated
			}
		}
		return content, notes
	}
}
