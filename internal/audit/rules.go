// Package audit checks the source tree against pattern rules and reduces
// the hits to a weighted compliance score. The rules are grep-level checks,
// not semantic analysis; they exist to keep known footguns visible.
package audit

import (
	"regexp"
	"strings"
)

// Rule is a single pattern check applied line by line.
type Rule struct {
	Code        string
	Description string
	Suggestion  string

	// Pattern flags a line when it matches, unless Check is set.
	Pattern *regexp.Regexp
	// Check, when non-nil, replaces Pattern for lines needing more than a
	// single regex.
	Check func(line string) bool

	// Penalty is the score deduction per counted hit.
	Penalty float64
	// PerFileCap bounds how many hits per file count toward the score.
	PerFileCap int
	// Weight scales the rule's total deduction (overridable in .webmend.yml).
	Weight float64
}

var mapCallRE = regexp.MustCompile(`\.map\(\s*(?:\([^)]*\)|\w+)\s*=>\s*.*<[A-Z]`)

// BuiltinRules returns the audit rule set.
func BuiltinRules() []Rule {
	return []Rule{
		{
			Code:        "no-explicit-any",
			Description: "explicit any annotation",
			Suggestion:  "type the value or use unknown",
			Pattern:     regexp.MustCompile(`:\s*any\b`),
			Penalty:     1, PerFileCap: 10, Weight: 1,
		},
		{
			Code:        "no-console-log",
			Description: "console.log left in source",
			Suggestion:  "remove it or downgrade to console.warn/error",
			Pattern:     regexp.MustCompile(`\bconsole\.log\(`),
			Penalty:     0.5, PerFileCap: 10, Weight: 1,
		},
		{
			Code:        "no-debugger",
			Description: "debugger statement",
			Suggestion:  "remove before shipping",
			Pattern:     regexp.MustCompile(`(?:^|[;\s])debugger\b`),
			Penalty:     3, PerFileCap: 3, Weight: 1,
		},
		{
			Code:        "no-ts-suppression",
			Description: "@ts-ignore / @ts-nocheck suppression",
			Suggestion:  "fix the underlying type error; use @ts-expect-error if it must stay",
			Pattern:     regexp.MustCompile(`@ts-(?:ignore|nocheck)\b`),
			Penalty:     2, PerFileCap: 5, Weight: 1,
		},
		{
			Code:        "no-inline-style",
			Description: "inline style object on a JSX element",
			Suggestion:  "move to a Tailwind class or stylesheet",
			Pattern:     regexp.MustCompile(`style=\{\{`),
			Penalty:     1, PerFileCap: 8, Weight: 1,
		},
		{
			Code:        "no-placeholder-markers",
			Description: "placeholder/stub marker in source",
			Suggestion:  "implement the page or remove the marker",
			Pattern:     regexp.MustCompile(`(?i)\b(?:placeholder[- ]only|not implemented|coming soon|lorem ipsum)\b`),
			Penalty:     3, PerFileCap: 3, Weight: 1,
		},
		{
			Code:        "no-var",
			Description: "var declaration",
			Suggestion:  "use let or const",
			Pattern:     regexp.MustCompile(`^\s*var\s+`),
			Penalty:     1, PerFileCap: 5, Weight: 1,
		},
		{
			Code:        "no-empty-catch",
			Description: "empty catch block swallows errors",
			Suggestion:  "log or rethrow",
			Pattern:     regexp.MustCompile(`catch\s*(?:\([^)]*\))?\s*\{\s*\}`),
			Penalty:     2, PerFileCap: 5, Weight: 1,
		},
		{
			Code:        "import-depth",
			Description: "deep ../../.. relative import",
			Suggestion:  "use the @ path alias",
			Pattern:     regexp.MustCompile(`from\s+['"](?:\.\./){3,}`),
			Penalty:     1, PerFileCap: 5, Weight: 1,
		},
		{
			Code:        "key-prop-in-map",
			Description: "JSX rendered from .map() without a key prop",
			Suggestion:  "add key={...} to the mapped element",
			Check: func(line string) bool {
				return mapCallRE.MatchString(line) && !strings.Contains(line, "key=")
			},
			Penalty: 1, PerFileCap: 5, Weight: 1,
		},
	}
}

// matches reports whether a line violates the rule.
func (r Rule) matches(line string) bool {
	if r.Check != nil {
		return r.Check(line)
	}
	return r.Pattern.MatchString(line)
}
