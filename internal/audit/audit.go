package audit

import (
	"fmt"
	"io/fs"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/webmend/webmend/internal/config"
)

// Violation is a single flagged line.
type Violation struct {
	Path    string
	Line    int
	Rule    string
	Excerpt string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d: %s (%s)", v.Path, v.Line, v.Excerpt, v.Rule)
}

// Report holds the outcome of an audit run.
type Report struct {
	Violations   []Violation
	RuleHits     map[string]int // counted (capped) hits per rule
	FilesChecked int
	Score        int
	ReadErrors   []string
}

// Grade maps the score to a human band.
func (r *Report) Grade() string {
	switch {
	case r.Score >= 90:
		return "excellent"
	case r.Score >= 75:
		return "good"
	case r.Score >= 50:
		return "needs work"
	default:
		return "failing"
	}
}

// maxExcerptLen bounds violation excerpts in reports.
const maxExcerptLen = 80

// Run audits the given files (slash paths inside fsys) against the builtin
// rules, honoring disables and weight overrides from the rule config.
// Unreadable files are recorded and skipped.
func Run(fsys fs.FS, files []string, rules *config.Rules) *Report {
	if rules == nil {
		rules = config.DefaultRules()
	}

	active := make([]Rule, 0)
	for _, rule := range BuiltinRules() {
		if rules.RuleDisabled(rule.Code) {
			continue
		}
		rule.Weight = rules.RuleWeight(rule.Code, rule.Weight)
		active = append(active, rule)
	}

	report := &Report{RuleHits: make(map[string]int)}
	deductions := make(map[string]float64)

	for _, path := range files {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			report.ReadErrors = append(report.ReadErrors, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		report.FilesChecked++

		lines := strings.Split(string(data), "\n")
		fileHits := make(map[string]int)
		for i, line := range lines {
			for _, rule := range active {
				if !rule.matches(line) {
					continue
				}
				report.Violations = append(report.Violations, Violation{
					Path:    path,
					Line:    i + 1,
					Rule:    rule.Code,
					Excerpt: excerpt(line),
				})
				fileHits[rule.Code]++
				if fileHits[rule.Code] <= rule.PerFileCap {
					report.RuleHits[rule.Code]++
					deductions[rule.Code] += rule.Penalty * rule.Weight
				}
			}
		}
	}

	sort.Slice(report.Violations, func(i, j int) bool {
		a, b := report.Violations[i], report.Violations[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Rule < b.Rule
	})

	var total float64
	for _, d := range deductions {
		total += d
	}
	score := 100 - int(math.Round(total))
	if score < 0 {
		score = 0
	}
	report.Score = score

	return report
}

// ByRule groups violations per rule code, preserving sorted order.
func (r *Report) ByRule() map[string][]Violation {
	grouped := make(map[string][]Violation)
	for _, v := range r.Violations {
		grouped[v.Rule] = append(grouped[v.Rule], v)
	}
	return grouped
}

// RuleCodes returns the rule codes with violations, sorted.
func (r *Report) RuleCodes() []string {
	codes := make([]string, 0, len(r.RuleHits))
	for code := range r.RuleHits {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func excerpt(line string) string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) <= maxExcerptLen {
		return trimmed
	}
	// Back up to a rune boundary so the cut never splits a multi-byte rune.
	cut := maxExcerptLen
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return trimmed[:cut] + "..."
}
