package typecheck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/webmend/webmend/internal/fixers"
)

// maxFixPasses bounds the typecheck -> fix -> retypecheck loop.
const maxFixPasses = 3

// LoopResult summarizes a fix loop.
type LoopResult struct {
	Passes       int
	FilesTouched int
	// Remaining holds the diagnostics still present after the final pass.
	Remaining []Diagnostic
}

// Clean reports whether the loop ended with no diagnostics.
func (r *LoopResult) Clean() bool {
	return len(r.Remaining) == 0
}

// FixLoop runs tsc, applies diagnostic-targeted fixes, and repeats until
// the tree is clean or the pass budget is spent. Only diagnostics with a
// known mechanical fix are touched; everything else is reported as
// remaining.
func FixLoop(ctx context.Context, projectRoot string) (*LoopResult, error) {
	result := &LoopResult{}

	for pass := 1; pass <= maxFixPasses; pass++ {
		result.Passes = pass

		diags, err := Run(ctx, projectRoot)
		if err != nil {
			return nil, err
		}
		if len(diags) == 0 {
			result.Remaining = nil
			return result, nil
		}
		result.Remaining = diags

		touched, err := applyTargetedFixes(projectRoot, diags)
		if err != nil {
			return nil, err
		}
		result.FilesTouched += touched
		if touched == 0 {
			// Nothing we know how to fix; another pass would not help.
			return result, nil
		}
	}

	diags, err := Run(ctx, projectRoot)
	if err != nil {
		return nil, err
	}
	result.Remaining = diags
	return result, nil
}

// reactHooks are the identifiers a TS2304 can resolve by importing from
// react.
var reactHooks = map[string]bool{
	"useState": true, "useEffect": true, "useMemo": true, "useCallback": true,
	"useRef": true, "useContext": true, "useReducer": true,
	"useLayoutEffect": true, "useTransition": true, "React": true,
}

// applyTargetedFixes rewrites files for the diagnostics that have a known
// fix. Returns how many files changed.
func applyTargetedFixes(projectRoot string, diags []Diagnostic) (int, error) {
	grouped, files := GroupByFile(diags)

	touched := 0
	for _, rel := range files {
		abs := filepath.Join(projectRoot, filepath.FromSlash(rel))
		data, err := os.ReadFile(abs)
		if err != nil {
			continue // reported by tsc on the next pass anyway
		}
		content := string(data)
		updated := content

		for _, d := range grouped[rel] {
			switch d.Code {
			case "TS2304": // Cannot find name 'X'.
				if name := identifierInMessage(d.Message); reactHooks[name] {
					updated, _ = fixers.ReactImport(updated)
				}
			case "TS6133", "TS6192": // 'X' is declared but its value is never read.
				if name := identifierInMessage(d.Message); name != "" {
					updated = removeUnusedImport(updated, name)
				}
			case "TS7006": // Parameter 'X' implicitly has an 'any' type.
				if name := identifierInMessage(d.Message); name != "" {
					updated = annotateParam(updated, d.Line, name)
				}
			}
		}

		if updated != content {
			if err := os.WriteFile(abs, []byte(updated), 0o644); err != nil {
				return touched, fmt.Errorf("failed to write %s: %w", rel, err)
			}
			touched++
		}
	}
	return touched, nil
}

// removeUnusedImport drops name from import braces, or removes the whole
// import line when name is its only binding.
func removeUnusedImport(content, name string) string {
	// Whole-line forms: default import or sole named import.
	soleRE := regexp.MustCompile(`(?m)^import\s+(?:` + regexp.QuoteMeta(name) + `|\{\s*` + regexp.QuoteMeta(name) + `\s*\})\s+from\s+['"][^'"]+['"];?[ \t]*\r?\n`)
	if soleRE.MatchString(content) {
		return soleRE.ReplaceAllString(content, "")
	}

	// Inside braces with other bindings.
	inBracesRE := regexp.MustCompile(`(?m)^(import\s+[^{\n]*\{[^}]*?)(?:\s*,\s*` + regexp.QuoteMeta(name) + `\b|\b` + regexp.QuoteMeta(name) + `\s*,\s*)([^}]*\}\s+from\s+['"][^'"]+['"])`)
	return inBracesRE.ReplaceAllString(content, "$1$2")
}

// annotateParam adds `: unknown` to the named parameter on the diagnostic
// line. Heuristic: only the first bare occurrence followed by , or ) is
// touched.
func annotateParam(content string, line int, name string) string {
	lines := strings.Split(content, "\n")
	if line < 1 || line > len(lines) {
		return content
	}
	paramRE := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b(\s*[,)])`)
	replaced := false
	lines[line-1] = paramRE.ReplaceAllStringFunc(lines[line-1], func(m string) string {
		if replaced {
			return m
		}
		replaced = true
		return paramRE.ReplaceAllString(m, name+": unknown$1")
	})
	return strings.Join(lines, "\n")
}
