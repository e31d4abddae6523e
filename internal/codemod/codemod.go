// Package codemod implements the named one-shot rewrites. Unlike the
// always-on fixers these change API usage, so they only run when asked for
// explicitly.
package codemod

import (
	"fmt"
	"regexp"
	"strings"
)

// Codemod is a named source rewrite.
type Codemod struct {
	Name        string
	Description string
	Apply       func(content string) (string, []string)
}

var (
	reactFCEmptyRE = regexp.MustCompile(`(const\s+\w+)\s*:\s*(?:React\.)?FC(?:<\w+>)?\s*=\s*\(\s*\)`)
	reactFCPropsRE = regexp.MustCompile(`(const\s+\w+)\s*:\s*(?:React\.)?FC<(\w+)>\s*=\s*\(\s*(\{[^)]*\}|\w+)\s*\)`)
	fcImportRE     = regexp.MustCompile(`(import\s+(?:React\s*,\s*)?\{[^}]*?)(?:,\s*FC\b|\bFC\s*,\s*|\bFC\b)([^}]*\}\s+from\s+['"]react['"])`)
	fcUsageRE      = regexp.MustCompile(`\bFC\b`)
	// Left behind when FC was the only named binding.
	emptyReactImportRE = regexp.MustCompile(`(?m)^import\s+\{\s*\}\s+from\s+['"]react['"];?[ \t]*\r?\n?`)

	useHistoryDeclRE   = regexp.MustCompile(`(const|let)\s+history\s*=\s*useHistory\(\)`)
	useHistoryCallRE   = regexp.MustCompile(`\buseHistory\b`)
	historyPushRE      = regexp.MustCompile(`\bhistory\.push\(`)
	historyReplaceRE   = regexp.MustCompile(`\bhistory\.replace\(`)
	historyGoBackRE    = regexp.MustCompile(`\bhistory\.goBack\(\)`)
	redirectTagRE      = regexp.MustCompile(`<Redirect(\s)`)
	redirectImportRE   = regexp.MustCompile(`\bRedirect\b`)
	routerImportLineRE = regexp.MustCompile(`(?m)^import\s+\{[^}]*\}\s+from\s+['"]react-router-dom['"]`)

	reactAppEnvRE = regexp.MustCompile(`process\.env\.REACT_APP_(\w+)`)
	nodeEnvRE     = regexp.MustCompile(`process\.env\.NODE_ENV`)
)

// ReactFC removes React.FC annotations in favor of plainly typed props.
func ReactFC(content string) (string, []string) {
	var notes []string
	updated := content

	if n := len(reactFCPropsRE.FindAllString(updated, -1)); n > 0 {
		updated = reactFCPropsRE.ReplaceAllString(updated, "$1 = ($3: $2)")
		notes = append(notes, fmt.Sprintf("rewrote %d React.FC component(s) to typed props", n))
	}
	if n := len(reactFCEmptyRE.FindAllString(updated, -1)); n > 0 {
		updated = reactFCEmptyRE.ReplaceAllString(updated, "$1 = ()")
		notes = append(notes, fmt.Sprintf("dropped %d parameterless React.FC annotation(s)", n))
	}
	if len(notes) > 0 && fcImportRE.MatchString(updated) {
		rest := fcImportRE.ReplaceAllString(updated, "$1$2")
		if !fcUsageRE.MatchString(rest) {
			updated = emptyReactImportRE.ReplaceAllString(rest, "")
			notes = append(notes, "removed unused FC import")
		}
	}

	if updated == content {
		return content, nil
	}
	return updated, notes
}

// RouterV6 migrates the react-router v5 history API to v6 navigation.
func RouterV6(content string) (string, []string) {
	if !useHistoryCallRE.MatchString(content) && !redirectTagRE.MatchString(content) {
		return content, nil
	}

	var notes []string
	updated := content

	if useHistoryDeclRE.MatchString(updated) {
		updated = useHistoryDeclRE.ReplaceAllString(updated, "$1 navigate = useNavigate()")
		notes = append(notes, "useHistory() -> useNavigate()")
	}
	if n := len(historyPushRE.FindAllString(updated, -1)); n > 0 {
		updated = historyPushRE.ReplaceAllString(updated, "navigate(")
		notes = append(notes, fmt.Sprintf("rewrote %d history.push call(s)", n))
	}
	if n := len(historyReplaceRE.FindAllString(updated, -1)); n > 0 {
		updated = historyReplaceRE.ReplaceAllString(updated, "navigate(")
		notes = append(notes, fmt.Sprintf("rewrote %d history.replace call(s); add { replace: true } manually", n))
	}
	if historyGoBackRE.MatchString(updated) {
		updated = historyGoBackRE.ReplaceAllString(updated, "navigate(-1)")
		notes = append(notes, "history.goBack() -> navigate(-1)")
	}
	if redirectTagRE.MatchString(updated) {
		updated = redirectTagRE.ReplaceAllString(updated, "<Navigate$1")
		notes = append(notes, "<Redirect> -> <Navigate>")
	}

	// Fix up the react-router-dom import line to match the new names.
	if loc := routerImportLineRE.FindStringIndex(updated); loc != nil {
		line := updated[loc[0]:loc[1]]
		fixed := useHistoryCallRE.ReplaceAllString(line, "useNavigate")
		fixed = redirectImportRE.ReplaceAllString(fixed, "Navigate")
		if fixed != line {
			updated = updated[:loc[0]] + fixed + updated[loc[1]:]
			notes = append(notes, "updated react-router-dom import")
		}
	}

	if updated == content {
		return content, nil
	}
	return updated, notes
}

// ViteEnv migrates CRA-style environment access to Vite's import.meta.env.
func ViteEnv(content string) (string, []string) {
	var notes []string
	updated := content

	if n := len(reactAppEnvRE.FindAllString(updated, -1)); n > 0 {
		updated = reactAppEnvRE.ReplaceAllString(updated, "import.meta.env.VITE_$1")
		notes = append(notes, fmt.Sprintf("rewrote %d REACT_APP_* reference(s) to VITE_*", n))
	}
	if n := len(nodeEnvRE.FindAllString(updated, -1)); n > 0 {
		updated = nodeEnvRE.ReplaceAllString(updated, "import.meta.env.MODE")
		notes = append(notes, fmt.Sprintf("rewrote %d NODE_ENV reference(s) to import.meta.env.MODE", n))
	}

	if updated == content {
		return content, nil
	}
	return updated, notes
}

// All returns every registered codemod.
func All() []Codemod {
	return []Codemod{
		{Name: "react-fc", Description: "Replace React.FC annotations with plainly typed props", Apply: ReactFC},
		{Name: "router-v6", Description: "Migrate react-router v5 history API to v6 navigation", Apply: RouterV6},
		{Name: "vite-env", Description: "Migrate process.env.REACT_APP_* to import.meta.env.VITE_*", Apply: ViteEnv},
	}
}

// Lookup resolves codemod names, failing on unknown names.
func Lookup(names []string) ([]Codemod, error) {
	byName := make(map[string]Codemod)
	for _, c := range All() {
		byName[c.Name] = c
	}

	var out []Codemod
	var unknown []string
	for _, name := range names {
		c, ok := byName[strings.TrimSpace(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		out = append(out, c)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown codemod(s): %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
