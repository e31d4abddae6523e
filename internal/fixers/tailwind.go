package fixers

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	inlineStyleRE = regexp.MustCompile(`style=\{\{([^{}]*)\}\}`)
	styleDeclRE   = regexp.MustCompile(`^([a-zA-Z]+)\s*:\s*(.+)$`)
	pxValueRE     = regexp.MustCompile(`^'?(\d+)(?:px)?'?$`)
)

// styleClassMap maps exact camelCase declaration -> value pairs to Tailwind
// utilities. Only declarations listed here (or pixel spacing handled below)
// can be converted; anything else leaves the attribute untouched.
var styleClassMap = map[string]map[string]string{
	"display": {
		"'flex'":        "flex",
		"'grid'":        "grid",
		"'block'":       "block",
		"'inline-flex'": "inline-flex",
		"'none'":        "hidden",
	},
	"flexDirection": {
		"'column'": "flex-col",
		"'row'":    "flex-row",
	},
	"alignItems": {
		"'center'":     "items-center",
		"'flex-start'": "items-start",
		"'flex-end'":   "items-end",
		"'stretch'":    "items-stretch",
	},
	"justifyContent": {
		"'center'":        "justify-center",
		"'space-between'": "justify-between",
		"'space-around'":  "justify-around",
		"'flex-start'":    "justify-start",
		"'flex-end'":      "justify-end",
	},
	"textAlign": {
		"'center'": "text-center",
		"'left'":   "text-left",
		"'right'":  "text-right",
	},
	"fontWeight": {
		"'bold'": "font-bold",
		"700":    "font-bold",
		"600":    "font-semibold",
		"500":    "font-medium",
	},
	"fontStyle": {
		"'italic'": "italic",
	},
	"width": {
		"'100%'": "w-full",
	},
	"height": {
		"'100%'": "h-full",
	},
	"cursor": {
		"'pointer'": "cursor-pointer",
	},
	"position": {
		"'relative'": "relative",
		"'absolute'": "absolute",
		"'fixed'":    "fixed",
		"'sticky'":   "sticky",
	},
	"overflow": {
		"'hidden'": "overflow-hidden",
		"'auto'":   "overflow-auto",
	},
	"borderRadius": {
		"'9999px'": "rounded-full",
		"'50%'":    "rounded-full",
	},
}

// pxSpacingPrefixes maps declarations with plain pixel values to arbitrary
// value utilities (marginTop: 8 -> mt-[8px]).
var pxSpacingPrefixes = map[string]string{
	"margin":        "m",
	"marginTop":     "mt",
	"marginBottom":  "mb",
	"marginLeft":    "ml",
	"marginRight":   "mr",
	"padding":       "p",
	"paddingTop":    "pt",
	"paddingBottom": "pb",
	"paddingLeft":   "pl",
	"paddingRight":  "pr",
	"gap":           "gap",
	"fontSize":      "text",
	"borderRadius":  "rounded",
	"width":         "w",
	"height":        "h",
}

// InlineStyleTailwind converts style={{...}} props to Tailwind className
// attributes when every declaration in the object has a known utility
// equivalent. This is a string-level guess, exactly as naive as the script
// it replaces: lines that already carry a className are skipped rather than
// merged.
func InlineStyleTailwind(content string) (string, []string) {
	var notes []string

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "style={{") || strings.Contains(line, "className=") {
			continue
		}
		updated := inlineStyleRE.ReplaceAllStringFunc(line, func(attr string) string {
			body := inlineStyleRE.FindStringSubmatch(attr)[1]
			classes, ok := classesForStyleObject(body)
			if !ok {
				return attr
			}
			notes = append(notes, fmt.Sprintf("line %d: style={{...}} -> className=%q", i+1, classes))
			return fmt.Sprintf("className=%q", classes)
		})
		lines[i] = updated
	}

	if len(notes) == 0 {
		return content, nil
	}
	return strings.Join(lines, "\n"), notes
}

// classesForStyleObject converts the inside of a style object literal to a
// Tailwind class string. Returns ok=false if any declaration cannot be
// mapped.
func classesForStyleObject(body string) (string, bool) {
	body = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(body), ","))
	if body == "" {
		return "", false
	}

	var classes []string
	for _, decl := range splitStyleDecls(body) {
		m := styleDeclRE.FindStringSubmatch(strings.TrimSpace(decl))
		if m == nil {
			return "", false
		}
		prop, value := m[1], normalizeStyleValue(m[2])

		if mapped, ok := styleClassMap[prop][value]; ok {
			classes = append(classes, mapped)
			continue
		}
		if prefix, ok := pxSpacingPrefixes[prop]; ok {
			if px := pxValueRE.FindStringSubmatch(value); px != nil {
				classes = append(classes, fmt.Sprintf("%s-[%spx]", prefix, px[1]))
				continue
			}
		}
		return "", false
	}
	return strings.Join(classes, " "), true
}

// splitStyleDecls splits on commas that are not inside quotes or parens.
func splitStyleDecls(body string) []string {
	var decls []string
	depth := 0
	inQuote := byte(0)
	start := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			}
		case c == '\'' || c == '"':
			inQuote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ',' && depth == 0:
			decls = append(decls, body[start:i])
			start = i + 1
		}
	}
	decls = append(decls, body[start:])
	return decls
}

// normalizeStyleValue canonicalizes quotes so map lookup keys are stable.
func normalizeStyleValue(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = "'" + v[1:len(v)-1] + "'"
	}
	return v
}
