package scaffold

import (
	"fmt"
	"strings"
)

// GenerateTsconfig produces the full tsconfig.json content. The file is
// built by hand rather than marshalled so key order and formatting stay
// stable across runs.
func GenerateTsconfig(cfg *ProjectConfig) string {
	target := cfg.Target
	if target == "" {
		target = "ES2022"
	}
	jsx := cfg.JSX
	if jsx == "" {
		jsx = "react-jsx"
	}

	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  \"compilerOptions\": {\n")
	fmt.Fprintf(&b, "    \"target\": %q,\n", target)
	b.WriteString("    \"useDefineForClassFields\": true,\n")
	fmt.Fprintf(&b, "    \"lib\": [%q, \"DOM\", \"DOM.Iterable\"],\n", target)
	b.WriteString("    \"module\": \"ESNext\",\n")
	b.WriteString("    \"skipLibCheck\": true,\n")
	b.WriteString("\n")
	b.WriteString("    \"moduleResolution\": \"bundler\",\n")
	b.WriteString("    \"allowImportingTsExtensions\": false,\n")
	b.WriteString("    \"resolveJsonModule\": true,\n")
	b.WriteString("    \"isolatedModules\": true,\n")
	b.WriteString("    \"noEmit\": true,\n")
	fmt.Fprintf(&b, "    \"jsx\": %q,\n", jsx)
	b.WriteString("\n")
	fmt.Fprintf(&b, "    \"strict\": %t,\n", cfg.Strict)
	fmt.Fprintf(&b, "    \"noUnusedLocals\": %t,\n", cfg.Strict)
	fmt.Fprintf(&b, "    \"noUnusedParameters\": %t,\n", cfg.Strict)
	b.WriteString("    \"noFallthroughCasesInSwitch\": true,\n")

	if len(cfg.Types) > 0 {
		quoted := make([]string, len(cfg.Types))
		for i, t := range cfg.Types {
			quoted[i] = fmt.Sprintf("%q", t)
		}
		fmt.Fprintf(&b, "    \"types\": [%s],\n", strings.Join(quoted, ", "))
	}

	if len(cfg.Aliases) > 0 {
		b.WriteString("\n")
		b.WriteString("    \"baseUrl\": \".\",\n")
		b.WriteString("    \"paths\": {\n")
		for i, a := range cfg.Aliases {
			comma := ","
			if i == len(cfg.Aliases)-1 {
				comma = ""
			}
			fmt.Fprintf(&b, "      \"%s/*\": [\"%s/*\"]%s\n", a.Name, strings.TrimSuffix(a.Path, "/"), comma)
		}
		b.WriteString("    }\n")
	} else {
		// Trailing comma cleanup: rewrite the last option without one.
		s := b.String()
		b.Reset()
		b.WriteString(strings.TrimSuffix(s, ",\n") + "\n")
	}

	b.WriteString("  },\n")
	b.WriteString("  \"include\": [\"src\"]\n")
	b.WriteString("}\n")
	return b.String()
}
