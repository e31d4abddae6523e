package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRules_MissingFileGivesDefaults(t *testing.T) {
	rules, err := LoadRules(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if rules.Strict || rules.MinScore != 0 || rules.IncludeJS {
		t.Errorf("unexpected defaults: %+v", rules)
	}
	if !rules.FixerEnabled("no-var") {
		t.Error("all fixers enabled by default")
	}
}

func TestLoadRules_ParsesYAML(t *testing.T) {
	root := t.TempDir()
	yml := `strict: true
min_score: 80
include_js: true
exclude:
  - generated
  - vendor/legacy
fixers:
  disable:
    - inline-style-tailwind
rules:
  no-console-log:
    disabled: true
  no-explicit-any:
    weight: 2.5
`
	if err := os.WriteFile(filepath.Join(root, RulesFile), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(root)
	if err != nil {
		t.Fatal(err)
	}
	if !rules.Strict || rules.MinScore != 80 || !rules.IncludeJS {
		t.Errorf("top-level fields wrong: %+v", rules)
	}
	if rules.FixerEnabled("inline-style-tailwind") {
		t.Error("disabled fixer still enabled")
	}
	if !rules.FixerEnabled("no-var") {
		t.Error("other fixers must stay enabled")
	}
	if !rules.RuleDisabled("no-console-log") {
		t.Error("rule disable not honored")
	}
	if got := rules.RuleWeight("no-explicit-any", 1); got != 2.5 {
		t.Errorf("weight = %v", got)
	}
	if got := rules.RuleWeight("no-debugger", 1); got != 1 {
		t.Errorf("unset weight must fall back to default, got %v", got)
	}
}

func TestLoadRules_BadYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, RulesFile), []byte(":\n bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(root); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFixerEnabled_OnlyList(t *testing.T) {
	rules := &Rules{Fixers: FixerSettings{
		Only:    []string{"no-var"},
		Disable: []string{"no-var"}, // only wins over disable
	}}
	if !rules.FixerEnabled("no-var") {
		t.Error("fixer in only list must run")
	}
	if rules.FixerEnabled("console-strip") {
		t.Error("fixer outside only list must not run")
	}
}

func TestExcluded(t *testing.T) {
	rules := &Rules{Exclude: []string{"generated", "vendor/legacy"}}
	cases := []struct {
		rel  string
		want bool
	}{
		{"generated", true},
		{"generated/api.ts", true},
		{"generated-old/x.ts", false},
		{"vendor/legacy/a.ts", true},
		{"vendor/fresh/a.ts", false},
		{"src/app.ts", false},
	}
	for _, c := range cases {
		if got := rules.Excluded(c.rel); got != c.want {
			t.Errorf("Excluded(%q) = %t, want %t", c.rel, got, c.want)
		}
	}
}
