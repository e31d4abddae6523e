package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RulesFile is the optional per-project configuration file name.
const RulesFile = ".webmend.yml"

// RuleSetting overrides a single audit rule.
type RuleSetting struct {
	Disabled bool    `yaml:"disabled"`
	Weight   float64 `yaml:"weight"`
}

// FixerSettings controls which fixers run.
type FixerSettings struct {
	// Disable lists fixer names that must not run.
	Disable []string `yaml:"disable"`
	// Only, when non-empty, restricts runs to exactly these fixers.
	Only []string `yaml:"only"`
}

// Rules holds the parsed .webmend.yml configuration.
type Rules struct {
	// Strict makes per-file errors fail the run instead of being summarized.
	Strict bool `yaml:"strict"`

	// MinScore is the audit score below which `webmend audit` exits non-zero.
	// Zero means no threshold.
	MinScore int `yaml:"min_score"`

	// Exclude lists path prefixes (relative to src/) skipped by all tools.
	Exclude []string `yaml:"exclude"`

	// IncludeJS makes the walker pick up .js/.jsx sources too.
	IncludeJS bool `yaml:"include_js"`

	Fixers FixerSettings          `yaml:"fixers"`
	Rules  map[string]RuleSetting `yaml:"rules"`
}

// DefaultRules returns the configuration used when no .webmend.yml exists.
func DefaultRules() *Rules {
	return &Rules{}
}

// LoadRules reads .webmend.yml from the project root. A missing file is not
// an error; defaults are returned.
func LoadRules(projectRoot string) (*Rules, error) {
	path := filepath.Join(projectRoot, RulesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRules(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", RulesFile, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", RulesFile, err)
	}
	return &rules, nil
}

// FixerEnabled reports whether the named fixer should run.
func (r *Rules) FixerEnabled(name string) bool {
	if len(r.Fixers.Only) > 0 {
		for _, n := range r.Fixers.Only {
			if n == name {
				return true
			}
		}
		return false
	}
	for _, n := range r.Fixers.Disable {
		if n == name {
			return false
		}
	}
	return true
}

// RuleDisabled reports whether the audit rule with the given code is off.
func (r *Rules) RuleDisabled(code string) bool {
	s, ok := r.Rules[code]
	return ok && s.Disabled
}

// RuleWeight returns the configured weight for a rule, or def when unset.
func (r *Rules) RuleWeight(code string, def float64) float64 {
	s, ok := r.Rules[code]
	if !ok || s.Weight == 0 {
		return def
	}
	return s.Weight
}

// Excluded reports whether a slash-separated path relative to the source
// root falls under an excluded prefix.
func (r *Rules) Excluded(rel string) bool {
	for _, prefix := range r.Exclude {
		if rel == prefix || len(rel) > len(prefix) && rel[:len(prefix)] == prefix && rel[len(prefix)] == '/' {
			return true
		}
	}
	return false
}
