// Package scaffold generates tsconfig.json and vite.config.ts from a single
// webmend.json source of truth. Direct edits to the generated files are
// detected as drift rather than silently preserved.
package scaffold

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFile is the source-of-truth file name in the project root.
const ConfigFile = "webmend.json"

// ProjectConfig drives both generated files.
type ProjectConfig struct {
	AppName   string  `json:"app_name"`
	Strict    bool    `json:"strict"`
	Target    string  `json:"target,omitempty"` // default ES2022
	JSX       string  `json:"jsx,omitempty"`    // default react-jsx
	OutDir    string  `json:"out_dir,omitempty"`
	Port      int     `json:"port,omitempty"`
	Sourcemap bool    `json:"sourcemap,omitempty"`
	Aliases   []Alias `json:"aliases,omitempty"`
	Proxies   []Proxy `json:"proxies,omitempty"`
	// Plugins are vite plugin short names; "react" is always present.
	Plugins []string `json:"plugins,omitempty"`
	// Types feed tsconfig compilerOptions.types.
	Types []string `json:"types,omitempty"`
}

// Alias maps an import prefix to a directory.
type Alias struct {
	Name string `json:"name"` // e.g. "@"
	Path string `json:"path"` // e.g. "./src"
}

// Proxy forwards a dev-server path prefix to a backend.
type Proxy struct {
	Prefix       string `json:"prefix"` // e.g. "/api"
	Target       string `json:"target"` // e.g. "http://localhost:3000"
	ChangeOrigin bool   `json:"change_origin"`
}

// Default returns the config used when webmend.json does not exist yet.
func Default(appName string) *ProjectConfig {
	return &ProjectConfig{
		AppName: appName,
		Strict:  true,
		Target:  "ES2022",
		JSX:     "react-jsx",
		OutDir:  "dist",
		Port:    5173,
		Aliases: []Alias{{Name: "@", Path: "./src"}},
		Plugins: []string{"react"},
		Types:   []string{"vite/client"},
	}
}

// Load reads webmend.json from the project root.
func Load(projectRoot string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectRoot, ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	var cfg ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	return &cfg, nil
}

// LoadOrDefault reads webmend.json, falling back to defaults when missing.
func LoadOrDefault(projectRoot, appName string) (*ProjectConfig, error) {
	cfg, err := Load(projectRoot)
	if err != nil {
		if os.IsNotExist(underlying(err)) {
			return Default(appName), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes webmend.json to the project root.
func Save(projectRoot string, cfg *ProjectConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(projectRoot, ConfigFile), append(data, '\n'), 0o644)
}

// Apply saves the config and regenerates both output files.
func Apply(projectRoot string, cfg *ProjectConfig) error {
	if err := Save(projectRoot, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(projectRoot, "tsconfig.json"), []byte(GenerateTsconfig(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write tsconfig.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(projectRoot, "vite.config.ts"), []byte(GenerateViteConfig(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write vite.config.ts: %w", err)
	}
	return nil
}

// Drift compares the on-disk generated files against what the config would
// produce and returns the names of stale or missing files.
func Drift(projectRoot string, cfg *ProjectConfig) []string {
	var stale []string
	checks := []struct {
		name string
		want string
	}{
		{"tsconfig.json", GenerateTsconfig(cfg)},
		{"vite.config.ts", GenerateViteConfig(cfg)},
	}
	for _, c := range checks {
		data, err := os.ReadFile(filepath.Join(projectRoot, c.name))
		if err != nil || string(data) != c.want {
			stale = append(stale, c.name)
		}
	}
	return stale
}

// Hashes returns content hashes of the generated outputs, for recording in
// project state.
func Hashes(cfg *ProjectConfig) (tsconfig, vite string) {
	return contentHash(GenerateTsconfig(cfg)), contentHash(GenerateViteConfig(cfg))
}

func contentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", sum[:8])
}

func underlying(err error) error {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok && u.Unwrap() != nil {
		return u.Unwrap()
	}
	return err
}
