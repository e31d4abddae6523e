package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateTsconfig_Defaults(t *testing.T) {
	out := GenerateTsconfig(Default("my-app"))

	var parsed struct {
		CompilerOptions map[string]any `json:"compilerOptions"`
		Include         []string       `json:"include"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("generated tsconfig is not valid JSON: %v\n%s", err, out)
	}

	co := parsed.CompilerOptions
	if co["target"] != "ES2022" {
		t.Errorf("target = %v", co["target"])
	}
	if co["jsx"] != "react-jsx" {
		t.Errorf("jsx = %v", co["jsx"])
	}
	if co["strict"] != true || co["noUnusedLocals"] != true {
		t.Errorf("strict options not set: %v", co)
	}
	if co["moduleResolution"] != "bundler" {
		t.Errorf("moduleResolution = %v", co["moduleResolution"])
	}
	paths, ok := co["paths"].(map[string]any)
	if !ok {
		t.Fatalf("paths missing: %v", co)
	}
	if _, ok := paths["@/*"]; !ok {
		t.Errorf("default alias missing from paths: %v", paths)
	}
	if len(parsed.Include) != 1 || parsed.Include[0] != "src" {
		t.Errorf("include = %v", parsed.Include)
	}
}

func TestGenerateTsconfig_LooseNoAliases(t *testing.T) {
	cfg := &ProjectConfig{AppName: "x", Strict: false}
	out := GenerateTsconfig(cfg)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("invalid JSON without aliases: %v\n%s", err, out)
	}
	co := parsed["compilerOptions"].(map[string]any)
	if co["strict"] != false || co["noUnusedParameters"] != false {
		t.Errorf("loose mode options wrong: %v", co)
	}
	if _, ok := co["paths"]; ok {
		t.Errorf("paths emitted without aliases")
	}
}

func TestGenerateViteConfig(t *testing.T) {
	cfg := Default("my-app")
	cfg.Port = 3001
	cfg.Sourcemap = true
	cfg.Proxies = []Proxy{{Prefix: "/api", Target: "http://localhost:8080", ChangeOrigin: true}}
	out := GenerateViteConfig(cfg)

	checks := []string{
		"import { defineConfig } from 'vite'",
		"import react from '@vitejs/plugin-react'",
		"import path from 'node:path'",
		"plugins: [react()]",
		"'@': path.resolve(__dirname, './src')",
		"port: 3001",
		"'/api': {",
		"target: 'http://localhost:8080'",
		"changeOrigin: true",
		"outDir: 'dist'",
		"sourcemap: true",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in generated vite config:\n%s", want, out)
		}
	}
}

func TestGenerateViteConfig_UnknownPluginSkipped(t *testing.T) {
	cfg := &ProjectConfig{Plugins: []string{"react", "made-up"}}
	out := GenerateViteConfig(cfg)
	if strings.Contains(out, "made-up") {
		t.Errorf("unknown plugin leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "react()") {
		t.Errorf("known plugin dropped:\n%s", out)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default("round-trip")
	cfg.Proxies = []Proxy{{Prefix: "/v1", Target: "http://localhost:9000"}}

	if err := Save(dir, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.AppName != "round-trip" || len(loaded.Proxies) != 1 || loaded.Proxies[0].Prefix != "/v1" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir(), "fresh")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AppName != "fresh" || !cfg.Strict {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestApplyAndDrift(t *testing.T) {
	dir := t.TempDir()
	cfg := Default("drifting")

	// Nothing generated yet: both files are stale.
	if stale := Drift(dir, cfg); len(stale) != 2 {
		t.Fatalf("expected 2 missing files, got %v", stale)
	}

	if err := Apply(dir, cfg); err != nil {
		t.Fatal(err)
	}
	if stale := Drift(dir, cfg); len(stale) != 0 {
		t.Fatalf("freshly generated files reported stale: %v", stale)
	}

	// Hand-edit tsconfig.json: drift on exactly that file.
	if err := os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := Drift(dir, cfg)
	if len(stale) != 1 || stale[0] != "tsconfig.json" {
		t.Errorf("expected tsconfig.json drift, got %v", stale)
	}

	// Regenerating clears it.
	if err := Apply(dir, cfg); err != nil {
		t.Fatal(err)
	}
	if stale := Drift(dir, cfg); len(stale) != 0 {
		t.Errorf("drift persisted after regenerate: %v", stale)
	}
}

func TestHashesStable(t *testing.T) {
	cfg := Default("hash")
	ts1, vite1 := Hashes(cfg)
	ts2, vite2 := Hashes(cfg)
	if ts1 != ts2 || vite1 != vite2 {
		t.Error("hashes must be deterministic")
	}

	cfg.Port = 4000
	_, vite3 := Hashes(cfg)
	if vite3 == vite1 {
		t.Error("vite hash must change with the config")
	}
}
