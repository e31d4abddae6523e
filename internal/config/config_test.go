package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindProjectRoot_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"app"}`)
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("got %q, want %q", got, root)
	}
}

func TestFindProjectRoot_NotFound(t *testing.T) {
	if _, err := FindProjectRoot(t.TempDir()); err == nil {
		t.Fatal("expected error outside a project")
	}
}

func TestLoadFrom(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"app"}`)

	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SrcDir != filepath.Join(root, "src") {
		t.Errorf("SrcDir = %q", cfg.SrcDir)
	}
	if cfg.WebmendDir != filepath.Join(root, ".webmend") {
		t.Errorf("WebmendDir = %q", cfg.WebmendDir)
	}
	if cfg.HasSrc() {
		t.Error("HasSrc should be false before src/ exists")
	}
}

func TestPackageNameAndDependencies(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"),
		`{"name":"my-app","dependencies":{"react":"^18.0.0"},"devDependencies":{"vite":"^5.0.0"}}`)

	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PackageName() != "my-app" {
		t.Errorf("PackageName = %q", cfg.PackageName())
	}
	if !cfg.HasDependency("react") || !cfg.HasDependency("vite") {
		t.Error("declared dependencies not detected")
	}
	if cfg.HasDependency("svelte") {
		t.Error("undeclared dependency reported present")
	}
}
