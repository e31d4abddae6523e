package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestApply_RewritesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "var a = 1;\n")
	writeFile(t, dir, "b.ts", "const b = 2;\n")

	result := Apply(dir, []string{"a.ts", "b.ts"}, false, func(path, content string) (string, []string, error) {
		return strings.ReplaceAll(content, "var ", "let "), []string{"var to let"}, nil
	})

	if result.Seen != 2 || result.Changed != 1 {
		t.Fatalf("seen=%d changed=%d", result.Seen, result.Changed)
	}
	if got := result.ChangedFiles(); len(got) != 1 || got[0] != "a.ts" {
		t.Errorf("changed files: %v", got)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "a.ts"))
	if string(data) != "let a = 1;\n" {
		t.Errorf("file not rewritten: %q", data)
	}
}

func TestApply_DryRunLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "var a = 1;\n")

	result := Apply(dir, []string{"a.ts"}, true, func(path, content string) (string, []string, error) {
		return strings.ReplaceAll(content, "var", "let"), nil, nil
	})

	if result.Changed != 1 {
		t.Errorf("dry run must still count changes, got %d", result.Changed)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "a.ts"))
	if string(data) != "var a = 1;\n" {
		t.Errorf("dry run must not write: %q", data)
	}
	if notes := result.Notes["a.ts"]; len(notes) != 1 || notes[0] != "rewritten" {
		t.Errorf("empty notes should default to rewritten, got %v", notes)
	}
}

func TestApply_ErrorsDoNotAbort(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "x\n")
	writeFile(t, dir, "c.ts", "y\n")

	bad := errors.New("parse failure")
	result := Apply(dir, []string{"a.ts", "missing.ts", "c.ts"}, false, func(path, content string) (string, []string, error) {
		if path == "c.ts" {
			return "", nil, bad
		}
		return content + "!", nil, nil
	})

	if result.Seen != 3 {
		t.Errorf("seen=%d", result.Seen)
	}
	if result.Changed != 1 {
		t.Errorf("changed=%d", result.Changed)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	// a.ts still processed despite the missing file before it
	data, _ := os.ReadFile(filepath.Join(dir, "a.ts"))
	if string(data) != "x\n!" {
		t.Errorf("a.ts content: %q", data)
	}
}
