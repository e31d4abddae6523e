package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Config holds the CLI configuration for a single project.
type Config struct {
	// ProjectRoot is the directory containing package.json.
	ProjectRoot string

	// SrcDir is the source tree the tools operate on (ProjectRoot/src).
	SrcDir string

	// WebmendDir is the .webmend/ state directory inside the project.
	WebmendDir string
}

// Load locates the project root starting from the current directory and
// validates the environment.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom locates the project root starting from dir.
func LoadFrom(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return nil, err
	}

	return &Config{
		ProjectRoot: root,
		SrcDir:      filepath.Join(root, "src"),
		WebmendDir:  filepath.Join(root, ".webmend"),
	}, nil
}

// FindProjectRoot walks up from dir to the nearest directory containing
// package.json.
func FindProjectRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for d := abs; ; {
		if _, err := os.Stat(filepath.Join(d, "package.json")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", fmt.Errorf("no package.json found in %s or any parent directory", abs)
		}
		d = parent
	}
}

// EnsureWebmendDir creates the .webmend/ directory if it doesn't exist.
func (c *Config) EnsureWebmendDir() error {
	if c.WebmendDir == "" {
		return fmt.Errorf("no project selected")
	}
	return os.MkdirAll(c.WebmendDir, 0o755)
}

// HasSrc returns true if the project has a src/ directory.
func (c *Config) HasSrc() bool {
	info, err := os.Stat(c.SrcDir)
	return err == nil && info.IsDir()
}

// PackageName reads the "name" field from package.json, or "" if unreadable.
func (c *Config) PackageName() string {
	data, err := os.ReadFile(filepath.Join(c.ProjectRoot, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Name string `json:"name"`
	}
	if json.Unmarshal(data, &pkg) != nil {
		return ""
	}
	return pkg.Name
}

// HasDependency returns true if package.json lists the given package in
// dependencies or devDependencies.
func (c *Config) HasDependency(name string) bool {
	data, err := os.ReadFile(filepath.Join(c.ProjectRoot, "package.json"))
	if err != nil {
		return false
	}
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if json.Unmarshal(data, &pkg) != nil {
		return false
	}
	if _, ok := pkg.Dependencies[name]; ok {
		return true
	}
	_, ok := pkg.DevDependencies[name]
	return ok
}

// CheckNode returns true if node is installed.
func CheckNode() bool {
	_, err := exec.LookPath("node")
	return err == nil
}

// CheckNpm returns true if npm is installed.
func CheckNpm() bool {
	_, err := exec.LookPath("npm")
	return err == nil
}

// CheckNpx returns true if npx is installed.
func CheckNpx() bool {
	_, err := exec.LookPath("npx")
	return err == nil
}

// CheckTsc returns true if the TypeScript compiler resolves through npx.
// A local devDependency is enough; a global install is not required.
func CheckTsc(projectRoot string) bool {
	cmd := exec.Command("npx", "--no-install", "tsc", "--version")
	cmd.Dir = projectRoot
	return cmd.Run() == nil
}

// NodeVersion returns the installed node version (e.g. "v22.3.0").
func NodeVersion() string {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
