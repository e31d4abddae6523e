package typecheck

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Run executes `npx tsc --noEmit` in the project root and returns the
// parsed diagnostics. tsc exits non-zero when there are errors; that is not
// a Go error as long as its output parses.
func Run(ctx context.Context, projectRoot string) ([]Diagnostic, error) {
	cmd := exec.CommandContext(ctx, "npx", "--no-install", "tsc", "--noEmit", "--pretty", "false")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()

	diags := ParseDiagnostics(string(output))
	if err != nil && len(diags) == 0 {
		return nil, fmt.Errorf("tsc failed: %w\n%s", err, string(output))
	}
	return diags, nil
}

// RunBuild executes `npm run build`, passing extraEnv entries (KEY=VALUE)
// through to the process environment.
func RunBuild(ctx context.Context, projectRoot string, extraEnv []string) error {
	cmd := exec.CommandContext(ctx, "npm", "run", "build")
	cmd.Dir = projectRoot
	cmd.Env = append(os.Environ(), extraEnv...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("npm run build failed: %w\n%s", err, string(output))
	}
	return nil
}
