package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/webmend/webmend/internal/scaffold"
	"github.com/webmend/webmend/internal/service"
	"github.com/webmend/webmend/internal/typecheck"
)

type textOutput struct {
	Message string `json:"message"`
}

// newService builds a service rooted at the MCP client's working directory.
func newService() (*service.Service, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return service.New(workDir)
}

// runAuditInput is the input for the run_audit tool (no inputs needed).
type runAuditInput struct{}

func handleRunAudit(ctx context.Context, req *mcp.CallToolRequest, input runAuditInput) (*mcp.CallToolResult, textOutput, error) {
	svc, err := newService()
	if err != nil {
		return nil, textOutput{}, err
	}

	report, err := svc.Audit()
	if err != nil {
		return nil, textOutput{}, err
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "Score: %d/100 (%s)\n", report.Score, report.Grade())
	fmt.Fprintf(&summary, "Files checked: %d\n", report.FilesChecked)
	if len(report.Violations) == 0 {
		summary.WriteString("No violations.\n")
	} else {
		fmt.Fprintf(&summary, "Violations: %d\n", len(report.Violations))
		byRule := report.ByRule()
		for _, code := range report.RuleCodes() {
			vs := byRule[code]
			fmt.Fprintf(&summary, "  %s (%d):\n", code, len(vs))
			for i, v := range vs {
				if i == 5 {
					fmt.Fprintf(&summary, "    ... and %d more\n", len(vs)-i)
					break
				}
				fmt.Fprintf(&summary, "    %s:%d: %s\n", v.Path, v.Line, v.Excerpt)
			}
		}
	}
	return nil, textOutput{Message: summary.String()}, nil
}

// applyFixersInput is the input for the apply_fixers tool.
type applyFixersInput struct {
	Fixers []string `json:"fixers,omitempty" jsonschema:"description=Fixer names to run. Empty means all enabled fixers."`
	DryRun bool     `json:"dry_run,omitempty" jsonschema:"description=Report what would change without writing files"`
}

func handleApplyFixers(ctx context.Context, req *mcp.CallToolRequest, input applyFixersInput) (*mcp.CallToolResult, textOutput, error) {
	svc, err := newService()
	if err != nil {
		return nil, textOutput{}, err
	}

	result, err := svc.Fix(service.FixOpts{DryRun: input.DryRun, Only: input.Fixers})
	if err != nil {
		return nil, textOutput{}, err
	}

	var summary strings.Builder
	verb := "changed"
	if input.DryRun {
		verb = "would change"
	}
	fmt.Fprintf(&summary, "%d file(s) seen, %d %s.\n", result.Seen, result.Changed, verb)
	for _, path := range result.ChangedFiles() {
		fmt.Fprintf(&summary, "  %s: %s\n", path, strings.Join(result.Notes[path], "; "))
	}
	for _, fe := range result.Errors {
		fmt.Fprintf(&summary, "  error: %s\n", fe)
	}
	return nil, textOutput{Message: summary.String()}, nil
}

// runCodemodInput is the input for the run_codemod tool.
type runCodemodInput struct {
	Name   string `json:"name" jsonschema:"description=Codemod name: react-fc router-v6 vite-env"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"description=Report what would change without writing files"`
}

func handleRunCodemod(ctx context.Context, req *mcp.CallToolRequest, input runCodemodInput) (*mcp.CallToolResult, textOutput, error) {
	svc, err := newService()
	if err != nil {
		return nil, textOutput{}, err
	}

	result, err := svc.Codemod([]string{input.Name}, input.DryRun)
	if err != nil {
		return nil, textOutput{}, err
	}

	var summary strings.Builder
	verb := "changed"
	if input.DryRun {
		verb = "would change"
	}
	fmt.Fprintf(&summary, "Codemod %s: %d file(s) seen, %d %s.\n", input.Name, result.Seen, result.Changed, verb)
	for _, path := range result.ChangedFiles() {
		fmt.Fprintf(&summary, "  %s: %s\n", path, strings.Join(result.Notes[path], "; "))
	}
	return nil, textOutput{Message: summary.String()}, nil
}

// getProjectConfigInput is the input for the get_project_config tool (no inputs needed).
type getProjectConfigInput struct{}

func handleGetProjectConfig(ctx context.Context, req *mcp.CallToolRequest, input getProjectConfigInput) (*mcp.CallToolResult, textOutput, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := scaffold.Load(workDir)
	if err != nil {
		return nil, textOutput{}, err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to marshal config: %w", err)
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "App: %s\n", cfg.AppName)
	fmt.Fprintf(&summary, "Target: %s, JSX: %s, strict: %t\n", cfg.Target, cfg.JSX, cfg.Strict)
	if len(cfg.Aliases) > 0 {
		fmt.Fprintf(&summary, "Aliases: %d\n", len(cfg.Aliases))
		for _, a := range cfg.Aliases {
			fmt.Fprintf(&summary, "  - %s -> %s\n", a.Name, a.Path)
		}
	}
	if len(cfg.Proxies) > 0 {
		fmt.Fprintf(&summary, "Proxies: %d\n", len(cfg.Proxies))
		for _, p := range cfg.Proxies {
			fmt.Fprintf(&summary, "  - %s -> %s\n", p.Prefix, p.Target)
		}
	}
	if stale := scaffold.Drift(workDir, cfg); len(stale) > 0 {
		fmt.Fprintf(&summary, "Drifted files: %s (run regenerate_configs)\n", strings.Join(stale, ", "))
	}
	summary.WriteString("\nFull config:\n")
	summary.Write(data)

	return nil, textOutput{Message: summary.String()}, nil
}

// setCompilerOptionInput is the input for the set_compiler_option tool.
type setCompilerOptionInput struct {
	Option string `json:"option" jsonschema:"description=Option name: target jsx out_dir port strict sourcemap"`
	Value  string `json:"value" jsonschema:"description=New value. Booleans as true/false and port as a number string."`
}

func handleSetCompilerOption(ctx context.Context, req *mcp.CallToolRequest, input setCompilerOptionInput) (*mcp.CallToolResult, textOutput, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := scaffold.Load(workDir)
	if err != nil {
		return nil, textOutput{}, err
	}

	switch input.Option {
	case "target":
		cfg.Target = input.Value
	case "jsx":
		cfg.JSX = input.Value
	case "out_dir":
		cfg.OutDir = input.Value
	case "port":
		port, err := strconv.Atoi(input.Value)
		if err != nil {
			return nil, textOutput{}, fmt.Errorf("port must be a number: %q", input.Value)
		}
		cfg.Port = port
	case "strict":
		cfg.Strict = input.Value == "true"
	case "sourcemap":
		cfg.Sourcemap = input.Value == "true"
	default:
		return nil, textOutput{}, fmt.Errorf("unknown option %q (supported: target, jsx, out_dir, port, strict, sourcemap)", input.Option)
	}

	if err := scaffold.Apply(workDir, cfg); err != nil {
		return nil, textOutput{}, err
	}
	return nil, textOutput{Message: fmt.Sprintf("Set %s = %s. webmend.json saved, tsconfig.json and vite.config.ts regenerated.", input.Option, input.Value)}, nil
}

// addAliasInput is the input for the add_alias tool.
type addAliasInput struct {
	Name string `json:"name" jsonschema:"description=Import prefix e.g. @components"`
	Path string `json:"path" jsonschema:"description=Directory relative to the project root e.g. ./src/components"`
}

func handleAddAlias(ctx context.Context, req *mcp.CallToolRequest, input addAliasInput) (*mcp.CallToolResult, textOutput, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := scaffold.Load(workDir)
	if err != nil {
		return nil, textOutput{}, err
	}

	for i, a := range cfg.Aliases {
		if a.Name == input.Name {
			cfg.Aliases[i].Path = input.Path
			if err := scaffold.Apply(workDir, cfg); err != nil {
				return nil, textOutput{}, err
			}
			return nil, textOutput{Message: fmt.Sprintf("Updated alias %s -> %s. Config files regenerated.", input.Name, input.Path)}, nil
		}
	}

	cfg.Aliases = append(cfg.Aliases, scaffold.Alias{Name: input.Name, Path: input.Path})
	if err := scaffold.Apply(workDir, cfg); err != nil {
		return nil, textOutput{}, err
	}
	return nil, textOutput{Message: fmt.Sprintf("Added alias %s -> %s. webmend.json saved, tsconfig.json and vite.config.ts regenerated.", input.Name, input.Path)}, nil
}

// addProxyInput is the input for the add_proxy tool.
type addProxyInput struct {
	Prefix       string `json:"prefix" jsonschema:"description=Dev-server path prefix e.g. /api"`
	Target       string `json:"target" jsonschema:"description=Backend URL e.g. http://localhost:3000"`
	ChangeOrigin bool   `json:"change_origin,omitempty" jsonschema:"description=Rewrite the Host header to the target"`
}

func handleAddProxy(ctx context.Context, req *mcp.CallToolRequest, input addProxyInput) (*mcp.CallToolResult, textOutput, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := scaffold.Load(workDir)
	if err != nil {
		return nil, textOutput{}, err
	}

	for i, p := range cfg.Proxies {
		if p.Prefix == input.Prefix {
			cfg.Proxies[i].Target = input.Target
			cfg.Proxies[i].ChangeOrigin = input.ChangeOrigin
			if err := scaffold.Apply(workDir, cfg); err != nil {
				return nil, textOutput{}, err
			}
			return nil, textOutput{Message: fmt.Sprintf("Updated proxy %s -> %s. vite.config.ts regenerated.", input.Prefix, input.Target)}, nil
		}
	}

	cfg.Proxies = append(cfg.Proxies, scaffold.Proxy{Prefix: input.Prefix, Target: input.Target, ChangeOrigin: input.ChangeOrigin})
	if err := scaffold.Apply(workDir, cfg); err != nil {
		return nil, textOutput{}, err
	}
	return nil, textOutput{Message: fmt.Sprintf("Added proxy %s -> %s. webmend.json saved, vite.config.ts regenerated.", input.Prefix, input.Target)}, nil
}

// regenerateConfigsInput is the input for the regenerate_configs tool (no inputs needed).
type regenerateConfigsInput struct{}

func handleRegenerateConfigs(ctx context.Context, req *mcp.CallToolRequest, input regenerateConfigsInput) (*mcp.CallToolResult, textOutput, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := scaffold.Load(workDir)
	if err != nil {
		return nil, textOutput{}, err
	}
	if err := scaffold.Apply(workDir, cfg); err != nil {
		return nil, textOutput{}, err
	}
	return nil, textOutput{Message: "tsconfig.json and vite.config.ts regenerated from webmend.json."}, nil
}

// runTypecheckInput is the input for the run_typecheck tool (no inputs needed).
type runTypecheckInput struct{}

func handleRunTypecheck(ctx context.Context, req *mcp.CallToolRequest, input runTypecheckInput) (*mcp.CallToolResult, textOutput, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	result, err := typecheck.FixLoop(ctx, workDir)
	if err != nil {
		return nil, textOutput{}, err
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "Passes: %d, files auto-fixed: %d\n", result.Passes, result.FilesTouched)
	if result.Clean() {
		summary.WriteString("Typecheck clean.\n")
	} else {
		fmt.Fprintf(&summary, "Remaining errors: %d\n", len(result.Remaining))
		for i, d := range result.Remaining {
			if i == 20 {
				fmt.Fprintf(&summary, "  ... and %d more\n", len(result.Remaining)-i)
				break
			}
			fmt.Fprintf(&summary, "  %s(%d,%d): %s: %s\n", d.File, d.Line, d.Col, d.Code, d.Message)
		}
	}
	return nil, textOutput{Message: summary.String()}, nil
}
