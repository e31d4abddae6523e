// Package mcpserver exposes webmend's maintenance operations as MCP tools
// over stdio, so coding agents can drive them with typed calls.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run starts the webmend MCP server over stdio.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "webmend",
			Version: "v1.0.0",
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_audit",
		Description: "Audit the project's src/ tree against the builtin style rules and return the score, grade, and per-rule violation counts. Read-only.",
	}, handleRunAudit)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply_fixers",
		Description: "Run the automatic fixers (missing react imports, var-to-let, debugger/console removal, import normalization, inline-style-to-Tailwind) over src/. Pass fixers to restrict the set, or dry_run to preview without writing.",
	}, handleApplyFixers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_codemod",
		Description: "Run a named codemod over src/. Available: react-fc (drop React.FC annotations), router-v6 (react-router v5 to v6 migration), vite-env (process.env.REACT_APP_* to import.meta.env.VITE_*).",
	}, handleRunCodemod)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_project_config",
		Description: "Get the current webmend.json configuration: compiler options, aliases, dev-server proxies, and vite plugins. Also reports whether tsconfig.json or vite.config.ts have drifted from it. Read-only.",
	}, handleGetProjectConfig)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_compiler_option",
		Description: "Set a compiler or build option in webmend.json and regenerate tsconfig.json and vite.config.ts. Supported options: target, jsx, out_dir, port, strict, sourcemap. Example: set_compiler_option(option: \"target\", value: \"ES2023\")",
	}, handleSetCompilerOption)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_alias",
		Description: "Add an import alias to webmend.json and regenerate both config files. The alias lands in tsconfig.json compilerOptions.paths and vite resolve.alias. Example: add_alias(name: \"@components\", path: \"./src/components\")",
	}, handleAddAlias)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_proxy",
		Description: "Add a dev-server proxy rule to webmend.json and regenerate vite.config.ts. Example: add_proxy(prefix: \"/api\", target: \"http://localhost:3000\", change_origin: true)",
	}, handleAddProxy)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "regenerate_configs",
		Description: "Regenerate tsconfig.json and vite.config.ts from webmend.json. Use this after manually editing webmend.json or when the generated files get out of sync.",
	}, handleRegenerateConfigs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_typecheck",
		Description: "Run the TypeScript compiler with automatic fixes for mechanical errors (missing react hook imports, unused imports, implicit-any parameters), retrying up to three passes. Returns the remaining diagnostics.",
	}, handleRunTypecheck)

	return server.Run(ctx, &mcp.StdioTransport{})
}
