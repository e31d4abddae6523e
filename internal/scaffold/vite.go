package scaffold

import (
	"fmt"
	"strings"
)

// pluginImports maps plugin short names to their import line and call
// expression in vite.config.ts.
var pluginImports = map[string][2]string{
	"react":       {"import react from '@vitejs/plugin-react'", "react()"},
	"react-swc":   {"import react from '@vitejs/plugin-react-swc'", "react()"},
	"tailwindcss": {"import tailwindcss from '@tailwindcss/vite'", "tailwindcss()"},
	"svgr":        {"import svgr from 'vite-plugin-svgr'", "svgr()"},
}

// GenerateViteConfig produces the full vite.config.ts content from the
// config.
func GenerateViteConfig(cfg *ProjectConfig) string {
	plugins := cfg.Plugins
	if len(plugins) == 0 {
		plugins = []string{"react"}
	}

	var imports []string
	var calls []string
	for _, p := range plugins {
		entry, ok := pluginImports[p]
		if !ok {
			continue
		}
		imports = append(imports, entry[0])
		calls = append(calls, entry[1])
	}

	var b strings.Builder
	b.WriteString("import { defineConfig } from 'vite'\n")
	for _, imp := range imports {
		b.WriteString(imp + "\n")
	}
	if len(cfg.Aliases) > 0 {
		b.WriteString("import path from 'node:path'\n")
	}
	b.WriteString("\n")
	b.WriteString("// Generated by webmend from webmend.json. Edit webmend.json and run\n")
	b.WriteString("// `webmend generate` instead of editing this file.\n")
	b.WriteString("export default defineConfig({\n")
	fmt.Fprintf(&b, "  plugins: [%s],\n", strings.Join(calls, ", "))

	if len(cfg.Aliases) > 0 {
		b.WriteString("  resolve: {\n")
		b.WriteString("    alias: {\n")
		for _, a := range cfg.Aliases {
			fmt.Fprintf(&b, "      '%s': path.resolve(__dirname, '%s'),\n", a.Name, a.Path)
		}
		b.WriteString("    },\n")
		b.WriteString("  },\n")
	}

	if cfg.Port != 0 || len(cfg.Proxies) > 0 {
		b.WriteString("  server: {\n")
		if cfg.Port != 0 {
			fmt.Fprintf(&b, "    port: %d,\n", cfg.Port)
		}
		if len(cfg.Proxies) > 0 {
			b.WriteString("    proxy: {\n")
			for _, p := range cfg.Proxies {
				fmt.Fprintf(&b, "      '%s': {\n", p.Prefix)
				fmt.Fprintf(&b, "        target: '%s',\n", p.Target)
				fmt.Fprintf(&b, "        changeOrigin: %t,\n", p.ChangeOrigin)
				b.WriteString("      },\n")
			}
			b.WriteString("    },\n")
		}
		b.WriteString("  },\n")
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "dist"
	}
	b.WriteString("  build: {\n")
	fmt.Fprintf(&b, "    outDir: '%s',\n", outDir)
	fmt.Fprintf(&b, "    sourcemap: %t,\n", cfg.Sourcemap)
	b.WriteString("  },\n")
	b.WriteString("})\n")
	return b.String()
}
