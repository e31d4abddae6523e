// Package commands defines the webmend CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/config"
	"github.com/webmend/webmend/internal/terminal"
	"github.com/webmend/webmend/internal/update"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "webmend",
	Short:   "Maintenance tools for TypeScript React projects",
	Long:    "webmend fixes, audits, and migrates TypeScript React codebases and keeps tsconfig.json and vite.config.ts generated from a single webmend.json.",
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		terminal.Banner(Version)

		svc, err := loadService()
		if err != nil {
			terminal.Error("No project found.")
			terminal.Info("Run webmend inside a project with a package.json and src/ directory.")
			return err
		}

		cfg := svc.Config()
		terminal.ToolStatus(terminal.ToolStatusOpts{
			NodeVersion: config.NodeVersion(),
			HasNpm:      config.CheckNpm(),
			HasNpx:      config.CheckNpx(),
			HasTsc:      config.CheckTsc(cfg.ProjectRoot),
			HasVite:     cfg.HasDependency("vite"),
		})

		if notice := update.Check("webmend", "webmend", Version).Notice(); notice != "" {
			terminal.Info(notice)
			fmt.Println()
		}

		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(codemodCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(secretCmd)
	rootCmd.AddCommand(mcpCmd)
}
