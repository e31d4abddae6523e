package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/terminal"
)

var generateCheck bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate tsconfig.json and vite.config.ts",
	Long:  "Regenerate tsconfig.json and vite.config.ts from webmend.json. The generated files are owned by webmend; edit webmend.json instead and regenerate. --check reports drift without writing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		stale, err := svc.Generate(generateCheck)
		if err != nil {
			return err
		}

		if generateCheck {
			if len(stale) == 0 {
				terminal.Success("tsconfig.json and vite.config.ts are up to date.")
				return nil
			}
			return fmt.Errorf("stale generated files: %s (run `webmend generate`)", strings.Join(stale, ", "))
		}

		if len(stale) > 0 {
			terminal.Info("Refreshed drifted files: " + strings.Join(stale, ", "))
		}
		terminal.Success("tsconfig.json and vite.config.ts generated from webmend.json.")
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "Report drift without writing files")
}
