package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/terminal"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show project status",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		info, err := svc.Inspect()
		if err != nil {
			return err
		}

		terminal.Header("Project")
		terminal.Detail("Root", info.Root)
		if info.PackageName != "" {
			terminal.Detail("Package", info.PackageName)
		}
		terminal.Detail("Source files", fmt.Sprintf("%d", info.SourceFiles))
		terminal.Detail("Vite", fmt.Sprintf("%t", info.HasVite))

		if info.HasConfig {
			if len(info.Drift) > 0 {
				terminal.Warning("Drifted generated files: " + strings.Join(info.Drift, ", "))
			} else {
				terminal.Detail("Generated configs", "up to date")
			}
		} else {
			terminal.Detail("Generated configs", "not managed (run `webmend generate`)")
		}

		if info.LastScore != nil {
			terminal.ScoreLine(info.LastScore.BestScore, fmt.Sprintf("today, %d run(s)", info.LastScore.Runs))
		}
		return nil
	},
}
