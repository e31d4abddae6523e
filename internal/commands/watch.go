package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/audit"
	"github.com/webmend/webmend/internal/project"
	"github.com/webmend/webmend/internal/terminal"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Fix and audit on every source change",
	Long:  "Watch src/ and re-run the fixers and the audit whenever source files change. Stop with Ctrl-C.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		terminal.Info("Watching " + svc.Config().SrcDir + " (Ctrl-C to stop)")

		err = svc.Watch(ctx, func(fix *project.Result, report *audit.Report) {
			terminal.Divider()
			if fix.Changed > 0 {
				terminal.Success(fmt.Sprintf("Fixed %d file(s).", fix.Changed))
			}
			terminal.ScoreLine(report.Score, report.Grade())
		})
		if ctx.Err() != nil {
			fmt.Println()
			return nil // Ctrl-C
		}
		return err
	},
}
