package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/terminal"
)

var (
	auditMinScore int
	auditJSON     bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Score the source tree against the style rules",
	Long:  "Scan src/ for style and hygiene violations (explicit any, console.log, debugger, inline styles, placeholder markers) and print a weighted compliance score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		report, err := svc.Audit()
		if err != nil {
			return err
		}

		if auditJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
			if min := svc.MinScore(auditMinScore); min > 0 && report.Score < min {
				return fmt.Errorf("score %d is below the required minimum %d", report.Score, min)
			}
			return nil
		}

		terminal.Header("Audit")
		terminal.Detail("Files checked", fmt.Sprintf("%d", report.FilesChecked))
		terminal.ScoreLine(report.Score, report.Grade())

		if len(report.Violations) > 0 {
			fmt.Println()
			byRule := report.ByRule()
			for _, code := range report.RuleCodes() {
				vs := byRule[code]
				terminal.Warning(fmt.Sprintf("%s (%d)", code, len(vs)))
				for i, v := range vs {
					if i == 10 {
						terminal.Detail("...", fmt.Sprintf("%d more", len(vs)-i))
						break
					}
					terminal.Detail(fmt.Sprintf("%s:%d", v.Path, v.Line), v.Excerpt)
				}
			}
		}

		for _, msg := range report.ReadErrors {
			terminal.Warning("unreadable: " + msg)
		}

		if min := svc.MinScore(auditMinScore); min > 0 && report.Score < min {
			return fmt.Errorf("score %d is below the required minimum %d", report.Score, min)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().IntVar(&auditMinScore, "min-score", 0, "Exit non-zero when the score falls below this value")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Print the full report as JSON")
}
