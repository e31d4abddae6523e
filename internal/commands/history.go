package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/terminal"
)

var (
	historyRuns int
	historyDays int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show run and score history",
	Long:  "Display recent webmend runs and the daily audit score history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		runs, err := svc.Runs().Recent(historyRuns)
		if err != nil {
			return err
		}

		terminal.Header("Recent Runs")
		if len(runs) == 0 {
			terminal.Info("No runs recorded yet.")
		} else {
			fmt.Printf("  %-20s %-10s %8s %8s %8s\n", "When", "Op", "Seen", "Changed", "Time")
			fmt.Printf("  %s\n", strings.Repeat("-", 60))
			for _, r := range runs {
				fmt.Printf("  %-20s %-10s %8d %8d %7dms\n",
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.Op, r.FilesSeen, r.FilesChanged, r.DurationMS)
			}
		}

		days, err := svc.Scores().History(historyDays)
		if err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}

		fmt.Println()
		terminal.Header("Daily Scores")
		fmt.Printf("  %-12s %8s %8s %12s\n", "Date", "Best", "Runs", "Violations")
		fmt.Printf("  %s\n", strings.Repeat("-", 44))
		for _, d := range days {
			fmt.Printf("  %-12s %8d %8d %12d\n", d.Date, d.BestScore, d.Runs, d.Violations)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyRuns, "runs", 10, "Number of recent runs to show")
	historyCmd.Flags().IntVar(&historyDays, "days", 7, "Number of days of score history to show")
}
