package commands

import (
	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/fixers"
	"github.com/webmend/webmend/internal/service"
	"github.com/webmend/webmend/internal/terminal"
)

var (
	fixDryRun bool
	fixOnly   []string
	fixList   bool
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Run the automatic source fixers",
	Long:  "Run the regex-based fixers over src/: missing react hook imports, var declarations, debugger and console.log statements, import normalization, and simple inline-style-to-Tailwind conversion.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if fixList {
			terminal.Header("Fixers")
			for _, f := range fixers.All() {
				terminal.Detail(f.Name, f.Description)
			}
			return nil
		}

		svc, err := loadService()
		if err != nil {
			return err
		}

		result, err := svc.Fix(service.FixOpts{DryRun: fixDryRun, Only: fixOnly})
		if err != nil {
			return err
		}

		printTransformResult(result, fixDryRun)
		return nil
	},
}

func init() {
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "Report changes without writing files")
	fixCmd.Flags().StringSliceVar(&fixOnly, "only", nil, "Run only the named fixers (comma-separated, see --list)")
	fixCmd.Flags().BoolVar(&fixList, "list", false, "List available fixers and exit")
}
