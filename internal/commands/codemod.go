package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/codemod"
	"github.com/webmend/webmend/internal/terminal"
)

var codemodDryRun bool

var codemodCmd = &cobra.Command{
	Use:   "codemod [name...]",
	Short: "Run one-shot source migrations",
	Long:  "Run named codemods over src/. Unlike fixers, codemods are one-shot migrations (React.FC removal, react-router v5 to v6, CRA env vars to Vite) rather than recurring hygiene passes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			terminal.Header("Codemods")
			for _, c := range codemod.All() {
				terminal.Detail(c.Name, c.Description)
			}
			fmt.Println()
			terminal.Info("Run `webmend codemod <name>` to apply one.")
			return nil
		}

		svc, err := loadService()
		if err != nil {
			return err
		}

		result, err := svc.Codemod(args, codemodDryRun)
		if err != nil {
			return err
		}

		printTransformResult(result, codemodDryRun)
		return nil
	},
}

func init() {
	codemodCmd.Flags().BoolVar(&codemodDryRun, "dry-run", false, "Report changes without writing files")
}
