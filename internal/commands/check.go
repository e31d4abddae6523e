package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/webmend/webmend/internal/terminal"
)

var checkBuild bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Typecheck with automatic fixes",
	Long:  "Run tsc --noEmit, auto-fix mechanical errors (missing react hook imports, unused imports, implicit-any parameters), and retry up to three passes. With --build, run `npm run build` once the tree is clean.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		result, err := svc.Check(ctx, checkBuild)
		if err != nil {
			return err
		}

		if result.FilesTouched > 0 {
			terminal.Info(fmt.Sprintf("Auto-fixed %d file(s) across %d pass(es).", result.FilesTouched, result.Passes))
		}

		if result.Clean() {
			terminal.Success("Typecheck clean.")
			if checkBuild {
				terminal.Success("Build succeeded.")
			}
			return nil
		}

		terminal.Error(fmt.Sprintf("%d error(s) remain after %d pass(es):", len(result.Remaining), result.Passes))
		for i, d := range result.Remaining {
			if i == 20 {
				terminal.Detail("...", fmt.Sprintf("%d more", len(result.Remaining)-i))
				break
			}
			terminal.Detail(fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Col), fmt.Sprintf("%s: %s", d.Code, d.Message))
		}
		return fmt.Errorf("typecheck failed with %d error(s)", len(result.Remaining))
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkBuild, "build", false, "Run npm run build after a clean typecheck")
}
