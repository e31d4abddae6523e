package commands

import (
	"fmt"
	"strings"

	"github.com/webmend/webmend/internal/project"
	"github.com/webmend/webmend/internal/service"
	"github.com/webmend/webmend/internal/terminal"
)

// loadService builds a service for the project containing the current
// directory.
func loadService() (*service.Service, error) {
	return service.New("")
}

// printTransformResult prints a fix or codemod summary.
func printTransformResult(result *project.Result, dryRun bool) {
	verb := "changed"
	if dryRun {
		verb = "would change"
	}

	if result.Changed == 0 {
		terminal.Success(fmt.Sprintf("%d file(s) checked, nothing to do.", result.Seen))
	} else {
		terminal.Success(fmt.Sprintf("%d file(s) checked, %d %s.", result.Seen, result.Changed, verb))
		for _, path := range result.ChangedFiles() {
			terminal.Detail(path, strings.Join(result.Notes[path], "; "))
		}
	}

	for _, fe := range result.Errors {
		terminal.Warning(fmt.Sprintf("skipped %s", fe))
	}
}
