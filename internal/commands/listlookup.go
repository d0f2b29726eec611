package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"taskcsv/internal/exitcode"
	"taskcsv/internal/service"
)

// resolveTargetList resolves a --list value, or falls back to the
// default list when listName is empty. On failure it writes a
// user-facing error to errOut and returns a non-zero exit code.
func resolveTargetList(ctx context.Context, svc service.Service, listName string, errOut io.Writer) (service.TaskList, int) {
	if listName == "" {
		list, err := svc.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.TaskList{}, exitcode.BackendError
		}
		return list, exitcode.Success
	}

	list, err := svc.ResolveList(ctx, listName)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Fprintf(errOut, "error: list not found: %s\n", listName)
			return service.TaskList{}, exitcode.UserError
		}
		if strings.Contains(err.Error(), "ambiguous") {
			fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", listName)
			return service.TaskList{}, exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return service.TaskList{}, exitcode.BackendError
	}
	return list, exitcode.Success
}
