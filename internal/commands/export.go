package commands

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"

	"taskcsv/internal/config"
	"taskcsv/internal/exitcode"
	"taskcsv/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command: write a list's tasks as
// CSV in the same title,notes,due shape import and undo consume, so an
// exported file can be fed straight back to undo.
type ExportCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *ExportCmd) SetListName(name string) {
	c.listName = name
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write a list as CSV" }
func (c *ExportCmd) Usage() string {
	return "taskcsv export [common flags] [--list <list-name>]"
}
func (c *ExportCmd) NeedsAuth() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: too many arguments")
		return exitcode.UserError
	}

	list, code := resolveTargetList(ctx, svc, c.listName, errOut)
	if code != exitcode.Success {
		return code
	}

	tasks, err := svc.FetchAllTasks(ctx, list.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	w := csv.NewWriter(out)
	records := [][]string{{"title", "notes", "due"}}
	for _, t := range tasks {
		records = append(records, []string{t.Title, t.Notes, t.Due})
	}
	if err := w.WriteAll(records); err != nil {
		fmt.Fprintf(errOut, "error: failed to write csv: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
