package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcsv/internal/config"
	"taskcsv/internal/exitcode"
	"taskcsv/internal/output"
	"taskcsv/internal/pipeline"
	"taskcsv/internal/service"
)

func init() {
	Register(&UndoCmd{})
}

// UndoCmd implements the undo command: delete every task matched by a
// CSV row, typically the same CSV a previous import was run with.
type UndoCmd struct {
	listName string
	in       io.Reader // defaults to os.Stdin
}

// SetListName sets the list name (for testing).
func (c *UndoCmd) SetListName(name string) {
	c.listName = name
}

// SetInput sets the stdin reader (for testing).
func (c *UndoCmd) SetInput(in io.Reader) {
	c.in = in
}

func (c *UndoCmd) Name() string      { return "undo" }
func (c *UndoCmd) Aliases() []string { return []string{"delete"} }
func (c *UndoCmd) Synopsis() string  { return "Delete tasks matching CSV rows" }
func (c *UndoCmd) Usage() string {
	return "taskcsv undo [common flags] [--list <list-name>] [file]"
}
func (c *UndoCmd) NeedsAuth() bool { return true }

func (c *UndoCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *UndoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	csvText, err := readCSVInput(args, c.in)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	list, code := resolveTargetList(ctx, svc, c.listName, errOut)
	if code != exitcode.Success {
		return code
	}

	res, err := pipeline.DeleteByCsv(ctx, svc, list.ID, csvText)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		output.FormatDeleteSummary(out, res)
	}
	return exitcode.Success
}
