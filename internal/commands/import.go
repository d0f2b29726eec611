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
	Register(&ImportCmd{})
}

// ImportCmd implements the import command.
type ImportCmd struct {
	listName string
	in       io.Reader // defaults to os.Stdin
}

// SetListName sets the list name (for testing).
func (c *ImportCmd) SetListName(name string) {
	c.listName = name
}

// SetInput sets the stdin reader (for testing).
func (c *ImportCmd) SetInput(in io.Reader) {
	c.in = in
}

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return []string{"add"} }
func (c *ImportCmd) Synopsis() string  { return "Create tasks from CSV" }
func (c *ImportCmd) Usage() string {
	return "taskcsv import [common flags] [--list <list-name>] [file]"
}
func (c *ImportCmd) NeedsAuth() bool { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	csvText, err := readCSVInput(args, c.in)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	list, code := resolveTargetList(ctx, svc, c.listName, errOut)
	if code != exitcode.Success {
		return code
	}

	res := pipeline.Import(ctx, svc, list.ID, csvText)

	if !cfg.Quiet {
		output.FormatImportSummary(out, res)
	}

	// Partial success is success; only a batch with failures and no
	// creates at all reports a backend error.
	if len(res.Failed) > 0 && res.Created == 0 {
		return exitcode.BackendError
	}
	return exitcode.Success
}
