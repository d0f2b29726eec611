package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcsv/internal/config"
	"taskcsv/internal/exitcode"
	"taskcsv/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskcsv help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskcsv import [common flags] [--list <list-name>] [file]   Create tasks from CSV
  taskcsv undo [common flags] [--list <list-name>] [file]     Delete tasks matching CSV rows
  taskcsv export [common flags] [--list <list-name>]          Write a list as CSV
  taskcsv lists [common flags]                                Print all lists
  taskcsv login [common flags]
  taskcsv logout [common flags]
  taskcsv help
  taskcsv version

CSV format:
  Three columns in order: title, notes, due. A first row containing a
  "title" cell is treated as a header and skipped. The due column
  accepts YYYY-MM-DD or an RFC 3339 timestamp. When file is omitted
  or "-", CSV is read from stdin.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
