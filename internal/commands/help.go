package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tdo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText)
	return exitcode.Success
}

// HelpText is the full usage message. Also printed to stderr on bad
// invocations.
const HelpText = `Usage:
  tdo                                   List all todos
  tdo add <title> [description...]      Add a todo
  tdo list [--all|--pending|--done]     List todos (default: --all)
  tdo done <index>                      Mark a todo as done
  tdo undone <index>                    Mark a todo as not done
  tdo remove <index>                    Remove a todo (aliases: rm, del)
  tdo edit <index> <title> [desc...]    Replace a todo's title and description
  tdo help
  tdo version

Common flags:
  --db <path>      Override the backing file path
  --quiet          Suppress informational output
  --debug          Print resolved paths to stderr

Environment:
  TODO_DB=path/to/file.json             Override the backing file path
                                        (default: ./todos.json)
`
