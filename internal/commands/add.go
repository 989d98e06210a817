package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/output"
	"tdo/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a todo" }
func (c *AddCmd) Usage() string     { return "tdo add <title> [description...]" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return usageError(errOut, c, "title required")
	}
	title := args[0]
	description := strings.Join(args[1:], " ")

	list, err := st.Load(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	index, err := list.Add(title, description)
	if err != nil {
		return fail(errOut, err)
	}

	if err := st.Save(ctx, list); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		output.FormatAdded(out, index)
	}
	return exitcode.Success
}
