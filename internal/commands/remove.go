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
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"rm", "del"} }
func (c *RemoveCmd) Synopsis() string  { return "Remove a todo" }
func (c *RemoveCmd) Usage() string     { return "tdo remove <index>" }
func (c *RemoveCmd) NeedsStore() bool  { return true }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	index, err := ParseIndex(args)
	if err != nil {
		return usageError(errOut, c, err.Error())
	}

	list, err := st.Load(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	if err := list.Remove(index); err != nil {
		return fail(errOut, err)
	}

	if err := st.Save(ctx, list); err != nil {
		return fail(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
