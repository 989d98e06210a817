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
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a todo as done" }
func (c *DoneCmd) Usage() string     { return "tdo done <index>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	return runSetCompleted(ctx, cfg, st, c, true, args, out, errOut)
}

// UndoneCmd implements the undone command.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string      { return "undone" }
func (c *UndoneCmd) Aliases() []string { return nil }
func (c *UndoneCmd) Synopsis() string  { return "Mark a todo as not done" }
func (c *UndoneCmd) Usage() string     { return "tdo undone <index>" }
func (c *UndoneCmd) NeedsStore() bool  { return true }

func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	return runSetCompleted(ctx, cfg, st, c, false, args, out, errOut)
}

// runSetCompleted is the shared implementation for done and undone.
func runSetCompleted(ctx context.Context, cfg *config.Config, st store.Store, cmd Command, completed bool, args []string, out, errOut io.Writer) int {
	index, err := ParseIndex(args)
	if err != nil {
		return usageError(errOut, cmd, err.Error())
	}

	list, err := st.Load(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	if err := list.SetCompleted(index, completed); err != nil {
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
