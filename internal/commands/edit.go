package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. It replaces the title and
// description of a todo; the completion flag is untouched.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a todo's title and description" }
func (c *EditCmd) Usage() string     { return "tdo edit <index> <title> [description...]" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	index, err := ParseIndex(args)
	if err != nil {
		return usageError(errOut, c, err.Error())
	}
	if len(args) < 2 {
		return usageError(errOut, c, "title required")
	}
	title := args[1]
	description := strings.Join(args[2:], " ")

	list, err := st.Load(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	if err := list.Edit(index, title, description); err != nil {
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
