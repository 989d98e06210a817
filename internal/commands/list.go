package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/output"
	"tdo/internal/store"
	"tdo/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Also handles `tdo` with no arguments.
type ListCmd struct {
	all     bool
	pending bool
	done    bool
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List todos" }
func (c *ListCmd) Usage() string     { return "tdo list [--all|--pending|--done]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.pending, "pending", false, "")
	fs.BoolVar(&c.done, "done", false, "")
}

// filter resolves the three flags into a task.Filter.
// Default (no flags) is all; more than one flag is a user error.
func (c *ListCmd) filter() (task.Filter, error) {
	set := 0
	f := task.FilterAll
	if c.all {
		set++
	}
	if c.pending {
		set++
		f = task.FilterPending
	}
	if c.done {
		set++
		f = task.FilterDone
	}
	if set > 1 {
		return 0, fmt.Errorf("at most one of --all, --pending, --done")
	}
	return f, nil
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, c, fmt.Sprintf("unexpected argument: %s", args[0]))
	}

	f, err := c.filter()
	if err != nil {
		return usageError(errOut, c, err.Error())
	}

	list, err := st.Load(ctx)
	if err != nil {
		return fail(errOut, err)
	}

	printed := false
	for index, t := range list.Items(f) {
		output.FormatTask(out, index, t)
		printed = true
	}

	if !printed && !cfg.Quiet {
		fmt.Fprintln(out, "no todos")
	}
	return exitcode.Success
}
