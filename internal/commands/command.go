// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/store"
	"tdo/internal/task"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the backing
	// file. Commands like help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (resolved paths, quiet/debug).
	// st is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int
}

// fail prints err to errOut and returns the exit code for its kind.
// Validation and index errors are user errors; a malformed backing file
// is a data error; everything else is treated as I/O.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %s\n", err)

	var ve *task.ValidationError
	var ie *task.IndexError
	var pe *store.ParseError
	switch {
	case errors.As(err, &ve), errors.As(err, &ie):
		return exitcode.UserError
	case errors.As(err, &pe):
		return exitcode.DataError
	}
	return exitcode.IOError
}

// usageError prints a message and the command's usage line to errOut.
func usageError(errOut io.Writer, cmd Command, msg string) int {
	fmt.Fprintf(errOut, "error: %s\nusage: %s\n", msg, cmd.Usage())
	return exitcode.UserError
}
