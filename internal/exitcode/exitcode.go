// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty title, index out of range).
	UserError = 1

	// DataError indicates a malformed backing file.
	DataError = 2

	// IOError indicates the backing file could not be read or written.
	IOError = 3
)
