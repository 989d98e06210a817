package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrIndexRequired indicates no index argument was provided.
var ErrIndexRequired = errors.New("index required")

// ParseIndex parses a 1-based task index from the first argument.
// Non-numeric or sub-1 values are rejected here; the upper bound is
// checked against the loaded list by the mutation itself.
func ParseIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIndexRequired
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid index: %s", args[0])
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid index: %d (indexes start at 1)", n)
	}
	return n, nil
}
