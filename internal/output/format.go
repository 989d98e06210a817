// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tdo/internal/task"
)

const (
	// MarkDone marks a completed task.
	MarkDone = "x"

	// MarkPending marks a pending task.
	MarkPending = "  "
)

// FormatTask writes one task line.
// Format: "{N}. [{MARK}] {TITLE} — {DESCRIPTION}\n". The separator is
// kept even when the description is empty.
func FormatTask(w io.Writer, index int, t task.Task) {
	mark := MarkPending
	if t.Completed {
		mark = MarkDone
	}
	fmt.Fprintf(w, "%d. [%s] %s — %s\n", index, mark, normalize(t.Title), normalize(t.Description))
}

// FormatAdded writes the confirmation line for a newly added task.
func FormatAdded(w io.Writer, index int) {
	fmt.Fprintf(w, "added #%d\n", index)
}

// normalize flattens a field for single-line display.
// - Newlines are replaced with spaces
// - A whitespace-only title renders as given (validation rejects empty
//   titles before they are stored; descriptions may be blank)
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
