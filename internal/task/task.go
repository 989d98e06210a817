// Package task defines the todo data model and in-memory list operations.
package task

import (
	"fmt"
	"iter"
	"strings"
)

// Task represents a single todo entry.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// List is an ordered sequence of tasks. Position defines identity: the
// 1-based index of a task is its position plus one, recomputed on every
// load. There are no stable IDs.
type List []Task

// Filter selects a subset of a list by completion state.
type Filter int

const (
	// FilterAll matches every task.
	FilterAll Filter = iota

	// FilterPending matches tasks with Completed == false.
	FilterPending

	// FilterDone matches tasks with Completed == true.
	FilterDone
)

// Match reports whether the filter selects t.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterDone:
		return t.Completed
	default:
		return true
	}
}

// ValidationError indicates an invalid task field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IndexError indicates a 1-based index outside [1, len(list)].
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d (list has %d tasks)", e.Index, e.Len)
}

func errEmptyTitle() error {
	return &ValidationError{Field: "title", Err: fmt.Errorf("must not be empty")}
}

// check validates a 1-based index against the list bounds.
func (l List) check(index int) error {
	if index < 1 || index > len(l) {
		return &IndexError{Index: index, Len: len(l)}
	}
	return nil
}

// Add appends a new pending task and returns its 1-based index.
// Returns a ValidationError if the title is empty or blank.
func (l *List) Add(title, description string) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, errEmptyTitle()
	}
	*l = append(*l, Task{Title: title, Description: description})
	return len(*l), nil
}

// SetCompleted sets the completion flag of the task at the 1-based index.
func (l List) SetCompleted(index int, completed bool) error {
	if err := l.check(index); err != nil {
		return err
	}
	l[index-1].Completed = completed
	return nil
}

// Remove deletes the task at the 1-based index. Subsequent tasks shift
// down by one position.
func (l *List) Remove(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	*l = append((*l)[:index-1], (*l)[index:]...)
	return nil
}

// Edit replaces the title and description of the task at the 1-based
// index. The completion flag is unchanged.
func (l List) Edit(index int, title, description string) error {
	if err := l.check(index); err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		return errEmptyTitle()
	}
	l[index-1].Title = title
	l[index-1].Description = description
	return nil
}

// Items returns a lazy sequence of (index, task) pairs matching the
// filter. Indices are 1-based positions in the underlying list, so a
// filtered sequence keeps the indices the tasks have in the full list.
// The sequence is recomputed on each range, in list order.
func (l List) Items(f Filter) iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range l {
			if !f.Match(t) {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}
