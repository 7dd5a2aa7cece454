// Package report tallies per-item outcomes of a batch run and renders the
// closing summary. Items either succeed with a detail line, fail with an
// error, or are skipped; only a run where every attempted item failed is
// treated as fatal.
package report

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Entry is one processed item.
type Entry struct {
	Name    string
	Detail  string
	Skipped bool
	Err     error
}

// Tally collects per-item outcomes in processing order.
type Tally struct {
	entries []Entry
	errors  *multierror.Error
}

// New returns an empty tally.
func New() *Tally {
	return &Tally{}
}

// Success records a completed item. Detail is free-form, e.g. dimensions and
// file size.
func (t *Tally) Success(name, detail string) {
	t.entries = append(t.entries, Entry{Name: name, Detail: detail})
}

// Failure records a failed item. The run continues.
func (t *Tally) Failure(name string, err error) {
	t.entries = append(t.entries, Entry{Name: name, Err: err})
	t.errors = multierror.Append(t.errors, fmt.Errorf("%s: %w", name, err))
}

// Skip records an item that was not attempted, e.g. a missing input.
func (t *Tally) Skip(name, reason string) {
	t.entries = append(t.entries, Entry{Name: name, Detail: reason, Skipped: true})
}

// Succeeded returns the number of successful items.
func (t *Tally) Succeeded() int {
	n := 0
	for _, entry := range t.entries {
		if entry.Err == nil && !entry.Skipped {
			n++
		}
	}
	return n
}

// Failed returns the number of failed items.
func (t *Tally) Failed() int {
	n := 0
	for _, entry := range t.entries {
		if entry.Err != nil {
			n++
		}
	}
	return n
}

// Skipped returns the number of skipped items.
func (t *Tally) Skipped() int {
	n := 0
	for _, entry := range t.entries {
		if entry.Skipped {
			n++
		}
	}
	return n
}

// Err returns the aggregated per-item failures, or nil if none failed.
func (t *Tally) Err() error {
	return t.errors.ErrorOrNil()
}

// RunError returns a fatal error when every attempted item failed, wrapping
// the per-item failures. Partial success is not fatal.
func (t *Tally) RunError() error {
	if t.Failed() == 0 || t.Succeeded() > 0 {
		return nil
	}
	return fmt.Errorf("no items succeeded: %w", t.errors.ErrorOrNil())
}

// Table renders the outcomes in processing order.
func (t *Tally) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "Output", "Detail"})
	for _, entry := range t.entries {
		switch {
		case entry.Err != nil:
			tw.AppendRow(table.Row{"✗", entry.Name, entry.Err.Error()})
		case entry.Skipped:
			tw.AppendRow(table.Row{"-", entry.Name, entry.Detail})
		default:
			tw.AppendRow(table.Row{"✓", entry.Name, entry.Detail})
		}
	}
	return tw.Render()
}

// FileSize returns the humanized size of the file at path, or "?" when it
// cannot be stat'd.
func FileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "?"
	}
	return humanize.Bytes(uint64(info.Size()))
}
