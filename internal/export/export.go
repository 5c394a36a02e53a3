// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export walks a directory tree and renders every notebook it
// finds into a sibling document, tallying the outcome of each attempt.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/nbexport/internal/notebook"
	"github.com/pdiddy/nbexport/internal/render"
	"github.com/pdiddy/nbexport/pkg/types"
)

// ErrNoNotebooks is returned by ExportTree when the root holds no notebooks.
var ErrNoNotebooks = errors.New("no notebooks found")

// now is replaceable in tests.
var now = time.Now

// Recorder receives every export record as it is produced. The history
// ledger implements it.
type Recorder interface {
	Record(rec types.ExportRecord) error
}

// Summary holds the outcome of an export run.
type Summary struct {
	Succeeded int                  `json:"succeeded" yaml:"succeeded"`
	Failed    int                  `json:"failed" yaml:"failed"`
	Records   []types.ExportRecord `json:"records" yaml:"records"`
}

// Total returns the number of notebooks attempted.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// HasFailures reports whether any notebook failed to export.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// PrintSummary writes the closing totals block.
func (s Summary) PrintSummary(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "Export complete.")
	fmt.Fprintf(w, "Succeeded: %d\n", s.Succeeded)
	fmt.Fprintf(w, "Failed:    %d\n", s.Failed)
	fmt.Fprintf(w, "Total:     %d\n", s.Total())
}

// ExportNotebook renders a single notebook next to itself and returns the
// record of the attempt. Progress and diagnostics are written to w.
func ExportNotebook(r render.Renderer, path string, w io.Writer) types.ExportRecord {
	job := render.JobFor(path)
	rec := types.ExportRecord{
		Notebook:   path,
		Output:     r.OutputPath(job),
		ExportedAt: now().UTC(),
	}

	fmt.Fprintf(w, "exporting: %s\n", path)
	start := now()
	err := r.Render(job)
	rec.Duration = now().Sub(start)

	if err != nil {
		rec.Status = types.ExportFailed
		rec.Diagnostic = diagnostic(err)
		fmt.Fprintf(w, "  failed: %s\n", rec.Diagnostic)
	} else {
		rec.Status = types.ExportDone
		fmt.Fprintf(w, "  exported: %s\n", filepath.Base(rec.Output))
	}
	fmt.Fprintln(w)
	return rec
}

// ExportBatch exports each path in order. A failed notebook never stops the
// batch. rec may be nil.
func ExportBatch(r render.Renderer, rec Recorder, paths []string, w io.Writer) Summary {
	summary := Summary{Records: make([]types.ExportRecord, 0, len(paths))}
	for _, p := range paths {
		record := ExportNotebook(r, p, w)
		if record.Succeeded() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		summary.Records = append(summary.Records, record)

		if rec != nil {
			if err := rec.Record(record); err != nil {
				fmt.Fprintf(w, "warning: could not record history for %s: %v\n", p, err)
			}
		}
	}
	summary.PrintSummary(w)
	return summary
}

// RendererFunc builds the renderer for a run. ExportTree calls it only
// once discovery has found something to render.
type RendererFunc func() (render.Renderer, error)

// ExportTree discovers notebooks under root and exports them. It returns
// without attempting anything when root is invalid or holds no notebooks;
// the returned error then wraps notebook.ErrRootNotFound,
// notebook.ErrNotDirectory, or ErrNoNotebooks. newRenderer is not called
// in those cases, and an error from it is returned as is.
func ExportTree(newRenderer RendererFunc, rec Recorder, root string, opts notebook.DiscoverOptions, w io.Writer) (Summary, error) {
	paths, err := notebook.Discover(root, opts)
	if err != nil {
		return Summary{}, err
	}
	if len(paths) == 0 {
		return Summary{}, fmt.Errorf("%w in %s or its subdirectories", ErrNoNotebooks, root)
	}

	r, err := newRenderer()
	if err != nil {
		return Summary{}, err
	}

	fmt.Fprintf(w, "found %d notebook(s)\n\n", len(paths))
	return ExportBatch(r, rec, paths, w), nil
}

func diagnostic(err error) string {
	var te *render.ToolError
	if errors.As(err, &te) {
		if te.Diagnostic != "" {
			return te.Diagnostic
		}
		return fmt.Sprintf("tool exited with status %d", te.ExitCode)
	}
	return err.Error()
}
