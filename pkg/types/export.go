// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data records shared between nbexport stages.
package types

import "time"

// ExportStatus indicates the outcome of exporting one notebook.
type ExportStatus string

const (
	ExportDone   ExportStatus = "exported"
	ExportFailed ExportStatus = "failed"
)

// ExportRecord describes a single export attempt.
type ExportRecord struct {
	// Notebook is the absolute path of the source notebook.
	Notebook string `json:"notebook" yaml:"notebook"`

	// Output is the path the rendered document is written to.
	Output string `json:"output" yaml:"output"`

	Status ExportStatus `json:"status" yaml:"status"`

	// Diagnostic is the tool's captured stderr (or the start error) when
	// the export failed.
	Diagnostic string `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`

	Duration time.Duration `json:"duration" yaml:"duration"`

	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
}

// Succeeded reports whether the attempt produced an output document.
func (r ExportRecord) Succeeded() bool {
	return r.Status == ExportDone
}
