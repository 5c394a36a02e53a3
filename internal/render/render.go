// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render drives the external notebook rendering tool (Jupyter
// nbconvert) as a subprocess.
package render

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/nbexport/pkg/types"
)

// Job names one rendering: the input notebook and where the output goes.
type Job struct {
	Input     string
	OutputDir string
	BaseName  string
}

// JobFor returns the job that renders path into its own directory under
// the same base name.
func JobFor(path string) Job {
	name := filepath.Base(path)
	return Job{
		Input:     path,
		OutputDir: filepath.Dir(path),
		BaseName:  strings.TrimSuffix(name, filepath.Ext(name)),
	}
}

// OutputPath returns OutputDir/BaseName.<ext>.
func (j Job) OutputPath(ext string) string {
	return filepath.Join(j.OutputDir, j.BaseName+"."+strings.TrimPrefix(ext, "."))
}

// Renderer turns a notebook into a static document.
type Renderer interface {
	// Render produces the document for job. A nil error means the tool
	// exited zero; any diagnostic text it printed is ignored.
	Render(job Job) error

	// OutputPath returns where Render writes the document for job.
	OutputPath(job Job) string
}

// ToolError reports a rendering tool that ran but exited nonzero.
type ToolError struct {
	Input      string
	ExitCode   int
	Diagnostic string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("rendering %s: tool exited with status %d", e.Input, e.ExitCode)
	if e.Diagnostic != "" {
		msg += ": " + e.Diagnostic
	}
	return msg
}

// IsToolError reports whether err is, or wraps, a *ToolError.
func IsToolError(err error) bool {
	var te *ToolError
	return errors.As(err, &te)
}

// NbconvertRenderer renders notebooks with `<interpreter> -m nbconvert`.
type NbconvertRenderer struct {
	interpreter string
	format      string
	hideInput   bool
	exec        executor
}

// NewNbconvertRenderer creates a renderer that runs nbconvert under the
// given interpreter using the format and input visibility from cfg.
func NewNbconvertRenderer(interpreter string, cfg types.ExportConfig) *NbconvertRenderer {
	return newNbconvertRenderer(interpreter, cfg, defaultExec)
}

func newNbconvertRenderer(interpreter string, cfg types.ExportConfig, exec executor) *NbconvertRenderer {
	cfg = cfg.WithDefaults()
	return &NbconvertRenderer{
		interpreter: interpreter,
		format:      cfg.Format,
		hideInput:   !cfg.ShowInput,
		exec:        exec,
	}
}

// OutputPath returns the document path nbconvert writes for job.
func (n *NbconvertRenderer) OutputPath(job Job) string {
	return job.OutputPath(n.format)
}

// Args returns the argument list passed to the interpreter for job.
func (n *NbconvertRenderer) Args(job Job) []string {
	args := []string{"-m", "nbconvert", "--to", n.format}
	if n.hideInput {
		args = append(args, "--no-input")
	}
	return append(args,
		job.Input,
		"--output-dir", job.OutputDir,
		"--output", job.BaseName,
	)
}

// Render runs nbconvert for job and blocks until it exits.
func (n *NbconvertRenderer) Render(job Job) error {
	_, stderr, err := n.exec.RunCaptured(n.interpreter, n.Args(job))
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{
			Input:      job.Input,
			ExitCode:   exitErr.ExitCode(),
			Diagnostic: strings.TrimSpace(string(stderr)),
		}
	}
	return fmt.Errorf("starting %s for %s: %w", n.interpreter, job.Input, err)
}
