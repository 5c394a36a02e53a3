// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nbexport/internal/export"
	"github.com/pdiddy/nbexport/internal/history"
	"github.com/pdiddy/nbexport/internal/notebook"
	"github.com/pdiddy/nbexport/internal/render"
	"github.com/pdiddy/nbexport/pkg/types"
)

// newRenderer builds the production renderer. Tests replace it.
var newRenderer = func(cfg types.ExportConfig) (render.Renderer, error) {
	interp, err := render.DetectInterpreter(cfg.Interpreter)
	if err != nil {
		return nil, err
	}
	return render.NewNbconvertRenderer(interp, cfg), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	// Past argument validation, errors are runtime failures, not misuse.
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := args[0]
	out := cmd.OutOrStdout()

	var rec export.Recorder
	if cfg.HistoryDir != "" {
		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			return err
		}
		defer store.Close()
		rec = store
	}

	opts := notebook.DiscoverOptions{
		Extension:   cfg.Extension,
		ExcludeDirs: cfg.ExcludeDirs,
		Warnings:    cmd.ErrOrStderr(),
	}
	build := func() (render.Renderer, error) { return newRenderer(cfg) }

	summary, err := export.ExportTree(build, rec, root, opts, out)
	if err != nil {
		return reportEarlyExit(out, cfg, root, err)
	}

	if cfg.Report != "" {
		if err := export.WriteReport(cfg.Report, root, summary); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", cfg.Report)
	}
	return nil
}

// reportEarlyExit prints the message for a run that stopped before any
// export. Those runs are not command failures, so it returns nil for them
// and err for anything else.
func reportEarlyExit(w io.Writer, cfg types.ExportConfig, root string, err error) error {
	switch {
	case errors.Is(err, notebook.ErrRootNotFound):
		fmt.Fprintf(w, "error: source directory does not exist: %s\n", root)
	case errors.Is(err, notebook.ErrNotDirectory):
		fmt.Fprintf(w, "error: %s is not a directory\n", root)
	case errors.Is(err, export.ErrNoNotebooks):
		fmt.Fprintf(w, "no %s files found in %s or its subdirectories\n", cfg.Extension, root)
	default:
		return err
	}
	return nil
}
