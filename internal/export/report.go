// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk form of a finished run.
type Report struct {
	Root      string    `json:"root" yaml:"root"`
	Generated time.Time `json:"generated" yaml:"generated"`
	Total     int       `json:"total" yaml:"total"`
	Summary   `yaml:",inline"`
}

// WriteReport writes the summary of a run under root to path. The format
// follows the extension: .yaml/.yml for YAML, .json for JSON.
func WriteReport(path, root string, s Summary) error {
	report := Report{
		Root:      root,
		Generated: now().UTC(),
		Total:     s.Total(),
		Summary:   s,
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(report)
	case ".json":
		data, err = json.MarshalIndent(report, "", "  ")
	default:
		return fmt.Errorf("unsupported report format %q: use .yaml, .yml, or .json", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
