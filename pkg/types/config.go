// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default configuration values for an export run.
const (
	DefaultExtension = ".ipynb"
	DefaultFormat    = "html"
)

// ExportConfig holds settings for a notebook export run. Values come from
// nbexport.yaml, NBEXPORT_* environment variables, or command-line flags.
type ExportConfig struct {
	// Interpreter is the Python executable that provides nbconvert. When
	// empty, python3 and python are tried in that order.
	Interpreter string `json:"interpreter,omitempty" yaml:"interpreter,omitempty" mapstructure:"interpreter"`

	// Extension is the notebook file extension to search for (default ".ipynb").
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`

	// Format is the nbconvert exporter name; the output file takes the same
	// extension (default "html").
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// ShowInput keeps code cells in the rendered output. The zero value
	// hides them.
	ShowInput bool `json:"show_input" yaml:"show_input" mapstructure:"show_input"`

	// ExcludeDirs lists directory names or root-relative paths to prune
	// from the walk (e.g. ".ipynb_checkpoints").
	ExcludeDirs []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty" mapstructure:"exclude_dirs"`

	// HistoryDir, when set, is where the history ledger database lives.
	HistoryDir string `json:"history_dir,omitempty" yaml:"history_dir,omitempty" mapstructure:"history_dir"`

	// Report, when set, is the path of a YAML or JSON run report.
	Report string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c ExportConfig) WithDefaults() ExportConfig {
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	return c
}
