// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nbexport CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nbexport/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd exports every notebook under its single argument.
var rootCmd = &cobra.Command{
	Use:   "nbexport <source_dir>",
	Short: "Export every Jupyter notebook under a directory to HTML",
	Long: `nbexport recursively searches source_dir for .ipynb files and renders
each one to an HTML file of the same name in the same directory, with code
cells hidden. Rendering is done by Jupyter nbconvert, which must be
installed for the Python interpreter nbexport runs.

Failed notebooks are reported and counted; they do not stop the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nbexport.yaml or ~/.config/nbexport/nbexport.yaml)")
	rootCmd.PersistentFlags().String("history-dir", "", "directory of the export history ledger (disabled when empty)")
	rootCmd.Flags().String("report", "", "write a run report to this .yaml or .json file")

	_ = viper.BindPFlag("history_dir", rootCmd.PersistentFlags().Lookup("history-dir"))
	_ = viper.BindPFlag("report", rootCmd.Flags().Lookup("report"))

	viper.SetDefault("extension", types.DefaultExtension)
	viper.SetDefault("format", types.DefaultFormat)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nbexport")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nbexport"))
		}
	}

	viper.SetEnvPrefix("NBEXPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the merged viper settings into an ExportConfig.
func loadConfig() (types.ExportConfig, error) {
	var cfg types.ExportConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
