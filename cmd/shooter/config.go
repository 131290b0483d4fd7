package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opd-ai/go-shooter/pkg/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Prints the effective configuration: the defaults, or the file given
with --config, after environment overrides. The output can be saved and
edited.

Examples:
  shooter config > shooter.json
  shooter config --format yaml > shooter.yaml
  shooter config --config ./shooter.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", config.FormatJSON, "Output format: json or yaml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg, flagFormat)
}

// loadConfig reads path, or the defaults when path is empty, then applies
// environment overrides and validates the result
func loadConfig(path string) (*config.GameConfig, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	config.ApplyEnvironmentOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func writeConfig(w io.Writer, cfg *config.GameConfig, format string) error {
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
