package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/config/loader"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		format string
		output string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long:  "Write the default configuration to --output, or to stdout when no output is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && !cmd.Flags().Changed("format") {
				if f, err := loader.FormatOf(output); err == nil {
					format = string(f)
				}
			}
			data, err := config.Encode(config.Default(), loader.Format(format))
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return writeConfig(output, data, force)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(loader.FormatTOML), "file format (toml, yaml, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func writeConfig(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func newConfigShowCmd() *cobra.Command {
	var (
		path   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the defaults merged with the config file and CLEKEY_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.ResolvePath(path)
			if err != nil {
				return err
			}
			cfg, err := config.Load(resolved)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg, loader.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "path to configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", string(loader.FormatTOML), "output format (toml, yaml, json)")
	return cmd
}
