package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/NanoLab/internal/config"
	"github.com/yildizm/NanoLab/internal/emoji"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".nanolab.yaml"

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage NanoLab configuration",
		Long: `Manage NanoLab configuration files.

Configuration is merged from built-in defaults, /etc/nanolab/config.yaml,
~/.config/nanolab/config.yaml, ./.nanolab.yaml, NANOLAB_* environment
variables and finally command line flags.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigInitCommand creates the config init subcommand
func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Example: `  # Full sample in the current directory
  nanolab config init

  # Only the common settings, in the user config directory
  nanolab config init --minimal --path ~/.config/nanolab/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = defaultConfigFile
			}
			if !force && fileExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			if dir := filepath.Dir(outputPath); dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			content := config.SampleConfig()
			if minimal {
				content = config.MinimalSampleConfig()
			}
			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			glyphs := emoji.New(noEmoji)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration file created at: %s\n", glyphs.Get("saved"), outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "path", "p", "", "where to write the file (default: "+defaultConfigFile+")")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "write only the common settings")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return initCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Example: `  nanolab config show
  nanolab config show --format json --config ./lab.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(cfg, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(cfg)
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long: `Load the configuration from every source and check it.

Rejects unknown themes, start pages, output formats and color modes,
and non-positive experiment sizes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			glyphs := emoji.New(noEmoji)
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n   %v\n", glyphs.Get("error"), err)
				return err
			}

			fmt.Fprintf(out, "%s Configuration is valid\n", glyphs.Get("saved"))
			fmt.Fprintf(out, "   Theme: %s\n", cfg.UI.Theme)
			fmt.Fprintf(out, "   Start page: %s\n", cfg.UI.StartPage)
			fmt.Fprintf(out, "   Output format: %s\n", cfg.Output.Format)
			fmt.Fprintf(out, "   Experiment: %d samples in [0, %d]\n", cfg.Data.Samples, cfg.Data.MaxValue)
			return nil
		},
	}
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration file search paths (highest priority first):")

			for i, path := range config.GetConfigPaths() {
				state := "not found"
				if fileExists(path) {
					state = "exists"
				}
				fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, path, state)
			}

			if current, found := config.FindConfigFile(); found {
				fmt.Fprintf(out, "Current config file: %s\n", current)
			} else {
				fmt.Fprintln(out, "No config file found, using defaults")
			}
			fmt.Fprintln(out, "Environment variables with NANOLAB_ prefix override file settings")
		},
	}
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
