package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/NanoLab/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	noEmoji   bool
	outputFmt string
	themeName string
	startPage string
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nanolab",
		Short: "NanoLab control panel",
		Long: `NanoLab is a terminal control panel for an Auxora NanoLab.

It configures the LED, water pump, fan, camera and atmospheric sensor,
shows experiment data and sends the settings to your NanoLab.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
		},
		RunE: runTUI,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, yaml, csv, markdown)")

	rootCmd.Flags().StringVar(&themeName, "theme", "", "initial theme (light, dark)")
	rootCmd.Flags().StringVar(&startPage, "start", "", "page shown on start")

	// Add subcommands
	rootCmd.AddCommand(newVersionCommand(version, commit, date))
	rootCmd.AddCommand(newPagesCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "NanoLab %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// loadConfig loads the configuration and applies global flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noEmoji {
		cfg.Output.NoEmoji = true
	}
	if outputFmt != "" {
		cfg.Output.Format = outputFmt
	}
	if themeName != "" {
		cfg.UI.Theme = themeName
	}
	if startPage != "" {
		cfg.UI.StartPage = startPage
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// Global helpers
func isVerbose() bool {
	return verbose
}
