package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yildizm/NanoLab/internal/app"
	"github.com/yildizm/NanoLab/internal/config"
	"github.com/yildizm/NanoLab/internal/emoji"
	"github.com/yildizm/NanoLab/internal/logger"
	"github.com/yildizm/NanoLab/internal/sink"
	"github.com/yildizm/NanoLab/internal/ui"
)

// runTUI launches the interactive control panel
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewWithCallback("nanolab", func() bool { return cfg.Output.Verbose })
	// stderr would corrupt the alt screen; only verbose runs log there
	var logOut io.Writer = io.Discard
	if isVerbose() || cfg.Output.Verbose {
		logOut = os.Stderr
	}
	log.SetOutput(logOut)

	state := app.New(app.Options{
		Config: cfg,
		Sink:   sink.NewLogSink(log),
		Logger: log,
	})
	if err := state.Init(); err != nil {
		return fmt.Errorf("failed to start control panel: %w", err)
	}

	configPath := cfgFile
	if configPath == "" {
		configPath, _ = config.FindConfigFile()
	}

	var watcher *config.Watcher
	if cfg.UI.WatchConfig && configPath != "" {
		watcher, err = config.WatchFile(configPath)
		if err != nil {
			log.Warn("config hot reload disabled: %v", err)
		} else {
			defer func() { _ = watcher.Close() }()
			log.Debug("watching %s", watcher.Path())
		}
	}

	model := ui.NewModel(ui.Options{
		State:      state,
		ConfigPath: configPath,
		Watcher:    watcher,
		Glyphs:     emoji.New(cfg.Output.NoEmoji),
		Logger:     log,
	})

	if err := ui.Run(cmd.Context(), model, cfg.UI.AltScreen); err != nil {
		return fmt.Errorf("control panel failed: %w", err)
	}
	return nil
}
