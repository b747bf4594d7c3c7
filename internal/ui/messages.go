package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/NanoLab/internal/config"
)

// configChangedMsg is sent when the watched config file was written
type configChangedMsg struct{}

type configErrorMsg struct {
	err error
}

// waitForConfigChange blocks until the watcher reports a change or error
func waitForConfigChange(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return configChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}
