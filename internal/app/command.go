package app

import (
	"fmt"

	"github.com/yildizm/NanoLab/internal/nav"
)

// CommandKind enumerates the events the control panel reacts to
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdNavigate
	CmdBack
	CmdForward
	CmdToggleTheme
	CmdSetValue
	CmdStep
	CmdSetColor
	CmdSetStart
	CmdShiftStart
	CmdSave
	CmdSendAll
	CmdRunExperiment
)

var commandNames = map[CommandKind]string{
	CmdNone:          "none",
	CmdNavigate:      "navigate",
	CmdBack:          "back",
	CmdForward:       "forward",
	CmdToggleTheme:   "toggle-theme",
	CmdSetValue:      "set-value",
	CmdStep:          "step",
	CmdSetColor:      "set-color",
	CmdSetStart:      "set-start",
	CmdShiftStart:    "shift-start",
	CmdSave:          "save",
	CmdSendAll:       "send-all",
	CmdRunExperiment: "run-experiment",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is a single user intent. Target defaults to the current page for
// form commands.
type Command struct {
	Kind   CommandKind
	Target nav.PageID
	Field  string
	Value  int
	Text   string
}

// Result describes what a command changed, for the status line
type Result struct {
	Message string
	// Warning is a non-fatal problem with the command, such as
	// settings.ErrOutOfRange when a value had to be clamped.
	Warning error
}
