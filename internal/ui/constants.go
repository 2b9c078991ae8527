package ui

import "errors"

var errInvalidServerURL = errors.New("server URL must be an absolute http(s) URL")

// Icons
const (
	IconSettings = "⚙"
	IconClose    = "X"
)

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	PanelIndexFormat    = "#%d"
)

// Layout sizing
const (
	WindowWidth  float32 = 860
	WindowHeight float32 = 640

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56

	PanelsMinHeight   float32 = 280
	ProgressMinHeight float32 = 120
)

// Progress calculation constants
const (
	MaxProgressPercent = 100
)
