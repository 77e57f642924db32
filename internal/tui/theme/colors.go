package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent  = lipgloss.Color("#FF7A59") // selection, titles
	ColorSuccess = lipgloss.Color("#3DDC84") // signed in
	ColorError   = lipgloss.Color("#FF3B30") // errors, signed out
	ColorPending = lipgloss.Color("#8E8E93") // loading, checking
)

var ColorBgDark = lipgloss.Color("#14161A")
