package auth

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/notemap/internal/tui/theme"
)

const statusDot = "●"

type Indicator struct {
	Checked       bool
	Authenticated bool
}

func (a Indicator) Render() string {
	if !a.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorPending).
			Render(statusDot + " checking...")
	}

	if a.Authenticated {
		return lipgloss.NewStyle().
			Foreground(theme.ColorSuccess).
			Render(statusDot + " signed in")
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorError).
		Render(statusDot + " signed out")
}
