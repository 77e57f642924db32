package footer

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type Footer struct {
	rightContent string
	width        int
	padding      int
}

func New(rightContent string, width int) Footer {
	return Footer{
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

// Render pins the build version left and rightContent right.
func (f Footer) Render() string {
	leftContent := f.leftContent()

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(f.rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 1)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + f.rightContent)
}
