package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/tui/components/footer"
)

const keyHelp = "j/k move  l like  r reload  q quit"

func (m *Model) FeedView() string {
	return result.Fold(m.feed,
		m.renderNotes,
		func(message string) string {
			return m.theme.Error().Render("error: "+message) + "\n" + m.theme.Dim().Render("press r to retry")
		},
		func() string {
			return m.theme.Dim().Render("loading notes...")
		},
	)
}

func (m *Model) renderNotes(notes []notemap.Note) string {
	if len(notes) == 0 {
		return m.theme.Dim().Render("no notes yet")
	}

	lines := make([]string, 0, len(notes))
	for i, note := range notes {
		line := formatNote(note)
		if i == m.selected {
			lines = append(lines, m.theme.Selected().Render("> "+line))
			continue
		}
		lines = append(lines, m.theme.Base().Render("  "+line))
	}
	return strings.Join(lines, "\n")
}

func formatNote(n notemap.Note) string {
	heart := "♡"
	if n.Liked {
		heart = "♥"
	}

	var b strings.Builder
	b.WriteString(n.Title)
	if n.Author != nil {
		fmt.Fprintf(&b, " by @%s", n.Author.Username)
	}
	if n.Location != nil && n.Location.Name != "" {
		fmt.Fprintf(&b, " at %s", n.Location.Name)
	}
	fmt.Fprintf(&b, "  %s %d", heart, n.LikeCount)
	if n.RatingCount > 0 {
		fmt.Fprintf(&b, "  ★ %.1f", n.Rating)
	}
	return b.String()
}

func (m *Model) FooterView() string {
	right := m.auth.Render() + "  " + m.theme.Dim().Render(keyHelp)
	if m.status != "" {
		right = m.theme.Error().Render(m.status) + "  " + right
	}
	return lipgloss.NewStyle().Width(m.viewportWidth).Render(footer.New(right, m.viewportWidth).Render())
}
