package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/tui/components/auth"
	"github.com/garrettladley/notemap/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps

	auth     auth.Indicator
	feed     result.Result[[]notemap.Note]
	selected int
	status   string
}

func New(deps Deps) Model {
	return Model{
		theme: theme.New(),
		deps:  deps,
		feed:  result.Loading[[]notemap.Note](),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		checkAuthCmd(m.deps.Ctx, m.deps.Auth),
		loadFeedCmd(m.deps.Ctx, m.deps.Notes),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		return m, m.handleKey(msg.String())

	case AuthStatusMsg:
		m.auth.Checked = true
		m.auth.Authenticated, _ = msg.Result.Value()

	case FeedMsg:
		m.feed = msg.Result
		m.status = ""
		if notes, ok := m.feed.Value(); ok {
			m.selected = clamp(m.selected, 0, len(notes)-1)
		}

	case LikeMsg:
		result.Match(msg.Result,
			func(result.Unit) { m.applyLike(msg.NoteID, msg.Liked) },
			func(message string) { m.status = message },
			func() {},
		)
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "r":
		m.feed = result.Loading[[]notemap.Note]()
		m.status = ""
		return loadFeedCmd(m.deps.Ctx, m.deps.Notes)
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "l":
		if note, ok := m.selectedNote(); ok {
			return toggleLikeCmd(m.deps.Ctx, m.deps.Notes, note)
		}
	}
	return nil
}

func (m *Model) move(delta int) {
	notes, ok := m.feed.Value()
	if !ok || len(notes) == 0 {
		return
	}
	m.selected = clamp(m.selected+delta, 0, len(notes)-1)
}

func (m *Model) selectedNote() (notemap.Note, bool) {
	notes, ok := m.feed.Value()
	if !ok || m.selected >= len(notes) {
		return notemap.Note{}, false
	}
	return notes[m.selected], true
}

// applyLike copies the feed so results already handed out stay untouched.
func (m *Model) applyLike(id int64, liked bool) {
	notes, ok := m.feed.Value()
	if !ok {
		return
	}
	updated := make([]notemap.Note, len(notes))
	copy(updated, notes)
	for i := range updated {
		if updated[i].ID != id || updated[i].Liked == liked {
			continue
		}
		updated[i].Liked = liked
		if liked {
			updated[i].LikeCount++
		} else {
			updated[i].LikeCount = max(updated[i].LikeCount-1, 0)
		}
	}
	m.feed = result.Success(updated)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title().Render("notemap feed"),
		"",
		m.FeedView(),
	)

	view.SetContent(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Padding(1, 2).Height(max(m.viewportHeight-2, 0)).Render(body),
		m.FooterView(),
	))
	return view
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
