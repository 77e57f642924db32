package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/repository"
	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/xslog"
)

func checkAuthCmd(ctx context.Context, auth repository.AuthRepository) tea.Cmd {
	return func() tea.Msg {
		return AuthStatusMsg{Result: auth.IsSignedIn(ctx)}
	}
}

func loadFeedCmd(ctx context.Context, notes repository.NoteRepository) tea.Cmd {
	return func() tea.Msg {
		page := notes.List(ctx, &notemap.ListParams{Limit: feedPageSize})
		if msg, failed := page.Message(); failed {
			xslog.FromContext(ctx).WarnContext(ctx, "failed to load feed", xslog.ErrorMessage(msg))
		}
		return FeedMsg{Result: result.Map(page, func(p notemap.Page[notemap.Note]) []notemap.Note {
			return p.Records
		})}
	}
}

func toggleLikeCmd(ctx context.Context, notes repository.NoteRepository, note notemap.Note) tea.Cmd {
	return func() tea.Msg {
		if note.Liked {
			return LikeMsg{NoteID: note.ID, Liked: false, Result: notes.Unlike(ctx, note.ID)}
		}
		return LikeMsg{NoteID: note.ID, Liked: true, Result: notes.Like(ctx, note.ID)}
	}
}
