package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/repository"
	"github.com/garrettladley/notemap/internal/result"
)

type fakeNotes struct {
	repository.NoteRepository

	page  result.Result[notemap.Page[notemap.Note]]
	liked []int64
	like  result.Result[result.Unit]
}

func (f *fakeNotes) List(context.Context, *notemap.ListParams) result.Result[notemap.Page[notemap.Note]] {
	return f.page
}

func (f *fakeNotes) Like(_ context.Context, id int64) result.Result[result.Unit] {
	f.liked = append(f.liked, id)
	return f.like
}

type fakeAuth struct {
	repository.AuthRepository
}

func (fakeAuth) IsSignedIn(context.Context) result.Result[bool] {
	return result.Success(true)
}

func newTestModel(t *testing.T, notes *fakeNotes) *Model {
	t.Helper()

	m := New(Deps{Ctx: t.Context(), Auth: fakeAuth{}, Notes: notes})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return &m
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func sampleNotes() []notemap.Note {
	return []notemap.Note{
		{ID: 1, Title: "tacos", LikeCount: 2},
		{ID: 2, Title: "ramen", Liked: true, LikeCount: 5},
	}
}

func TestFeedStartsLoading(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeNotes{})

	if !m.feed.IsLoading() {
		t.Fatalf("feed = %v, want Loading", m.feed)
	}
	if !strings.Contains(m.FeedView(), "loading notes") {
		t.Errorf("FeedView() = %q", m.FeedView())
	}
}

func TestFeedMessagesRenderEveryState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  FeedMsg
		want string
	}{
		{name: "success", msg: FeedMsg{Result: result.Success(sampleNotes())}, want: "tacos"},
		{name: "empty", msg: FeedMsg{Result: result.Success([]notemap.Note{})}, want: "no notes yet"},
		{name: "error", msg: FeedMsg{Result: result.Error[[]notemap.Note]("not found")}, want: "error: not found"},
		{name: "loading", msg: FeedMsg{Result: result.Loading[[]notemap.Note]()}, want: "loading notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestModel(t, &fakeNotes{})
			m.Update(tt.msg)

			if got := m.FeedView(); !strings.Contains(got, tt.want) {
				t.Errorf("FeedView() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestLoadFeedCommand(t *testing.T) {
	t.Parallel()

	notes := &fakeNotes{page: result.Success(notemap.Page[notemap.Note]{Records: sampleNotes()})}
	m := newTestModel(t, notes)

	_, cmd := m.Update(key('r'))
	if cmd == nil {
		t.Fatal("reload returned no command")
	}
	if !m.feed.IsLoading() {
		t.Errorf("feed = %v after reload, want Loading", m.feed)
	}

	msg, ok := cmd().(FeedMsg)
	if !ok {
		t.Fatalf("command produced %T, want FeedMsg", msg)
	}
	m.Update(msg)

	got, ok := m.feed.Value()
	if !ok || len(got) != 2 {
		t.Errorf("feed = %v", m.feed)
	}
}

func TestNavigationAndLike(t *testing.T) {
	t.Parallel()

	notes := &fakeNotes{like: result.Success(result.Unit{})}
	m := newTestModel(t, notes)
	m.Update(FeedMsg{Result: result.Success(sampleNotes())})

	m.Update(key('j'))
	m.Update(key('j'))
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1 (clamped)", m.selected)
	}
	m.Update(key('k'))

	_, cmd := m.Update(key('l'))
	if cmd == nil {
		t.Fatal("like returned no command")
	}
	m.Update(cmd())

	if len(notes.liked) != 1 || notes.liked[0] != 1 {
		t.Errorf("liked = %v, want [1]", notes.liked)
	}
	got, _ := m.feed.Value()
	if !got[0].Liked || got[0].LikeCount != 3 {
		t.Errorf("note after like = %+v", got[0])
	}
}

func TestLikeFailureShowsStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeNotes{})
	m.Update(FeedMsg{Result: result.Success(sampleNotes())})

	m.Update(LikeMsg{NoteID: 1, Liked: true, Result: result.Error[result.Unit]("rate limited")})

	if m.status != "rate limited" {
		t.Errorf("status = %q", m.status)
	}
	got, _ := m.feed.Value()
	if got[0].Liked {
		t.Error("note marked liked after failure")
	}
}

func TestAuthStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeNotes{})
	msg := checkAuthCmd(t.Context(), fakeAuth{})()
	m.Update(msg)

	if !m.auth.Checked || !m.auth.Authenticated {
		t.Errorf("auth = %+v", m.auth)
	}
}
