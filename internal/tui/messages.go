package tui

import (
	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/result"
)

const feedPageSize = 50

type AuthStatusMsg struct {
	Result result.Result[bool]
}

// FeedMsg delivers a loaded (or failed) feed onto the update loop.
type FeedMsg struct {
	Result result.Result[[]notemap.Note]
}

type LikeMsg struct {
	NoteID int64
	Liked  bool
	Result result.Result[result.Unit]
}
