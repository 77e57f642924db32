package tui

import (
	"context"

	"github.com/garrettladley/notemap/internal/repository"
)

type Deps struct {
	Ctx   context.Context
	Auth  repository.AuthRepository
	Notes repository.NoteRepository
}
