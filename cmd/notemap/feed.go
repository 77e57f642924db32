package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/tui"
)

func feedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Browse your feed in a full-screen terminal UI",
		RunE:  runFeed,
	}
}

func runFeed(cmd *cobra.Command, args []string) error {
	return withApp(func(cmd *cobra.Command, _ []string, a *app) error {
		model := tui.New(tui.Deps{
			Ctx:   cmd.Context(),
			Auth:  a.repo.Auth,
			Notes: a.repo.Notes,
		})

		p := tea.NewProgram(&model, tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("feed: %w", err)
		}
		return nil
	})(cmd, args)
}
