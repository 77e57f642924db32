package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "notemap",
		Short:         "Notes pinned to places, from your terminal",
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFeed,
	}
	rootCmd.PersistentFlags().Bool(flagJSON, false, "print results as JSON")

	rootCmd.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		notesCmd(),
		usersCmd(),
		followCmd(),
		unfollowCmd(),
		followersCmd(),
		followingCmd(),
		placesCmd(),
		feedCmd(),
		upgradeCmd(),
	)
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
