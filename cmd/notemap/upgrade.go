package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/client/github"
	"github.com/garrettladley/notemap/internal/version"
)

func upgradeCmd() *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			update, err := github.NewClient().CheckForUpdate(ctx, version.Get())
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !update.Available {
				_, _ = fmt.Fprintf(out, "notemap is up to date (%s)\n", update.Current)
				return nil
			}

			if checkOnly {
				_, _ = fmt.Fprintf(out, "notemap %s is available (you have %s): %s\n", update.Latest.TagName, update.Current, update.Latest.HTMLURL)
				return nil
			}

			_, _ = fmt.Fprintf(out, "Updating notemap %s → %s\n", update.Current, update.Latest.TagName)

			if version.IsHomebrew() {
				return brewUpgrade(ctx)
			}
			return goInstallUpgrade(ctx)
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update exists")

	return cmd
}

func goInstallUpgrade(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "go", "install", "github.com/garrettladley/notemap/cmd/notemap@latest")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("upgrade failed: %w", err)
	}
	fmt.Println("Successfully updated!")
	return nil
}

func brewUpgrade(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "brew", "upgrade", "notemap")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("brew upgrade failed: %w", err)
	}
	return nil
}
