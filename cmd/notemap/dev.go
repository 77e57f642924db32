//go:build !release

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/credentials"
)

func addDevCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(tokenCmd())
}

func tokenCmd() *cobra.Command {
	var expire bool

	cmd := &cobra.Command{
		Use:    "token",
		Short:  "Inspect the stored session (development builds only)",
		Hidden: true,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			creds, err := a.store.Get(ctx)
			if errors.Is(err, credentials.ErrNotFound) {
				_, _ = fmt.Fprintln(out, "no stored session")
				return nil
			}
			if err != nil {
				return err
			}

			if expire {
				// an access token the backend rejects forces the refresh path on the next call
				expired := *creds.Token
				expired.AccessToken = "expired-" + expired.AccessToken
				if err := a.store.Rotate(ctx, &expired); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, "access token invalidated, refresh token kept")
				return nil
			}

			_, _ = fmt.Fprintf(out, "store:    %s\n", a.cfg.CredentialStore)
			_, _ = fmt.Fprintf(out, "user:     %s\n", creds.UserID)
			_, _ = fmt.Fprintf(out, "access:   %s\n", mask(creds.AccessToken()))
			_, _ = fmt.Fprintf(out, "refresh:  %s\n", mask(creds.RefreshToken()))
			if !creds.Token.Expiry.IsZero() {
				_, _ = fmt.Fprintf(out, "expires:  %s (%s)\n", creds.Token.Expiry.Local().Format(time.RFC3339), time.Until(creds.Token.Expiry).Round(time.Second))
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&expire, "expire", false, "invalidate the access token to exercise refresh")

	return cmd
}

func mask(token string) string {
	const visible = 6
	if len(token) <= visible {
		return "***"
	}
	return token[:visible] + "..."
}
