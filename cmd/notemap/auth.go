package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/repository"
)

const passwordEnv = "NOTEMAP_PASSWORD"

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to notemap",
		Long:  "Signs in with email and password and stores the session locally.\nThe password is read from --password, $NOTEMAP_PASSWORD, or stdin.",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			r := a.repo.Auth.Login(cmd.Context(), email, pw)
			return printResult(cmd, r, printSession("Signed in"))
		}),
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func registerCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a notemap account",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			r := a.repo.Auth.Register(cmd.Context(), username, email, pw)
			return printResult(cmd, r, printSession("Account created, signed in"))
		}),
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "public username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return printResult(cmd, a.repo.Auth.Logout(cmd.Context()), done("Signed out"))
		}),
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return printResult(cmd, a.repo.Users.Me(cmd.Context()), printUser)
		}),
	}
}

func printSession(prefix string) func(io.Writer, repository.Session) {
	return func(w io.Writer, s repository.Session) {
		_, _ = fmt.Fprintf(w, "%s as %s\n", prefix, s.UserID)
		if !s.Expiry.IsZero() {
			_, _ = fmt.Fprintf(w, "Session expires: %s\n", s.Expiry.Local().Format("2006-01-02 15:04:05"))
		}
	}
}

func readPassword(cmd *cobra.Command, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(passwordEnv); env != "" {
		return env, nil
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
