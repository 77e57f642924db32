package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/repository"
	"github.com/garrettladley/notemap/internal/result"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Find people",
	}
	cmd.AddCommand(usersGetCmd(), usersSearchCmd(), usersRecentCmd(), usersProfileCmd())
	return cmd
}

func usersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return printResult(cmd, a.repo.Users.Get(cmd.Context(), args[0]), printUser)
		}),
	}
}

func usersSearchCmd() *cobra.Command {
	var params notemap.ListParams

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search users by name",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return printResult(cmd, a.repo.Users.Search(cmd.Context(), args[0], &params), printUserPage)
		}),
	}
	addPageFlags(cmd, &params)

	return cmd
}

func usersRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Users you looked at recently",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return printResult(cmd, a.repo.Users.Recent(cmd.Context(), limit), printRecentUsers)
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum users")

	return cmd
}

func usersProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [user-id]",
		Short: "Show a user with their notes and connections",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			profile := result.Then(targetUser(cmd, args, a), func(id string) result.Result[repository.Profile] {
				return a.repo.Users.Profile(ctx, id)
			})
			return printResult(cmd, profile, func(w io.Writer, p repository.Profile) {
				printUser(w, p.User)
				_, _ = fmt.Fprintf(w, "\nnotes:\n")
				printNotes(w, p.Notes)
				_, _ = fmt.Fprintf(w, "\nfollowers: %d shown\n", len(p.Followers))
				printUserPage(w, notemap.Page[notemap.UserSummary]{Records: p.Followers})
				_, _ = fmt.Fprintf(w, "\nfollowing: %d shown\n", len(p.Following))
				printUserPage(w, notemap.Page[notemap.UserSummary]{Records: p.Following})
			})
		}),
	}
}

func followCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <user-id>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return printResult(cmd, a.repo.Follows.Follow(cmd.Context(), args[0]), done("Following "+args[0]))
		}),
	}
}

func unfollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <user-id>",
		Short: "Stop following a user",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return printResult(cmd, a.repo.Follows.Unfollow(cmd.Context(), args[0]), done("Unfollowed "+args[0]))
		}),
	}
}

func followersCmd() *cobra.Command {
	return connectionsCmd("followers", "List a user's followers (default: you)", repository.FollowRepository.Followers)
}

func followingCmd() *cobra.Command {
	return connectionsCmd("following", "List who a user follows (default: you)", repository.FollowRepository.Following)
}

type connectionsFunc func(repository.FollowRepository, context.Context, string, *notemap.ListParams) result.Result[notemap.Page[notemap.UserSummary]]

func connectionsCmd(use, short string, list connectionsFunc) *cobra.Command {
	var params notemap.ListParams

	cmd := &cobra.Command{
		Use:   use + " [user-id]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			page := result.Then(targetUser(cmd, args, a), func(id string) result.Result[notemap.Page[notemap.UserSummary]] {
				return list(a.repo.Follows, cmd.Context(), id, &params)
			})
			return printResult(cmd, page, printUserPage)
		}),
	}
	addPageFlags(cmd, &params)

	return cmd
}

// targetUser is the first argument, or the signed-in user when absent.
func targetUser(cmd *cobra.Command, args []string, a *app) result.Result[string] {
	if len(args) > 0 {
		return result.Success(args[0])
	}
	return a.repo.Auth.CurrentUserID(cmd.Context())
}
