package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/client/places"
	"github.com/garrettladley/notemap/internal/repository"
	"github.com/garrettladley/notemap/internal/result"
)

func notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Read and write notes",
	}

	cmd.AddCommand(
		notesListCmd(),
		notesGetCmd(),
		notesNearbyCmd(),
		notesCreateCmd(),
		notesDeleteCmd(),
		notesRateCmd(),
		noteToggleCmd("like", "Like a note", "Liked", repository.NoteRepository.Like),
		noteToggleCmd("unlike", "Remove your like", "Unliked", repository.NoteRepository.Unlike),
		noteToggleCmd("save", "Save a note for later", "Saved", repository.NoteRepository.Save),
		noteToggleCmd("unsave", "Remove a saved note", "Removed from saved", repository.NoteRepository.Unsave),
		notesSavedCmd(),
	)

	return cmd
}

func addPageFlags(cmd *cobra.Command, params *notemap.ListParams) {
	cmd.Flags().IntVar(&params.Limit, "limit", repository.DefaultPageSize, "page size")
	cmd.Flags().StringVar(&params.Cursor, "cursor", "", "cursor from a previous page")
}

func notesListCmd() *cobra.Command {
	var (
		params notemap.ListParams
		userID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes from people you follow, or from one user",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if userID != "" {
				return printResult(cmd, a.repo.Notes.ByUser(cmd.Context(), userID, &params), printNotePage)
			}
			return printResult(cmd, a.repo.Notes.List(cmd.Context(), &params), printNotePage)
		}),
	}
	addPageFlags(cmd, &params)
	cmd.Flags().StringVar(&userID, "user", "", "only notes by this user id")

	return cmd
}

func notesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <note-id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, a.repo.Notes.Get(cmd.Context(), id), printNote)
		}),
	}
}

func notesNearbyCmd() *cobra.Command {
	var params notemap.NearbyParams

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List notes around a point",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return printResult(cmd, a.repo.Notes.Nearby(cmd.Context(), params), printNotes)
		}),
	}
	cmd.Flags().Float64Var(&params.Latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&params.Longitude, "lng", 0, "longitude")
	cmd.Flags().IntVar(&params.RadiusMeters, "radius", 1000, "search radius in meters")
	cmd.Flags().IntVar(&params.Limit, "limit", repository.DefaultPageSize, "maximum notes")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func notesCreateCmd() *cobra.Command {
	var (
		req        notemap.CreateNoteRequest
		placeID    string
		visibility string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Pin a new note to a place",
		Long:  "Pins a note either to --place (a place id from 'notemap places search') or to --lat/--lng.",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			ctx := cmd.Context()
			req.Visibility = notemap.Visibility(visibility)

			if placeID == "" {
				return printResult(cmd, a.repo.Notes.Create(ctx, req), printNote)
			}

			// resolve the place first; a failed lookup never creates a note
			created := result.Then(a.repo.Locations.Resolve(ctx, placeID), func(p places.Place) result.Result[notemap.Note] {
				withPlace := req
				withPlace.Location = repository.ToLocation(p)
				return a.repo.Notes.Create(ctx, withPlace)
			})
			return printResult(cmd, created, printNote)
		}),
	}
	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&req.Body, "body", "b", "", "note body")
	cmd.Flags().Float64Var(&req.Location.Latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&req.Location.Longitude, "lng", 0, "longitude")
	cmd.Flags().StringVar(&placeID, "place", "", "place id to pin the note to")
	cmd.Flags().StringVar(&visibility, "visibility", string(notemap.VisibilityPublic), "public, followers or private")
	cmd.Flags().StringSliceVar(&req.Tags, "tag", nil, "tag, repeatable")
	cmd.MarkFlagsMutuallyExclusive("place", "lat")
	cmd.MarkFlagsMutuallyExclusive("place", "lng")

	return cmd
}

func notesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete one of your notes",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, a.repo.Notes.Delete(cmd.Context(), id), done(fmt.Sprintf("Deleted note #%d", id)))
		}),
	}
}

func notesRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <note-id> <stars>",
		Short: "Rate a note from 1 to 5 stars",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			stars, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("stars must be a number: %q", args[1])
			}
			return printResult(cmd, a.repo.Notes.Rate(cmd.Context(), id, stars), func(w io.Writer, r notemap.NoteRating) {
				_, _ = fmt.Fprintf(w, "Rated #%d: you %d★, average %.1f★ from %d ratings\n", r.NoteID, r.Mine, r.Average, r.Count)
			})
		}),
	}
}

type noteAction func(repository.NoteRepository, context.Context, int64) result.Result[result.Unit]

func noteToggleCmd(use, short, verb string, action noteAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <note-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, action(a.repo.Notes, cmd.Context(), id), done(fmt.Sprintf("%s #%d", verb, id)))
		}),
	}
}

func notesSavedCmd() *cobra.Command {
	var params notemap.ListParams

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List your saved notes",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return printResult(cmd, a.repo.Notes.Saved(cmd.Context(), &params), printNotePage)
		}),
	}
	addPageFlags(cmd, &params)

	return cmd
}

func parseNoteID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
