package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/cache"
	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/client/places"
	"github.com/garrettladley/notemap/internal/result"
)

const flagJSON = "json"

// printResult renders r with text, or as JSON when --json is set. An Error
// result becomes the command's error.
func printResult[T any](cmd *cobra.Command, r result.Result[T], text func(w io.Writer, v T)) error {
	asJSON, _ := cmd.Flags().GetBool(flagJSON)
	w := cmd.OutOrStdout()

	var err error
	result.Match(r,
		func(v T) {
			if asJSON {
				enc := go_json.NewEncoder(w)
				enc.SetIndent("", "  ")
				err = enc.Encode(v)
				return
			}
			text(w, v)
		},
		func(message string) { err = errors.New(message) },
		func() { _, _ = fmt.Fprintln(w, "still loading...") },
	)
	return err
}

func done(msg string) func(io.Writer, result.Unit) {
	return func(w io.Writer, _ result.Unit) { _, _ = fmt.Fprintln(w, msg) }
}

func printNote(w io.Writer, n notemap.Note) {
	_, _ = fmt.Fprintf(w, "#%d %s\n", n.ID, n.Title)
	if n.Author != nil {
		_, _ = fmt.Fprintf(w, "  by @%s\n", n.Author.Username)
	}
	if n.Location != nil {
		_, _ = fmt.Fprintf(w, "  at %s (%.5f, %.5f)\n", placeLabel(n.Location), n.Location.Latitude, n.Location.Longitude)
	}
	if n.Body != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", n.Body)
	}
	if len(n.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "  tags: %s\n", strings.Join(n.Tags, ", "))
	}
	_, _ = fmt.Fprintf(w, "  %d likes  %.1f★ (%d ratings)", n.LikeCount, n.Rating, n.RatingCount)
	if n.Liked {
		_, _ = fmt.Fprint(w, "  liked")
	}
	if n.Saved {
		_, _ = fmt.Fprint(w, "  saved")
	}
	_, _ = fmt.Fprintln(w)
}

func printNotes(w io.Writer, notes []notemap.Note) {
	if len(notes) == 0 {
		_, _ = fmt.Fprintln(w, "no notes")
		return
	}
	for _, n := range notes {
		printNote(w, n)
	}
}

func printNotePage(w io.Writer, p notemap.Page[notemap.Note]) {
	printNotes(w, p.Records)
	printCursor(w, p.NextCursor)
}

func printUser(w io.Writer, u notemap.User) {
	_, _ = fmt.Fprintf(w, "@%s (%s)\n", u.Username, u.ID)
	if u.DisplayName != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", u.DisplayName)
	}
	if u.Bio != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", u.Bio)
	}
	_, _ = fmt.Fprintf(w, "  %d notes  %d followers  %d following\n", u.NoteCount, u.FollowerCount, u.FollowingCount)
	if u.IsFollowing {
		_, _ = fmt.Fprintln(w, "  you follow this user")
	}
}

func printUserPage(w io.Writer, p notemap.Page[notemap.UserSummary]) {
	if len(p.Records) == 0 {
		_, _ = fmt.Fprintln(w, "no users")
	}
	for _, u := range p.Records {
		_, _ = fmt.Fprintf(w, "@%s  %s  (%s)\n", u.Username, u.DisplayName, u.ID)
	}
	printCursor(w, p.NextCursor)
}

func printRecentUsers(w io.Writer, users []cache.RecentUser) {
	if len(users) == 0 {
		_, _ = fmt.Fprintln(w, "no recent users")
	}
	for _, u := range users {
		_, _ = fmt.Fprintf(w, "@%s  %s  (%s)  viewed %s\n", u.Username, u.DisplayName, u.UserID, u.ViewedAt.Local().Format("Jan 2 15:04"))
	}
}

func printPredictions(w io.Writer, preds []places.Prediction) {
	if len(preds) == 0 {
		_, _ = fmt.Fprintln(w, "no matching places")
	}
	for _, p := range preds {
		_, _ = fmt.Fprintf(w, "%s  %s\n", p.PlaceID, p.Description)
	}
}

func printPlace(w io.Writer, p places.Place) {
	_, _ = fmt.Fprintf(w, "%s\n  %s\n  (%.5f, %.5f)  %s\n", p.Name, p.Address, p.LatLng.Lat, p.LatLng.Lng, p.PlaceID)
}

func printRecentLocations(w io.Writer, locs []cache.RecentLocation) {
	if len(locs) == 0 {
		_, _ = fmt.Fprintln(w, "no recent places")
	}
	for _, l := range locs {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", l.PlaceID, l.Name, l.Address)
	}
}

func printCursor(w io.Writer, cursor *string) {
	if cursor != nil && *cursor != "" {
		_, _ = fmt.Fprintf(w, "more: --cursor %s\n", *cursor)
	}
}

func placeLabel(l *notemap.Location) string {
	switch {
	case l.Name != "":
		return l.Name
	case l.Address != "":
		return l.Address
	default:
		return "pinned location"
	}
}
