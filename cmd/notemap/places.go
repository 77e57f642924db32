package main

import (
	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/client/places"
)

func placesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "places",
		Short: "Look up places to pin notes to",
	}
	cmd.AddCommand(placesSearchCmd(), placesResolveCmd(), placesRecentCmd())
	return cmd
}

func placesSearchCmd() *cobra.Command {
	var (
		lat, lng float64
		bias     bool
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Autocomplete a place name or address",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			var near *places.LatLng
			if bias {
				near = &places.LatLng{Lat: lat, Lng: lng}
			}
			return printResult(cmd, a.repo.Locations.Search(cmd.Context(), args[0], near), printPredictions)
		}),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bias = cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng")
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "bias results towards this latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "bias results towards this longitude")
	cmd.MarkFlagsRequiredTogether("lat", "lng")

	return cmd
}

func placesResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <place-id>",
		Short: "Show a place's address and coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			return printResult(cmd, a.repo.Locations.Resolve(cmd.Context(), args[0]), printPlace)
		}),
	}
}

func placesRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Places you used recently",
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			return printResult(cmd, a.repo.Locations.Recent(cmd.Context(), limit), printRecentLocations)
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum places")

	return cmd
}
