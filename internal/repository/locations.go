package repository

import (
	"context"
	"strings"

	"github.com/garrettladley/notemap/internal/cache"
	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/client/places"
	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/xslog"
)

type locationRepo struct {
	places PlacesAPI
	recent cache.RecentLocations
}

func (r *locationRepo) Search(ctx context.Context, input string, near *places.LatLng) result.Result[[]places.Prediction] {
	input = strings.TrimSpace(input)
	if input == "" {
		return result.Success([]places.Prediction{})
	}
	return result.From(r.places.Autocomplete(ctx, input, near))
}

func (r *locationRepo) Resolve(ctx context.Context, placeID string) result.Result[places.Place] {
	place, err := r.places.Details(ctx, placeID)
	if err == nil && place != nil {
		err := r.recent.Add(ctx, cache.RecentLocation{
			PlaceID:   place.PlaceID,
			Name:      place.Name,
			Address:   place.Address,
			Latitude:  place.LatLng.Lat,
			Longitude: place.LatLng.Lng,
		})
		if err != nil {
			xslog.FromContext(ctx).WarnContext(ctx, "failed to record recent location", xslog.PlaceID(placeID), xslog.Error(err))
		}
	}
	return result.FromPtr(place, err)
}

func (r *locationRepo) Recent(ctx context.Context, limit int) result.Result[[]cache.RecentLocation] {
	return result.From(r.recent.List(ctx, limit))
}

// ToLocation converts a resolved place into the location attached to a note.
func ToLocation(p places.Place) notemap.Location {
	return notemap.Location{
		Latitude:  p.LatLng.Lat,
		Longitude: p.LatLng.Lng,
		PlaceID:   p.PlaceID,
		Name:      p.Name,
		Address:   p.Address,
	}
}

// RecentToLocation converts a cached location into a note location.
func RecentToLocation(l cache.RecentLocation) notemap.Location {
	return notemap.Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		PlaceID:   l.PlaceID,
		Name:      l.Name,
		Address:   l.Address,
	}
}
