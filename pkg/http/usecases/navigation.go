package usecases

import (
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/guidance"
	"go.uber.org/zap"
)

// NavigationUpdate. answer to one live position report of a walking user.
type NavigationUpdate struct {
	CurrentLocation      string
	DistanceToLocationKm float64
	OffRouteKm           float64
	Arrived              bool
	Route                Route
}

// Navigate. snap the reported position to the nearest location and return the remaining route to destination.
func (rs *RoutingService) Navigate(lat, lon float64, destination string) (NavigationUpdate, error) {
	if err := rs.checkLocation(destination); err != nil {
		return NavigationUpdate{}, err
	}

	current, dist, err := rs.snapToLocation(lat, lon)
	if err != nil {
		return NavigationUpdate{}, err
	}

	route, err := rs.ShortestPath(current, destination)
	if err != nil {
		return NavigationUpdate{}, err
	}

	coords := guidance.PathCoordinates(route.Path, rs.engine.GetGraph())
	update := NavigationUpdate{
		CurrentLocation:      current,
		DistanceToLocationKm: dist,
		OffRouteKm:           geo.DistanceToPath(coords, geo.NewCoordinate(lat, lon)),
		Arrived:              current == destination,
		Route:                route,
	}

	rs.log.Debug("live navigation update",
		zap.String("current", current), zap.String("destination", destination),
		zap.Bool("arrived", update.Arrived), zap.Float64("offRouteKm", update.OffRouteKm))
	return update, nil
}
