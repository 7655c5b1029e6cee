package controllers

import (
	"github.com/lintang-b-s/campusnav/pkg/http/usecases"
	"github.com/lintang-b-s/campusnav/pkg/session"
)

type RoutingService interface {
	ShortestPath(origin, destination string) (usecases.Route, error)
	ShortestPathByCoordinates(origLat, origLon, dstLat, dstLon float64) (usecases.Route, error)
	SearchLocations(query string) []usecases.LocationInfo
	NearestLocation(lat, lon float64) (usecases.LocationInfo, float64, error)
	Navigate(lat, lon float64, destination string) (usecases.NavigationUpdate, error)
}

type SessionService interface {
	CreateSession() string
	DeleteSession(id string) error
	AddFavorite(id, location string) ([]string, error)
	RemoveFavorite(id, location string) ([]string, error)
	Favorites(id string) ([]string, error)
	RecentRoutes(id string) ([]session.RecentRoute, error)
	RecordRoute(id, origin, destination string, route usecases.Route, found bool)
}
