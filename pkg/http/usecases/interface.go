package usecases

import (
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/session"
)

type RoutingEngine interface {
	GetGraph() *datastructure.CampusGraph
	GetStepWalkingSpeed() float64
	HasLocation(name string) bool
	IsReachable(origin, destination string) bool
	ShortestPath(origin, destination string) routing.PathResult
}

type SpatialIndex interface {
	NearestLocation(qLat, qLon, radius float64) (string, float64, bool)
}

type SessionStore interface {
	Create() string
	AddFavorite(id, location string) error
	RemoveFavorite(id, location string) error
	Favorites(id string) ([]string, error)
	RecordRoute(id string, route session.RecentRoute) error
	RecentRoutes(id string) ([]session.RecentRoute, error)
	Delete(id string) error
}
