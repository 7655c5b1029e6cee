package usecases

import (
	"errors"
	"strings"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/guidance"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrRouteNotFound     = errors.New("no route between locations")
	ErrNoNearbyLocation  = errors.New("no campus location near the given coordinate")
	ErrEmptyLocationName = errors.New("location name is empty")
)

// Route. shortest route between two campus locations with its walking steps.
type Route struct {
	Path        []string
	DistanceKm  float64
	TimeMinutes int
	Polyline    string
	Steps       []guidance.Step
}

type LocationInfo struct {
	Name       string
	Category   pkg.LocationCategory
	Coordinate *geo.Coordinate
}

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	searchRadius float64
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialindex SpatialIndex,
	searchRadius float64) *RoutingService {
	if searchRadius <= 0 {
		searchRadius = pkg.DEFAULT_SNAP_RADIUS_KM
	}
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialindex,
		searchRadius: searchRadius,
	}
}

func (rs *RoutingService) checkLocation(name string) error {
	if name == "" {
		return util.WrapErrorf(ErrEmptyLocationName, util.ErrBadParamInput, "location name must not be empty")
	}
	if !rs.engine.HasLocation(name) {
		return util.WrapErrorf(ErrLocationNotFound, util.ErrNotFound, "location %q not found", name)
	}
	return nil
}

/*
ShortestPath. shortest walking route between the named locations.

the engine answers unknown locations and unreachable pairs with the same empty result,
here they are told apart so the client gets a useful message: unknown names are ErrLocationNotFound,
locations in different components of the campus graph are ErrRouteNotFound.
*/
func (rs *RoutingService) ShortestPath(origin, destination string) (Route, error) {
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if err := rs.checkLocation(origin); err != nil {
		return Route{}, err
	}
	if err := rs.checkLocation(destination); err != nil {
		return Route{}, err
	}

	res := rs.engine.ShortestPath(origin, destination)
	if !res.IsFound() {
		return Route{}, util.WrapErrorf(ErrRouteNotFound, util.ErrNotFound,
			"no walking route found from %q to %q", origin, destination)
	}

	graph := rs.engine.GetGraph()
	path := res.GetPath()
	return Route{
		Path:        path,
		DistanceKm:  res.GetDistance(),
		TimeMinutes: res.GetEtaMinutes(),
		Polyline:    geo.PolylineFromCoords(guidance.PathCoordinates(path, graph)),
		Steps:       guidance.DeriveRouteSteps(path, graph, rs.engine.GetStepWalkingSpeed()),
	}, nil
}

// ShortestPathByCoordinates. snap origin and destination to their nearest campus location then route between them.
func (rs *RoutingService) ShortestPathByCoordinates(origLat, origLon, dstLat, dstLon float64) (Route, error) {
	origin, _, err := rs.snapToLocation(origLat, origLon)
	if err != nil {
		return Route{}, err
	}
	destination, _, err := rs.snapToLocation(dstLat, dstLon)
	if err != nil {
		return Route{}, err
	}
	return rs.ShortestPath(origin, destination)
}

func (rs *RoutingService) snapToLocation(lat, lon float64) (string, float64, error) {
	name, dist, ok := rs.spatialIndex.NearestLocation(lat, lon, rs.searchRadius)
	if !ok {
		return "", 0, util.WrapErrorf(ErrNoNearbyLocation, util.ErrNotFound,
			"no campus location within %.2f km of %f,%f", rs.searchRadius, lat, lon)
	}
	return name, dist, nil
}

func (rs *RoutingService) locationInfo(name string) LocationInfo {
	graph := rs.engine.GetGraph()
	info := LocationInfo{Name: name, Category: graph.GetCategory(name)}
	if c, ok := graph.GetCoordinate(name); ok {
		info.Coordinate = &c
	}
	return info
}

// SearchLocations. locations matching query, best matches first. an empty query lists every location.
func (rs *RoutingService) SearchLocations(query string) []LocationInfo {
	names := rs.engine.GetGraph().MatchLocations(query)
	infos := make([]LocationInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, rs.locationInfo(name))
	}
	return infos
}

// NearestLocation. nearest campus location to lat, lon and its distance in km.
func (rs *RoutingService) NearestLocation(lat, lon float64) (LocationInfo, float64, error) {
	name, dist, err := rs.snapToLocation(lat, lon)
	if err != nil {
		return LocationInfo{}, 0, err
	}
	return rs.locationInfo(name), dist, nil
}
