package routing

import (
	"math"

	"github.com/lintang-b-s/campusnav/pkg"
)

// PathResult. shortest route between two campus locations, owned by the caller.
type PathResult struct {
	path       []string
	distance   float64
	etaMinutes int
}

// NoPath. result of a query without a route: unknown location, empty graph or unreachable destination.
func NoPath() PathResult {
	return PathResult{
		path:       []string{},
		distance:   pkg.INF_WEIGHT,
		etaMinutes: 0,
	}
}

func newPathResult(path []string, distance, speedKmh float64) PathResult {
	return PathResult{
		path:       path,
		distance:   distance,
		etaMinutes: EstimateWalkingMinutes(distance, speedKmh),
	}
}

// EstimateWalkingMinutes. round(distance / speed * 60)
func EstimateWalkingMinutes(distanceKm, speedKmh float64) int {
	if math.IsInf(distanceKm, 0) || speedKmh <= 0 {
		return 0
	}
	return int(math.Round(distanceKm * 60.0 / speedKmh))
}

// GetPath. location names from origin to destination inclusive, empty if there is no route
func (p PathResult) GetPath() []string {
	return p.path
}

// GetDistance. total walking distance in km, +inf if there is no route
func (p PathResult) GetDistance() float64 {
	return p.distance
}

func (p PathResult) GetEtaMinutes() int {
	return p.etaMinutes
}

func (p PathResult) IsFound() bool {
	return len(p.path) > 0
}
