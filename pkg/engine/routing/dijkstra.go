package routing

import (
	"github.com/lintang-b-s/campusnav/pkg"
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/util"
)

type options struct {
	speedKmh  float64
	frontier  FrontierType
	earlyExit bool
}

type Option func(*options)

// WithWalkingSpeed. walking speed (km/h) of the time estimate. non positive values are ignored.
func WithWalkingSpeed(kmh float64) Option {
	return func(o *options) {
		if kmh > 0 {
			o.speedKmh = kmh
		}
	}
}

func WithFrontier(t FrontierType) Option {
	return func(o *options) {
		o.frontier = t
	}
}

// WithEarlyExit. stop once the destination is settled (default). distances are the same either way.
func WithEarlyExit(earlyExit bool) Option {
	return func(o *options) {
		o.earlyExit = earlyExit
	}
}

func defaultOptions() options {
	return options{
		speedKmh:  pkg.DEFAULT_ETA_WALKING_SPEED_KMH,
		frontier:  LinearScanFrontier,
		earlyExit: true,
	}
}

/*
ShortestPath. minimum walking distance route from origin to destination (single source dijkstra with early exit).

edge weights must be positive (guaranteed by the graph constructor), they are not checked here.
unknown origin/destination and unreachable destination both return NoPath().
the graph is only read and every call allocates its own search state, so concurrent calls are safe.
*/
func ShortestPath(g Graph, origin, destination string, opts ...Option) PathResult {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s, ok := g.GetIndex(origin)
	if !ok {
		return NoPath()
	}
	t, ok := g.GetIndex(destination)
	if !ok {
		return NoPath()
	}

	n := g.NumberOfLocations()
	dist := make([]float64, n)
	parent := make([]da.Index, n)
	for u := 0; u < n; u++ {
		dist[u] = pkg.INF_WEIGHT
		parent[u] = da.INVALID_INDEX
	}
	dist[s] = 0

	f := newFrontier(cfg.frontier, dist)
	f.decrease(s, 0)

	for {
		u, ok := f.extractMin()
		if !ok {
			break
		}
		if cfg.earlyExit && u == t {
			break
		}

		g.ForNeighborsOf(u, func(nb da.Neighbor) {
			v := nb.GetHead()
			if !f.contains(v) {
				return
			}
			newDist := dist[u] + nb.GetWeight()
			if newDist < dist[v] {
				dist[v] = newDist
				parent[v] = u
				f.decrease(v, newDist)
			}
		})
	}

	path := reconstructPath(g, parent, t)
	if len(path) == 0 || path[0] != origin {
		return NoPath()
	}

	return newPathResult(path, dist[t], cfg.speedKmh)
}

// reconstructPath. follow the back pointers from t, then reverse.
func reconstructPath(g Graph, parent []da.Index, t da.Index) []string {
	path := make([]string, 0, 8)
	for u := t; u != da.INVALID_INDEX; u = parent[u] {
		path = append(path, g.GetLocationName(u))
		if len(path) > len(parent) {
			// back pointer cycle, cannot happen with positive weights
			return []string{}
		}
	}
	return util.ReverseG(path)
}
