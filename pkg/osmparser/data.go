package osmparser

import "github.com/lintang-b-s/campusnav/pkg/geo"

type osmWay struct {
	id    int64
	nodes []int64
	hwTag string
}

type namedNode struct {
	id   int64
	name string
}

// edgeKey. unordered pair of location names, from < to.
type edgeKey struct {
	from string
	to   string
}

func newEdgeKey(a, b string) edgeKey {
	if b < a {
		a, b = b, a
	}
	return edgeKey{from: a, to: b}
}

type nodeInfo struct {
	coord geo.Coordinate
	name  string
}
