package routing

import (
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
)

// Graph. read-only view of the campus graph used by the shortest path search.
type Graph interface {
	NumberOfLocations() int
	GetIndex(name string) (da.Index, bool)
	GetLocationName(u da.Index) string
	ForNeighborsOf(u da.Index, handle func(n da.Neighbor))
}
