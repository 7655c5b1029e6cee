package datastructure

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/geo"
)

type Index uint32

const (
	INVALID_INDEX Index = ^Index(0)
)

var (
	ErrEmptyLocationName = errors.New("location name is empty")
	ErrDuplicateLocation = errors.New("duplicate location")
	ErrUnknownLocation   = errors.New("edge references unknown location")
	ErrNonPositiveWeight = errors.New("edge weight must be positive")
	ErrAsymmetricEdge    = errors.New("edge weights are not symmetric")
	ErrSelfLoop          = errors.New("self loop edge")
	ErrDuplicateEdge     = errors.New("duplicate edge")
)

// Location. a named campus location. category is derived from the name, see pkg.GetLocationCategory.
type Location struct {
	Name          string
	Coordinate    geo.Coordinate
	HasCoordinate bool
}

func NewLocation(name string, lat, lon float64) Location {
	return Location{Name: name, Coordinate: geo.NewCoordinate(lat, lon), HasCoordinate: true}
}

// Edge. undirected walkway between two locations, weight in km.
type Edge struct {
	From   string
	To     string
	Weight float64
}

func NewEdge(from, to string, weight float64) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// Neighbor. entry of the adjacency list of a location.
type Neighbor struct {
	head   Index
	weight float64
}

func (n Neighbor) GetHead() Index {
	return n.head
}

func (n Neighbor) GetWeight() float64 {
	return n.weight
}

// CampusGraph. immutable weighted undirected graph of named campus locations.
// built once at startup and only read afterwards, so it is safe to share between goroutines.
type CampusGraph struct {
	locations []Location
	index     map[string]Index
	adj       [][]Neighbor
	numEdges  int

	components    []Index
	numComponents int
}

// NewCampusGraph. build the graph from a location list and an undirected edge list.
// every edge is stored in both directions.
func NewCampusGraph(locations []Location, edges []Edge) (*CampusGraph, error) {
	g, err := newCampusGraphWithLocations(locations)
	if err != nil {
		return nil, err
	}

	for _, e := range edges {
		u, v, err := g.resolveEdge(e)
		if err != nil {
			return nil, err
		}
		if _, ok := g.getNeighbor(u, v); ok {
			return nil, fmt.Errorf("%w: %s - %s", ErrDuplicateEdge, e.From, e.To)
		}
		g.adj[u] = append(g.adj[u], Neighbor{head: v, weight: e.Weight})
		g.adj[v] = append(g.adj[v], Neighbor{head: u, weight: e.Weight})
		g.numEdges++
	}

	g.labelComponents()
	return g, nil
}

// NewCampusGraphFromAdjacency. build the graph from the name -> neighbor name -> weight mapping.
// order fixes the location order (locations missing from order are appended sorted by name).
// both directions of every edge must be present with the same weight.
func NewCampusGraphFromAdjacency(order []string, adjacency map[string]map[string]float64,
	coords map[string]geo.Coordinate) (*CampusGraph, error) {

	names := make([]string, 0, len(adjacency))
	seen := make(map[string]struct{}, len(adjacency))
	for _, name := range order {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocation, name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	rest := make([]string, 0)
	for name := range adjacency {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
			seen[name] = struct{}{}
		}
	}
	for name := range coords {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
			seen[name] = struct{}{}
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	locations := make([]Location, 0, len(names))
	for _, name := range names {
		loc := Location{Name: name}
		if c, ok := coords[name]; ok {
			loc.Coordinate = c
			loc.HasCoordinate = true
		}
		locations = append(locations, loc)
	}

	g, err := newCampusGraphWithLocations(locations)
	if err != nil {
		return nil, err
	}

	for u := Index(0); u < Index(len(g.locations)); u++ {
		uName := g.locations[u].Name
		neighbors := adjacency[uName]

		// deterministic neighbor order
		vNames := make([]string, 0, len(neighbors))
		for vName := range neighbors {
			vNames = append(vNames, vName)
		}
		sort.Slice(vNames, func(i, j int) bool {
			return g.index[vNames[i]] < g.index[vNames[j]]
		})

		for _, vName := range vNames {
			w := neighbors[vName]
			v, _, err := g.resolveEdge(NewEdge(uName, vName, w))
			if err != nil {
				return nil, err
			}
			back, ok := adjacency[vName][uName]
			if !ok || !Eq(back, w) {
				return nil, fmt.Errorf("%w: %s -> %s = %v, %s -> %s = %v (present: %v)", ErrAsymmetricEdge,
					uName, vName, w, vName, uName, back, ok)
			}
			g.adj[u] = append(g.adj[u], Neighbor{head: v, weight: w})
			if u < v {
				g.numEdges++
			}
		}
	}

	g.labelComponents()
	return g, nil
}

func newCampusGraphWithLocations(locations []Location) (*CampusGraph, error) {
	g := &CampusGraph{
		locations: make([]Location, 0, len(locations)),
		index:     make(map[string]Index, len(locations)),
		adj:       make([][]Neighbor, len(locations)),
	}
	for _, loc := range locations {
		if strings.TrimSpace(loc.Name) == "" {
			return nil, ErrEmptyLocationName
		}
		if _, ok := g.index[loc.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocation, loc.Name)
		}
		g.index[loc.Name] = Index(len(g.locations))
		g.locations = append(g.locations, loc)
	}
	return g, nil
}

// resolveEdge. validate e and return the indices of its endpoints (from, to).
func (g *CampusGraph) resolveEdge(e Edge) (Index, Index, error) {
	u, ok := g.index[e.From]
	if !ok {
		return INVALID_INDEX, INVALID_INDEX, fmt.Errorf("%w: %s", ErrUnknownLocation, e.From)
	}
	v, ok := g.index[e.To]
	if !ok {
		return INVALID_INDEX, INVALID_INDEX, fmt.Errorf("%w: %s", ErrUnknownLocation, e.To)
	}
	if u == v {
		return INVALID_INDEX, INVALID_INDEX, fmt.Errorf("%w: %s", ErrSelfLoop, e.From)
	}
	if !(e.Weight > 0) {
		return INVALID_INDEX, INVALID_INDEX, fmt.Errorf("%w: %s - %s = %v", ErrNonPositiveWeight, e.From, e.To, e.Weight)
	}
	return u, v, nil
}

func (g *CampusGraph) getNeighbor(u, v Index) (Neighbor, bool) {
	for _, n := range g.adj[u] {
		if n.head == v {
			return n, true
		}
	}
	return Neighbor{}, false
}

func (g *CampusGraph) NumberOfLocations() int {
	return len(g.locations)
}

// NumberOfEdges. number of undirected edges
func (g *CampusGraph) NumberOfEdges() int {
	return g.numEdges
}

func (g *CampusGraph) HasLocation(name string) bool {
	_, ok := g.index[name]
	return ok
}

func (g *CampusGraph) GetIndex(name string) (Index, bool) {
	u, ok := g.index[name]
	return u, ok
}

func (g *CampusGraph) GetLocationName(u Index) string {
	return g.locations[u].Name
}

func (g *CampusGraph) GetLocation(u Index) Location {
	return g.locations[u]
}

// GetCoordinate. coordinate of the named location, false if unknown or not configured.
func (g *CampusGraph) GetCoordinate(name string) (geo.Coordinate, bool) {
	u, ok := g.index[name]
	if !ok || !g.locations[u].HasCoordinate {
		return geo.Coordinate{}, false
	}
	return g.locations[u].Coordinate, true
}

func (g *CampusGraph) HasCoordinate(name string) bool {
	_, ok := g.GetCoordinate(name)
	return ok
}

func (g *CampusGraph) GetCategory(name string) pkg.LocationCategory {
	return pkg.GetLocationCategory(name)
}

// GetWeight. weight of the edge between the named locations.
func (g *CampusGraph) GetWeight(from, to string) (float64, bool) {
	u, ok := g.index[from]
	if !ok {
		return 0, false
	}
	v, ok := g.index[to]
	if !ok {
		return 0, false
	}
	n, ok := g.getNeighbor(u, v)
	if !ok {
		return 0, false
	}
	return n.weight, true
}

func (g *CampusGraph) GetOutDegree(u Index) int {
	return len(g.adj[u])
}

func (g *CampusGraph) ForNeighborsOf(u Index, handle func(n Neighbor)) {
	for _, n := range g.adj[u] {
		handle(n)
	}
}

// Locations. copy of all locations in graph order
func (g *CampusGraph) Locations() []Location {
	locs := make([]Location, len(g.locations))
	copy(locs, g.locations)
	return locs
}

// MatchLocations. names matching the free text query: exact match first, then case-insensitive prefix
// matches, then substring matches, each group in graph order. an empty query matches every location.
func (g *CampusGraph) MatchLocations(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		names := make([]string, 0, len(g.locations))
		for _, loc := range g.locations {
			names = append(names, loc.Name)
		}
		return names
	}

	exact := make([]string, 0, 1)
	prefix := make([]string, 0)
	substr := make([]string, 0)
	for _, loc := range g.locations {
		lower := strings.ToLower(loc.Name)
		switch {
		case lower == q:
			exact = append(exact, loc.Name)
		case strings.HasPrefix(lower, q):
			prefix = append(prefix, loc.Name)
		case strings.Contains(lower, q):
			substr = append(substr, loc.Name)
		}
	}
	return append(append(exact, prefix...), substr...)
}

// ToAdjacency. name -> neighbor name -> weight, both directions.
func (g *CampusGraph) ToAdjacency() map[string]map[string]float64 {
	adjacency := make(map[string]map[string]float64, len(g.locations))
	for u, loc := range g.locations {
		neighbors := make(map[string]float64, len(g.adj[u]))
		for _, n := range g.adj[u] {
			neighbors[g.locations[n.head].Name] = n.weight
		}
		adjacency[loc.Name] = neighbors
	}
	return adjacency
}
