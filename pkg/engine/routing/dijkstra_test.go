package routing

import (
	"fmt"
	"math"
	"testing"

	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var frontiers = []FrontierType{LinearScanFrontier, HeapFrontier}

func buildGraph(t *testing.T, order []string, adjacency map[string]map[string]float64) *da.CampusGraph {
	t.Helper()
	g, err := da.NewCampusGraphFromAdjacency(order, adjacency, nil)
	require.NoError(t, err)
	return g
}

// lineGraph. A -5- B -3- C
func lineGraph(t *testing.T) *da.CampusGraph {
	return buildGraph(t, []string{"A", "B", "C"}, map[string]map[string]float64{
		"A": {"B": 5},
		"B": {"A": 5, "C": 3},
		"C": {"B": 3},
	})
}

func campusGraph(t *testing.T) *da.CampusGraph {
	t.Helper()
	locations := []da.Location{
		da.NewLocation("Main Gate", -7.7700, 110.3770),
		da.NewLocation("Central Library", -7.7710, 110.3775),
		da.NewLocation("Faculty of Engineering", -7.7720, 110.3790),
		da.NewLocation("Student Canteen", -7.7725, 110.3770),
		da.NewLocation("Boys Hostel", -7.7740, 110.3760),
		da.NewLocation("Sports Complex", -7.7750, 110.3795),
		da.NewLocation("Medical Centre", -7.7690, 110.3800),
		da.NewLocation("Observatory", -7.7900, 110.4000),
	}
	edges := []da.Edge{
		da.NewEdge("Main Gate", "Central Library", 0.41),
		da.NewEdge("Main Gate", "Medical Centre", 0.57),
		da.NewEdge("Central Library", "Faculty of Engineering", 0.33),
		da.NewEdge("Central Library", "Student Canteen", 0.29),
		da.NewEdge("Faculty of Engineering", "Sports Complex", 0.52),
		da.NewEdge("Faculty of Engineering", "Medical Centre", 0.61),
		da.NewEdge("Student Canteen", "Boys Hostel", 0.23),
		da.NewEdge("Boys Hostel", "Sports Complex", 0.47),
		da.NewEdge("Student Canteen", "Sports Complex", 0.74),
	}
	g, err := da.NewCampusGraph(locations, edges)
	require.NoError(t, err)
	return g
}

func pathWeight(t *testing.T, g *da.CampusGraph, path []string) float64 {
	t.Helper()
	sum := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.GetWeight(path[i-1], path[i])
		require.True(t, ok, "no edge %s - %s", path[i-1], path[i])
		sum += w
	}
	return sum
}

func TestShortestPathScenarios(t *testing.T) {
	line := lineGraph(t)
	disconnected := buildGraph(t, []string{"A", "B", "C", "D"}, map[string]map[string]float64{
		"A": {"B": 1},
		"B": {"A": 1},
		"C": {"D": 1},
		"D": {"C": 1},
	})
	empty := buildGraph(t, nil, map[string]map[string]float64{})

	testCases := []struct {
		name         string
		g            *da.CampusGraph
		origin       string
		destination  string
		wantPath     []string
		wantDistance float64
		wantEta      int
	}{
		{name: "line A to C", g: line, origin: "A", destination: "C", wantPath: []string{"A", "B", "C"}, wantDistance: 8, wantEta: 120},
		{name: "line C to A", g: line, origin: "C", destination: "A", wantPath: []string{"C", "B", "A"}, wantDistance: 8, wantEta: 120},
		{name: "same location", g: line, origin: "A", destination: "A", wantPath: []string{"A"}, wantDistance: 0, wantEta: 0},
		{name: "disconnected", g: disconnected, origin: "A", destination: "D", wantPath: []string{}, wantDistance: math.Inf(1), wantEta: 0},
		{name: "unknown origin", g: line, origin: "X", destination: "C", wantPath: []string{}, wantDistance: math.Inf(1), wantEta: 0},
		{name: "unknown destination", g: line, origin: "A", destination: "X", wantPath: []string{}, wantDistance: math.Inf(1), wantEta: 0},
		{name: "empty graph", g: empty, origin: "A", destination: "A", wantPath: []string{}, wantDistance: math.Inf(1), wantEta: 0},
	}

	for _, tt := range testCases {
		for _, f := range frontiers {
			t.Run(fmt.Sprintf("%s/%s", tt.name, f), func(t *testing.T) {
				got := ShortestPath(tt.g, tt.origin, tt.destination, WithFrontier(f))
				assert.Equal(t, tt.wantPath, got.GetPath())
				assert.Equal(t, tt.wantDistance, got.GetDistance())
				assert.Equal(t, tt.wantEta, got.GetEtaMinutes())
				assert.Equal(t, len(tt.wantPath) > 0, got.IsFound())
			})
		}
	}
}

func TestShortestPathWalkingSpeed(t *testing.T) {
	g := lineGraph(t)

	testCases := []struct {
		name    string
		opts    []Option
		wantEta int
	}{
		{name: "default speed", opts: nil, wantEta: 120},
		{name: "5 km/h", opts: []Option{WithWalkingSpeed(5)}, wantEta: 96},
		{name: "non positive speed is ignored", opts: []Option{WithWalkingSpeed(0)}, wantEta: 120},
		{name: "rounding", opts: []Option{WithWalkingSpeed(7)}, wantEta: 69},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortestPath(g, "A", "C", tt.opts...)
			assert.Equal(t, tt.wantEta, got.GetEtaMinutes())
			assert.Equal(t, 8.0, got.GetDistance())
		})
	}
}

func TestShortestPathCampus(t *testing.T) {
	g := campusGraph(t)

	got := ShortestPath(g, "Main Gate", "Boys Hostel")
	assert.Equal(t, []string{"Main Gate", "Central Library", "Student Canteen", "Boys Hostel"}, got.GetPath())
	assert.InDelta(t, 0.93, got.GetDistance(), 1e-9)

	got = ShortestPath(g, "Medical Centre", "Sports Complex")
	assert.Equal(t, []string{"Medical Centre", "Faculty of Engineering", "Sports Complex"}, got.GetPath())
	assert.InDelta(t, 1.13, got.GetDistance(), 1e-9)

	got = ShortestPath(g, "Main Gate", "Observatory")
	assert.False(t, got.IsFound())
	assert.True(t, math.IsInf(got.GetDistance(), 1))
}

func TestShortestPathProperties(t *testing.T) {
	g := campusGraph(t)
	names := g.MatchLocations("")

	for _, a := range names {
		for _, b := range names {
			ab := ShortestPath(g, a, b)
			ba := ShortestPath(g, b, a)

			if !g.SameComponent(a, b) {
				assert.False(t, ab.IsFound(), "%s -> %s", a, b)
				continue
			}
			require.True(t, ab.IsFound(), "%s -> %s", a, b)

			assert.Equal(t, a, ab.GetPath()[0])
			assert.Equal(t, b, ab.GetPath()[len(ab.GetPath())-1])
			assert.InDelta(t, pathWeight(t, g, ab.GetPath()), ab.GetDistance(), 1e-9)

			assert.InDelta(t, ab.GetDistance(), ba.GetDistance(), 1e-9)
			assert.Equal(t, ab.GetPath(), reversed(ba.GetPath()))

			for _, c := range names {
				if !g.SameComponent(a, c) {
					continue
				}
				ac := ShortestPath(g, a, c)
				bc := ShortestPath(g, b, c)
				assert.LessOrEqual(t, ac.GetDistance(), ab.GetDistance()+bc.GetDistance()+1e-9)
			}
		}
	}
}

func randomGraph(t *testing.T, seed uint64, n, extraEdges int) *da.CampusGraph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	locations := make([]da.Location, 0, n)
	for i := 0; i < n; i++ {
		locations = append(locations, da.Location{Name: fmt.Sprintf("L%d", i)})
	}

	type pair struct{ u, v int }
	used := make(map[pair]bool)
	edges := make([]da.Edge, 0, n+extraEdges)
	addEdge := func(u, v int) {
		if u == v {
			return
		}
		if u > v {
			u, v = v, u
		}
		if used[pair{u, v}] {
			return
		}
		used[pair{u, v}] = true
		edges = append(edges, da.NewEdge(fmt.Sprintf("L%d", u), fmt.Sprintf("L%d", v), 0.01+r.Float64()))
	}

	// two components: [0, n/2) and [n/2, n)
	half := n / 2
	for i := 1; i < half; i++ {
		addEdge(i, r.Intn(i))
	}
	for i := half + 1; i < n; i++ {
		addEdge(i, half+r.Intn(i-half))
	}
	for i := 0; i < extraEdges; i++ {
		if r.Intn(2) == 0 {
			addEdge(r.Intn(half), r.Intn(half))
		} else {
			addEdge(half+r.Intn(n-half), half+r.Intn(n-half))
		}
	}

	g, err := da.NewCampusGraph(locations, edges)
	require.NoError(t, err)
	return g
}

func TestShortestPathFrontiersAndEarlyExitAgree(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42} {
		g := randomGraph(t, seed, 40, 60)
		names := g.MatchLocations("")

		for i, a := range names {
			for _, b := range names[i:] {
				reference := ShortestPath(g, a, b, WithFrontier(LinearScanFrontier))
				for _, f := range frontiers {
					for _, earlyExit := range []bool{true, false} {
						got := ShortestPath(g, a, b, WithFrontier(f), WithEarlyExit(earlyExit))
						assert.Equal(t, reference.IsFound(), got.IsFound())
						if reference.IsFound() {
							assert.InDelta(t, reference.GetDistance(), got.GetDistance(), 1e-9)
							assert.InDelta(t, pathWeight(t, g, got.GetPath()), got.GetDistance(), 1e-9)
						} else {
							assert.True(t, math.IsInf(got.GetDistance(), 1))
						}
					}
				}
				assert.Equal(t, g.SameComponent(a, b), reference.IsFound())
			}
		}
	}
}

func TestShortestPathConcurrentCalls(t *testing.T) {
	g := randomGraph(t, 3, 30, 40)
	names := g.MatchLocations("")
	want := make(map[string]float64)
	for _, a := range names {
		want[a] = ShortestPath(g, names[0], a).GetDistance()
	}

	done := make(chan map[string]float64, 8)
	for w := 0; w < 8; w++ {
		go func(f FrontierType) {
			got := make(map[string]float64)
			for _, a := range names {
				got[a] = ShortestPath(g, names[0], a, WithFrontier(f)).GetDistance()
			}
			done <- got
		}(frontiers[w%2])
	}
	for w := 0; w < 8; w++ {
		got := <-done
		for _, a := range names {
			if math.IsInf(want[a], 1) {
				assert.True(t, math.IsInf(got[a], 1))
				continue
			}
			assert.InDelta(t, want[a], got[a], 1e-9)
		}
	}
}

func TestRoutingEngine(t *testing.T) {
	g := lineGraph(t)
	re := NewRoutingEngine(g, 4, 5, HeapFrontier, zap.NewNop())

	res := re.ShortestPath("A", "C")
	assert.Equal(t, []string{"A", "B", "C"}, res.GetPath())
	assert.Equal(t, 120, res.GetEtaMinutes())
	assert.Equal(t, 5.0, re.GetStepWalkingSpeed())
	assert.True(t, re.HasLocation("B"))
	assert.True(t, re.IsReachable("A", "C"))
	assert.False(t, re.IsReachable("A", "Z"))
}

func TestEstimateWalkingMinutes(t *testing.T) {
	assert.Equal(t, 60, EstimateWalkingMinutes(5, 5))
	assert.Equal(t, 36, EstimateWalkingMinutes(3, 5))
	assert.Equal(t, 0, EstimateWalkingMinutes(math.Inf(1), 5))
	assert.Equal(t, 0, EstimateWalkingMinutes(1, 0))
	assert.Equal(t, 8, EstimateWalkingMinutes(0.5, 4))
}

func reversed(path []string) []string {
	out := make([]string, len(path))
	for i := range path {
		out[len(path)-1-i] = path[i]
	}
	return out
}

func TestHeapFrontierDecrease(t *testing.T) {
	dist := []float64{0, math.Inf(1), math.Inf(1)}
	f := newHeapFrontier(dist)
	f.decrease(0, 0)
	f.decrease(1, 0.5)
	f.decrease(2, 0.9)
	f.decrease(2, 0.3)

	u, ok := f.extractMin()
	require.True(t, ok)
	assert.Equal(t, da.Index(0), u)
	assert.False(t, f.contains(0))

	u, ok = f.extractMin()
	require.True(t, ok)
	assert.Equal(t, da.Index(2), u)

	assert.Panics(t, func() { f.decrease(1, 0.8) })
	assert.Panics(t, func() { f.decrease(0, 0) })
}
