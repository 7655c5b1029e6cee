package guidance

import (
	"testing"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapGraph struct {
	weights map[string]map[string]float64
	coords  map[string]geo.Coordinate
}

func (m mapGraph) GetWeight(from, to string) (float64, bool) {
	w, ok := m.weights[from][to]
	return w, ok
}

func (m mapGraph) GetCoordinate(name string) (geo.Coordinate, bool) {
	c, ok := m.coords[name]
	return c, ok
}

func TestDeriveRouteSteps(t *testing.T) {
	g := mapGraph{weights: map[string]map[string]float64{
		"A": {"B": 5},
		"B": {"A": 5, "C": 3, "D": 0.02},
		"C": {"B": 3},
		"D": {"B": 0.02},
	}}

	testCases := []struct {
		name          string
		path          []string
		speed         float64
		wantDistances []string
		wantDurations []string
	}{
		{
			name:          "weights 5 and 3 at 5 km/h",
			path:          []string{"A", "B", "C"},
			speed:         5,
			wantDistances: []string{"5.0 km", "3.0 km"},
			wantDurations: []string{"60 minutes", "36 minutes"},
		},
		{
			name:          "weights 5 and 3 at 4 km/h",
			path:          []string{"A", "B", "C"},
			speed:         4,
			wantDistances: []string{"5.0 km", "3.0 km"},
			wantDurations: []string{"75 minutes", "45 minutes"},
		},
		{
			name:          "short edge is clamped to 0.1 km and 2 minutes",
			path:          []string{"B", "D"},
			speed:         5,
			wantDistances: []string{"0.1 km"},
			wantDurations: []string{"2 minutes"},
		},
		{
			name:          "short edge at high speed is clamped to 1 minute",
			path:          []string{"D", "B"},
			speed:         60,
			wantDistances: []string{"0.1 km"},
			wantDurations: []string{"1 minutes"},
		},
		{
			name:          "non positive speed uses the default step speed",
			path:          []string{"A", "B"},
			speed:         0,
			wantDistances: []string{"5.0 km"},
			wantDurations: []string{"60 minutes"},
		},
		{name: "single location", path: []string{"A"}, speed: 5, wantDistances: []string{}, wantDurations: []string{}},
		{name: "empty path", path: []string{}, speed: 5, wantDistances: []string{}, wantDurations: []string{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			steps := DeriveRouteSteps(tt.path, g, tt.speed)
			require.Len(t, steps, len(tt.wantDistances))
			for i, s := range steps {
				assert.Equal(t, tt.wantDistances[i], s.GetFormattedDistance())
				assert.Equal(t, tt.wantDurations[i], s.GetFormattedDuration())
				assert.Equal(t, tt.path[i], s.GetFrom())
				assert.Equal(t, tt.path[i+1], s.GetTo())
				assert.Equal(t, "Walk from "+tt.path[i]+" to "+tt.path[i+1], s.GetInstruction())
			}
		})
	}
}

func TestDeriveRouteStepsNumericValues(t *testing.T) {
	g := mapGraph{weights: map[string]map[string]float64{
		"A": {"B": 5},
		"B": {"A": 5, "C": 3},
		"C": {"B": 3},
	}}
	steps := DeriveRouteSteps([]string{"A", "B", "C"}, g, 5)
	require.Len(t, steps, 2)
	assert.Equal(t, 5.0, steps[0].GetDistanceKm())
	assert.Equal(t, 60, steps[0].GetDurationMinutes())
	assert.Equal(t, 3.0, steps[1].GetDistanceKm())
	assert.Equal(t, 36, steps[1].GetDurationMinutes())
}

func TestDeriveRouteStepsInstructions(t *testing.T) {
	g := mapGraph{
		weights: map[string]map[string]float64{
			"Gate":     {"Library": 1.1},
			"Library":  {"Gate": 1.1, "Lab": 1.1, "Canteen": 1.1, "Hall": 1.1},
			"Lab":      {"Library": 1.1},
			"Canteen":  {"Library": 1.1},
			"Hall":     {"Library": 1.1},
			"Unmapped": {"Library": 0.5},
		},
		coords: map[string]geo.Coordinate{
			"Gate":    geo.NewCoordinate(0, 0),
			"Library": geo.NewCoordinate(0.01, 0),
			"Lab":     geo.NewCoordinate(0.01, 0.01),
			"Canteen": geo.NewCoordinate(0.01, -0.01),
			"Hall":    geo.NewCoordinate(0.02, 0),
		},
	}

	testCases := []struct {
		name      string
		path      []string
		wantFirst string
		wantLast  string
		wantTurn  pkg.TurnType
	}{
		{name: "right", path: []string{"Gate", "Library", "Lab"}, wantFirst: "Head north from Gate towards Library",
			wantLast: "Turn right at Library towards Lab", wantTurn: pkg.RIGHT_TURN},
		{name: "left", path: []string{"Gate", "Library", "Canteen"}, wantFirst: "Head north from Gate towards Library",
			wantLast: "Turn left at Library towards Canteen", wantTurn: pkg.LEFT_TURN},
		{name: "straight", path: []string{"Gate", "Library", "Hall"}, wantFirst: "Head north from Gate towards Library",
			wantLast: "Continue straight at Library towards Hall", wantTurn: pkg.STRAIGHT_ON},
		{name: "u-turn", path: []string{"Gate", "Library", "Gate"}, wantFirst: "Head north from Gate towards Library",
			wantLast: "Make a U-turn at Library towards Gate", wantTurn: pkg.U_TURN},
		{name: "unmapped previous location", path: []string{"Unmapped", "Library", "Lab"}, wantFirst: "Walk from Unmapped to Library",
			wantLast: "Walk from Library to Lab", wantTurn: pkg.NONE},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			steps := DeriveRouteSteps(tt.path, g, 5)
			require.Len(t, steps, 2)
			assert.Equal(t, tt.wantFirst, steps[0].GetInstruction())
			assert.Equal(t, tt.wantLast, steps[1].GetInstruction())
			assert.Equal(t, tt.wantTurn, steps[1].GetTurnType())
		})
	}
}

func TestPathCoordinates(t *testing.T) {
	g := mapGraph{coords: map[string]geo.Coordinate{"A": geo.NewCoordinate(1, 2), "C": geo.NewCoordinate(3, 4)}}
	assert.Equal(t, []geo.Coordinate{geo.NewCoordinate(1, 2), geo.NewCoordinate(3, 4)},
		PathCoordinates([]string{"A", "B", "C"}, g))
}
