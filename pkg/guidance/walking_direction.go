package guidance

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/util"
)

// StepDurationMinutes. ceil(distance / speed * 60), at least one minute.
func StepDurationMinutes(distanceKm, speedKmh float64) int {
	minutes := util.RoundFloat(distanceKm*60.0/speedKmh, 9)
	return util.ClampMin(int(math.Ceil(minutes)), pkg.MIN_STEP_DURATION_MINUTES)
}

/*
DeriveRouteSteps. one step per consecutive pair of the path.

step distance is the edge weight clamped to at least 0.1 km (a pair without an edge counts as 0 km),
step duration is ceil(distance / speedKmh * 60) clamped to at least 1 minute.
a path with less than two locations has no steps. non positive speeds fall back to the default step walking speed.
*/
func DeriveRouteSteps(path []string, g Graph, speedKmh float64) []Step {
	if len(path) < 2 {
		return []Step{}
	}
	if speedKmh <= 0 {
		speedKmh = pkg.DEFAULT_STEP_WALKING_SPEED_KMH
	}

	steps := make([]Step, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		cur, next := path[i], path[i+1]

		weight, _ := g.GetWeight(cur, next)
		distance := util.ClampMin(weight, pkg.MIN_STEP_DISTANCE_KM)
		duration := StepDurationMinutes(distance, speedKmh)

		var prev string
		if i > 0 {
			prev = path[i-1]
		}
		instruction, turnType := buildInstruction(g, prev, cur, next, i == 0)

		steps = append(steps, NewStep(instruction, cur, next, distance, duration, turnType))
	}
	return steps
}

func buildInstruction(g Graph, prev, cur, next string, first bool) (string, pkg.TurnType) {
	curCoord, okCur := g.GetCoordinate(cur)
	nextCoord, okNext := g.GetCoordinate(next)
	if !okCur || !okNext {
		return fmt.Sprintf("Walk from %s to %s", cur, next), pkg.NONE
	}

	if first {
		bearing := geo.BearingTo(curCoord.Lat, curCoord.Lon, nextCoord.Lat, nextCoord.Lon)
		return fmt.Sprintf("Head %s from %s towards %s", geo.CardinalDirection(bearing), cur, next), pkg.START
	}

	prevCoord, okPrev := g.GetCoordinate(prev)
	if !okPrev {
		return fmt.Sprintf("Walk from %s to %s", cur, next), pkg.NONE
	}

	turnType := getTurnType(prevCoord, curCoord, nextCoord)
	return fmt.Sprintf("%s at %s towards %s", getTurnDescription(turnType), cur, next), turnType
}

// PathCoordinates. coordinates of the path locations that have one, in path order
func PathCoordinates(path []string, g Graph) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(path))
	for _, name := range path {
		if c, ok := g.GetCoordinate(name); ok {
			coords = append(coords, c)
		}
	}
	return coords
}
