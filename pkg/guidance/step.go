package guidance

import (
	"fmt"

	"github.com/lintang-b-s/campusnav/pkg"
)

// Step. walking instruction for one edge of a route.
type Step struct {
	instruction     string
	from            string
	to              string
	distanceKm      float64
	durationMinutes int
	turnType        pkg.TurnType
}

func NewStep(instruction, from, to string, distanceKm float64, durationMinutes int, turnType pkg.TurnType) Step {
	return Step{
		instruction:     instruction,
		from:            from,
		to:              to,
		distanceKm:      distanceKm,
		durationMinutes: durationMinutes,
		turnType:        turnType,
	}
}

func (s Step) GetInstruction() string {
	return s.instruction
}

func (s Step) GetFrom() string {
	return s.from
}

func (s Step) GetTo() string {
	return s.to
}

func (s Step) GetDistanceKm() float64 {
	return s.distanceKm
}

func (s Step) GetDurationMinutes() int {
	return s.durationMinutes
}

func (s Step) GetTurnType() pkg.TurnType {
	return s.turnType
}

// GetFormattedDistance. e.g. "5.0 km"
func (s Step) GetFormattedDistance() string {
	return fmt.Sprintf("%.1f km", s.distanceKm)
}

// GetFormattedDuration. e.g. "36 minutes"
func (s Step) GetFormattedDuration() string {
	return fmt.Sprintf("%d minutes", s.durationMinutes)
}
