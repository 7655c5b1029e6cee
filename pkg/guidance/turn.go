package guidance

import (
	"math"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/geo"
)

/*
alignBearings. handle the case where bearing-prevBearing > 180° or bearing-prevBearing < -180°.

e.g. prevBearing 20°, bearing 350°: the walker turns left by 30°, not right by 330°.
fix: prevBearing + 360°.

e.g. prevBearing 340°, bearing 10°: the walker turns right by 30°.
fix: bearing + 360°.
*/
func alignBearings(prevBearing, bearing float64) (float64, float64) {
	dif := bearing - prevBearing
	if dif > 180 {
		prevBearing += 360
	} else if dif < -180 {
		bearing += 360
	}
	return prevBearing, bearing
}

// computeDeltaBearing. signed change of direction in degrees at cur when walking prev -> cur -> next.
// negative is a left turn.
func computeDeltaBearing(prev, cur, next geo.Coordinate) float64 {
	inBearing := geo.BearingTo(prev.Lat, prev.Lon, cur.Lat, cur.Lon)
	outBearing := geo.BearingTo(cur.Lat, cur.Lon, next.Lat, next.Lon)
	inBearing, outBearing = alignBearings(inBearing, outBearing)
	return outBearing - inBearing
}

func getTurnType(prev, cur, next geo.Coordinate) pkg.TurnType {
	delta := computeDeltaBearing(prev, cur, next)
	absDelta := math.Abs(delta)

	switch {
	case absDelta < 12:
		return pkg.STRAIGHT_ON
	case absDelta < 40:
		if delta < 0 {
			return pkg.SLIGHT_LEFT
		}
		return pkg.SLIGHT_RIGHT
	case absDelta < 105:
		if delta < 0 {
			return pkg.LEFT_TURN
		}
		return pkg.RIGHT_TURN
	case absDelta < 170:
		if delta < 0 {
			return pkg.SHARP_LEFT
		}
		return pkg.SHARP_RIGHT
	default:
		return pkg.U_TURN
	}
}

func getTurnDescription(t pkg.TurnType) string {
	switch t {
	case pkg.STRAIGHT_ON:
		return "Continue straight"
	case pkg.SLIGHT_LEFT:
		return "Turn slight left"
	case pkg.SLIGHT_RIGHT:
		return "Turn slight right"
	case pkg.LEFT_TURN:
		return "Turn left"
	case pkg.RIGHT_TURN:
		return "Turn right"
	case pkg.SHARP_LEFT:
		return "Turn sharp left"
	case pkg.SHARP_RIGHT:
		return "Turn sharp right"
	case pkg.U_TURN:
		return "Make a U-turn"
	default:
		return "Walk"
	}
}
