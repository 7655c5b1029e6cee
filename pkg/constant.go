package pkg

import (
	"math"
	"strings"
)

// enum of turn_type
type TurnType uint8

const (
	START TurnType = iota
	STRAIGHT_ON
	SLIGHT_LEFT
	SLIGHT_RIGHT
	LEFT_TURN
	RIGHT_TURN
	SHARP_LEFT
	SHARP_RIGHT
	U_TURN
	NONE
)

func (t TurnType) String() string {
	switch t {
	case START:
		return "START"
	case STRAIGHT_ON:
		return "STRAIGHT_ON"
	case SLIGHT_LEFT:
		return "SLIGHT_LEFT"
	case SLIGHT_RIGHT:
		return "SLIGHT_RIGHT"
	case LEFT_TURN:
		return "LEFT_TURN"
	case RIGHT_TURN:
		return "RIGHT_TURN"
	case SHARP_LEFT:
		return "SHARP_LEFT"
	case SHARP_RIGHT:
		return "SHARP_RIGHT"
	case U_TURN:
		return "U_TURN"
	default:
		return "NONE"
	}
}

var (
	// unreachable distance of the no-path result
	INF_WEIGHT = math.Inf(1)
)

const (
	// km/h. used for the route time estimate
	DEFAULT_ETA_WALKING_SPEED_KMH = 4.0
	// km/h. used for the per step durations
	DEFAULT_STEP_WALKING_SPEED_KMH = 5.0

	MIN_STEP_DISTANCE_KM        = 0.1
	MIN_STEP_DURATION_MINUTES   = 1
	MAX_RECENT_ROUTES           = 20
	DEFAULT_SNAP_RADIUS_KM      = 0.3
	DEFAULT_LEAF_BBOX_RADIUS_KM = 0.02
)

const (
	DEBUG = false
)

type LocationCategory uint8

const (
	ACADEMIC       LocationCategory = 0
	RESIDENTIAL    LocationCategory = 1
	DINING         LocationCategory = 2
	LIBRARY        LocationCategory = 3
	ADMINISTRATIVE LocationCategory = 4
	SPORTS         LocationCategory = 5
	MEDICAL        LocationCategory = 6
	WORSHIP        LocationCategory = 7
	GATE           LocationCategory = 8
	PARKING        LocationCategory = 9
	OTHER          LocationCategory = 10
)

func (c LocationCategory) String() string {
	switch c {
	case ACADEMIC:
		return "academic"
	case RESIDENTIAL:
		return "residential"
	case DINING:
		return "dining"
	case LIBRARY:
		return "library"
	case ADMINISTRATIVE:
		return "administrative"
	case SPORTS:
		return "sports"
	case MEDICAL:
		return "medical"
	case WORSHIP:
		return "worship"
	case GATE:
		return "gate"
	case PARKING:
		return "parking"
	default:
		return "other"
	}
}

// rules are checked in order, first match wins. residential comes before academic so "Hostel Block A" is not a lecture block.
var categoryRules = []struct {
	category LocationCategory
	patterns []string
}{
	{RESIDENTIAL, []string{"hostel", "hall of residence", "dorm", "residence", "quarters", "apartment"}},
	{LIBRARY, []string{"library"}},
	{DINING, []string{"canteen", "cafeteria", "cafe", "food", "restaurant", "mess", "dining"}},
	{MEDICAL, []string{"clinic", "hospital", "health", "medical"}},
	{SPORTS, []string{"stadium", "gym", "sport", "field", "court", "pool"}},
	{WORSHIP, []string{"mosque", "chapel", "church", "temple", "masjid"}},
	{GATE, []string{"gate", "entrance"}},
	{PARKING, []string{"parking", "car park"}},
	{ADMINISTRATIVE, []string{"admin", "registry", "bursary", "senate", "rectorate", "office"}},
	{ACADEMIC, []string{"faculty", "department", "lecture", "theatre", "theater", "lab", "school", "block", "building", "auditorium"}},
}

// GetLocationCategory. derive the category of a campus location from its name.
func GetLocationCategory(name string) LocationCategory {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, p := range rule.patterns {
			if strings.Contains(lower, p) {
				return rule.category
			}
		}
	}
	return OTHER
}
