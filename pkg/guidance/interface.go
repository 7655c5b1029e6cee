package guidance

import "github.com/lintang-b-s/campusnav/pkg/geo"

type Graph interface {
	GetWeight(from, to string) (float64, bool)
	GetCoordinate(name string) (geo.Coordinate, bool)
}
