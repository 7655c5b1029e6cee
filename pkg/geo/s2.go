package geo

import (
	"github.com/golang/geo/s2"
)

// ProjectPointToLineCoord. project snap onto the great circle segment (pointA, pointB).
func ProjectPointToLineCoord(pointA Coordinate, pointB Coordinate,
	snap Coordinate) Coordinate {

	pointAS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointA.Lat, pointA.Lon))
	pointBS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointB.Lat, pointB.Lon))
	snapS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(snap.Lat, snap.Lon))
	projection := s2.Project(snapS2, pointAS2, pointBS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return NewCoordinate(projectLatLng.Lat.Degrees(), projectLatLng.Lng.Degrees())
}

// PointLinePerpendicularDistance. return in km
func PointLinePerpendicularDistance(pointA Coordinate, pointB Coordinate,
	snap Coordinate) float64 {
	projectionPoint := ProjectPointToLineCoord(pointA, pointB, snap)

	return CalculateHaversineDistance(snap.GetLat(), snap.GetLon(), projectionPoint.GetLat(), projectionPoint.GetLon())
}

// DistanceToPath. minimum distance (km) from p to any segment of path. a single point path is a point distance.
func DistanceToPath(path []Coordinate, p Coordinate) float64 {
	if len(path) == 0 {
		return 0
	}
	if len(path) == 1 {
		return CalculateHaversineDistance(path[0].Lat, path[0].Lon, p.Lat, p.Lon)
	}
	best := -1.0
	for i := 1; i < len(path); i++ {
		d := PointLinePerpendicularDistance(path[i-1], path[i], p)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
