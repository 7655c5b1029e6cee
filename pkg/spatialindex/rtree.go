package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[LocationEntry]
}

// LocationEntry. campus location stored in the r-tree
type LocationEntry struct {
	name       string
	coordinate geo.Coordinate
}

func (le LocationEntry) GetName() string {
	return le.name
}

func (le LocationEntry) GetCoordinate() geo.Coordinate {
	return le.coordinate
}

func newLocationEntry(name string, coordinate geo.Coordinate) LocationEntry {
	return LocationEntry{
		name:       name,
		coordinate: coordinate,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[LocationEntry]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree of every location that has a coordinate, each leaf is a bounding box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(graph *datastructure.CampusGraph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	count := 0
	for _, loc := range graph.Locations() {
		if !loc.HasCoordinate {
			continue
		}
		lat, lon := loc.Coordinate.Lat, loc.Coordinate.Lon
		lowerLat, lowerLon := geo.GetDestinationPoint(lat, lon, 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(lat, lon, 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
			newLocationEntry(loc.Name, loc.Coordinate))
		count++
	}

	log.Info("R-tree spatial index built.", zap.Int("locations", count))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius search for all locations within radius (in km) from the query point (qLat, qLon), nearest first
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []LocationEntry {
	// the box must enclose the whole circle, so take its extent from the cardinal points
	upperLat, _ := geo.GetDestinationPoint(qLat, qLon, 0, radius)
	_, upperLon := geo.GetDestinationPoint(qLat, qLon, 90, radius)
	lowerLat, _ := geo.GetDestinationPoint(qLat, qLon, 180, radius)
	_, lowerLon := geo.GetDestinationPoint(qLat, qLon, 270, radius)

	results := make([]LocationEntry, 0, 10)
	dists := make(map[string]float64, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data LocationEntry) bool {
			d := geo.CalculateHaversineDistance(qLat, qLon, data.coordinate.Lat, data.coordinate.Lon)
			if d <= radius {
				results = append(results, data)
				dists[data.name] = d
			}
			return true
		})

	sort.SliceStable(results, func(i, j int) bool {
		return dists[results[i].name] < dists[results[j].name]
	})
	return results
}

// NearestLocation. nearest location within radius km of (qLat, qLon) and its distance in km.
func (rt *Rtree) NearestLocation(qLat, qLon, radius float64) (string, float64, bool) {
	candidates := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(candidates) == 0 {
		return "", 0, false
	}
	nearest := candidates[0]
	return nearest.name, geo.CalculateHaversineDistance(qLat, qLon, nearest.coordinate.Lat, nearest.coordinate.Lon), true
}
