package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

var (
	// walkable highway types
	acceptedHighway = map[string]struct{}{
		"footway":       {},
		"path":          {},
		"pedestrian":    {},
		"steps":         {},
		"service":       {},
		"residential":   {},
		"living_street": {},
		"track":         {},
		"cycleway":      {},
		"unclassified":  {},
		"tertiary":      {},
	}

	restrictedAccess = map[string]struct{}{
		"no":      {},
		"private": {},
	}
)

type FileFormat uint8

const (
	OSM_XML FileFormat = iota
	OSM_PBF
)

// FormatFromPath. .pbf files are protobuf, everything else is osm xml.
func FormatFromPath(path string) FileFormat {
	if strings.HasSuffix(path, ".pbf") {
		return OSM_PBF
	}
	return OSM_XML
}

// OsmParser. builds a campus graph out of an openstreetmap extract.
// named nodes become locations, walkable ways connect consecutive named nodes.
type OsmParser struct {
	wayNodeMap map[int64]struct{}
	nodes      map[int64]nodeInfo
	named      []namedNode
	nameOwner  map[string]int64
	ways       []osmWay
	edges      map[edgeKey]float64
	edgeOrder  []edgeKey
	log        *zap.Logger
}

func NewOSMParser(log *zap.Logger) *OsmParser {
	return &OsmParser{
		wayNodeMap: make(map[int64]struct{}),
		nodes:      make(map[int64]nodeInfo),
		named:      make([]namedNode, 0),
		nameOwner:  make(map[string]int64),
		ways:       make([]osmWay, 0),
		edges:      make(map[edgeKey]float64),
		edgeOrder:  make([]edgeKey, 0),
		log:        log,
	}
}

func newScanner(ctx context.Context, r io.Reader, format FileFormat) osm.Scanner {
	if format == OSM_PBF {
		return osmpbf.New(ctx, r, 1)
	}
	return osmxml.New(ctx, r)
}

// Parse. parse the .osm or .osm.pbf file at mapFile.
func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*datastructure.CampusGraph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.ParseReader(ctx, f, FormatFromPath(mapFile))
}

// ParseReader. two passes over r: ways first to know which nodes are needed, then nodes.
func (p *OsmParser) ParseReader(ctx context.Context, r io.ReadSeeker, format FileFormat) (*datastructure.CampusGraph, error) {
	scanner := newScanner(ctx, r, format)
	countWays := 0
	for scanner.Scan() {
		if util.StopConcurrentOperation(ctx) {
			scanner.Close()
			return nil, ctx.Err()
		}
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%10000 == 0 {
			p.log.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		nodeIDs := make([]int64, 0, len(way.Nodes))
		for _, node := range way.Nodes {
			nodeIDs = append(nodeIDs, int64(node.ID))
			p.wayNodeMap[int64(node.ID)] = struct{}{}
		}
		p.ways = append(p.ways, osmWay{
			id:    int64(way.ID),
			nodes: nodeIDs,
			hwTag: way.Tags.Find("highway"),
		})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("scanning openstreetmap ways: %w", err)
	}
	scanner.Close()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	scanner = newScanner(ctx, r, format)
	defer scanner.Close()
	for scanner.Scan() {
		if util.StopConcurrentOperation(ctx) {
			return nil, ctx.Err()
		}
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		p.processNode(node)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning openstreetmap nodes: %w", err)
	}

	for _, way := range p.ways {
		p.processWay(way)
	}

	return p.buildGraph()
}

func (p *OsmParser) processNode(node *osm.Node) {
	id := int64(node.ID)
	name := strings.TrimSpace(node.Tags.Find("name"))
	_, onWay := p.wayNodeMap[id]
	if !onWay && name == "" {
		return
	}

	info := nodeInfo{coord: geo.NewCoordinate(node.Lat, node.Lon)}
	if name != "" {
		if owner, dup := p.nameOwner[name]; dup {
			p.log.Debug("duplicate location name, keeping first node",
				zap.String("name", name), zap.Int64("kept", owner), zap.Int64("ignored", id))
		} else {
			p.nameOwner[name] = id
			p.named = append(p.named, namedNode{id: id, name: name})
			info.name = name
		}
	}
	p.nodes[id] = info
}

// processWay. connect consecutive named nodes along the way, weight is the length of the polyline between them.
func (p *OsmParser) processWay(way osmWay) {
	lastNamed := ""
	acc := 0.0
	var prev *nodeInfo
	for _, nodeID := range way.nodes {
		info, ok := p.nodes[nodeID]
		if !ok {
			// node outside the extract, the way is broken here
			lastNamed, acc, prev = "", 0, nil
			continue
		}
		if prev != nil {
			acc += geo.CalculateHaversineDistance(prev.coord.Lat, prev.coord.Lon, info.coord.Lat, info.coord.Lon)
		}
		cur := info
		prev = &cur

		if info.name == "" {
			continue
		}
		if lastNamed != "" && lastNamed != info.name {
			p.addEdge(lastNamed, info.name, acc)
		}
		lastNamed = info.name
		acc = 0
	}
}

// addEdge. parallel edges keep the minimum weight.
func (p *OsmParser) addEdge(from, to string, distKm float64) {
	w := util.RoundFloat(distKm, 3)
	if w <= 0 {
		w = 0.001
	}
	key := newEdgeKey(from, to)
	if old, ok := p.edges[key]; ok {
		if w < old {
			p.edges[key] = w
		}
		return
	}
	p.edges[key] = w
	p.edgeOrder = append(p.edgeOrder, key)
}

func (p *OsmParser) buildGraph() (*datastructure.CampusGraph, error) {
	locations := make([]datastructure.Location, 0, len(p.named))
	for _, n := range p.named {
		c := p.nodes[n.id].coord
		locations = append(locations, datastructure.NewLocation(n.name, c.Lat, c.Lon))
	}

	edges := make([]datastructure.Edge, 0, len(p.edgeOrder))
	for _, key := range p.edgeOrder {
		edges = append(edges, datastructure.NewEdge(key.from, key.to, p.edges[key]))
	}

	g, err := datastructure.NewCampusGraph(locations, edges)
	if err != nil {
		return nil, fmt.Errorf("building campus graph from openstreetmap data: %w", err)
	}

	p.log.Info("campus graph built from openstreetmap data",
		zap.Int("ways", len(p.ways)),
		zap.Int("locations", g.NumberOfLocations()),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Int("components", g.NumberOfComponents()))
	return g, nil
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if _, ok := acceptedHighway[highway]; !ok {
		return false
	}
	if _, ok := restrictedAccess[way.Tags.Find("access")]; ok && way.Tags.Find("foot") != "yes" {
		return false
	}
	return way.Tags.Find("foot") != "no"
}
