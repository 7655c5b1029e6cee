package routing

import (
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
	"go.uber.org/zap"
)

// RoutingEngine. campus graph plus the configured walking speeds and frontier strategy.
type RoutingEngine struct {
	graph            *da.CampusGraph
	etaWalkingSpeed  float64
	stepWalkingSpeed float64
	frontier         FrontierType
	logger           *zap.Logger
}

func NewRoutingEngine(graph *da.CampusGraph, etaWalkingSpeed, stepWalkingSpeed float64,
	frontier FrontierType, logger *zap.Logger) *RoutingEngine {
	return &RoutingEngine{
		graph:            graph,
		etaWalkingSpeed:  etaWalkingSpeed,
		stepWalkingSpeed: stepWalkingSpeed,
		frontier:         frontier,
		logger:           logger,
	}
}

func (re *RoutingEngine) GetGraph() *da.CampusGraph {
	return re.graph
}

func (re *RoutingEngine) GetEtaWalkingSpeed() float64 {
	return re.etaWalkingSpeed
}

func (re *RoutingEngine) GetStepWalkingSpeed() float64 {
	return re.stepWalkingSpeed
}

func (re *RoutingEngine) HasLocation(name string) bool {
	return re.graph.HasLocation(name)
}

// IsReachable. true if a route from origin to destination exists (both must be known locations).
func (re *RoutingEngine) IsReachable(origin, destination string) bool {
	return re.graph.SameComponent(origin, destination)
}

func (re *RoutingEngine) ShortestPath(origin, destination string) PathResult {
	res := ShortestPath(re.graph, origin, destination,
		WithWalkingSpeed(re.etaWalkingSpeed), WithFrontier(re.frontier))
	re.logger.Debug("shortest path query",
		zap.String("origin", origin), zap.String("destination", destination),
		zap.Bool("found", res.IsFound()), zap.Int("hops", len(res.GetPath())))
	return res
}
