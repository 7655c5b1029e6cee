package engine

import (
	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"go.uber.org/zap"
)

type Config struct {
	EtaWalkingSpeed  float64 // km/h, route time estimate
	StepWalkingSpeed float64 // km/h, step durations
	Frontier         routing.FrontierType
}

func DefaultConfig() Config {
	return Config{
		EtaWalkingSpeed:  pkg.DEFAULT_ETA_WALKING_SPEED_KMH,
		StepWalkingSpeed: pkg.DEFAULT_STEP_WALKING_SPEED_KMH,
		Frontier:         routing.LinearScanFrontier,
	}
}

type Engine struct {
	routingEngine *routing.RoutingEngine
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func NewEngine(graphFilePath string, config Config, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading campus graph from ", zap.String("graphFilePath", graphFilePath))
	graph, err := datastructure.ReadCampusGraph(graphFilePath)
	if err != nil {
		return nil, err
	}

	return NewEngineDirect(graph, config, logger), nil
}

func NewEngineDirect(graph *datastructure.CampusGraph, config Config, logger *zap.Logger) *Engine {
	if config.EtaWalkingSpeed <= 0 {
		config.EtaWalkingSpeed = pkg.DEFAULT_ETA_WALKING_SPEED_KMH
	}
	if config.StepWalkingSpeed <= 0 {
		config.StepWalkingSpeed = pkg.DEFAULT_STEP_WALKING_SPEED_KMH
	}

	logger.Info("campus graph loaded",
		zap.Int("locations", graph.NumberOfLocations()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Int("components", graph.NumberOfComponents()),
		zap.Float64("etaWalkingSpeedKmh", config.EtaWalkingSpeed),
		zap.Float64("stepWalkingSpeedKmh", config.StepWalkingSpeed),
		zap.String("frontier", config.Frontier.String()))

	if graph.NumberOfComponents() > 1 {
		logger.Warn("campus graph is not connected, some routes will not exist",
			zap.Ints("componentSizes", graph.ComponentSizes()))
	}

	return &Engine{
		routingEngine: routing.NewRoutingEngine(graph, config.EtaWalkingSpeed, config.StepWalkingSpeed,
			config.Frontier, logger),
	}
}
