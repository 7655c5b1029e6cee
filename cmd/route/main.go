package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/guidance"
	"github.com/lintang-b-s/campusnav/pkg/logger"
	"go.uber.org/zap"
)

var (
	graphFile = flag.String("graph", "./data/campus.json", "campus graph file (.json or .json.bz2)")
	from      = flag.String("from", "", "origin location name")
	to        = flag.String("to", "", "destination location name")
	etaSpeed  = flag.Float64("eta_speed", pkg.DEFAULT_ETA_WALKING_SPEED_KMH, "walking speed in km/h for the route time estimate")
	stepSpeed = flag.Float64("step_speed", pkg.DEFAULT_STEP_WALKING_SPEED_KMH, "walking speed in km/h for the step durations")
	frontier  = flag.String("frontier", "linear", "dijkstra frontier: linear or heap")
)

func main() {
	flag.Parse()
	if *from == "" || *to == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	e, err := engine.NewEngine(*graphFile, engine.Config{
		EtaWalkingSpeed:  *etaSpeed,
		StepWalkingSpeed: *stepSpeed,
		Frontier:         routing.ParseFrontierType(*frontier),
	}, logger)
	if err != nil {
		logger.Fatal("could not load campus graph", zap.Error(err))
	}
	re := e.GetRoutingEngine()

	res := re.ShortestPath(*from, *to)
	if !res.IsFound() {
		switch {
		case !re.HasLocation(*from):
			fmt.Printf("unknown location: %s\n", *from)
		case !re.HasLocation(*to):
			fmt.Printf("unknown location: %s\n", *to)
		default:
			fmt.Printf("no route from %s to %s\n", *from, *to)
		}
		os.Exit(1)
	}

	fmt.Printf("Route: %v\n", res.GetPath())
	fmt.Printf("Distance: %.1f km\n", res.GetDistance())
	fmt.Printf("Time: %d minutes\n", res.GetEtaMinutes())
	for i, step := range guidance.DeriveRouteSteps(res.GetPath(), re.GetGraph(), re.GetStepWalkingSpeed()) {
		fmt.Printf("%d. %s (%s, %s)\n", i+1, step.GetInstruction(), step.GetFormattedDistance(), step.GetFormattedDuration())
	}
}
