package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/http"
	"github.com/lintang-b-s/campusnav/pkg/http/usecases"
	"github.com/lintang-b-s/campusnav/pkg/logger"
	"github.com/lintang-b-s/campusnav/pkg/session"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir    = flag.String("config_dir", "./data", "directory containing config.yaml")
	useRateLimit = flag.Bool("rate_limit", false, "rate limit api requests per client ip")
)

func setDefaults() {
	viper.SetDefault("GRAPH_FILE", "./data/campus.json")
	viper.SetDefault("WALKING_SPEED_ETA_KMH", pkg.DEFAULT_ETA_WALKING_SPEED_KMH)
	viper.SetDefault("WALKING_SPEED_STEPS_KMH", pkg.DEFAULT_STEP_WALKING_SPEED_KMH)
	viper.SetDefault("FRONTIER", "linear")
	viper.SetDefault("SNAP_RADIUS_KM", pkg.DEFAULT_SNAP_RADIUS_KM)
	viper.SetDefault("LEAF_BOUNDING_BOX_RADIUS_KM", pkg.DEFAULT_LEAF_BBOX_RADIUS_KM)
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_EVICT_INTERVAL", "1m")
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	setDefaults()

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config := engine.Config{
		EtaWalkingSpeed:  viper.GetFloat64("WALKING_SPEED_ETA_KMH"),
		StepWalkingSpeed: viper.GetFloat64("WALKING_SPEED_STEPS_KMH"),
		Frontier:         routing.ParseFrontierType(viper.GetString("FRONTIER")),
	}
	routingEngine, err := engine.NewEngine(viper.GetString("GRAPH_FILE"), config, logger)
	if err != nil {
		logger.Fatal("could not load campus graph", zap.Error(err))
	}
	graph := routingEngine.GetRoutingEngine().GetGraph()

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, viper.GetFloat64("LEAF_BOUNDING_BOX_RADIUS_KM"), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionStore := session.NewStore(graph, logger)
	go sessionStore.RunEvictor(ctx, viper.GetDuration("SESSION_EVICT_INTERVAL"), viper.GetDuration("SESSION_TTL"))

	routingService := usecases.NewRoutingService(logger, routingEngine.GetRoutingEngine(), rtree,
		viper.GetFloat64("SNAP_RADIUS_KM"))
	sessionService := usecases.NewSessionService(logger, sessionStore)

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, *useRateLimit, routingService, sessionService); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}

	if err := api.Wait(); err != nil {
		logger.Error("campus navigation server stopped with error", zap.Error(err))
		return
	}
	logger.Info("campus navigation server stopped")
}
