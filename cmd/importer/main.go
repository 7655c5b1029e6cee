package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/campusnav/pkg/logger"
	"github.com/lintang-b-s/campusnav/pkg/osmparser"
	"go.uber.org/zap"
)

var (
	osmFile = flag.String("osm", "./data/campus.osm.pbf", "openstreetmap extract of the campus (.osm or .osm.pbf)")
	outFile = flag.String("out", "./data/campus.json", "output campus graph file, bzip2 compressed if it ends in .bz2")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	osmParser := osmparser.NewOSMParser(logger)
	graph, err := osmParser.Parse(context.Background(), *osmFile)
	if err != nil {
		logger.Fatal("could not import openstreetmap file", zap.String("file", *osmFile), zap.Error(err))
	}

	if err := graph.WriteCampusGraph(*outFile); err != nil {
		logger.Fatal("could not write campus graph", zap.String("file", *outFile), zap.Error(err))
	}

	logger.Sugar().Infof("campus graph written to %s", *outFile)
}
