package main

import (
	"encoding/csv"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/lintang-b-s/campusnav/pkg/concurrent"
	da "github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	log "github.com/lintang-b-s/campusnav/pkg/logger"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	graphFile  = flag.String("graph", "./data/campus.json", "campus graph file")
	outFile    = flag.String("out", "./data/allpairs.csv", "output csv of walking distances (km)")
	numWorkers = flag.Int("workers", 8, "number of workers")
	sample     = flag.Int("sample", 0, "only compute rows for this many random origins (0 = all)")
	frontier   = flag.String("frontier", "heap", "dijkstra frontier: linear or heap")
)

type row struct {
	origin da.Index
	dists  []float64
}

func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config := engine.DefaultConfig()
	config.Frontier = routing.ParseFrontierType(*frontier)
	re, err := engine.NewEngine(*graphFile, config, logger)
	if err != nil {
		logger.Fatal("could not load campus graph", zap.Error(err))
	}
	g := re.GetRoutingEngine().GetGraph()
	n := g.NumberOfLocations()

	origins := make([]da.Index, n)
	for i := range origins {
		origins[i] = da.Index(i)
	}
	if *sample > 0 {
		rd := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
		rd.Shuffle(n, func(i, j int) {
			origins[i], origins[j] = origins[j], origins[i]
		})
		origins = origins[:util.MinG(*sample, n)]
	}

	calcRow := func(s da.Index) row {
		origin := g.GetLocationName(s)
		dists := make([]float64, n)
		for t := 0; t < n; t++ {
			res := routing.ShortestPath(g, origin, g.GetLocationName(da.Index(t)),
				routing.WithFrontier(config.Frontier))
			dists[t] = res.GetDistance()
		}
		return row{origin: s, dists: dists}
	}

	workers := concurrent.NewWorkerPool[da.Index, row](*numWorkers, len(origins))
	for _, s := range origins {
		workers.AddJob(s)
	}
	workers.Close()
	workers.Start(calcRow)
	workers.Wait()

	rows := make(map[da.Index][]float64, len(origins))
	for r := range workers.CollectResults() {
		rows[r.origin] = r.dists
	}

	fout, err := os.Create(*outFile)
	if err != nil {
		logger.Fatal("could not create output file", zap.Error(err))
	}
	defer fout.Close()

	writer := csv.NewWriter(fout)
	defer writer.Flush()

	header := make([]string, 0, n+1)
	header = append(header, "origin")
	for t := 0; t < n; t++ {
		header = append(header, g.GetLocationName(da.Index(t)))
	}
	if err := writer.Write(header); err != nil {
		logger.Fatal("could not write csv", zap.Error(err))
	}

	for _, s := range origins {
		rec := make([]string, 0, n+1)
		rec = append(rec, g.GetLocationName(s))
		for _, d := range rows[s] {
			rec = append(rec, strconv.FormatFloat(d, 'f', -1, 64))
		}
		if err := writer.Write(rec); err != nil {
			logger.Fatal("could not write csv", zap.Error(err))
		}
	}

	logger.Sugar().Infof("all pairs walking distances of %d origins written to %s", len(origins), *outFile)
}
