package datastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/campusnav/pkg/geo"
)

// CampusGraphFile. on-disk layout of the static campus graph configuration.
//
//	{
//	  "locations":   ["Main Gate", "Library", ...],
//	  "coordinates": {"Main Gate": {"lat": -7.77, "lon": 110.37}, ...},
//	  "graph":       {"Main Gate": {"Library": 0.4}, "Library": {"Main Gate": 0.4}, ...}
//	}
type CampusGraphFile struct {
	Locations   []string                      `json:"locations"`
	Coordinates map[string]geo.Coordinate     `json:"coordinates"`
	Graph       map[string]map[string]float64 `json:"graph"`
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".bz2")
}

// ReadCampusGraph. read and validate the campus graph file. files ending in .bz2 are bzip2 compressed.
func ReadCampusGraph(path string) (*CampusGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open campus graph file: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if isCompressed(path) {
		bz, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, fmt.Errorf("could not open bzip2 stream: %w", err)
		}
		defer bz.Close()
		r = bz
	}

	return DecodeCampusGraph(r)
}

// DecodeCampusGraph. decode a json campus graph document from r.
func DecodeCampusGraph(r io.Reader) (*CampusGraph, error) {
	var file CampusGraphFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("could not parse campus graph: %w", err)
	}

	g, err := NewCampusGraphFromAdjacency(file.Locations, file.Graph, file.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("invalid campus graph: %w", err)
	}
	return g, nil
}

func (g *CampusGraph) toFile() CampusGraphFile {
	file := CampusGraphFile{
		Locations:   make([]string, 0, len(g.locations)),
		Coordinates: make(map[string]geo.Coordinate, len(g.locations)),
		Graph:       g.ToAdjacency(),
	}
	for _, loc := range g.locations {
		file.Locations = append(file.Locations, loc.Name)
		if loc.HasCoordinate {
			file.Coordinates[loc.Name] = loc.Coordinate
		}
	}
	return file
}

// EncodeCampusGraph. write the graph as an indented json document.
func (g *CampusGraph) EncodeCampusGraph(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g.toFile())
}

// WriteCampusGraph. write the graph to path, bzip2 compressed if path ends in .bz2.
func (g *CampusGraph) WriteCampusGraph(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if isCompressed(path) {
		bz, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.BestCompression})
		if err != nil {
			return err
		}
		if err := g.EncodeCampusGraph(bz); err != nil {
			bz.Close()
			return err
		}
		if err := bz.Close(); err != nil {
			return err
		}
	} else if err := g.EncodeCampusGraph(w); err != nil {
		return err
	}

	return w.Flush()
}
