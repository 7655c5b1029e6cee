package osmparser

import (
	"context"
	"strings"
	"testing"

	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const campusOsm = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="-7.7700" lon="110.3770"><tag k="name" v="Main Gate"/></node>
  <node id="2" lat="-7.7705" lon="110.3780"/>
  <node id="3" lat="-7.7710" lon="110.3775"><tag k="name" v="Central Library"/></node>
  <node id="4" lat="-7.7720" lon="110.3785"><tag k="name" v="Student Canteen"/></node>
  <node id="5" lat="-7.7730" lon="110.3790"><tag k="name" v="Main Gate"/></node>
  <node id="6" lat="-7.7800" lon="110.3800"><tag k="name" v="Campus Chapel"/></node>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="11">
    <nd ref="3"/><nd ref="4"/>
    <tag k="highway" v="path"/>
  </way>
  <way id="12">
    <nd ref="1"/><nd ref="4"/>
    <tag k="highway" v="motorway"/>
  </way>
  <way id="13">
    <nd ref="1"/><nd ref="4"/>
    <tag k="highway" v="service"/>
    <tag k="access" v="private"/>
  </way>
  <way id="14">
    <nd ref="1"/><nd ref="3"/>
    <tag k="highway" v="pedestrian"/>
  </way>
  <way id="15">
    <nd ref="4"/><nd ref="99"/><nd ref="5"/>
    <tag k="highway" v="footway"/>
  </way>
</osm>`

func TestParseCampusOsm(t *testing.T) {
	p := NewOSMParser(zap.NewNop())
	g, err := p.ParseReader(context.Background(), strings.NewReader(campusOsm), OSM_XML)
	require.NoError(t, err)

	names := make([]string, 0)
	for _, loc := range g.Locations() {
		names = append(names, loc.Name)
	}
	assert.Equal(t, []string{"Main Gate", "Central Library", "Student Canteen", "Campus Chapel"}, names)

	coord, ok := g.GetCoordinate("Main Gate")
	require.True(t, ok)
	assert.Equal(t, geo.NewCoordinate(-7.7700, 110.3770), coord)

	direct := util.RoundFloat(geo.CalculateHaversineDistance(-7.7700, 110.3770, -7.7710, 110.3775), 3)
	w, ok := g.GetWeight("Main Gate", "Central Library")
	require.True(t, ok)
	assert.InDelta(t, direct, w, 1e-9)

	back, ok := g.GetWeight("Central Library", "Main Gate")
	require.True(t, ok)
	assert.Equal(t, w, back)

	_, ok = g.GetWeight("Central Library", "Student Canteen")
	assert.True(t, ok)

	testCases := []struct {
		name     string
		from, to string
	}{
		{name: "motorway and private ways are not walkable", from: "Main Gate", to: "Student Canteen"},
		{name: "way broken by missing node", from: "Student Canteen", to: "Campus Chapel"},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := g.GetWeight(tt.from, tt.to)
			assert.False(t, ok)
		})
	}

	assert.Equal(t, 2, g.NumberOfEdges())
	assert.Equal(t, 2, g.NumberOfComponents())
	assert.False(t, g.SameComponent("Main Gate", "Campus Chapel"))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, OSM_PBF, FormatFromPath("campus.osm.pbf"))
	assert.Equal(t, OSM_XML, FormatFromPath("campus.osm"))
}

func TestParseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewOSMParser(zap.NewNop())
	_, err := p.ParseReader(ctx, strings.NewReader(campusOsm), OSM_XML)
	assert.Error(t, err)
}
