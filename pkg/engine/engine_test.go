package engine

import (
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEngine(t *testing.T) {
	g, err := datastructure.NewCampusGraph(
		[]datastructure.Location{
			datastructure.NewLocation("Main Gate", -7.77, 110.377),
			datastructure.NewLocation("Library", -7.771, 110.3775),
		},
		[]datastructure.Edge{datastructure.NewEdge("Main Gate", "Library", 0.4)},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "campus.json.bz2")
	require.NoError(t, g.WriteCampusGraph(path))

	e, err := NewEngine(path, Config{EtaWalkingSpeed: 0, StepWalkingSpeed: 6, Frontier: routing.HeapFrontier}, zap.NewNop())
	require.NoError(t, err)

	re := e.GetRoutingEngine()
	assert.Equal(t, pkg.DEFAULT_ETA_WALKING_SPEED_KMH, re.GetEtaWalkingSpeed())
	assert.Equal(t, 6.0, re.GetStepWalkingSpeed())

	res := re.ShortestPath("Main Gate", "Library")
	assert.Equal(t, []string{"Main Gate", "Library"}, res.GetPath())
	assert.Equal(t, 6, res.GetEtaMinutes())

	_, err = NewEngine(filepath.Join(t.TempDir(), "missing.json"), DefaultConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestSampleCampusData(t *testing.T) {
	e, err := NewEngine(filepath.Join("..", "..", "data", "campus.json"), DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	re := e.GetRoutingEngine()
	g := re.GetGraph()
	assert.Equal(t, 13, g.NumberOfLocations())
	assert.Equal(t, 1, g.NumberOfComponents())

	there := re.ShortestPath("Main Gate", "Girls Hostel")
	back := re.ShortestPath("Girls Hostel", "Main Gate")
	require.True(t, there.IsFound())
	assert.InDelta(t, there.GetDistance(), back.GetDistance(), 1e-9)
	assert.Equal(t, "Main Gate", there.GetPath()[0])
	assert.Equal(t, "Girls Hostel", there.GetPath()[len(there.GetPath())-1])
}
