package usecases

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/session"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCampus(t *testing.T) *datastructure.CampusGraph {
	t.Helper()
	g, err := datastructure.NewCampusGraph(
		[]datastructure.Location{
			datastructure.NewLocation("Main Gate", -7.7700, 110.3770),
			datastructure.NewLocation("Central Library", -7.7710, 110.3775),
			datastructure.NewLocation("Engineering Faculty", -7.7720, 110.3780),
			datastructure.NewLocation("Student Canteen", -7.7715, 110.3790),
			datastructure.NewLocation("Campus Chapel", -7.7800, 110.3900),
		},
		[]datastructure.Edge{
			datastructure.NewEdge("Main Gate", "Central Library", 0.2),
			datastructure.NewEdge("Central Library", "Engineering Faculty", 0.15),
			datastructure.NewEdge("Engineering Faculty", "Student Canteen", 0.12),
			datastructure.NewEdge("Central Library", "Student Canteen", 0.3),
		},
	)
	require.NoError(t, err)
	return g
}

func newTestRoutingService(t *testing.T) *RoutingService {
	t.Helper()
	g := newTestCampus(t)
	log := zap.NewNop()
	e := engine.NewEngineDirect(g, engine.DefaultConfig(), log)
	rt := spatialindex.NewRtree()
	rt.Build(g, pkg.DEFAULT_LEAF_BBOX_RADIUS_KM, log)
	return NewRoutingService(log, e.GetRoutingEngine(), rt, 0.3)
}

func errorCode(err error) error {
	var ierr *util.Error
	if errors.As(err, &ierr) {
		return ierr.Code()
	}
	return nil
}

func TestShortestPath(t *testing.T) {
	rs := newTestRoutingService(t)

	route, err := rs.ShortestPath("Main Gate", "Student Canteen")
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Gate", "Central Library", "Engineering Faculty", "Student Canteen"}, route.Path)
	assert.InDelta(t, 0.47, route.DistanceKm, 1e-9)
	assert.Equal(t, 7, route.TimeMinutes)
	assert.NotEmpty(t, route.Polyline)

	require.Len(t, route.Steps, 3)
	wantMinutes := []int{3, 2, 2}
	for i, step := range route.Steps {
		assert.Equal(t, route.Path[i], step.GetFrom())
		assert.Equal(t, route.Path[i+1], step.GetTo())
		assert.Equal(t, wantMinutes[i], step.GetDurationMinutes())
	}
	assert.Equal(t, "0.2 km", route.Steps[0].GetFormattedDistance())
	assert.Equal(t, pkg.START, route.Steps[0].GetTurnType())

	same, err := rs.ShortestPath(" Main Gate ", "Main Gate")
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Gate"}, same.Path)
	assert.Equal(t, 0.0, same.DistanceKm)
	assert.Empty(t, same.Steps)
}

func TestShortestPathErrors(t *testing.T) {
	rs := newTestRoutingService(t)

	testCases := []struct {
		name        string
		origin      string
		destination string
		wantErr     error
		wantCode    error
	}{
		{name: "unknown origin", origin: "Moon Base", destination: "Main Gate",
			wantErr: ErrLocationNotFound, wantCode: util.ErrNotFound},
		{name: "unknown destination", origin: "Main Gate", destination: "Moon Base",
			wantErr: ErrLocationNotFound, wantCode: util.ErrNotFound},
		{name: "unreachable", origin: "Main Gate", destination: "Campus Chapel",
			wantErr: ErrRouteNotFound, wantCode: util.ErrNotFound},
		{name: "empty origin", origin: "  ", destination: "Main Gate",
			wantErr: ErrEmptyLocationName, wantCode: util.ErrBadParamInput},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rs.ShortestPath(tt.origin, tt.destination)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, errorCode(err))
		})
	}
}

func TestShortestPathByCoordinates(t *testing.T) {
	rs := newTestRoutingService(t)

	route, err := rs.ShortestPathByCoordinates(-7.77001, 110.37701, -7.77151, 110.37899)
	require.NoError(t, err)
	assert.Equal(t, "Main Gate", route.Path[0])
	assert.Equal(t, "Student Canteen", route.Path[len(route.Path)-1])

	_, err = rs.ShortestPathByCoordinates(-7.9, 110.5, -7.77151, 110.37899)
	assert.ErrorIs(t, err, ErrNoNearbyLocation)
}

func TestSearchAndNearestLocation(t *testing.T) {
	rs := newTestRoutingService(t)

	infos := rs.SearchLocations("lib")
	require.Len(t, infos, 1)
	assert.Equal(t, "Central Library", infos[0].Name)
	assert.Equal(t, pkg.LIBRARY, infos[0].Category)
	require.NotNil(t, infos[0].Coordinate)

	assert.Len(t, rs.SearchLocations(""), 5)

	info, dist, err := rs.NearestLocation(-7.7721, 110.3781)
	require.NoError(t, err)
	assert.Equal(t, "Engineering Faculty", info.Name)
	assert.Less(t, dist, 0.05)
}

func TestNavigate(t *testing.T) {
	rs := newTestRoutingService(t)

	update, err := rs.Navigate(-7.77102, 110.37752, "Student Canteen")
	require.NoError(t, err)
	assert.Equal(t, "Central Library", update.CurrentLocation)
	assert.False(t, update.Arrived)
	assert.Equal(t, []string{"Central Library", "Engineering Faculty", "Student Canteen"}, update.Route.Path)
	assert.Less(t, update.OffRouteKm, 0.01)

	arrived, err := rs.Navigate(-7.77151, 110.37901, "Student Canteen")
	require.NoError(t, err)
	assert.True(t, arrived.Arrived)
	assert.Equal(t, []string{"Student Canteen"}, arrived.Route.Path)

	_, err = rs.Navigate(-7.77102, 110.37752, "Campus Chapel")
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestSessionService(t *testing.T) {
	g := newTestCampus(t)
	ss := NewSessionService(zap.NewNop(), session.NewStore(g, zap.NewNop()))

	id := ss.CreateSession()
	favs, err := ss.AddFavorite(id, "Central Library")
	require.NoError(t, err)
	assert.Equal(t, []string{"Central Library"}, favs)

	_, err = ss.AddFavorite(id, "Moon Base")
	assert.Equal(t, util.ErrNotFound, errorCode(err))

	_, err = ss.Favorites("missing")
	assert.Equal(t, util.ErrNotFound, errorCode(err))

	ss.RecordRoute(id, "Main Gate", "Central Library", Route{DistanceKm: 0.2, TimeMinutes: 3}, true)
	recent, err := ss.RecentRoutes(id)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Central Library", recent[0].Destination)

	require.NoError(t, ss.DeleteSession(id))
	assert.Equal(t, util.ErrNotFound, errorCode(ss.DeleteSession(id)))
}
