package controllers

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/campusnav/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/campusnav/pkg/http/usecases"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
)

const sessionIDHeader = "X-Session-ID"

type routingAPI struct {
	baseAPI
	routingService RoutingService
	sessionService SessionService
}

func New(routingService RoutingService, sessionService SessionService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		baseAPI:        baseAPI{log: log},
		routingService: routingService,
		sessionService: sessionService,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.GET("/computeRoutesByCoordinates", api.shortestPathByCoordinates)
	group.GET("/locations", api.locations)
	group.GET("/nearestLocation", api.nearestLocation)
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	v, err := util.StringToFloat64(r.URL.Query().Get(name))
	if err != nil {
		return 0, errors.New(name + " is required and must be a valid float")
	}
	return v, nil
}

// shortestPath
//
//	@Summary		shortest walking route between two campus locations
//	@Tags			routing
//	@Param			origin		query	string	true	"origin location name"
//	@Param			destination	query	string	true	"destination location name"
//	@Produce		application/json
//	@Router			/computeRoutes [get]
//	@Success		200	{object}	shortestPathResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := shortestPathRequest{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ShortestPath(request.Origin, request.Destination)
	api.recordRoute(r, request.Origin, request.Destination, route, err)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// recordRoute. remember the query in the recent routes of the caller session, if any.
func (api *routingAPI) recordRoute(r *http.Request, origin, destination string, route usecases.Route, err error) {
	sessionID := r.Header.Get(sessionIDHeader)
	if sessionID == "" || api.sessionService == nil {
		return
	}
	if err != nil && !errors.Is(err, usecases.ErrRouteNotFound) {
		return
	}
	api.sessionService.RecordRoute(sessionID, origin, destination, route, err == nil)
}

func (api *routingAPI) shortestPathByCoordinates(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request coordinateRouteRequest
		err     error
	)

	if request.OriginLat, err = parseFloatParam(r, "origin_lat"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.OriginLon, err = parseFloatParam(r, "origin_lon"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.DestinationLat, err = parseFloatParam(r, "destination_lat"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.DestinationLon, err = parseFloatParam(r, "destination_lon"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ShortestPathByCoordinates(request.OriginLat, request.OriginLon,
		request.DestinationLat, request.DestinationLon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	if len(route.Path) > 0 {
		api.recordRoute(r, route.Path[0], route.Path[len(route.Path)-1], route, nil)
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) locations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	infos := api.routingService.SearchLocations(r.URL.Query().Get("q"))

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewLocationsResponse(infos)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestLocation(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestLocationRequest
		err     error
	)
	if request.Lat, err = parseFloatParam(r, "lat"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if request.Lon, err = parseFloatParam(r, "lon"); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	info, dist, err := api.routingService.NearestLocation(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	resp := nearestLocationResponse{Location: NewLocationResponse(info), DistanceKm: dist}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
