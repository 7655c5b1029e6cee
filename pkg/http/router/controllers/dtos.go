package controllers

import (
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/guidance"
	"github.com/lintang-b-s/campusnav/pkg/http/usecases"
	"github.com/lintang-b-s/campusnav/pkg/session"
)

type shortestPathRequest struct {
	Origin      string `json:"origin" validate:"required,max=200"`
	Destination string `json:"destination" validate:"required,max=200"`
}

type coordinateRouteRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
}

type nearestLocationRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type favoriteRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
	Location  string `json:"location" validate:"required,max=200"`
}

type sessionRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

type navigationRequest struct {
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
	Destination string  `json:"destination" validate:"required,max=200"`
}

type routeStepResponse struct {
	Instruction     string  `json:"instruction"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Distance        string  `json:"distance"`
	Duration        string  `json:"duration"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	TurnType        string  `json:"turn_type"`
}

func NewRouteSteps(steps []guidance.Step) []routeStepResponse {
	resp := make([]routeStepResponse, 0, len(steps))
	for _, s := range steps {
		resp = append(resp, routeStepResponse{
			Instruction:     s.GetInstruction(),
			From:            s.GetFrom(),
			To:              s.GetTo(),
			Distance:        s.GetFormattedDistance(),
			Duration:        s.GetFormattedDuration(),
			DistanceKm:      s.GetDistanceKm(),
			DurationMinutes: s.GetDurationMinutes(),
			TurnType:        s.GetTurnType().String(),
		})
	}
	return resp
}

type shortestPathResponse struct {
	Path        []string            `json:"path"`
	DistanceKm  float64             `json:"distance_km"`
	TimeMinutes int                 `json:"time_minutes"`
	Polyline    string              `json:"polyline"`
	Steps       []routeStepResponse `json:"steps"`
}

func NewShortestPathResponse(route usecases.Route) shortestPathResponse {
	return shortestPathResponse{
		Path:        route.Path,
		DistanceKm:  route.DistanceKm,
		TimeMinutes: route.TimeMinutes,
		Polyline:    route.Polyline,
		Steps:       NewRouteSteps(route.Steps),
	}
}

type locationResponse struct {
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Coordinate *geo.Coordinate `json:"coordinate,omitempty"`
}

func NewLocationResponse(info usecases.LocationInfo) locationResponse {
	return locationResponse{
		Name:       info.Name,
		Category:   info.Category.String(),
		Coordinate: info.Coordinate,
	}
}

func NewLocationsResponse(infos []usecases.LocationInfo) []locationResponse {
	resp := make([]locationResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, NewLocationResponse(info))
	}
	return resp
}

type nearestLocationResponse struct {
	Location   locationResponse `json:"location"`
	DistanceKm float64          `json:"distance_km"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type favoritesResponse struct {
	SessionID string   `json:"session_id"`
	Favorites []string `json:"favorites"`
}

type recentRoutesResponse struct {
	SessionID    string                `json:"session_id"`
	RecentRoutes []session.RecentRoute `json:"recent_routes"`
}

type navigationResponse struct {
	CurrentLocation      string               `json:"current_location"`
	DistanceToLocationKm float64              `json:"distance_to_location_km"`
	OffRouteKm           float64              `json:"off_route_km"`
	Arrived              bool                 `json:"arrived"`
	Route                shortestPathResponse `json:"route"`
}

func NewNavigationResponse(update usecases.NavigationUpdate) navigationResponse {
	return navigationResponse{
		CurrentLocation:      update.CurrentLocation,
		DistanceToLocationKm: update.DistanceToLocationKm,
		OffRouteKm:           update.OffRouteKm,
		Arrived:              update.Arrived,
		Route:                NewShortestPathResponse(update.Route),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
