package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/campusnav/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type sessionAPI struct {
	baseAPI
	sessionService SessionService
}

func NewSessionAPI(sessionService SessionService, log *zap.Logger) *sessionAPI {
	return &sessionAPI{
		baseAPI:        baseAPI{log: log},
		sessionService: sessionService,
	}
}

func (api *sessionAPI) Routes(group *helper.RouteGroup) {
	sessions := group.Group("/sessions")
	sessions.POST("", api.createSession)
	sessions.DELETE("/:id", api.deleteSession)
	sessions.GET("/:id/favorites", api.favorites)
	sessions.PUT("/:id/favorites/:name", api.addFavorite)
	sessions.DELETE("/:id/favorites/:name", api.removeFavorite)
	sessions.GET("/:id/recentRoutes", api.recentRoutes)
}

func (api *sessionAPI) createSession(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id := api.sessionService.CreateSession()

	headers := make(http.Header)
	headers.Set("Location", "/api/sessions/"+id)
	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": sessionResponse{SessionID: id}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *sessionAPI) deleteSession(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := sessionRequest{SessionID: p.ByName("id")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.sessionService.DeleteSession(request.SessionID); err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (api *sessionAPI) favorites(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := sessionRequest{SessionID: p.ByName("id")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	favs, err := api.sessionService.Favorites(request.SessionID)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	api.writeFavorites(w, r, request.SessionID, favs)
}

func (api *sessionAPI) addFavorite(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := favoriteRequest{SessionID: p.ByName("id"), Location: p.ByName("name")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	favs, err := api.sessionService.AddFavorite(request.SessionID, request.Location)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	api.writeFavorites(w, r, request.SessionID, favs)
}

func (api *sessionAPI) removeFavorite(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := favoriteRequest{SessionID: p.ByName("id"), Location: p.ByName("name")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	favs, err := api.sessionService.RemoveFavorite(request.SessionID, request.Location)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	api.writeFavorites(w, r, request.SessionID, favs)
}

func (api *sessionAPI) writeFavorites(w http.ResponseWriter, r *http.Request, id string, favs []string) {
	resp := favoritesResponse{SessionID: id, Favorites: favs}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *sessionAPI) recentRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := sessionRequest{SessionID: p.ByName("id")}
	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	recent, err := api.sessionService.RecentRoutes(request.SessionID)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	resp := recentRoutesResponse{SessionID: request.SessionID, RecentRoutes: recent}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
