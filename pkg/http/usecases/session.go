package usecases

import (
	"errors"
	"strings"

	"github.com/lintang-b-s/campusnav/pkg/session"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
)

type SessionService struct {
	log   *zap.Logger
	store SessionStore
}

func NewSessionService(log *zap.Logger, store SessionStore) *SessionService {
	return &SessionService{log: log, store: store}
}

func wrapSessionError(err error, id, location string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrSessionNotFound):
		return util.WrapErrorf(err, util.ErrNotFound, "session %q not found", id)
	case errors.Is(err, session.ErrUnknownLocation):
		return util.WrapErrorf(err, util.ErrNotFound, "location %q not found", location)
	case errors.Is(err, session.ErrFavoriteNotFound):
		return util.WrapErrorf(err, util.ErrNotFound, "location %q is not a favorite", location)
	default:
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
}

func (ss *SessionService) CreateSession() string {
	id := ss.store.Create()
	ss.log.Debug("session created", zap.String("sessionID", id))
	return id
}

func (ss *SessionService) DeleteSession(id string) error {
	return wrapSessionError(ss.store.Delete(id), id, "")
}

func (ss *SessionService) AddFavorite(id, location string) ([]string, error) {
	location = strings.TrimSpace(location)
	if err := ss.store.AddFavorite(id, location); err != nil {
		return nil, wrapSessionError(err, id, location)
	}
	return ss.Favorites(id)
}

func (ss *SessionService) RemoveFavorite(id, location string) ([]string, error) {
	location = strings.TrimSpace(location)
	if err := ss.store.RemoveFavorite(id, location); err != nil {
		return nil, wrapSessionError(err, id, location)
	}
	return ss.Favorites(id)
}

func (ss *SessionService) Favorites(id string) ([]string, error) {
	favs, err := ss.store.Favorites(id)
	return favs, wrapSessionError(err, id, "")
}

func (ss *SessionService) RecentRoutes(id string) ([]session.RecentRoute, error) {
	recent, err := ss.store.RecentRoutes(id)
	return recent, wrapSessionError(err, id, "")
}

// RecordRoute. remember a route query for the session. failures are logged, a route query never fails because of them.
func (ss *SessionService) RecordRoute(id, origin, destination string, route Route, found bool) {
	err := ss.store.RecordRoute(id, session.RecentRoute{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  route.DistanceKm,
		TimeMinutes: route.TimeMinutes,
		Found:       found,
	})
	if err != nil {
		ss.log.Warn("could not record recent route", zap.String("sessionID", id), zap.Error(err))
	}
}
