package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/campusnav/pkg/concurrent"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"go.uber.org/zap"
)

var errMalformedRequest = errors.New("malformed navigation request")

// User. websocket client doing live navigation.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) GetID() uint {
	return u.id
}

func (u *User) readRequest() (*navigationRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	req := &navigationRequest{}
	decoder := json.NewDecoder(r)
	decodeErr := decoder.Decode(req)
	// drop the rest of the frame so the next read starts at a frame header
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedRequest, decodeErr)
	}
	return req, nil
}

/*
Navigate. read one position report {lat, lon, destination} and answer with the remaining route.
invalid requests and routing errors are answered with an error message, the connection stays open.
*/
func (u *User) Navigate() error {
	req, err := u.readRequest()
	if errors.Is(err, errMalformedRequest) {
		return u.writeError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		u.conn.Close()
		return err
	}

	if req == nil {
		return nil
	}

	if err := validateRequest(req); err != nil {
		return u.writeError(http.StatusBadRequest, err.Error())
	}

	update, err := u.hub.routingService.Navigate(req.Lat, req.Lon, req.Destination)
	if err != nil {
		var ierr *util.Error
		status := http.StatusInternalServerError
		msg := util.MessageInternalServerError
		if errors.As(err, &ierr) {
			switch ierr.Code() {
			case util.ErrNotFound:
				status, msg = http.StatusNotFound, ierr.Error()
			case util.ErrBadParamInput:
				status, msg = http.StatusBadRequest, ierr.Error()
			}
		}
		if status == http.StatusInternalServerError {
			u.hub.log.Error("live navigation error", zap.Error(err))
		}
		return u.writeError(status, msg)
	}

	return u.write(envelope{"data": NewNavigationResponse(update)})
}

func (u *User) writeError(status int, message string) error {
	return u.write(envelope{"error": map[string]string{
		"code":    http.StatusText(status),
		"message": message,
	}})
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

// Hub. registry of connected live navigation users.
type Hub struct {
	mu             sync.RWMutex
	seq            uint
	us             []*User
	ns             map[uint]*User
	routingService RoutingService
	log            *zap.Logger

	pool *concurrent.WorkerPool[int, int]
}

func NewHub(pool *concurrent.WorkerPool[int, int], routingService RoutingService, log *zap.Logger) *Hub {
	hub := &Hub{
		pool:           pool,
		ns:             make(map[uint]*User),
		us:             make([]*User, 0),
		routingService: routingService,
		log:            log,
	}

	return hub
}

func (h *Hub) Register(conn net.Conn) *User {
	return h.register(conn)
}

func (h *Hub) register(conn io.ReadWriteCloser) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

// Remove. close the user connection and forget the user. removing an unknown user is a no-op.
func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(user)
}

// remove. caller must hold h.mu.
func (h *Hub) remove(user *User) {
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	// us is sorted by id
	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs

	user.conn.Close()
}

func (h *Hub) RemoveAllUser() {
	h.mu.Lock()
	defer h.mu.Unlock()
	users := append([]*User(nil), h.us...)
	for _, user := range users {
		h.remove(user)
	}
}

func (h *Hub) NumberOfUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}
