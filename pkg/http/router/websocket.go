package router

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/gobwas/ws"
	"github.com/lintang-b-s/campusnav/pkg/concurrent"
	"github.com/lintang-b-s/campusnav/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/campusnav/pkg/http/server"
	"github.com/mailru/easygo/netpoll"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

/*
handleWebsocket. live navigation websocket server.

connections are accepted and read through netpoll (epoll) so idle users do not hold a goroutine,
ref: https://sergey.kamardin.org/articles/million-websocket-and-go/
every accept and every request runs on the bounded goroutine pool.
*/
func (api *API) handleWebsocket(ctx context.Context, config http_server.Config,
	routingService controllers.RoutingService, errChan chan error,
) {
	viper.SetDefault("WEBSOCKET_POOL_SIZE", 64)
	viper.SetDefault("WEBSOCKET_POOL_QUEUE", 32)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", config.WebsocketPort))
	if err != nil {
		errChan <- err
		return
	}
	api.log.Info(fmt.Sprintf("live navigation websocket API run on port %d", config.WebsocketPort))

	acceptDesc, err := netpoll.HandleListener(ln, netpoll.EventRead|netpoll.EventOneShot)
	if err != nil {
		ln.Close()
		errChan <- err
		return
	}

	api.poller, err = netpoll.New(nil)
	if err != nil {
		ln.Close()
		errChan <- err
		return
	}

	api.pool = concurrent.NewWorkerPool[int, int](viper.GetInt("WEBSOCKET_POOL_SIZE"), viper.GetInt("WEBSOCKET_POOL_QUEUE"))

	api.hub = controllers.NewHub(api.pool, routingService, api.log)

	api.pool.Spawn(viper.GetInt("WEBSOCKET_POOL_SIZE") / 2)
	// accept is a channel to signal about next incoming connection Accept() results.
	accept := make(chan error, 1)

	api.poller.Start(acceptDesc, func(ev netpoll.Event) {
		// the listener is registered one shot, resume it once this accept is handled
		defer api.poller.Resume(acceptDesc)
		err := api.pool.ScheduleTimeout(time.Millisecond, func() {
			conn, err := ln.Accept()
			if err != nil {
				accept <- err
				return
			}

			accept <- nil
			api.handle(conn)
		})
		if err == nil {
			err = <-accept
		}
		if err == nil {
			return
		}

		var ne net.Error
		switch {
		case errors.Is(err, concurrent.ErrScheduleTimeout):
			// pool is saturated, cooldown before the next accept
			fallthrough
		case errors.As(err, &ne) && ne.Timeout():
			delay := 5 * time.Millisecond
			api.log.Sugar().Infof("accept error: %v; retrying in %s", err, delay)
			time.Sleep(delay)
		case errors.Is(err, concurrent.ErrPoolClosed), errors.Is(err, net.ErrClosed):
		default:
			api.log.Error("accept error", zap.Error(err))
		}
	})

	<-ctx.Done()

	api.poller.Stop(acceptDesc)
	ln.Close()

	api.hub.RemoveAllUser()

	api.pool.Close()

	api.log.Info("websocket server stopped")
}

// handle. upgrade conn to websocket and serve its navigation requests whenever netpoll reports it readable.
func (api *API) handle(conn net.Conn) {
	br := bufio.NewReader(conn)

	rw := struct {
		io.Reader
		io.Writer
	}{br, conn}

	hs, err := ws.Upgrade(rw)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("connection", nameConn(conn)))
		conn.Close()
		return
	}

	api.log.Info("established websocket connection", zap.String("connection", nameConn(conn)),
		zap.String("protocol", hs.Protocol))

	user := api.hub.Register(conn)

	desc, err := netpoll.HandleRead(conn)
	if err != nil {
		api.log.Error("could not watch websocket connection", zap.Error(err))
		api.hub.Remove(user)
		return
	}

	api.poller.Start(desc, func(ev netpoll.Event) {
		if ev&(netpoll.EventReadHup|netpoll.EventHup) != 0 {
			// peer closed its end of the connection
			api.log.Info("user disconnected from websocket server", zap.Uint("user", user.GetID()))

			api.poller.Stop(desc)
			api.hub.Remove(user)
			return
		}

		err := api.pool.Schedule(func() {
			if err := user.Navigate(); err != nil {
				api.log.Info("live navigation connection closed", zap.Uint("user", user.GetID()), zap.Error(err))
				api.poller.Stop(desc)
				api.hub.Remove(user)
			}
		})
		if err != nil {
			api.poller.Stop(desc)
			api.hub.Remove(user)
		}
	})
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
