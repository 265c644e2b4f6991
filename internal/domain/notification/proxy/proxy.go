package proxy

import (
	"context"
	"encoding/json"

	"github.com/bigex/backend/internal/domain"
	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/xcontext"
)

type directive struct {
	Op string `json:"o"`
}

const pingDirectiveOp = "ping"

type ProxyServer struct {
	router         *Router
	presenceDomain domain.PresenceDomain
}

func NewProxyServer(ctx context.Context, presenceDomain domain.PresenceDomain) *ProxyServer {
	return &ProxyServer{
		router:         NewRouter(ctx),
		presenceDomain: presenceDomain,
	}
}

// Router exposes the fan-out router so the bus subscriber can feed
// received events into the user hubs.
func (server *ProxyServer) Router() *Router {
	return server.router
}

// ServeProxy streams events to one websocket client. The first open
// socket of a user marks them online, the last closed one marks them
// offline.
func (server *ProxyServer) ServeProxy(ctx context.Context, req *model.ServeNotificationProxyRequest) error {
	userID := xcontext.RequestUserID(ctx)

	hub := server.router.GetHub(userID)
	session := NewUserSession(userID)
	session.JoinUser(hub)

	if hub.Size() == 1 {
		if _, err := server.presenceDomain.Online(ctx, &model.OnlineRequest{}); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot mark user online: %v", err)
		}
	}

	defer func() {
		session.Leave()
		if hub.IsEmpty() {
			if _, err := server.presenceDomain.Offline(ctx, &model.OfflineRequest{}); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot mark user offline: %v", err)
			}
		}
	}()

	wsClient := xcontext.WSClient(ctx)
	var seq int64
	for {
		select {
		case ev, ok := <-session.C:
			if !ok {
				return errorx.New(errorx.Unavailable, "Session is closed")
			}

			evResp := event.Format(ev, seq)
			seq++

			b, err := json.Marshal(evResp)
			if err != nil {
				xcontext.Logger(ctx).Warnf("Cannot marshal resp: %v", err)
				continue
			}

			if err := wsClient.Write(b); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot send resp to client: %v", err)
				return errorx.Unknown
			}

		case msg, ok := <-wsClient.R:
			if !ok {
				return nil
			}

			var d directive
			if err := json.Unmarshal(msg, &d); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot unmarshal directive: %v", err)
				return errorx.New(errorx.BadRequest, "Invalid directive")
			}

			switch d.Op {
			case pingDirectiveOp:
				_, err := server.presenceDomain.Heartbeat(ctx, &model.HeartbeatRequest{})
				if err != nil {
					xcontext.Logger(ctx).Warnf("Cannot handle heartbeat: %v", err)
				}
			}
		}
	}
}
