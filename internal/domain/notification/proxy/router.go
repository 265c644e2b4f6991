package proxy

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/bigex/backend/pkg/pubsub"
	"github.com/bigex/backend/pkg/xcontext"
)

// Router receives events from the bus and fans them out to the hub of
// the recipient user.
type Router struct {
	hubs map[string]*UserHub

	mutex sync.RWMutex
}

func NewRouter(ctx context.Context) *Router {
	router := &Router{
		hubs:  make(map[string]*UserHub),
		mutex: sync.RWMutex{},
	}

	go router.runCleanup(ctx)
	return router
}

func (r *Router) GetHub(userID string) *UserHub {
	r.mutex.RLock()
	hub, ok := r.hubs[userID]
	r.mutex.RUnlock()
	if ok {
		return hub
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.hubs[userID]; !ok {
		r.hubs[userID] = NewUserHub(userID)
	}

	return r.hubs[userID]
}

// Route is the bus subscribe handler.
func (r *Router) Route(ctx context.Context, pack *pubsub.Pack, t time.Time) {
	var ev event.EventRequest
	if err := json.Unmarshal(pack.Msg, &ev); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot unmarshal event: %v", err)
		return
	}

	r.mutex.RLock()
	hub, ok := r.hubs[ev.Metadata.To]
	r.mutex.RUnlock()

	if ok {
		hub.Send(&ev)
	}
}

func (r *Router) runCleanup(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}

		emptyHubs := []string{}
		r.mutex.RLock()
		for _, h := range r.hubs {
			if h.IsEmpty() {
				emptyHubs = append(emptyHubs, h.userID)
			}
		}
		r.mutex.RUnlock()

		if len(emptyHubs) == 0 {
			continue
		}

		r.mutex.Lock()
		for _, userID := range emptyHubs {
			if hub, ok := r.hubs[userID]; ok && hub.IsEmpty() {
				delete(r.hubs, userID)
			}
		}
		r.mutex.Unlock()
	}
}
