package proxy

import (
	"sync"

	"github.com/bigex/backend/internal/domain/notification/event"
)

type UserHub struct {
	userID       string
	userSessions map[string]*UserSession

	mutex sync.RWMutex
}

func NewUserHub(userID string) *UserHub {
	return &UserHub{
		userID:       userID,
		userSessions: make(map[string]*UserSession),
		mutex:        sync.RWMutex{},
	}
}

func (h *UserHub) Send(event *event.EventRequest) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for _, s := range h.userSessions {
		// Never block the fan-out on one slow consumer. A session whose
		// buffer is full drops the event.
		select {
		case s.C <- event:
		default:
		}
	}
}

func (h *UserHub) register(session *UserSession) {
	h.mutex.RLock()
	_, ok := h.userSessions[session.id]
	h.mutex.RUnlock()
	if ok {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	// Double check.
	if _, ok := h.userSessions[session.id]; !ok {
		h.userSessions[session.id] = session
	}
}

func (h *UserHub) unregister(session *UserSession) {
	h.mutex.RLock()
	_, ok := h.userSessions[session.id]
	h.mutex.RUnlock()
	if !ok {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.userSessions, session.id)
}

func (h *UserHub) IsEmpty() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.userSessions) == 0
}

func (h *UserHub) Size() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.userSessions)
}
