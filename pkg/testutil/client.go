package testutil

import (
	"context"

	"github.com/bigex/backend/internal/domain/notification/event"
)

// MockEventEmitter records every emitted event so tests can assert on
// them.
type MockEventEmitter struct {
	EmitFunc func(context.Context, *event.EventRequest) error
	Events   []*event.EventRequest
}

func (m *MockEventEmitter) Emit(ctx context.Context, ev *event.EventRequest) error {
	m.Events = append(m.Events, ev)
	if m.EmitFunc != nil {
		return m.EmitFunc(ctx, ev)
	}

	return nil
}

type pushedMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// MockPusher records pushed notifications instead of talking to FCM.
type MockPusher struct {
	PushFunc func(ctx context.Context, token, title, body string, data map[string]string) error
	Pushed   []pushedMessage
}

func (m *MockPusher) Push(ctx context.Context, token, title, body string, data map[string]string) error {
	m.Pushed = append(m.Pushed, pushedMessage{Token: token, Title: title, Body: body, Data: data})
	if m.PushFunc != nil {
		return m.PushFunc(ctx, token, title, body, data)
	}

	return nil
}
