package proxy

import (
	"testing"
	"time"

	"github.com/bigex/backend/internal/domain/notification/event"
	"github.com/stretchr/testify/require"
)

func Test_UserHub_Send(t *testing.T) {
	hub := NewUserHub("user1")

	session := NewUserSession("user1")
	session.JoinUser(hub)
	require.Equal(t, 1, hub.Size())

	hub.Send(&event.EventRequest{Op: "message_created"})
	ev := <-session.C
	require.Equal(t, "message_created", ev.Op)

	session.Leave()
	require.True(t, hub.IsEmpty())
}

func Test_UserHub_Send_SlowConsumer(t *testing.T) {
	hub := NewUserHub("user1")

	fast := NewUserSession("user1")
	fast.JoinUser(hub)
	slow := NewUserSession("user1")
	slow.JoinUser(hub)

	// Saturate the slow session's buffer.
	for i := 0; i < cap(slow.C); i++ {
		slow.C <- &event.EventRequest{Op: "change_status"}
	}

	done := make(chan struct{})
	go func() {
		hub.Send(&event.EventRequest{Op: "message_created"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "send blocked on a full session buffer")
	}

	// The event still reached the healthy session.
	ev := <-fast.C
	require.Equal(t, "message_created", ev.Op)
	require.Len(t, slow.C, cap(slow.C))
}
