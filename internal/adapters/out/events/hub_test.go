package events_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant/internal/adapters/out/events"
	"restaurant/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastsToEveryClient(t *testing.T) {
	hub := events.NewHub(nil)
	server := httptest.NewServer(hub)
	defer server.Close()
	defer hub.Close()

	first := dial(t, server)
	second := dial(t, server)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	at := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	hub.Publish(context.Background(), ports.Event{
		Type:       ports.EventTableUpdated,
		Data:       map[string]string{"tableNumber": "T1", "status": "occupied"},
		OccurredAt: at,
	})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var got struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, "table_updated", got.Type)
		assert.Equal(t, "occupied", got.Data["status"])
	}
}

func TestHub_ForgetsDisconnectedClients(t *testing.T) {
	hub := events.NewHub(nil)
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dial(t, server)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub := events.NewHub(nil)

	assert.NotPanics(t, func() {
		hub.Publish(context.Background(), ports.Event{Type: ports.EventOrderCreated})
	})
}

func TestHub_UnencodableEventIsDropped(t *testing.T) {
	hub := events.NewHub(nil)

	assert.NotPanics(t, func() {
		hub.Publish(context.Background(), ports.Event{Type: ports.EventOrderCreated, Data: make(chan int)})
	})
}
