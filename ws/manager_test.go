package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, manager *Manager) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(manager)

	// Stands in for the auth middleware: the user id comes from a header.
	router.GET("/ws/notifications", func(c *gin.Context) {
		c.Set("userID", c.GetHeader("X-Test-User"))
		handler.ServeWS(c)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, userID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/notifications"
	header := http.Header{"X-Test-User": []string{userID}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, manager *Manager, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for manager.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", want, manager.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var envelope Envelope
	require.NoError(t, conn.ReadJSON(&envelope))
	return envelope
}

func TestSendToUserReachesOnlyThatUser(t *testing.T) {
	manager := NewManager()
	go manager.Run()
	server := newTestServer(t, manager)

	alice := dial(t, server, "alice")
	bob := dial(t, server, "bob")
	waitForClients(t, manager, 2)

	delivered := manager.SendToUser("alice", "booking_confirmed", map[string]string{"slot": "5"})
	assert.True(t, delivered)

	envelope := readEnvelope(t, alice)
	assert.Equal(t, "booking_confirmed", envelope.Type)

	// Bob got nothing.
	bob.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	var unexpected Envelope
	err := bob.ReadJSON(&unexpected)
	assert.Error(t, err)
}

func TestSendToUserWithoutConnection(t *testing.T) {
	manager := NewManager()
	go manager.Run()

	assert.False(t, manager.SendToUser("nobody", "booking_confirmed", nil))
}

func TestBroadcastReachesAllClients(t *testing.T) {
	manager := NewManager()
	go manager.Run()
	server := newTestServer(t, manager)

	alice := dial(t, server, "alice")
	bob := dial(t, server, "bob")
	waitForClients(t, manager, 2)

	manager.Broadcast("system", "maintenance at noon")

	for _, conn := range []*websocket.Conn{alice, bob} {
		envelope := readEnvelope(t, conn)
		assert.Equal(t, "system", envelope.Type)
		assert.Equal(t, "maintenance at noon", envelope.Payload)
	}
}

func TestDisconnectUnregistersClient(t *testing.T) {
	manager := NewManager()
	go manager.Run()
	server := newTestServer(t, manager)

	conn := dial(t, server, "alice")
	waitForClients(t, manager, 1)
	assert.True(t, manager.IsConnected("alice"))

	conn.Close()
	waitForClients(t, manager, 0)
	assert.False(t, manager.IsConnected("alice"))
	assert.Empty(t, manager.ConnectedIDs())
}

func TestReconnectReplacesConnection(t *testing.T) {
	manager := NewManager()
	go manager.Run()
	server := newTestServer(t, manager)

	first := dial(t, server, "alice")
	waitForClients(t, manager, 1)

	second := dial(t, server, "alice")

	// The server closes the first connection once the replacement registers.
	first.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := first.ReadMessage(); err != nil {
			break
		}
	}
	waitForClients(t, manager, 1)

	require.True(t, manager.SendToUser("alice", "ping", nil))
	envelope := readEnvelope(t, second)
	assert.Equal(t, "ping", envelope.Type)
}
