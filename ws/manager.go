package ws

import (
	"sync"

	"insurai_backend/internal/logger"
)

// Envelope is the frame pushed to connected clients. Type mirrors the
// notification type stored in the database so the frontend can switch on it.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Manager tracks connected clients and fans messages out to them.
// Clients are keyed by user ID, one connection per user: a reconnect
// replaces the previous connection.
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Envelope
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Envelope),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if prev, ok := m.clients[client.UserID]; ok {
				close(prev.Send)
				prev.Conn.Close()
			}
			m.clients[client.UserID] = client
			total := len(m.clients)
			m.mu.Unlock()
			logger.Info("ws client registered", "user_id", client.UserID, "total", total)

		case client := <-m.unregister:
			m.mu.Lock()
			if current, ok := m.clients[client.UserID]; ok && current == client {
				close(client.Send)
				delete(m.clients, client.UserID)
				logger.Info("ws client unregistered", "user_id", client.UserID, "total", len(m.clients))
			}
			m.mu.Unlock()

		case envelope := <-m.broadcast:
			m.broadcastEnvelope(envelope)
		}
	}
}

// Broadcast sends an envelope to every connected client.
func (m *Manager) Broadcast(messageType string, payload any) {
	m.broadcast <- Envelope{Type: messageType, Payload: payload}
}

// SendToUser delivers an envelope to a single user if they are connected.
// Returns false when the user has no live connection.
func (m *Manager) SendToUser(userID string, messageType string, payload any) bool {
	// The read lock is held through the send: channels are only closed under
	// the write lock, so the send can never hit a closed channel.
	m.mu.RLock()
	defer m.mu.RUnlock()

	client, ok := m.clients[userID]
	if !ok {
		return false
	}

	select {
	case client.Send <- Envelope{Type: messageType, Payload: payload}:
		return true
	default:
		// Send buffer full, the client is too slow to keep.
		go func() { m.unregister <- client }()
		logger.Warn("ws client dropped, send buffer full", "user_id", userID)
		return false
	}
}

func (m *Manager) broadcastEnvelope(envelope Envelope) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for userID, client := range m.clients {
		select {
		case client.Send <- envelope:
		default:
			go func(c *Client) { m.unregister <- c }(client)
			logger.Warn("ws client dropped, send buffer full", "user_id", userID)
		}
	}
}

// IsConnected reports whether the user has a live connection.
func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// ConnectedIDs returns the user IDs of all live connections.
func (m *Manager) ConnectedIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.clients))
	for id := range m.clients {
		ids = append(ids, id)
	}
	return ids
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
