package services

// Broadcaster pushes events to connected WebSocket clients. Satisfied by
// ws.Manager; kept as an interface here so services stay independent of the
// transport and tests can swap in a recorder.
type Broadcaster interface {
	SendToUser(userID string, messageType string, payload any) bool
	Broadcast(messageType string, payload any)
}

// NopBroadcaster discards everything. Used when the realtime layer is
// disabled and in tests that do not care about delivery.
type NopBroadcaster struct{}

func (NopBroadcaster) SendToUser(string, string, any) bool { return false }
func (NopBroadcaster) Broadcast(string, any)               {}
