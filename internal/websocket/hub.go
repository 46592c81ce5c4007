// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/placemap/internal/logging"
	"github.com/tomtom215/placemap/internal/metrics"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful shutdown path.
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline may indicate a hung operation during shutdown.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types. The view kinds match the session notification kinds.
const (
	MessageTypeSession  = "session"
	MessageTypeList     = "list"
	MessageTypeMarkers  = "markers"
	MessageTypeGallery  = "gallery"
	MessageTypeAnalysis = "analysis"
	MessageTypePing     = "ping"
	MessageTypePong     = "pong"
)

// broadcastBuffer bounds queued outbound messages across all sessions.
const broadcastBuffer = 256

// Message is the wire format of every push.
type Message struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Data      interface{} `json:"data"`
}

// Hub routes session notifications to the clients subscribed to that
// session. Clients of other sessions never see them.
type Hub struct {
	clients      map[string]map[*Client]bool
	broadcast    chan Message
	closeSession chan string
	Register     chan *Client
	Unregister   chan *Client
	mu           sync.RWMutex
}

// NewHub creates a new Hub. Nothing is delivered until Serve runs.
func NewHub() *Hub {
	return &Hub{
		clients:      make(map[string]map[*Client]bool),
		broadcast:    make(chan Message, broadcastBuffer),
		closeSession: make(chan string, broadcastBuffer),
		Register:     make(chan *Client),
		Unregister:   make(chan *Client),
	}
}

// Serve runs the hub until ctx is canceled. It implements suture.Service.
//
// Lifecycle events are drained before messages so a freshly registered
// client sees every push that follows its registration.
func (h *Hub) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.register(client)
			continue
		case client := <-h.Unregister:
			h.unregister(client)
			continue
		case id := <-h.closeSession:
			h.dropSession(id)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.register(client)
		case client := <-h.Unregister:
			h.unregister(client)
		case id := <-h.closeSession:
			h.dropSession(id)
		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

// String names the hub in supervisor logs.
func (h *Hub) String() string {
	return "websocket-hub"
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	set, ok := h.clients[client.sessionID]
	if !ok {
		set = make(map[*Client]bool)
		h.clients[client.sessionID] = set
	}
	set[client] = true
	h.mu.Unlock()

	metrics.WSConnections.Inc()
	logging.Info().
		Str("session_id", client.sessionID).
		Int("total_clients", h.GetClientCount()).
		Msg("websocket client connected")
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	removed := h.removeLocked(client)
	h.mu.Unlock()

	if removed {
		logging.Info().
			Str("session_id", client.sessionID).
			Int("total_clients", h.GetClientCount()).
			Msg("websocket client disconnected")
	}
}

// removeLocked closes the client's queue once. Callers hold h.mu.
func (h *Hub) removeLocked(client *Client) bool {
	set, ok := h.clients[client.sessionID]
	if !ok || !set[client] {
		return false
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.sessionID)
	}
	close(client.send)
	metrics.WSConnections.Dec()
	return true
}

func (h *Hub) dropSession(sessionID string) {
	h.mu.Lock()
	clients := sortedClients(h.clients[sessionID])
	for _, client := range clients {
		h.removeLocked(client)
	}
	h.mu.Unlock()

	if len(clients) > 0 {
		logging.Info().
			Str("session_id", sessionID).
			Int("clients_closed", len(clients)).
			Msg("closed websocket clients of removed session")
	}
}

// deliver sends message to its session's clients in registration order.
// A client whose queue is full is disconnected rather than stalling the hub.
func (h *Hub) deliver(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var toRemove []*Client
	for _, client := range sortedClients(h.clients[message.SessionID]) {
		select {
		case client.send <- message:
		default:
			toRemove = append(toRemove, client)
		}
	}

	for _, client := range toRemove {
		metrics.WSErrors.WithLabelValues("slow_consumer").Inc()
		h.removeLocked(client)
	}
}

func sortedClients(set map[*Client]bool) []*Client {
	clients := make([]*Client, 0, len(set))
	for client := range set {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

func (h *Hub) logGracefulShutdown(ctx context.Context) {
	clientCount := h.GetClientCount()
	h.closeAllClients()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", clientCount).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if ctx.Err() == context.DeadlineExceeded {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, client := range sortedClients(h.clients[id]) {
			h.removeLocked(client)
		}
	}
}

// Notify queues a view for the clients of sessionID. It never blocks; when
// the queue is full the message is dropped and logged. It implements
// session.Notifier.
func (h *Hub) Notify(sessionID, kind string, payload any) {
	message := Message{
		Type:      kind,
		SessionID: sessionID,
		Data:      payload,
	}

	select {
	case h.broadcast <- message:
	default:
		metrics.WSErrors.WithLabelValues("queue_full").Inc()
		logging.Warn().
			Str("session_id", sessionID).
			Str("message_type", kind).
			Msg("broadcast channel full, dropping message")
	}
}

// CloseSession disconnects every client of sessionID. The session store
// calls it when a session is deleted or expires.
func (h *Hub) CloseSession(sessionID string) {
	select {
	case h.closeSession <- sessionID:
	default:
		logging.Warn().Str("session_id", sessionID).Msg("close queue full, clients will close on shutdown")
	}
}

// GetClientCount returns the number of connected clients across sessions.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// SessionClientCount returns the number of clients subscribed to sessionID.
func (h *Hub) SessionClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// MarshalMessage converts a message to JSON
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
