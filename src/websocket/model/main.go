package websocket_model

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Keepalive frames exchanged with dashboard clients.
const (
	Ping = "ping"
	Pong = "pong"
)

// Client wraps one WebSocket connection with a write lock; the underlying
// connection does not allow concurrent writers.
type Client struct {
	Connection *websocket.Conn
	ID         uuid.UUID

	writeMu sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Connection: conn,
		ID:         uuid.New(),
	}
}

func (c *Client) WriteJSON(data any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Connection.WriteJSON(data)
}

func (c *Client) WriteMessage(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Connection.WriteMessage(messageType, data)
}

// Channel fans events out to its current subscribers. Delivery is
// at-most-once to connected clients: a write failure drops the frame and
// leaves disconnect handling to the client's read loop. Zero subscribers is
// a normal, silent case.
type Channel[T any] struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

func CreateChannel[T any]() *Channel[T] {
	return &Channel[T]{
		clients: make(map[string]*Client),
	}
}

func (ch *Channel[T]) AppendClient(client *Client, key string) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.clients[key] = client
}

func (ch *Channel[T]) RemoveClient(key string) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	delete(ch.clients, key)
}

func (ch *Channel[T]) Len() int {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return len(ch.clients)
}

// BroadcastJsonMultithread writes data to every subscriber, one goroutine
// per client, without blocking the caller.
func (ch *Channel[T]) BroadcastJsonMultithread(data T) {
	ch.mu.RLock()
	clients := make([]*Client, 0, len(ch.clients))
	for _, client := range ch.clients {
		clients = append(clients, client)
	}
	ch.mu.RUnlock()

	for _, client := range clients {
		go func(c *Client) {
			_ = c.WriteJSON(data)
		}(client)
	}
}
