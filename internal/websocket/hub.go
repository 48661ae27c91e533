package websocket

import (
	"sync"

	"github.com/Polsaker/dongerdong/internal/models"
	"go.uber.org/zap"
)

// Hub fans room announcements out to the WebSocket clients watching each room
type Hub struct {
	// room id -> subscribed clients
	rooms map[string]map[*Client]bool
	mu    sync.RWMutex

	broadcast chan *Message

	register   chan *Client
	unregister chan *Client

	quit     chan struct{}
	stopOnce sync.Once

	allowedOrigins map[string]bool

	logger *zap.Logger
}

// Message is one frame sent to a client
type Message struct {
	RoomID  string      `json:"roomId"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const announcementType = "announcement"

// NewHub creates a hub. With no allowed origins every origin may connect.
func NewHub(logger *zap.Logger, allowedOrigins ...string) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Hub{
		rooms:          make(map[string]map[*Client]bool),
		broadcast:      make(chan *Message, 256),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		quit:           make(chan struct{}),
		allowedOrigins: origins,
		logger:         logger,
	}
}

// Run processes registrations and broadcasts until Stop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case <-h.quit:
			h.closeAll()
			return
		}
	}
}

// Stop ends Run and closes every client
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[client.roomID]
	if !ok {
		clients = make(map[*Client]bool)
		h.rooms[client.roomID] = clients
	}
	clients[client] = true

	h.logger.Info("WebSocket client registered",
		zap.String("roomId", client.roomID),
		zap.Int("roomClients", len(clients)))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[client.roomID]
	if !ok || !clients[client] {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.roomID)
	}

	h.logger.Info("WebSocket client unregistered",
		zap.String("roomId", client.roomID),
		zap.Int("roomClients", len(clients)))
}

func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[message.RoomID] {
		select {
		case client.send <- message:
		default:
			// slow consumer
			h.logger.Warn("Client send channel full, unregistering",
				zap.String("roomId", client.roomID))
			go func(c *Client) {
				select {
				case h.unregister <- c:
				case <-h.quit:
				}
			}(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for roomID, clients := range h.rooms {
		for client := range clients {
			close(client.send)
		}
		delete(h.rooms, roomID)
	}
}

// Announce queues one line for the room's subscribers. It never blocks; when
// the queue is full the line is dropped.
func (h *Hub) Announce(roomID, text string, emphasis models.Emphasis) {
	h.Deliver(models.Announcement{RoomID: roomID, Text: text, Emphasis: emphasis})
}

// Deliver queues an announcement that was produced elsewhere, such as one
// received from another instance.
func (h *Hub) Deliver(a models.Announcement) {
	msg := &Message{RoomID: a.RoomID, Type: announcementType, Payload: a}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("Broadcast queue full, dropping announcement",
			zap.String("roomId", a.RoomID))
	}
}

// Subscribers counts the clients watching roomID
func (h *Hub) Subscribers(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
