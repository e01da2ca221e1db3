package websockets

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewActivityFeed initializes an ActivityFeed
func NewActivityFeed() *ActivityFeed {
	return &ActivityFeed{
		clients:    make(map[*websocket.Conn]*Client),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
	}
}

// Run starts the feed loop
func (feed *ActivityFeed) Run() {
	for {
		select {
		case client := <-feed.register:
			feed.mu.Lock()
			feed.clients[client.Conn] = client
			feed.mu.Unlock()

		case conn := <-feed.unregister:
			feed.mu.Lock()
			if _, exists := feed.clients[conn]; exists {
				delete(feed.clients, conn)
				conn.Close()
			}
			feed.mu.Unlock()

		case message := <-feed.broadcast:
			feed.mu.Lock()
			for _, client := range feed.clients {
				if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
					client.Conn.Close()
					delete(feed.clients, client.Conn)
				}
			}
			feed.mu.Unlock()
		}
	}
}

// HandleConnections upgrades HTTP requests to WebSocket connections.
// Clients are listen-only; incoming frames are drained and dropped.
func (feed *ActivityFeed) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket Upgrade Error:", err)
		return
	}

	client := &Client{Conn: conn}
	feed.register <- client

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feed.unregister <- conn
			break
		}
	}
}

// Publish broadcasts an event to every connected client. Marshalling
// failures are logged and swallowed; the feed is advisory.
func (feed *ActivityFeed) Publish(eventType string, data interface{}) {
	msg, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		log.Println("failed to marshal activity event:", err)
		return
	}
	feed.broadcast <- msg
}
