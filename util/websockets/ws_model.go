package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to listeners
const (
	EventReviewCreated = "review_created"
	EventVoteUpdated   = "vote_updated"
)

// Event is the envelope broadcast to every connected client.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Client represents a connected WebSocket listener
type Client struct {
	Conn *websocket.Conn
}

type ActivityFeed struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *websocket.Conn
	mu         sync.Mutex
}
