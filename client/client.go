package client

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SendQueueSize is how many messages can wait for a slow spectator before
// new ones are dropped
const SendQueueSize = 100

// Client is one spectator connection
type Client struct {
	Conn      *websocket.Conn
	SendQueue chan []byte
	RoomId    string
	ID        string
}

func NewClient(conn *websocket.Conn, roomId string) *Client {
	return &Client{
		Conn:      conn,
		SendQueue: make(chan []byte, SendQueueSize),
		RoomId:    roomId,
		ID:        uuid.NewString(),
	}
}
