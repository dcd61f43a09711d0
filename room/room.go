package room

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/mo-shahab/bracket-pong/client"
)

// typedef to define the Room, one running game and the clients watching it
type Room struct {
	ID            string
	Clients       map[string]*client.Client
	MaxSpectators int
	Mu            sync.Mutex

	// last message broadcast, replayed to clients that join late
	last []byte
}

// state of all the rooms
type RoomManager struct {
	Rooms map[string]*Room
	Mu    sync.Mutex
}

func NewRoomManager() *RoomManager {
	return &RoomManager{
		Rooms: make(map[string]*Room),
	}
}

// helpers
func generateRoomId() string {
	return uuid.New().String()[:6]
}

// CreateRoom opens a room and returns its id
func (rm *RoomManager) CreateRoom(maxSpectators int) string {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	roomId := generateRoomId()
	for _, taken := rm.Rooms[roomId]; taken; _, taken = rm.Rooms[roomId] {
		roomId = generateRoomId()
	}

	rm.Rooms[roomId] = &Room{
		ID:            roomId,
		Clients:       make(map[string]*client.Client),
		MaxSpectators: maxSpectators,
	}
	log.Printf("Created Room with room id: %s", roomId)

	return roomId
}

// JoinRoom adds the client and queues the latest state for it
func (rm *RoomManager) JoinRoom(roomId string, c *client.Client) (bool, string) {
	room, exists := rm.GetRoom(roomId)
	if !exists {
		return false, "Room id is invalid"
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.MaxSpectators > 0 && len(room.Clients) >= room.MaxSpectators {
		return false, "Room is full"
	}

	room.Clients[c.ID] = c
	if room.last != nil {
		c.SendQueue <- room.last
	}
	log.Printf("Client %s joined the Room with room id: %s", c.ID, roomId)

	return true, ""
}

// RemoveClient drops the client from the room and closes its send queue
func (rm *RoomManager) RemoveClient(roomId string, clientId string) {
	room, exists := rm.GetRoom(roomId)
	if !exists {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	c, ok := room.Clients[clientId]
	if !ok {
		return
	}
	delete(room.Clients, clientId)
	close(c.SendQueue)
	log.Printf("Client %s left the Room with room id: %s", clientId, roomId)
}

// CloseRoom disconnects everyone and forgets the room
func (rm *RoomManager) CloseRoom(roomId string) {
	rm.Mu.Lock()
	room, exists := rm.Rooms[roomId]
	delete(rm.Rooms, roomId)
	rm.Mu.Unlock()

	if !exists {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	for id, c := range room.Clients {
		close(c.SendQueue)
		delete(room.Clients, id)
	}
	log.Printf("Room with %s has been closed", roomId)
}

func (rm *RoomManager) GetRoom(roomId string) (*Room, bool) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]

	return room, exists
}

// Broadcast queues message for every client of the room. Clients whose queue
// is full miss it.
func (rm *RoomManager) Broadcast(roomId string, message []byte) {
	room, exists := rm.GetRoom(roomId)
	if !exists {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	room.last = message
	for _, c := range room.Clients {
		select {
		case c.SendQueue <- message:
		default:
			log.Printf("Dropping message, send queue full for client %s", c.ID)
		}
	}
}

// Len returns how many clients are in the room
func (r *Room) Len() int {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return len(r.Clients)
}
