package server

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"twentynine-game/internal/database"
	"twentynine-game/internal/game"
	"twentynine-game/internal/protocol"
	"twentynine-game/internal/shared"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub manages WebSocket connections and routes intents to rooms. Room state
// itself lives behind the game.Registry; the hub only owns the connection
// bookkeeping.
type Hub struct {
	clients        map[*Client]bool
	clientToRoom   map[*Client]string
	registry       *game.Registry
	rules          game.Rules
	db             *database.Service
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	clientMu       sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub(db *database.Service, rules game.Rules) *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		clientToRoom:   make(map[*Client]string),
		registry:       game.NewRegistry(),
		rules:          rules,
		db:             db,
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
	}
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString()
			log.Printf("Client %s (%s) connected", client.ID, client.conn.RemoteAddr())
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()

		case client := <-h.unregister:
			h.clientMu.Lock()
			roomCode, inRoom := h.clientToRoom[client]
			_, clientExists := h.clients[client]
			if clientExists {
				delete(h.clients, client)
				delete(h.clientToRoom, client)
				close(client.send)
				log.Printf("Client %s (%s) disconnected", client.ID, client.Name)
			}
			h.clientMu.Unlock()

			if inRoom {
				if room, ok := h.registry.Lookup(roomCode); ok {
					room.Disconnect(client.ID)
				}
			}

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case protocol.TypeCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.TypeJoinRoom:
		h.handleJoinRoom(client, msg)
	case protocol.TypeAddBot:
		h.handleAddBot(client)
	case protocol.TypeBid, protocol.TypePass, protocol.TypeChooseTrump, protocol.TypePlayCard:
		h.handleGameAction(client, msg)
	case protocol.TypeLeaveRoom:
		h.handleLeaveRoom(client)
	case protocol.TypePing:
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendMessageToClient(client.ID, pongMsg)
	default:
		log.Printf("Received unknown message type %q from client %s", msg.Type, client.ID)
		h.sendErrorToClient(client, "Unknown message type.")
	}
}

// handleCreateRoom creates a room and seats the creator at seat 0.
func (h *Hub) handleCreateRoom(client *Client, msg protocol.Message) {
	h.clientMu.RLock()
	_, alreadyInRoom := h.clientToRoom[client]
	h.clientMu.RUnlock()
	if alreadyInRoom {
		h.sendErrorToClient(client, "Already in a room.")
		return
	}

	var payload protocol.CreateRoomPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.sendErrorToClient(client, "Invalid createRoom message format.")
		return
	}
	if payload.Name == "" {
		h.sendErrorToClient(client, "Name cannot be empty.")
		return
	}

	room := h.registry.Create(h.rules, h.sendMessageToClient, h.recordResult)
	client.Name = payload.Name
	if _, err := room.Join(client.ID, client.Name, shared.Human); err != nil {
		// Freshly created rooms accept their first join; treat anything else
		// as an internal failure.
		log.Printf("Client %s failed to enter new room %s: %v", client.ID, room.Code, err)
		h.registry.Remove(room.Code)
		h.sendErrorToClient(client, "Failed to create room.")
		return
	}

	h.clientMu.Lock()
	h.clientToRoom[client] = room.Code
	h.clientMu.Unlock()

	log.Printf("Client %s (%s) created room %s", client.ID, client.Name, room.Code)
	createdMsg, _ := protocol.NewMessage(protocol.TypeRoomCreated, protocol.RoomCreatedPayload{RoomCode: room.Code})
	h.sendMessageToClient(client.ID, createdMsg)
}

// handleJoinRoom seats a client in an existing room.
func (h *Hub) handleJoinRoom(client *Client, msg protocol.Message) {
	h.clientMu.RLock()
	_, alreadyInRoom := h.clientToRoom[client]
	h.clientMu.RUnlock()
	if alreadyInRoom {
		h.sendErrorToClient(client, "Already in a room.")
		return
	}

	var payload protocol.JoinRoomPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.sendErrorToClient(client, "Invalid joinRoom message format.")
		return
	}
	if payload.Name == "" {
		h.sendErrorToClient(client, "Name cannot be empty.")
		return
	}

	room, ok := h.registry.Lookup(payload.RoomCode)
	if !ok {
		h.sendErrorToClient(client, "Room not found!")
		return
	}

	client.Name = payload.Name
	seat, err := room.Join(client.ID, client.Name, shared.Human)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrRoomFull):
			h.sendErrorToClient(client, "Room full!")
		case errors.Is(err, game.ErrDuplicatePlayer):
			h.sendErrorToClient(client, "You are already in this room.")
		default:
			h.sendErrorToClient(client, "Could not join room.")
		}
		return
	}

	h.clientMu.Lock()
	h.clientToRoom[client] = room.Code
	h.clientMu.Unlock()
	log.Printf("Client %s (%s) joined room %s at seat %d", client.ID, client.Name, room.Code, seat)
}

// handleAddBot fills an open seat in the requester's room with a bot.
func (h *Hub) handleAddBot(client *Client) {
	room, ok := h.roomFor(client)
	if !ok {
		h.sendErrorToClient(client, "You are not in a room.")
		return
	}
	if err := room.AddBot(client.ID); err != nil {
		if errors.Is(err, game.ErrRoomFull) {
			h.sendErrorToClient(client, "Room full!")
			return
		}
		h.sendErrorToClient(client, "Could not add a bot.")
	}
}

// handleGameAction forwards bid/pass/chooseTrump/playCard intents to the
// client's room.
func (h *Hub) handleGameAction(client *Client, msg protocol.Message) {
	room, ok := h.roomFor(client)
	if !ok {
		h.sendErrorToClient(client, "You are not in a room.")
		return
	}
	room.HandlePlayerAction(client.ID, msg)
}

// handleLeaveRoom vacates the client's seat.
func (h *Hub) handleLeaveRoom(client *Client) {
	h.clientMu.Lock()
	roomCode, inRoom := h.clientToRoom[client]
	delete(h.clientToRoom, client)
	h.clientMu.Unlock()

	if !inRoom {
		h.sendErrorToClient(client, "You are not in a room.")
		return
	}
	if room, ok := h.registry.Lookup(roomCode); ok {
		room.Leave(client.ID)
	}
}

func (h *Hub) roomFor(client *Client) (*game.Room, bool) {
	h.clientMu.RLock()
	roomCode, inRoom := h.clientToRoom[client]
	h.clientMu.RUnlock()
	if !inRoom {
		return nil, false
	}
	return h.registry.Lookup(roomCode)
}

// recordResult persists a finished match. Runs outside any room lock.
func (h *Hub) recordResult(result game.Result) {
	if h.db == nil {
		return
	}
	record := database.GameResult{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		RoomCode:   result.Code,
		Player1:    result.PlayerNames[0],
		Player2:    result.PlayerNames[1],
		Player3:    result.PlayerNames[2],
		Player4:    result.PlayerNames[3],
		TeamAScore: result.ScoreA,
		TeamBScore: result.ScoreB,
		WinnerTeam: result.WinnerTeam.String(),
	}
	if err := h.db.Insert(record); err != nil {
		log.Printf("Failed to record result for room %s: %v", result.Code, err)
	}
}

// sendMessageToClient delivers a message by client ID. Passed to rooms as
// their MessageSender.
func (h *Hub) sendMessageToClient(clientID string, message []byte) {
	h.clientMu.RLock()
	var targetClient *Client
	for client := range h.clients {
		if client.ID == clientID {
			targetClient = client
			break
		}
	}

	if targetClient == nil {
		h.clientMu.RUnlock()
		log.Printf("Could not find client %s to send message (already disconnected?).", clientID)
		return
	}

	// Send while the read lock is still held: unregister closes the send
	// channel under the write lock, so the channel cannot close mid-send.
	// Non-blocking so a stalled client cannot block a room.
	delivered := true
	select {
	case targetClient.send <- message:
	default:
		delivered = false
	}
	h.clientMu.RUnlock()

	if !delivered {
		log.Printf("Failed to send message to client %s (channel full), initiating cleanup.", clientID)
		go func() {
			h.clientMu.RLock()
			_, stillConnected := h.clients[targetClient]
			h.clientMu.RUnlock()
			if stillConnected {
				h.unregister <- targetClient
			}
		}()
	}
}

// sendErrorToClient sends a directed error message to one client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage(protocol.TypeErrorMessage, protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		log.Printf("Error creating error message for client %s: %v", client.ID, err)
		return
	}
	h.sendMessageToClient(client.ID, msgBytes)
}
