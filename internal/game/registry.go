package game

import (
	"log"
	"math/rand/v2"
	"strings"
	"sync"
)

const roomCodeLength = 4

// The alphabet omits 0/O and 1/I so codes stay unambiguous when read aloud.
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Registry owns the code→Room mapping shared across all connections. Rooms
// themselves are independently synchronized; the registry only guards the
// mapping.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// Create allocates a room under a fresh code. Code generation and insertion
// happen under one lock, so two concurrent creations can never collide on a
// code. The room removes itself from the registry once it empties out.
func (r *Registry) Create(rules Rules, sender MessageSender, onGameOver func(Result)) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	var code string
	for {
		code = randomRoomCode()
		if _, exists := r.rooms[code]; !exists {
			break
		}
		log.Printf("Room code %s collided, retrying...", code)
	}

	room := NewRoom(code, rules, sender)
	room.onEmpty = r.Remove
	room.onGameOver = onGameOver
	r.rooms[code] = room
	return room
}

// Lookup resolves a room by its (case-insensitive) code.
func (r *Registry) Lookup(code string) (*Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[NormalizeRoomCode(code)]
	return room, ok
}

// Remove drops a room from the registry. Safe to call for codes that are
// already gone.
func (r *Registry) Remove(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, code)
}

// Count reports the number of live rooms.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// NormalizeRoomCode uppercases and trims a client-supplied code.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func randomRoomCode() string {
	var sb strings.Builder
	for i := 0; i < roomCodeLength; i++ {
		sb.WriteByte(roomCodeAlphabet[rand.IntN(len(roomCodeAlphabet))])
	}
	return sb.String()
}
