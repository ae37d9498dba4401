package protocol

import (
	"encoding/json"

	"twentynine-game/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "joinRoom", "playCard")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// Client -> server intent types.
const (
	TypeCreateRoom  = "createRoom"
	TypeJoinRoom    = "joinRoom"
	TypeAddBot      = "addBot"
	TypeBid         = "bid"
	TypePass        = "pass"
	TypeChooseTrump = "chooseTrump"
	TypePlayCard    = "playCard"
	TypeLeaveRoom   = "leaveRoom"
	TypePing        = "ping"
)

// Server -> client notification types.
const (
	TypeRoomCreated  = "roomCreated"
	TypePlayers      = "players"
	TypeGameState    = "gameState"
	TypeYourHand     = "yourHand"
	TypeYourTurn     = "yourTurn"
	TypeTrickEnd     = "trickEnd"
	TypeRoundEnd     = "roundEnd"
	TypeGameOver     = "gameOver"
	TypeErrorMessage = "errorMessage"
	TypePong         = "pong"
)

// --- Client -> Server Payload Structs ---

type CreateRoomPayload struct {
	Name string `json:"name"`
}

type JoinRoomPayload struct {
	Name     string `json:"name"`
	RoomCode string `json:"room_code"`
}

type AddBotPayload struct {
	RoomCode string `json:"room_code"`
}

type BidPayload struct {
	RoomCode string `json:"room_code"`
	Value    int    `json:"value"`
}

type PassPayload struct {
	RoomCode string `json:"room_code"`
}

type ChooseTrumpPayload struct {
	RoomCode string `json:"room_code"`
	Suit     string `json:"suit"`
}

type PlayCardPayload struct {
	RoomCode string `json:"room_code"`
	Suit     string `json:"suit"`
	Rank     string `json:"rank"`
}

type LeaveRoomPayload struct {
	RoomCode string `json:"room_code"`
}

// --- Server -> Client Payload Structs ---

type RoomCreatedPayload struct {
	RoomCode string `json:"room_code"`
}

type PlayerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Seat      int    `json:"seat"`
	Team      string `json:"team"`
	Kind      string `json:"kind"`
	Connected bool   `json:"connected"`
}

type PlayersPayload struct {
	Players []PlayerInfo `json:"players"`
}

// GameStatePayload is the full public snapshot broadcast on every state
// mutation. Hands never appear here; TrumpSuit is empty while the trump is
// unchosen or still hidden.
type GameStatePayload struct {
	RoomCode          string              `json:"room_code"`
	Phase             string              `json:"phase"`
	CurrentBid        int                 `json:"current_bid"`
	HighestBidderSeat int                 `json:"highest_bidder_seat"`
	TrumpSuit         string              `json:"trump_suit,omitempty"`
	TrumpRevealed     bool                `json:"trump_revealed"`
	CurrentTrick      []shared.PlayedCard `json:"current_trick"`
	TurnSeat          int                 `json:"turn_seat"`
	LeaderSeat        int                 `json:"leader_seat"`
	DealerSeat        int                 `json:"dealer_seat"`
	TricksPlayed      int                 `json:"tricks_played"`
	RoundPointsA      int                 `json:"round_points_a"`
	RoundPointsB      int                 `json:"round_points_b"`
	ScoreA            int                 `json:"score_a"`
	ScoreB            int                 `json:"score_b"`
}

type YourHandPayload struct {
	Hand     []shared.Card `json:"hand"`
	Seat     int           `json:"seat"`
	RoomCode string        `json:"room_code"`
}

type YourTurnPayload struct {
	Seat  int    `json:"seat"`
	Phase string `json:"phase"`
}

type TrickEndPayload struct {
	WinnerSeat int           `json:"winner_seat"`
	Cards      []shared.Card `json:"cards"`
	Points     int           `json:"points"`
}

type RoundEndPayload struct {
	BidderTeam     string `json:"bidder_team"`
	Bid            int    `json:"bid"`
	BidderPoints   int    `json:"bidder_points"`
	DefenderPoints int    `json:"defender_points"`
	Success        bool   `json:"success"`
	ScoreA         int    `json:"score_a"`
	ScoreB         int    `json:"score_b"`
}

type GameOverPayload struct {
	WinnerTeam string `json:"winner_team"`
	ScoreA     int    `json:"score_a"`
	ScoreB     int    `json:"score_b"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage encodes a typed message with its payload.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}
