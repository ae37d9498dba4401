package protocol_test

import (
	"encoding/json"
	"testing"

	"twentynine-game/internal/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageRoundTrip(t *testing.T) {
	raw, err := protocol.NewMessage(protocol.TypeBid, protocol.BidPayload{RoomCode: "ABCD", Value: 17})
	require.NoError(t, err)

	var msg protocol.Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, protocol.TypeBid, msg.Type)

	var payload protocol.BidPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "ABCD", payload.RoomCode)
	assert.Equal(t, 17, payload.Value)
}

func TestNewMessageWithoutPayload(t *testing.T) {
	raw, err := protocol.NewMessage(protocol.TypePong, nil)
	require.NoError(t, err)

	var msg protocol.Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, protocol.TypePong, msg.Type)
	assert.Empty(t, msg.Payload)
}

func TestClientIntentDecoding(t *testing.T) {
	raw := []byte(`{"type":"playCard","payload":{"room_code":"ABCD","suit":"♥","rank":"J"}}`)

	var msg protocol.Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	require.Equal(t, protocol.TypePlayCard, msg.Type)

	var payload protocol.PlayCardPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "ABCD", payload.RoomCode)
	assert.Equal(t, "♥", payload.Suit)
	assert.Equal(t, "J", payload.Rank)
}

func TestGameStateOmitsUnrevealedTrump(t *testing.T) {
	raw, err := protocol.NewMessage(protocol.TypeGameState, protocol.GameStatePayload{
		RoomCode: "ABCD",
		Phase:    "playing",
	})
	require.NoError(t, err)

	var msg protocol.Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.NotContains(t, string(msg.Payload), "trump_suit")
}
