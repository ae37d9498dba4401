package server

import (
	"fmt"
	"sync"
	"testing"

	"twentynine-game/internal/game"

	"github.com/stretchr/testify/assert"
)

func TestSendMessageDeliveredToClient(t *testing.T) {
	hub := NewHub(nil, game.DefaultRules())
	client := &Client{hub: hub, send: make(chan []byte, 1), ID: "c1"}
	hub.clientMu.Lock()
	hub.clients[client] = true
	hub.clientMu.Unlock()

	hub.sendMessageToClient("c1", []byte(`{"type":"pong"}`))

	select {
	case msg := <-client.send:
		assert.JSONEq(t, `{"type":"pong"}`, string(msg))
	default:
		t.Fatal("message was not delivered")
	}
}

func TestSendToDepartedClientIsNoOp(t *testing.T) {
	hub := NewHub(nil, game.DefaultRules())
	client := &Client{hub: hub, send: make(chan []byte, 1), ID: "c1"}
	hub.clientMu.Lock()
	hub.clients[client] = true
	hub.clientMu.Unlock()

	hub.clientMu.Lock()
	delete(hub.clients, client)
	close(client.send)
	hub.clientMu.Unlock()

	// Must not panic on the closed channel; the lookup misses instead.
	hub.sendMessageToClient("c1", []byte(`{"type":"pong"}`))
}

func TestConcurrentSendAndDisconnect(t *testing.T) {
	hub := NewHub(nil, game.DefaultRules())

	for i := 0; i < 100; i++ {
		client := &Client{hub: hub, send: make(chan []byte, 1), ID: fmt.Sprintf("c%d", i)}
		hub.clientMu.Lock()
		hub.clients[client] = true
		hub.clientMu.Unlock()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.sendMessageToClient(client.ID, []byte(`{"type":"pong"}`))
		}()
		go func() {
			defer wg.Done()
			hub.clientMu.Lock()
			delete(hub.clients, client)
			close(client.send)
			hub.clientMu.Unlock()
		}()
		wg.Wait()
	}
}
