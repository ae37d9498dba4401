package shared

import (
	"errors"
	"log"
	"math/rand/v2"
)

// ErrInsufficientCards is returned when a deal asks for more cards than the
// deck remainder holds.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck represents the remaining undealt cards of a round.
type Deck struct {
	Cards []Card
}

// NewDeck creates the 32-card 29 deck (ranks 7..A in all four suits).
func NewDeck() *Deck {
	var cards []Card
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal removes numPlayers*cardsPerPlayer cards from the front of the deck and
// partitions them contiguously, one block per seat in seat order. The deck
// keeps its remainder, so 29's two-stage deal (4 cards before the auction,
// 4 after) is two calls against the same deck.
func (d *Deck) Deal(numPlayers, cardsPerPlayer int) ([][]Card, error) {
	totalCardsNeeded := numPlayers * cardsPerPlayer
	if len(d.Cards) < totalCardsNeeded {
		log.Printf("Deal of %d cards to %d players requested with only %d cards left.", cardsPerPlayer, numPlayers, len(d.Cards))
		return nil, ErrInsufficientCards
	}

	dealt := make([][]Card, numPlayers)
	start := 0
	for i := 0; i < numPlayers; i++ {
		end := start + cardsPerPlayer
		// Copy the hand so later deck mutation cannot alias into it
		hand := make([]Card, cardsPerPlayer)
		copy(hand, d.Cards[start:end])
		dealt[i] = hand
		start = end
	}

	d.Cards = d.Cards[totalCardsNeeded:]
	return dealt, nil
}

// Remaining reports how many undealt cards the deck holds.
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
