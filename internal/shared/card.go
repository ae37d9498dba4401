package shared

// Suit represents the suit of a card. The symbols double as the wire
// representation clients send and receive.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists the four suits in deck-building order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks lists the eight ranks of the 32-card deck in display order.
var Ranks = []string{"7", "8", "9", "10", "J", "Q", "K", "A"}

// Card represents a single card in the 29 game.
type Card struct {
	Suit  Suit   `json:"suit"`  // The suit of the card
	Rank  string `json:"rank"`  // The rank of the card
	Value int    `json:"value"` // The value of the card for scoring purposes
	Order int    `json:"order"` // The rank order within a suit (higher is better)
}

// Define card order for trick comparison (29 order: J > 9 > A > 10 > K > Q > 8 > 7)
var cardOrder = map[string]int{
	"J":  8,
	"9":  7,
	"A":  6,
	"10": 5,
	"K":  4,
	"Q":  3,
	"8":  2,
	"7":  1,
}

// Define card point values (J=3, 9=2, A=1, 10=1; 28 points across the deck)
var cardValues = map[string]int{
	"J":  3,
	"9":  2,
	"A":  1,
	"10": 1,
	"K":  0,
	"Q":  0,
	"8":  0,
	"7":  0,
}

// NewCard builds a card with its order and point value filled in from the
// rank tables. Unknown ranks yield zero order and value.
func NewCard(suit Suit, rank string) Card {
	return Card{
		Suit:  suit,
		Rank:  rank,
		Value: cardValues[rank],
		Order: cardOrder[rank],
	}
}

// ValidSuit reports whether s is one of the four playable suits.
func ValidSuit(s Suit) bool {
	switch s {
	case Spades, Hearts, Diamonds, Clubs:
		return true
	}
	return false
}

// Same compares cards by identity (rank, suit), ignoring derived fields.
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

func (c Card) String() string {
	return c.Rank + string(c.Suit)
}
