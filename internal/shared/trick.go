package shared

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick represents a single trick: up to four plays, one per seat.
type Trick struct {
	Cards      []PlayedCard // Cards played in the current trick, in play order
	LeadSuit   Suit         // Suit of the opening play
	WinnerSeat int          // Seat that won the trick (-1 until resolved)
}

// NewTrick creates a new empty trick.
func NewTrick() *Trick {
	return &Trick{
		Cards:      make([]PlayedCard, 0, 4),
		WinnerSeat: -1,
	}
}

// AddCard appends a play to the trick. The first card sets the lead suit.
func (t *Trick) AddCard(card Card, seat int) {
	if len(t.Cards) == 0 {
		t.LeadSuit = card.Suit
	}
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// IsComplete reports whether all four seats have played.
func (t *Trick) IsComplete() bool {
	return len(t.Cards) == 4
}

// Points sums the point values of the cards played so far.
func (t *Trick) Points() int {
	points := 0
	for _, pc := range t.Cards {
		points += pc.Card.Value
	}
	return points
}

// DetermineWinner resolves the trick. If trumpActive and any trump card was
// played, the highest trump wins; otherwise the highest card of the lead suit
// wins. Non-lead, non-trump cards never win. The result depends only on the
// (seat, card) pairs, not on play timing.
func (t *Trick) DetermineWinner(trump Suit, trumpActive bool) int {
	if len(t.Cards) == 0 {
		return -1
	}

	winningSuit := t.LeadSuit
	if trumpActive {
		for _, pc := range t.Cards {
			if pc.Card.Suit == trump {
				winningSuit = trump
				break
			}
		}
	}

	highestOrder := -1
	winnerSeat := -1
	for _, pc := range t.Cards {
		if pc.Card.Suit != winningSuit {
			continue
		}
		if pc.Card.Order > highestOrder {
			highestOrder = pc.Card.Order
			winnerSeat = pc.Seat
		}
	}

	t.WinnerSeat = winnerSeat
	return winnerSeat
}

// CardsOnly returns the played cards stripped of seat information.
func (t *Trick) CardsOnly() []Card {
	cards := make([]Card, len(t.Cards))
	for i, pc := range t.Cards {
		cards[i] = pc.Card
	}
	return cards
}
