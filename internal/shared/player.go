package shared

// PlayerKind distinguishes human-controlled seats from scripted ones.
type PlayerKind string

const (
	Human PlayerKind = "human"
	Bot   PlayerKind = "bot"
)

// Player represents one seat in a 29 room. Seats 0 and 2 form team A,
// seats 1 and 3 team B.
type Player struct {
	ID        string     // Unique identifier for the player
	Name      string     // Player's chosen name
	Seat      int        // Seat index 0..3
	Hand      []Card     // Cards currently held by the player
	Kind      PlayerKind // Human or Bot
	Connected bool       // False once the transport reports a disconnect
}

// NewPlayer creates a new player for the given seat.
func NewPlayer(id string, name string, seat int, kind PlayerKind) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Seat:      seat,
		Hand:      []Card{},
		Kind:      kind,
		Connected: true,
	}
}

// AddCards appends dealt cards to the player's hand.
func (p *Player) AddCards(cards []Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c.Same(card) {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// FindCard looks a card up in the hand by suit and rank.
func (p *Player) FindCard(suit Suit, rank string) (Card, bool) {
	for _, card := range p.Hand {
		if card.Suit == suit && card.Rank == rank {
			return card, true
		}
	}
	return Card{}, false
}

// HasSuit reports whether the player holds at least one card of the suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, card := range p.Hand {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// Team returns the team the player's seat belongs to.
func (p *Player) Team() TeamEnum {
	return TeamForSeat(p.Seat)
}
