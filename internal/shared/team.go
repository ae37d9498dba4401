package shared

import "github.com/google/uuid"

// TeamEnum represents the two teams in the game.
type TeamEnum int

const (
	TeamA TeamEnum = 0 // Seats 0 and 2
	TeamB TeamEnum = 1 // Seats 1 and 3
)

// TeamForSeat maps a seat index to its fixed team.
func TeamForSeat(seat int) TeamEnum {
	return TeamEnum(seat % 2)
}

func (t TeamEnum) String() string {
	if t == TeamA {
		return "A"
	}
	return "B"
}

// Team represents one partnership in a 29 room.
type Team struct {
	ID       string   `json:"id"`
	Number   TeamEnum `json:"team"`
	Score    int      `json:"score"`    // Accumulated game points across rounds
	Captured []Card   `json:"captured"` // Cards won in tricks during the current round
}

// NewTeam creates a team with a fresh UUID.
func NewTeam(number TeamEnum) *Team {
	return &Team{
		ID:       uuid.NewString(),
		Number:   number,
		Captured: []Card{},
	}
}

// AddCaptured moves a resolved trick's cards into the team's pile.
func (t *Team) AddCaptured(cards []Card) {
	t.Captured = append(t.Captured, cards...)
}

// CapturedPoints sums the point values of the team's captured cards.
func (t *Team) CapturedPoints() int {
	points := 0
	for _, card := range t.Captured {
		points += card.Value
	}
	return points
}

// AddScore adds game points to the team's total score.
func (t *Team) AddScore(points int) {
	t.Score += points
}

// ResetRound clears the captured pile for a new round.
func (t *Team) ResetRound() {
	t.Captured = []Card{}
}
