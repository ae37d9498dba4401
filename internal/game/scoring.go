package game

import "twentynine-game/internal/shared"

// DeckPoints is the total of all card point values in the 32-card deck.
const DeckPoints = 28

// RoundOutcome reports one completed round judged against its bid.
type RoundOutcome struct {
	BidderTeam     shared.TeamEnum `json:"bidderTeam"`
	Bid            int             `json:"bid"`
	BidderPoints   int             `json:"bidderPoints"`
	DefenderPoints int             `json:"defenderPoints"`
	Success        bool            `json:"success"`
}

// ScoreRound sums the captured card points per team and judges whether the
// bidding team met its bid. Fails with ErrIncompleteRound unless all 32 cards
// are accounted for across the two piles.
func ScoreRound(capturedA, capturedB []shared.Card, bidderTeam shared.TeamEnum, bid int) (RoundOutcome, error) {
	if len(capturedA)+len(capturedB) != 32 {
		return RoundOutcome{}, ErrIncompleteRound
	}

	pointsA := cardPoints(capturedA)
	pointsB := cardPoints(capturedB)

	outcome := RoundOutcome{
		BidderTeam:     bidderTeam,
		Bid:            bid,
		BidderPoints:   pointsA,
		DefenderPoints: pointsB,
	}
	if bidderTeam == shared.TeamB {
		outcome.BidderPoints, outcome.DefenderPoints = pointsB, pointsA
	}
	outcome.Success = outcome.BidderPoints >= bid
	return outcome, nil
}

func cardPoints(cards []shared.Card) int {
	points := 0
	for _, card := range cards {
		points += card.Value
	}
	return points
}

// ScorePolicy converts a round outcome into game points per team. The award
// scheme is deliberately pluggable.
type ScorePolicy interface {
	Award(outcome RoundOutcome) (teamA, teamB int)
}

// FlatPolicy awards one game point to whichever side won the round.
type FlatPolicy struct{}

func (FlatPolicy) Award(outcome RoundOutcome) (int, int) {
	winner := outcome.BidderTeam
	if !outcome.Success {
		winner = 1 - outcome.BidderTeam
	}
	if winner == shared.TeamA {
		return 1, 0
	}
	return 0, 1
}

// MarginPolicy scales the award with the height of the bid: one game point
// for 16-19, up to four for a bid of 28.
type MarginPolicy struct{}

func (MarginPolicy) Award(outcome RoundOutcome) (int, int) {
	value := 1 + (outcome.Bid-MinBid)/4
	winner := outcome.BidderTeam
	if !outcome.Success {
		winner = 1 - outcome.BidderTeam
	}
	if winner == shared.TeamA {
		return value, 0
	}
	return 0, value
}
