package game

import "twentynine-game/internal/shared"

// Strategy decides moves for a bot seat. Implementations see only what a
// human in the same seat would see; moves are submitted through the same
// dispatch path as human intents.
type Strategy interface {
	ChooseBid(hand []shared.Card, currentBid int) (value int, pass bool)
	ChooseTrump(hand []shared.Card) shared.Suit
	ChooseCard(hand []shared.Card, trick *shared.Trick) shared.Card
}

// ScriptedStrategy is the default bot: raise by one while the hand's point
// strength justifies it, trump the longest suit, play the lowest legal card.
type ScriptedStrategy struct{}

func (ScriptedStrategy) ChooseBid(hand []shared.Card, currentBid int) (int, bool) {
	strength := 0
	for _, card := range hand {
		strength += card.Value
	}

	next := currentBid + 1
	if next < MinBid {
		next = MinBid
	}
	// The first four cards hold at most 9 points; a bot with n points in hand
	// is willing to go up to MinBid+n.
	if next > MaxBid || next > MinBid+strength {
		return 0, true
	}
	return next, false
}

func (ScriptedStrategy) ChooseTrump(hand []shared.Card) shared.Suit {
	counts := make(map[shared.Suit]int)
	for _, card := range hand {
		counts[card.Suit]++
	}
	best := shared.Spades
	bestCount := -1
	for _, suit := range shared.Suits {
		if counts[suit] > bestCount {
			best = suit
			bestCount = counts[suit]
		}
	}
	return best
}

func (ScriptedStrategy) ChooseCard(hand []shared.Card, trick *shared.Trick) shared.Card {
	candidates := hand
	if len(trick.Cards) > 0 {
		var following []shared.Card
		for _, card := range hand {
			if card.Suit == trick.LeadSuit {
				following = append(following, card)
			}
		}
		if len(following) > 0 {
			candidates = following
		}
	}

	lowest := candidates[0]
	for _, card := range candidates[1:] {
		if card.Order < lowest.Order {
			lowest = card
		}
	}
	return lowest
}
