package game

// Bid bounds of the 29 auction.
const (
	MinBid = 16
	MaxBid = 28
)

// Auction drives the bidding phase of one round. Turn rotation skips
// disconnected seats via the nextSeat callback supplied by the Room; a
// skipped seat keeps its prior bid standing.
type Auction struct {
	CurrentBid        int  // Highest accepted bid (MinBid-1 while no bid yet)
	HighestBidderSeat int  // Seat holding the current bid (-1 while no bid yet)
	TurnSeat          int  // Seat expected to bid or pass next
	ConsecutivePasses int  // Passes since the last accepted bid
	Active            bool // False once the auction has terminated

	nextSeat func(after int) int
}

// NewAuction starts an auction with the seat after the dealer to act first.
func NewAuction(dealerSeat int, nextSeat func(after int) int) *Auction {
	return &Auction{
		CurrentBid:        MinBid - 1,
		HighestBidderSeat: -1,
		TurnSeat:          nextSeat(dealerSeat),
		Active:            true,
		nextSeat:          nextSeat,
	}
}

// SubmitBid accepts a raise from the seat whose turn it is. The value must
// exceed the current bid and stay within [MinBid, MaxBid].
func (a *Auction) SubmitBid(seat, value int) error {
	if !a.Active || seat != a.TurnSeat {
		return ErrIllegalBid
	}
	if value < MinBid || value > MaxBid || value <= a.CurrentBid {
		return ErrIllegalBid
	}
	a.CurrentBid = value
	a.HighestBidderSeat = seat
	a.ConsecutivePasses = 0
	a.TurnSeat = a.nextSeat(seat)
	return nil
}

// Pass records a pass from the seat whose turn it is and reports whether the
// auction has ended: three passes after a bid settle it on the highest
// bidder, four passes with no bid at all end it unresolved.
func (a *Auction) Pass(seat int) (done bool, err error) {
	if !a.Active || seat != a.TurnSeat {
		return false, ErrIllegalBid
	}
	a.ConsecutivePasses++
	a.TurnSeat = a.nextSeat(seat)

	if a.HighestBidderSeat >= 0 && a.ConsecutivePasses >= 3 {
		a.Active = false
		return true, nil
	}
	if a.HighestBidderSeat < 0 && a.ConsecutivePasses >= 4 {
		a.Active = false
		return true, nil
	}
	return false, nil
}

// AllPassed reports whether the auction ended with no voluntary bid. The Room
// resolves this by forcing the minimum bid onto the dealer.
func (a *Auction) AllPassed() bool {
	return !a.Active && a.HighestBidderSeat < 0
}

// ForceBid assigns a bid outside the normal turn flow. Used for the
// all-passed edge case.
func (a *Auction) ForceBid(seat, value int) {
	a.CurrentBid = value
	a.HighestBidderSeat = seat
	a.Active = false
}
