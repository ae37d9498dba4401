package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundRobin(after int) int { return (after + 1) % 4 }

func TestAuctionOpensAfterDealer(t *testing.T) {
	a := NewAuction(3, roundRobin)
	assert.Equal(t, 0, a.TurnSeat)
	assert.Equal(t, MinBid-1, a.CurrentBid)
	assert.Equal(t, -1, a.HighestBidderSeat)
	assert.True(t, a.Active)
}

func TestBidMonotonicity(t *testing.T) {
	a := NewAuction(0, roundRobin)

	require.NoError(t, a.SubmitBid(1, 16))
	assert.ErrorIs(t, a.SubmitBid(2, 16), ErrIllegalBid) // must exceed current
	assert.ErrorIs(t, a.SubmitBid(2, 15), ErrIllegalBid) // below minimum
	assert.ErrorIs(t, a.SubmitBid(2, 29), ErrIllegalBid) // above maximum

	require.NoError(t, a.SubmitBid(2, 17))
	assert.Equal(t, 17, a.CurrentBid)
	assert.Equal(t, 2, a.HighestBidderSeat)
}

func TestActingOutOfTurnRejected(t *testing.T) {
	a := NewAuction(0, roundRobin)
	assert.ErrorIs(t, a.SubmitBid(2, 16), ErrIllegalBid)

	_, err := a.Pass(3)
	assert.ErrorIs(t, err, ErrIllegalBid)
	assert.Equal(t, 1, a.TurnSeat)
}

func TestThreePassesSettleAuction(t *testing.T) {
	a := NewAuction(0, roundRobin)
	require.NoError(t, a.SubmitBid(1, 20))

	for _, seat := range []int{2, 3} {
		done, err := a.Pass(seat)
		require.NoError(t, err)
		assert.False(t, done)
	}
	done, err := a.Pass(0)
	require.NoError(t, err)
	assert.True(t, done)

	assert.False(t, a.Active)
	assert.Equal(t, 1, a.HighestBidderSeat)
	assert.Equal(t, 20, a.CurrentBid)
	assert.False(t, a.AllPassed())

	_, err = a.Pass(1)
	assert.ErrorIs(t, err, ErrIllegalBid)
}

func TestAllPassedAuction(t *testing.T) {
	a := NewAuction(0, roundRobin)
	for _, seat := range []int{1, 2, 3} {
		done, err := a.Pass(seat)
		require.NoError(t, err)
		require.False(t, done)
	}
	done, err := a.Pass(0)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, a.AllPassed())

	a.ForceBid(0, MinBid)
	assert.Equal(t, MinBid, a.CurrentBid)
	assert.Equal(t, 0, a.HighestBidderSeat)
	assert.False(t, a.AllPassed())
}

func TestRaiseResetsPassCount(t *testing.T) {
	a := NewAuction(0, roundRobin)
	require.NoError(t, a.SubmitBid(1, 16))

	_, err := a.Pass(2)
	require.NoError(t, err)
	require.NoError(t, a.SubmitBid(3, 17))
	assert.Equal(t, 0, a.ConsecutivePasses)
	assert.Equal(t, 3, a.HighestBidderSeat)
}

func TestAuctionSkipsDisconnectedSeat(t *testing.T) {
	connected := map[int]bool{0: true, 1: true, 2: false, 3: true}
	next := func(after int) int {
		seat := after
		for i := 0; i < 4; i++ {
			seat = (seat + 1) % 4
			if connected[seat] {
				return seat
			}
		}
		return after
	}

	a := NewAuction(0, next)
	require.NoError(t, a.SubmitBid(1, 18))
	assert.Equal(t, 3, a.TurnSeat)
}
