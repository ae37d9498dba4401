package game

import "errors"

// Rejection kinds. Every invalid intent maps to one of these; none of them is
// fatal to a room — the intent is dropped and the offender gets a directed
// error message.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrDuplicatePlayer = errors.New("player already in room")
	ErrNotInRoom       = errors.New("player not in room")
	ErrIllegalAction   = errors.New("action not valid in current phase")
	ErrIllegalBid      = errors.New("illegal bid")
	ErrIllegalTrump    = errors.New("illegal trump selection")
	ErrIllegalPlay     = errors.New("illegal play")
	ErrIncompleteRound = errors.New("round is not complete")
)
