package game

import "time"

// Rules pins the per-room knobs the 29 variant leaves open: trump
// visibility, the game-point award scheme, match length, and the display
// delay for resolved tricks.
type Rules struct {
	HiddenTrump bool          // Trump stays hidden until first played off-suit
	TargetScore int           // Match ends when a team reaches this score
	TrickDelay  time.Duration // How long a resolved trick stays on display
	BotDelay    time.Duration // Bot think time before a scripted move
	Policy      ScorePolicy   // Game-point award scheme
}

// DefaultRules returns the standard configuration: trump known to all as
// soon as it is chosen, flat one-point awards, first team to 6.
func DefaultRules() Rules {
	return Rules{
		HiddenTrump: false,
		TargetScore: 6,
		TrickDelay:  1200 * time.Millisecond,
		BotDelay:    700 * time.Millisecond,
		Policy:      FlatPolicy{},
	}
}
