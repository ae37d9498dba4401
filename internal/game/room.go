package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"twentynine-game/internal/protocol"
	"twentynine-game/internal/shared"

	"github.com/google/uuid"
)

// Phase represents the current state of a room.
type Phase string

const (
	Waiting     Phase = "waiting"     // Fewer than four seats filled
	Bidding     Phase = "bidding"     // Auction in progress
	ChooseTrump Phase = "chooseTrump" // Bid winner picks the trump suit
	Playing     Phase = "playing"     // Tricks being played
	RoundEnd    Phase = "roundEnd"    // Round scored, next deal pending
	GameOver    Phase = "gameOver"    // Target score reached
)

// MessageSender delivers an encoded message to one client. The Hub provides
// the implementation.
type MessageSender func(clientID string, message []byte)

// Result summarizes a finished match for persistence.
type Result struct {
	Code        string
	PlayerNames [4]string
	ScoreA      int
	ScoreB      int
	WinnerTeam  shared.TeamEnum
}

// Room composes deck, auction, trick and scoring into one authoritative
// per-match state machine. Every state transition happens under a single
// mutex; deferred transitions (trick clear, bot moves) re-acquire it and
// re-check that the room is still alive before applying anything.
type Room struct {
	Code          string
	Players       []*shared.Player // seat = index, grows to 4
	Teams         [2]*shared.Team
	Deck          *shared.Deck
	Phase         Phase
	Auction       *Auction
	TrumpSuit     shared.Suit
	TrumpRevealed bool
	CurrentTrick  *shared.Trick
	DealerSeat    int
	LeaderSeat    int
	TurnSeat      int
	TricksPlayed  int
	LastOutcome   *RoundOutcome

	rules        Rules
	strategy     Strategy
	clearPending bool
	destroyed    bool

	mu          sync.Mutex
	sendMessage MessageSender
	onEmpty     func(code string)
	onGameOver  func(Result)
}

// NewRoom creates an empty room. Rooms are normally allocated through the
// Registry, which also wires the lifecycle callbacks.
func NewRoom(code string, rules Rules, sender MessageSender) *Room {
	if rules.Policy == nil {
		rules.Policy = FlatPolicy{}
	}
	return &Room{
		Code:         code,
		Players:      []*shared.Player{},
		Teams:        [2]*shared.Team{shared.NewTeam(shared.TeamA), shared.NewTeam(shared.TeamB)},
		Phase:        Waiting,
		CurrentTrick: shared.NewTrick(),
		DealerSeat:   0,
		LeaderSeat:   -1,
		TurnSeat:     -1,
		rules:        rules,
		strategy:     ScriptedStrategy{},
		sendMessage:  sender,
	}
}

// Join seats an identity at the next free seat. Filling the fourth seat
// deals the first half of the deck and opens the auction.
func (r *Room) Join(id, name string, kind shared.PlayerKind) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return -1, ErrRoomNotFound
	}
	if r.Phase != Waiting || len(r.Players) >= 4 {
		return -1, ErrRoomFull
	}
	for _, p := range r.Players {
		if p.ID == id || p.Name == name {
			return -1, ErrDuplicatePlayer
		}
	}

	seat := len(r.Players)
	r.Players = append(r.Players, shared.NewPlayer(id, name, seat, kind))
	log.Printf("Room %s: %s seated at %d", r.Code, name, seat)
	r.broadcastPlayers()

	if len(r.Players) == 4 {
		r.startRound()
	}
	return seat, nil
}

// AddBot fills the next free seat with a scripted player. Only a seated
// member may request it.
func (r *Room) AddBot(requesterID string) error {
	r.mu.Lock()
	if r.playerByID(requesterID) == nil {
		r.mu.Unlock()
		return ErrNotInRoom
	}
	name := fmt.Sprintf("Bot %d", len(r.Players)+1)
	r.mu.Unlock()

	_, err := r.Join(uuid.NewString(), name, shared.Bot)
	return err
}

// HandlePlayerAction routes a phase intent (bid, pass, chooseTrump,
// playCard) to the matching engine. An invalid intent never mutates state;
// the offender gets a directed error message.
func (r *Room) HandlePlayerAction(clientID string, msg protocol.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return
	}
	player := r.playerByID(clientID)
	if player == nil {
		log.Printf("Room %s: action from unknown client %s", r.Code, clientID)
		return
	}

	var err error
	switch msg.Type {
	case protocol.TypeBid:
		var payload protocol.BidPayload
		if json.Unmarshal(msg.Payload, &payload) != nil {
			r.sendError(clientID, "Invalid bid message.")
			return
		}
		err = r.bid(player.Seat, payload.Value)

	case protocol.TypePass:
		err = r.pass(player.Seat)

	case protocol.TypeChooseTrump:
		var payload protocol.ChooseTrumpPayload
		if json.Unmarshal(msg.Payload, &payload) != nil {
			r.sendError(clientID, "Invalid chooseTrump message.")
			return
		}
		err = r.chooseTrump(player.Seat, shared.Suit(payload.Suit))

	case protocol.TypePlayCard:
		var payload protocol.PlayCardPayload
		if json.Unmarshal(msg.Payload, &payload) != nil {
			r.sendError(clientID, "Invalid playCard message.")
			return
		}
		err = r.playCard(player.Seat, shared.Suit(payload.Suit), payload.Rank)

	default:
		log.Printf("Room %s: unhandled action type %q from %s", r.Code, msg.Type, clientID)
		return
	}

	if err != nil {
		log.Printf("Room %s: rejected %s from seat %d: %v", r.Code, msg.Type, player.Seat, err)
		r.sendError(clientID, rejectionText(err))
	}
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, ErrIllegalAction):
		return "Action not allowed right now."
	case errors.Is(err, ErrIllegalBid):
		return "Illegal bid."
	case errors.Is(err, ErrIllegalTrump):
		return "You cannot choose trump."
	case errors.Is(err, ErrIllegalPlay):
		return "Illegal play."
	default:
		return err.Error()
	}
}

// startRound shuffles a fresh deck, deals the first four cards to each seat
// and opens the auction. Assumes the lock is held.
func (r *Room) startRound() {
	for _, team := range r.Teams {
		team.ResetRound()
	}
	r.Deck = shared.NewDeck()
	r.Deck.Shuffle()
	r.CurrentTrick = shared.NewTrick()
	r.TrumpSuit = ""
	r.TrumpRevealed = false
	r.TricksPlayed = 0
	r.clearPending = false
	r.LastOutcome = nil

	hands, err := r.Deck.Deal(len(r.Players), 4)
	if err != nil {
		log.Printf("Room %s: deal failed: %v", r.Code, err)
		return
	}
	for i, hand := range hands {
		r.Players[i].Hand = hand
		r.sendHand(r.Players[i])
	}

	r.Phase = Bidding
	r.Auction = NewAuction(r.DealerSeat, r.nextConnectedSeat)
	r.TurnSeat = r.Auction.TurnSeat
	log.Printf("Room %s: round started, dealer seat %d, seat %d bids first", r.Code, r.DealerSeat, r.TurnSeat)
	r.broadcastGameState()
	r.advanceNotify()
}

// bid submits a raise. Assumes the lock is held.
func (r *Room) bid(seat, value int) error {
	if r.Phase != Bidding {
		return ErrIllegalAction
	}
	if err := r.Auction.SubmitBid(seat, value); err != nil {
		return err
	}
	r.TurnSeat = r.Auction.TurnSeat
	log.Printf("Room %s: seat %d bid %d", r.Code, seat, value)
	r.broadcastGameState()
	r.advanceNotify()
	return nil
}

// pass records a pass and settles the auction if it terminated. Assumes the
// lock is held.
func (r *Room) pass(seat int) error {
	if r.Phase != Bidding {
		return ErrIllegalAction
	}
	done, err := r.Auction.Pass(seat)
	if err != nil {
		return err
	}
	r.TurnSeat = r.Auction.TurnSeat
	log.Printf("Room %s: seat %d passed", r.Code, seat)
	if done {
		r.finishAuction()
		return nil
	}
	r.broadcastGameState()
	r.advanceNotify()
	return nil
}

// finishAuction moves to trump selection. Four passes with no bid force the
// minimum bid onto the dealer rather than re-dealing. Assumes lock held.
func (r *Room) finishAuction() {
	if r.Auction.AllPassed() {
		r.Auction.ForceBid(r.DealerSeat, MinBid)
		log.Printf("Room %s: all passed, dealer seat %d takes a forced bid of %d", r.Code, r.DealerSeat, MinBid)
	}

	r.Phase = ChooseTrump
	r.TurnSeat = r.Auction.HighestBidderSeat
	log.Printf("Room %s: auction won by seat %d at %d", r.Code, r.Auction.HighestBidderSeat, r.Auction.CurrentBid)
	r.broadcastGameState()

	bidder := r.Players[r.Auction.HighestBidderSeat]
	if !bidder.Connected {
		// The bidder dropped during the auction; pick trump on their behalf.
		r.applyTrump(r.strategy.ChooseTrump(bidder.Hand))
		return
	}
	r.advanceNotify()
}

// chooseTrump handles the bid winner's trump selection. Assumes lock held.
func (r *Room) chooseTrump(seat int, suit shared.Suit) error {
	if r.Phase != ChooseTrump {
		return ErrIllegalAction
	}
	if seat != r.Auction.HighestBidderSeat || !shared.ValidSuit(suit) {
		return ErrIllegalTrump
	}
	r.applyTrump(suit)
	return nil
}

// applyTrump sets the trump suit, deals the second half of the deck and
// starts play with the bid winner leading. Assumes lock held.
func (r *Room) applyTrump(suit shared.Suit) {
	r.TrumpSuit = suit
	r.TrumpRevealed = !r.rules.HiddenTrump
	log.Printf("Room %s: seat %d chose trump %s", r.Code, r.Auction.HighestBidderSeat, suit)

	hands, err := r.Deck.Deal(len(r.Players), 4)
	if err != nil {
		// The 32-card deck always covers two 4x4 stages.
		log.Printf("Room %s: second deal failed: %v", r.Code, err)
		return
	}
	for i, hand := range hands {
		r.Players[i].AddCards(hand)
		r.sendHand(r.Players[i])
	}

	r.Phase = Playing
	r.LeaderSeat = r.Auction.HighestBidderSeat
	if !r.Players[r.LeaderSeat].Connected {
		r.LeaderSeat = r.nextConnectedSeat(r.LeaderSeat)
	}
	r.TurnSeat = r.LeaderSeat
	r.broadcastGameState()
	r.advanceNotify()
}

// playCard validates turn order, possession and follow-suit, then applies
// the play. Assumes lock held.
func (r *Room) playCard(seat int, suit shared.Suit, rank string) error {
	if r.Phase != Playing {
		return ErrIllegalAction
	}
	if r.clearPending || seat != r.TurnSeat {
		return ErrIllegalPlay
	}

	player := r.Players[seat]
	card, found := player.FindCard(suit, rank)
	if !found {
		return ErrIllegalPlay
	}
	if !r.isValidPlay(player, card) {
		return ErrIllegalPlay
	}

	player.RemoveCard(card)
	if !r.TrumpRevealed && len(r.CurrentTrick.Cards) > 0 &&
		card.Suit == r.TrumpSuit && r.CurrentTrick.LeadSuit != r.TrumpSuit {
		// A player void in the lead suit has elected to play trump face up.
		r.TrumpRevealed = true
		log.Printf("Room %s: trump %s revealed by seat %d", r.Code, r.TrumpSuit, seat)
	}
	r.CurrentTrick.AddCard(card, seat)
	log.Printf("Room %s: seat %d played %s", r.Code, seat, card)
	r.sendHand(player)

	if r.trickComplete() {
		r.endTrick()
		return nil
	}
	r.TurnSeat = r.nextConnectedSeat(seat)
	r.broadcastGameState()
	r.advanceNotify()
	return nil
}

// isValidPlay enforces follow-suit: a player holding the lead suit must play
// it; a void player may play anything, trump included. Assumes lock held.
func (r *Room) isValidPlay(player *shared.Player, card shared.Card) bool {
	if len(r.CurrentTrick.Cards) == 0 {
		return true
	}
	if player.HasSuit(r.CurrentTrick.LeadSuit) {
		return card.Suit == r.CurrentTrick.LeadSuit
	}
	return true
}

// endTrick resolves the trick, moves its cards to the winning team's pile
// and schedules the display clear. No play may touch the trick until the
// clear fires. Assumes lock held.
func (r *Room) endTrick() {
	winner := r.CurrentTrick.DetermineWinner(r.TrumpSuit, r.TrumpRevealed)
	if winner < 0 {
		winner = r.LeaderSeat
	}

	points := r.CurrentTrick.Points()
	cards := r.CurrentTrick.CardsOnly()
	r.Teams[shared.TeamForSeat(winner)].AddCaptured(cards)
	r.TricksPlayed++
	r.LeaderSeat = winner
	r.TurnSeat = winner
	log.Printf("Room %s: trick %d won by seat %d (%d points)", r.Code, r.TricksPlayed, winner, points)

	msg, _ := protocol.NewMessage(protocol.TypeTrickEnd, protocol.TrickEndPayload{
		WinnerSeat: winner,
		Cards:      cards,
		Points:     points,
	})
	r.broadcast(msg)
	r.broadcastGameState()

	r.clearPending = true
	if r.rules.TrickDelay <= 0 {
		r.clearTrickLocked()
		return
	}
	time.AfterFunc(r.rules.TrickDelay, r.clearTrick)
}

// clearTrick is the deferred transition scheduled by endTrick. It re-checks
// room liveness so a fire after destruction is a no-op.
func (r *Room) clearTrick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed || !r.clearPending {
		return
	}
	r.clearTrickLocked()
}

func (r *Room) clearTrickLocked() {
	r.clearPending = false
	r.CurrentTrick = shared.NewTrick()
	if r.TricksPlayed >= 8 {
		r.endRound()
		return
	}
	if !r.Players[r.TurnSeat].Connected {
		// The trick winner dropped while the clear was pending; the lead
		// moves to the next live seat.
		r.TurnSeat = r.nextConnectedSeat(r.TurnSeat)
		r.LeaderSeat = r.TurnSeat
	}
	r.broadcastGameState()
	r.advanceNotify()
}

// endRound scores the finished round, applies the award policy and either
// starts the next round or ends the match. Assumes lock held.
func (r *Room) endRound() {
	// Cards a disconnected seat never played go to the opposing team so the
	// round still accounts for all 32 cards.
	for _, p := range r.Players {
		if len(p.Hand) == 0 {
			continue
		}
		r.Teams[1-shared.TeamForSeat(p.Seat)].AddCaptured(p.Hand)
		p.Hand = []shared.Card{}
	}

	bidderTeam := shared.TeamForSeat(r.Auction.HighestBidderSeat)
	outcome, err := ScoreRound(r.Teams[0].Captured, r.Teams[1].Captured, bidderTeam, r.Auction.CurrentBid)
	if err != nil {
		log.Printf("Room %s: scoring failed: %v", r.Code, err)
		return
	}
	r.LastOutcome = &outcome

	awardA, awardB := r.rules.Policy.Award(outcome)
	r.Teams[0].AddScore(awardA)
	r.Teams[1].AddScore(awardB)
	r.Phase = RoundEnd
	log.Printf("Room %s: round over, team %s made %d against a bid of %d (success=%t), scores %d-%d",
		r.Code, bidderTeam, outcome.BidderPoints, outcome.Bid, outcome.Success, r.Teams[0].Score, r.Teams[1].Score)

	msg, _ := protocol.NewMessage(protocol.TypeRoundEnd, protocol.RoundEndPayload{
		BidderTeam:     bidderTeam.String(),
		Bid:            outcome.Bid,
		BidderPoints:   outcome.BidderPoints,
		DefenderPoints: outcome.DefenderPoints,
		Success:        outcome.Success,
		ScoreA:         r.Teams[0].Score,
		ScoreB:         r.Teams[1].Score,
	})
	r.broadcast(msg)

	if r.Teams[0].Score >= r.rules.TargetScore || r.Teams[1].Score >= r.rules.TargetScore {
		r.endGame()
		return
	}

	r.DealerSeat = (r.DealerSeat + 1) % 4
	r.startRound()
}

// endGame parks the room at GameOver and reports the result for
// persistence. Assumes lock held.
func (r *Room) endGame() {
	r.Phase = GameOver
	winner := shared.TeamA
	if r.Teams[1].Score > r.Teams[0].Score {
		winner = shared.TeamB
	}
	log.Printf("Room %s: game over, team %s wins %d-%d", r.Code, winner, r.Teams[0].Score, r.Teams[1].Score)

	msg, _ := protocol.NewMessage(protocol.TypeGameOver, protocol.GameOverPayload{
		WinnerTeam: winner.String(),
		ScoreA:     r.Teams[0].Score,
		ScoreB:     r.Teams[1].Score,
	})
	r.broadcast(msg)
	r.broadcastGameState()

	if r.onGameOver != nil {
		result := Result{
			Code:       r.Code,
			ScoreA:     r.Teams[0].Score,
			ScoreB:     r.Teams[1].Score,
			WinnerTeam: winner,
		}
		for i, p := range r.Players {
			result.PlayerNames[i] = p.Name
		}
		go r.onGameOver(result)
	}
}

// Leave vacates a seat explicitly. In the waiting phase the player is
// removed outright; mid-game the seat is marked disconnected and skipped.
func (r *Room) Leave(clientID string) {
	r.drop(clientID, "left")
}

// Disconnect marks a seat as disconnected. Idempotent: unknown or already
// departed identities are a no-op.
func (r *Room) Disconnect(clientID string) {
	r.drop(clientID, "disconnected")
}

func (r *Room) drop(clientID, verb string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return
	}
	player := r.playerByID(clientID)
	if player == nil || !player.Connected {
		return
	}
	log.Printf("Room %s: %s (seat %d) %s", r.Code, player.Name, player.Seat, verb)

	if r.Phase == Waiting {
		r.Players = append(r.Players[:player.Seat], r.Players[player.Seat+1:]...)
		for i, p := range r.Players {
			p.Seat = i
		}
		if r.connectedHumans() == 0 {
			r.destroy()
			return
		}
		r.broadcastPlayers()
		return
	}

	player.Connected = false
	if r.connectedHumans() == 0 {
		// Bots cannot hold a room open on their own.
		r.destroy()
		return
	}
	r.broadcastPlayers()

	switch r.Phase {
	case Bidding:
		if r.Auction.Active && r.Auction.TurnSeat == player.Seat {
			// Treat the dropped seat's turn as a pass so the auction moves on.
			if done, err := r.Auction.Pass(player.Seat); err == nil {
				r.TurnSeat = r.Auction.TurnSeat
				if done {
					r.finishAuction()
					return
				}
			}
		}
	case ChooseTrump:
		if r.Auction.HighestBidderSeat == player.Seat {
			r.applyTrump(r.strategy.ChooseTrump(player.Hand))
			return
		}
	case Playing:
		if r.clearPending {
			break
		}
		if r.TurnSeat == player.Seat {
			r.TurnSeat = r.nextConnectedSeat(player.Seat)
			if r.LeaderSeat == player.Seat {
				r.LeaderSeat = r.TurnSeat
			}
		}
		if r.trickComplete() {
			r.endTrick()
			return
		}
	}

	r.broadcastGameState()
	r.advanceNotify()
}

func (r *Room) destroy() {
	r.destroyed = true
	log.Printf("Room %s: empty, destroying", r.Code)
	if r.onEmpty != nil {
		r.onEmpty(r.Code)
	}
}

// advanceNotify tells the next actor it is their turn, or schedules the
// scripted move when that seat is a bot. Assumes lock held.
func (r *Room) advanceNotify() {
	if r.destroyed || r.clearPending {
		return
	}

	seat := -1
	switch r.Phase {
	case Bidding:
		seat = r.Auction.TurnSeat
	case ChooseTrump:
		seat = r.Auction.HighestBidderSeat
	case Playing:
		seat = r.TurnSeat
	default:
		return
	}
	if seat < 0 || seat >= len(r.Players) {
		return
	}
	player := r.Players[seat]
	if !player.Connected {
		return
	}

	if player.Kind == shared.Bot {
		if r.rules.BotDelay <= 0 {
			r.botActLocked(seat)
			return
		}
		id := player.ID
		time.AfterFunc(r.rules.BotDelay, func() { r.botAct(id) })
		return
	}

	msg, _ := protocol.NewMessage(protocol.TypeYourTurn, protocol.YourTurnPayload{
		Seat:  seat,
		Phase: string(r.Phase),
	})
	r.sendToPlayer(player.ID, msg)
}

// botAct is the deferred entry point for a scheduled bot move.
func (r *Room) botAct(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.destroyed {
		return
	}
	player := r.playerByID(id)
	if player == nil || player.Kind != shared.Bot {
		return
	}
	r.botActLocked(player.Seat)
}

// botActLocked performs the scripted move for a bot seat if it is still that
// seat's turn to act. Assumes lock held.
func (r *Room) botActLocked(seat int) {
	player := r.Players[seat]
	switch r.Phase {
	case Bidding:
		if !r.Auction.Active || r.Auction.TurnSeat != seat {
			return
		}
		value, passInstead := r.strategy.ChooseBid(player.Hand, r.Auction.CurrentBid)
		if passInstead {
			if err := r.pass(seat); err != nil {
				log.Printf("Room %s: bot pass at seat %d rejected: %v", r.Code, seat, err)
			}
			return
		}
		if err := r.bid(seat, value); err != nil {
			_ = r.pass(seat)
		}
	case ChooseTrump:
		if r.Auction.HighestBidderSeat != seat {
			return
		}
		if err := r.chooseTrump(seat, r.strategy.ChooseTrump(player.Hand)); err != nil {
			log.Printf("Room %s: bot trump at seat %d rejected: %v", r.Code, seat, err)
		}
	case Playing:
		if r.clearPending || r.TurnSeat != seat || len(player.Hand) == 0 {
			return
		}
		card := r.strategy.ChooseCard(player.Hand, r.CurrentTrick)
		if err := r.playCard(seat, card.Suit, card.Rank); err != nil {
			log.Printf("Room %s: bot play at seat %d rejected: %v", r.Code, seat, err)
		}
	}
}

// --- Messaging helpers (assume lock held) ---

func (r *Room) broadcast(message []byte) {
	if r.sendMessage == nil {
		return
	}
	for _, player := range r.Players {
		if player.Kind == shared.Human && player.Connected {
			r.sendMessage(player.ID, message)
		}
	}
}

func (r *Room) sendToPlayer(playerID string, message []byte) {
	if r.sendMessage == nil {
		return
	}
	r.sendMessage(playerID, message)
}

func (r *Room) sendError(playerID string, text string) {
	msg, err := protocol.NewMessage(protocol.TypeErrorMessage, protocol.ErrorPayload{Message: text})
	if err != nil {
		log.Printf("Room %s: error encoding error message: %v", r.Code, err)
		return
	}
	r.sendToPlayer(playerID, msg)
}

func (r *Room) sendHand(player *shared.Player) {
	if player.Kind != shared.Human || !player.Connected {
		return
	}
	msg, _ := protocol.NewMessage(protocol.TypeYourHand, protocol.YourHandPayload{
		Hand:     player.Hand,
		Seat:     player.Seat,
		RoomCode: r.Code,
	})
	r.sendToPlayer(player.ID, msg)
}

func (r *Room) broadcastPlayers() {
	infos := make([]protocol.PlayerInfo, len(r.Players))
	for i, p := range r.Players {
		infos[i] = protocol.PlayerInfo{
			ID:        p.ID,
			Name:      p.Name,
			Seat:      p.Seat,
			Team:      p.Team().String(),
			Kind:      string(p.Kind),
			Connected: p.Connected,
		}
	}
	msg, _ := protocol.NewMessage(protocol.TypePlayers, protocol.PlayersPayload{Players: infos})
	r.broadcast(msg)
}

// broadcastGameState sends the public snapshot: hands never appear here, and
// the trump suit is withheld until revealed.
func (r *Room) broadcastGameState() {
	payload := protocol.GameStatePayload{
		RoomCode:          r.Code,
		Phase:             string(r.Phase),
		HighestBidderSeat: -1,
		TrumpRevealed:     r.TrumpRevealed,
		CurrentTrick:      r.CurrentTrick.Cards,
		TurnSeat:          r.TurnSeat,
		LeaderSeat:        r.LeaderSeat,
		DealerSeat:        r.DealerSeat,
		TricksPlayed:      r.TricksPlayed,
		RoundPointsA:      r.Teams[0].CapturedPoints(),
		RoundPointsB:      r.Teams[1].CapturedPoints(),
		ScoreA:            r.Teams[0].Score,
		ScoreB:            r.Teams[1].Score,
	}
	if r.Auction != nil {
		payload.CurrentBid = r.Auction.CurrentBid
		payload.HighestBidderSeat = r.Auction.HighestBidderSeat
	}
	if r.TrumpSuit != "" && r.TrumpRevealed {
		payload.TrumpSuit = string(r.TrumpSuit)
	}
	msg, _ := protocol.NewMessage(protocol.TypeGameState, payload)
	r.broadcast(msg)
}

// --- Utility helpers (assume lock held) ---

func (r *Room) playerByID(id string) *shared.Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) connectedHumans() int {
	count := 0
	for _, p := range r.Players {
		if p.Kind == shared.Human && p.Connected {
			count++
		}
	}
	return count
}

// nextConnectedSeat returns the next connected seat clockwise from the given
// one. Falls back to the input seat if nobody else is connected.
func (r *Room) nextConnectedSeat(after int) int {
	seat := after
	for i := 0; i < len(r.Players); i++ {
		seat = (seat + 1) % len(r.Players)
		if r.Players[seat].Connected {
			return seat
		}
	}
	return after
}

func (r *Room) trickComplete() bool {
	if len(r.CurrentTrick.Cards) == 0 {
		return false
	}
	for _, p := range r.Players {
		if !p.Connected {
			continue
		}
		if !r.hasPlayed(p.Seat) {
			return false
		}
	}
	return true
}

func (r *Room) hasPlayed(seat int) bool {
	for _, pc := range r.CurrentTrick.Cards {
		if pc.Seat == seat {
			return true
		}
	}
	return false
}
